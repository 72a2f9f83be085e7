package util

import "golang.org/x/exp/constraints"

// Clamp returns v limited to [low, high]. Values that compare neither below
// low nor within the range (NaN) saturate to high.
func Clamp[T constraints.Ordered](v, low, high T) T {
	switch {
	case v < low:
		return low
	case v <= high:
		return v
	default:
		return high
	}
}
