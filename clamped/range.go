package clamped

import (
	"fmt"

	"clampvar/internal/util"
)

// Range is a validated [Min, Max] pair for bounds known only at run time.
// The zero Range is not valid; use NewRange.
type Range[T Number] struct {
	min, max T
}

// NewRange returns the Range [lo, hi], or ErrInvalidBounds if hi <= lo.
func NewRange[T Number](lo, hi T) (Range[T], error) {
	if err := checkBounds(lo, hi); err != nil {
		return Range[T]{}, err
	}
	return Range[T]{min: lo, max: hi}, nil
}

// RangeOf returns the Range described by the bounds type B. It panics if B
// is invalid.
func RangeOf[T Number, B Bounds[T]]() Range[T] {
	lo, hi := bounds[T, B]()
	return Range[T]{min: lo, max: hi}
}

func (r Range[T]) Min() T { return r.min }
func (r Range[T]) Max() T { return r.max }

// Clamp limits x to the range.
func (r Range[T]) Clamp(x T) T {
	return util.Clamp(x, r.min, r.max)
}

// Contains reports whether min <= x <= max.
func (r Range[T]) Contains(x T) bool {
	return x >= r.min && x <= r.max
}

func (r Range[T]) String() string {
	return fmt.Sprintf("[%v, %v]", r.min, r.max)
}
