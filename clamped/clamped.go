// Package clamped provides Value, a numeric container that keeps its content
// inside a fixed range. Every write clamps; reads and raw arithmetic do not.
//
// Bounds are part of the type. A bounds type is a zero-size type whose Min and
// Max methods return constants:
//
//	type Percent struct{}
//
//	func (Percent) Min() float64 { return 0 }
//	func (Percent) Max() float64 { return 100 }
//
//	hp := clamped.Must[float64, Percent](150) // holds 100
//	hp.Sub(30).Mul(-1)                         // holds 0
//
// The zero Value is ready to use and reads as the clamped zero of its type,
// so a Value[int, B] with bounds [5, 10] starts at 5. A bounds type with
// Max <= Min is rejected by New and Check; any other use of it, including
// reads and writes on a zero Value, panics with ErrInvalidBounds. Value
// performs no locking; guard shared instances the way you would guard a
// plain number.
package clamped

import (
	"cmp"
	"errors"
	"fmt"

	"clampvar/internal/util"

	"golang.org/x/exp/constraints"
)

// ErrInvalidBounds is returned when a bounds type or Range has Max <= Min.
var ErrInvalidBounds = errors.New("clamped: max must be greater than min")

// Number is the set of scalar types a Value can hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Bounds describes an inclusive range. Implementations must be usable as
// their zero value.
type Bounds[T Number] interface {
	Min() T
	Max() T
}

// Value holds one T that always lies in [B.Min(), B.Max()].
type Value[T Number, B Bounds[T]] struct {
	v T
}

// Check reports whether the bounds type B is well formed.
func Check[T Number, B Bounds[T]]() error {
	var b B
	return checkBounds(b.Min(), b.Max())
}

func checkBounds[T Number](lo, hi T) error {
	if !(hi > lo) {
		return fmt.Errorf("%w: min %v, max %v", ErrInvalidBounds, lo, hi)
	}
	return nil
}

// bounds returns the range of B and panics if it is invalid.
func bounds[T Number, B Bounds[T]]() (lo, hi T) {
	var b B
	lo, hi = b.Min(), b.Max()
	if err := checkBounds(lo, hi); err != nil {
		panic(err)
	}
	return lo, hi
}

// Clamp applies the range of B to x. It panics if B is invalid.
func Clamp[T Number, B Bounds[T]](x T) T {
	lo, hi := bounds[T, B]()
	return util.Clamp(x, lo, hi)
}

// New returns a Value holding the clamped initial value.
func New[T Number, B Bounds[T]](initial T) (Value[T, B], error) {
	if err := Check[T, B](); err != nil {
		return Value[T, B]{}, err
	}
	return Value[T, B]{v: Clamp[T, B](initial)}, nil
}

// Must is like New but panics if B is invalid. Intended for package-level
// declarations with constant bounds.
func Must[T Number, B Bounds[T]](initial T) Value[T, B] {
	v, err := New[T, B](initial)
	if err != nil {
		panic(err)
	}
	return v
}

// Get returns a copy of the current value.
func (v Value[T, B]) Get() T {
	return Clamp[T, B](v.v)
}

// Load is an alias of Get.
func (v Value[T, B]) Load() T {
	return v.Get()
}

// Bounds returns the range of v as a Range.
func (v Value[T, B]) Bounds() Range[T] {
	return RangeOf[T, B]()
}

func (v Value[T, B]) String() string {
	return fmt.Sprint(v.Get())
}

// Set stores clamp(x).
func (v *Value[T, B]) Set(x T) *Value[T, B] {
	v.v = Clamp[T, B](x)
	return v
}

// Add stores clamp(v + x).
func (v *Value[T, B]) Add(x T) *Value[T, B] {
	return v.Set(v.Get() + x)
}

// Sub stores clamp(v - x).
func (v *Value[T, B]) Sub(x T) *Value[T, B] {
	return v.Set(v.Get() - x)
}

// Mul stores clamp(v * x).
func (v *Value[T, B]) Mul(x T) *Value[T, B] {
	return v.Set(v.Get() * x)
}

// Div stores clamp(v / x). Dividing an integer Value by zero panics like
// any integer division.
func (v *Value[T, B]) Div(x T) *Value[T, B] {
	return v.Set(v.Get() / x)
}

// Plus returns v + x without clamping.
func (v Value[T, B]) Plus(x T) T {
	return v.Get() + x
}

// Minus returns v - x without clamping.
func (v Value[T, B]) Minus(x T) T {
	return v.Get() - x
}

// Times returns v * x without clamping.
func (v Value[T, B]) Times(x T) T {
	return v.Get() * x
}

// Quo returns v / x without clamping.
func (v Value[T, B]) Quo(x T) T {
	return v.Get() / x
}

// Eq reports whether v == x.
func (v Value[T, B]) Eq(x T) bool { return v.Get() == x }

// Ne reports whether v != x.
func (v Value[T, B]) Ne(x T) bool { return v.Get() != x }

// Le reports whether v <= x.
func (v Value[T, B]) Le(x T) bool { return v.Get() <= x }

// Ge reports whether v >= x.
func (v Value[T, B]) Ge(x T) bool { return v.Get() >= x }

// Gt reports whether v > x.
func (v Value[T, B]) Gt(x T) bool { return v.Get() > x }

// Lt reports whether v < x.
func (v Value[T, B]) Lt(x T) bool { return v.Get() < x }

// Compare returns -1, 0 or +1 following cmp.Compare.
func (v Value[T, B]) Compare(x T) int {
	return cmp.Compare(v.Get(), x)
}
