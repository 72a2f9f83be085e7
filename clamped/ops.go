package clamped

// Operations between two Values. The right operand may use another element
// type and other bounds. Both clamped values take part in the operation at
// full precision: integers combine exactly, and a float on either side makes
// the operation run in float64. Only the result is clamped or converted to
// the left operand's element type.

// Assign stores clamp(src) in dst.
func Assign[T Number, B Bounds[T], U Number, C Bounds[U]](dst *Value[T, B], src Value[U, C]) *Value[T, B] {
	if mixedFloat[T, U]() {
		dst.v = clampFloat64[T, B](float64(src.Get()))
	} else {
		dst.v = clampBigInt[T, B](toBigInt(src.Get()))
	}
	return dst
}

// AddAssign stores clamp(dst + src) in dst.
func AddAssign[T Number, B Bounds[T], U Number, C Bounds[U]](dst *Value[T, B], src Value[U, C]) *Value[T, B] {
	return assign(dst, arithAdd, src.Get())
}

// SubAssign stores clamp(dst - src) in dst.
func SubAssign[T Number, B Bounds[T], U Number, C Bounds[U]](dst *Value[T, B], src Value[U, C]) *Value[T, B] {
	return assign(dst, arithSub, src.Get())
}

// MulAssign stores clamp(dst * src) in dst.
func MulAssign[T Number, B Bounds[T], U Number, C Bounds[U]](dst *Value[T, B], src Value[U, C]) *Value[T, B] {
	return assign(dst, arithMul, src.Get())
}

// DivAssign stores clamp(dst / src) in dst. A zero integer divisor panics
// when both sides are integers.
func DivAssign[T Number, B Bounds[T], U Number, C Bounds[U]](dst *Value[T, B], src Value[U, C]) *Value[T, B] {
	return assign(dst, arithDiv, src.Get())
}

// Sum returns a + b without clamping.
func Sum[T Number, B Bounds[T], U Number, C Bounds[U]](a Value[T, B], b Value[U, C]) T {
	return raw(arithAdd, a.Get(), b.Get())
}

// Difference returns a - b without clamping.
func Difference[T Number, B Bounds[T], U Number, C Bounds[U]](a Value[T, B], b Value[U, C]) T {
	return raw(arithSub, a.Get(), b.Get())
}

// Product returns a * b without clamping.
func Product[T Number, B Bounds[T], U Number, C Bounds[U]](a Value[T, B], b Value[U, C]) T {
	return raw(arithMul, a.Get(), b.Get())
}

// Quotient returns a / b without clamping.
func Quotient[T Number, B Bounds[T], U Number, C Bounds[U]](a Value[T, B], b Value[U, C]) T {
	return raw(arithDiv, a.Get(), b.Get())
}

// Equal reports whether a == b.
func Equal[T Number, B Bounds[T], U Number, C Bounds[U]](a Value[T, B], b Value[U, C]) bool {
	return compare(a.Get(), b.Get()) == 0
}

// NotEqual reports whether a != b.
func NotEqual[T Number, B Bounds[T], U Number, C Bounds[U]](a Value[T, B], b Value[U, C]) bool {
	return compare(a.Get(), b.Get()) != 0
}

// LessEqual reports whether a <= b.
func LessEqual[T Number, B Bounds[T], U Number, C Bounds[U]](a Value[T, B], b Value[U, C]) bool {
	return compare(a.Get(), b.Get()) <= 0
}

// GreaterEqual reports whether a >= b.
func GreaterEqual[T Number, B Bounds[T], U Number, C Bounds[U]](a Value[T, B], b Value[U, C]) bool {
	return compare(a.Get(), b.Get()) >= 0
}

// Greater reports whether a > b.
func Greater[T Number, B Bounds[T], U Number, C Bounds[U]](a Value[T, B], b Value[U, C]) bool {
	return compare(a.Get(), b.Get()) > 0
}

// Less reports whether a < b.
func Less[T Number, B Bounds[T], U Number, C Bounds[U]](a Value[T, B], b Value[U, C]) bool {
	return compare(a.Get(), b.Get()) < 0
}
