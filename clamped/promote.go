package clamped

import (
	"math"
	"math/big"
)

// Mixed-type arithmetic and comparison. Two integer operands are combined
// exactly as big integers; if either operand is a float both are combined
// as float64. Results are clamped or converted to the destination type only
// after the operation, so narrowing never happens on an operand.

type arith int

const (
	arithAdd arith = iota
	arithSub
	arithMul
	arithDiv
)

var mask64 = new(big.Int).SetUint64(math.MaxUint64)

func isFloat[T Number]() bool {
	var x T = 1
	x /= 2
	return x != 0
}

func isSigned[T Number]() bool {
	var x T
	x--
	return x < 0
}

func mixedFloat[T, U Number]() bool {
	return isFloat[T]() || isFloat[U]()
}

func toBigInt[T Number](x T) *big.Int {
	if isSigned[T]() {
		return big.NewInt(int64(x))
	}
	return new(big.Int).SetUint64(uint64(x))
}

func toBigFloat[T Number](x T) *big.Float {
	if isFloat[T]() {
		return big.NewFloat(float64(x))
	}
	return new(big.Float).SetInt(toBigInt(x))
}

func intArith(op arith, a, b *big.Int) *big.Int {
	z := new(big.Int)
	switch op {
	case arithAdd:
		return z.Add(a, b)
	case arithSub:
		return z.Sub(a, b)
	case arithMul:
		return z.Mul(a, b)
	}
	// Quo truncates toward zero and panics on a zero divisor, like Go's
	// integer division.
	return z.Quo(a, b)
}

func floatArith(op arith, a, b float64) float64 {
	switch op {
	case arithAdd:
		return a + b
	case arithSub:
		return a - b
	case arithMul:
		return a * b
	}
	return a / b
}

// wrapInt converts n to T the way a Go integer conversion would, keeping the
// low 64 bits in two's complement.
func wrapInt[T Number](n *big.Int) T {
	u := new(big.Int).And(n, mask64).Uint64()
	if isSigned[T]() {
		return T(int64(u))
	}
	return T(u)
}

func clampBigInt[T Number, B Bounds[T]](n *big.Int) T {
	lo, hi := bounds[T, B]()
	if n.Cmp(toBigInt(lo)) < 0 {
		return lo
	}
	if n.Cmp(toBigInt(hi)) > 0 {
		return hi
	}
	return wrapInt[T](n)
}

func clampFloat64[T Number, B Bounds[T]](f float64) T {
	lo, hi := bounds[T, B]()
	switch {
	case f < float64(lo):
		return lo
	case f != f || f >= float64(hi):
		return hi
	case f <= float64(lo):
		return lo
	}
	return Clamp[T, B](T(f))
}

// assign stores clamp(dst <op> x) computed in the common type of T and U.
func assign[T Number, B Bounds[T], U Number](dst *Value[T, B], op arith, x U) *Value[T, B] {
	a := dst.Get()
	if mixedFloat[T, U]() {
		dst.v = clampFloat64[T, B](floatArith(op, float64(a), float64(x)))
	} else {
		dst.v = clampBigInt[T, B](intArith(op, toBigInt(a), toBigInt(x)))
	}
	return dst
}

// raw returns a <op> x computed in the common type of T and U, converted to T
// without clamping.
func raw[T, U Number](op arith, a T, x U) T {
	if mixedFloat[T, U]() {
		return T(floatArith(op, float64(a), float64(x)))
	}
	return wrapInt[T](intArith(op, toBigInt(a), toBigInt(x)))
}

// compare orders a and b exactly, without converting either to the other's
// type.
func compare[T, U Number](a T, b U) int {
	if mixedFloat[T, U]() {
		return toBigFloat(a).Cmp(toBigFloat(b))
	}
	return toBigInt(a).Cmp(toBigInt(b))
}
