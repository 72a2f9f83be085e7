package clamped

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

type pct8 struct{}

func (pct8) Min() int8 { return 0 }
func (pct8) Max() int8 { return 100 }

type kilo64 struct{}

func (kilo64) Min() int64 { return 0 }
func (kilo64) Max() int64 { return 1000 }

type byteRange struct{}

func (byteRange) Min() uint8 { return 0 }
func (byteRange) Max() uint8 { return 200 }

type full64 struct{}

func (full64) Min() int64 { return math.MinInt64 }
func (full64) Max() int64 { return math.MaxInt64 }

type fullU64 struct{}

func (fullU64) Min() uint64 { return 0 }
func (fullU64) Max() uint64 { return math.MaxUint64 }

type finite struct{}

func (finite) Min() float64 { return -math.MaxFloat64 }
func (finite) Max() float64 { return math.MaxFloat64 }

type extended struct{}

func (extended) Min() float64 { return math.Inf(-1) }
func (extended) Max() float64 { return math.Inf(1) }

func TestNumberKinds(t *testing.T) {
	assert.True(t, isFloat[float32]())
	assert.True(t, isFloat[float64]())
	assert.False(t, isFloat[int]())
	assert.False(t, isFloat[uint8]())

	assert.True(t, isSigned[int8]())
	assert.True(t, isSigned[int64]())
	assert.False(t, isSigned[uint]())
	assert.False(t, isSigned[uint64]())
}

func TestMixedTypes_NarrowDestinationSaturates(t *testing.T) {
	v := Must[int8, pct8](50)
	AddAssign(&v, Must[int64, kilo64](1000))
	assert.Equal(t, int8(100), v.Get(), "1050 must not wrap through int8")

	v.Set(50)
	MulAssign(&v, Must[int64, kilo64](300))
	assert.Equal(t, int8(100), v.Get())

	v.Set(50)
	SubAssign(&v, Must[int64, kilo64](1000))
	assert.Equal(t, int8(0), v.Get())
}

func TestMixedTypes_UnsignedDestinationDoesNotWrap(t *testing.T) {
	v := Must[uint8, byteRange](10)
	SubAssign(&v, Must[int, zeroHundred](20))
	assert.Equal(t, uint8(0), v.Get())

	v.Set(10)
	MulAssign(&v, Must[int, negFiveFive](-3))
	assert.Equal(t, uint8(0), v.Get())

	v.Set(10)
	AddAssign(&v, Must[int, zeroHundred](100))
	assert.Equal(t, uint8(110), v.Get())
}

func TestMixedTypes_FractionalDivisor(t *testing.T) {
	v := Must[int, zeroTen](4)
	assert.NotPanics(t, func() { DivAssign(&v, Must[float64, unit](0.5)) })
	assert.Equal(t, 8, v.Get())

	v.Set(3)
	MulAssign(&v, Must[float64, unit](0.5))
	assert.Equal(t, 1, v.Get(), "1.5 truncates after the multiply")

	v.Set(4)
	DivAssign(&v, Must[float64, unit](0))
	assert.Equal(t, 10, v.Get(), "+Inf saturates to max")
}

func TestMixedTypes_IntegerDivisionByZeroPanics(t *testing.T) {
	v := Must[int8, pct8](4)
	assert.Panics(t, func() { DivAssign(&v, Must[int64, kilo64](0)) })
}

func TestMixedTypes_Assign(t *testing.T) {
	v := Must[int8, pct8](0)

	Assign(&v, Must[int64, kilo64](1000))
	assert.Equal(t, int8(100), v.Get())

	Assign(&v, Must[float64, finite](-1e300))
	assert.Equal(t, int8(0), v.Get())

	Assign(&v, Must[float64, finite](42.9))
	assert.Equal(t, int8(42), v.Get())

	f := Must[float64, unit](0)
	Assign(&f, Must[int64, full64](math.MaxInt64))
	assert.Equal(t, 1.0, f.Get())
}

func TestMixedTypes_WideIntegersSaturate(t *testing.T) {
	v := Must[int64, full64](math.MaxInt64)
	AddAssign(&v, Must[int, zeroTen](1))
	assert.Equal(t, int64(math.MaxInt64), v.Get())

	v.Set(math.MinInt64)
	SubAssign(&v, Must[int, zeroTen](1))
	assert.Equal(t, int64(math.MinInt64), v.Get())

	v.Set(math.MaxInt64)
	MulAssign(&v, Must[int, negFiveFive](-5))
	assert.Equal(t, int64(math.MinInt64), v.Get())

	u := Must[uint64, fullU64](math.MaxUint64)
	AddAssign(&u, Must[int64, full64](math.MaxInt64))
	assert.Equal(t, uint64(math.MaxUint64), u.Get())
}

func TestMixedTypes_RawResultsComputedBeforeConversion(t *testing.T) {
	assert.Equal(t, uint8(246), Difference(Must[uint8, byteRange](10), Must[int, zeroHundred](20)))
	assert.Equal(t, 8, Quotient(Must[int, zeroTen](4), Must[float64, unit](0.5)))
	assert.Equal(t, int8(-106), Sum(Must[int8, pct8](50), Must[int64, kilo64](100)))
	assert.Equal(t, 0.5, Quotient(Must[float64, unit](1), Must[int, zeroTen](2)))
}

func TestMixedTypes_ExactComparisons(t *testing.T) {
	big53 := Must[int64, full64](1<<53 + 1)
	f53 := Must[float64, finite](1 << 53)
	assert.True(t, Greater(big53, f53))
	assert.False(t, Equal(big53, f53))
	assert.True(t, Less(f53, big53))

	maxU := Must[uint64, fullU64](math.MaxUint64)
	minusOne := Must[int, negFiveFive](-1)
	assert.True(t, Greater(maxU, minusOne))
	assert.True(t, Less(minusOne, Must[uint64, fullU64](0)))
	assert.True(t, NotEqual(maxU, Must[int64, full64](-1)))

	inf := Must[float64, extended](math.Inf(1))
	assert.True(t, Greater(inf, Must[int64, full64](math.MaxInt64)))
	assert.True(t, GreaterEqual(Must[int8, pct8](100), Must[float64, finite](99.999)))
}

func TestClamp_FullRangeIntegers(t *testing.T) {
	for _, x := range []int64{math.MinInt64, math.MinInt64 + 1, -1, 0, 1, math.MaxInt64 - 1, math.MaxInt64} {
		got := Clamp[int64, full64](x)
		assert.Equal(t, x, got)
		assert.Equal(t, got, Clamp[int64, full64](got))

		v := Must[int64, full64](x)
		v.Set(v.Get())
		assert.Equal(t, x, v.Get())
	}

	for _, x := range []uint64{0, 1, math.MaxUint64} {
		assert.Equal(t, x, Clamp[uint64, fullU64](x))
	}
}

func TestClamp_FullRangeFloats(t *testing.T) {
	inputs := []float64{math.Inf(-1), -math.MaxFloat64, -1, 0, math.SmallestNonzeroFloat64, math.MaxFloat64, math.Inf(1), math.NaN()}

	for _, x := range inputs {
		got := Clamp[float64, extended](x)
		assert.False(t, math.IsNaN(got), "clamp(%v) must be ordered", x)
		assert.Equal(t, got, Clamp[float64, extended](got), "idempotent for %v", x)

		fin := Clamp[float64, finite](x)
		assert.GreaterOrEqual(t, fin, -math.MaxFloat64)
		assert.LessOrEqual(t, fin, math.MaxFloat64)
		assert.Equal(t, fin, Clamp[float64, finite](fin))
	}

	assert.Equal(t, math.Inf(1), Clamp[float64, extended](math.NaN()))
	assert.Equal(t, math.MaxFloat64, Clamp[float64, finite](math.Inf(1)))
	assert.Equal(t, -math.MaxFloat64, Clamp[float64, finite](math.Inf(-1)))

	v := Must[float64, extended](math.Inf(1))
	SubAssign(&v, Must[float64, extended](math.Inf(1)))
	assert.Equal(t, math.Inf(1), v.Get(), "Inf - Inf is NaN and saturates to max")
}

func TestClamp_FullRangeMixedSweep(t *testing.T) {
	operands := []int64{math.MinInt64, -1000, -101, -1, 0, 1, 99, 1000, math.MaxInt64}

	for x := math.MinInt8; x <= math.MaxInt8; x++ {
		for _, y := range operands {
			v := Value[int8, pct8]{}
			v.Set(int8(x))
			start := v.Get()

			AddAssign(&v, Must[int64, full64](y))

			want := new(big.Int).Add(big.NewInt(int64(start)), big.NewInt(y))
			switch {
			case want.Cmp(big.NewInt(0)) < 0:
				want.SetInt64(0)
			case want.Cmp(big.NewInt(100)) > 0:
				want.SetInt64(100)
			}
			assert.Equal(t, int8(want.Int64()), v.Get(), "%d + %d", start, y)
		}
	}
}
