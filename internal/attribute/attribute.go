// Package attribute defines a character attribute sheet built from clamped
// values, and name-based access used by the effect engine.
package attribute

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"clampvar/clamped"
)

var (
	ErrUnknownAttribute = errors.New("unknown attribute")
	ErrUnknownOp        = errors.New("unknown operation")
	ErrDivisionByZero   = errors.New("integer division by zero")
)

type HealthBounds struct{}

func (HealthBounds) Min() float64 { return 0 }
func (HealthBounds) Max() float64 { return 100 }

type StaminaBounds struct{}

func (StaminaBounds) Min() float32 { return 0 }
func (StaminaBounds) Max() float32 { return 50 }

type ArmorBounds struct{}

func (ArmorBounds) Min() int { return 0 }
func (ArmorBounds) Max() int { return 500 }

type LevelBounds struct{}

func (LevelBounds) Min() int { return 1 }
func (LevelBounds) Max() int { return 99 }

type (
	Health  = clamped.Value[float64, HealthBounds]
	Stamina = clamped.Value[float32, StaminaBounds]
	Armor   = clamped.Value[int, ArmorBounds]
	Level   = clamped.Value[int, LevelBounds]
)

// Op is a compound assignment applied to an attribute.
type Op string

const (
	OpSet Op = "set"
	OpAdd Op = "add"
	OpSub Op = "sub"
	OpMul Op = "mul"
	OpDiv Op = "div"
)

// ParseOp validates an operation name.
func ParseOp(s string) (Op, error) {
	op := Op(s)
	switch op {
	case OpSet, OpAdd, OpSub, OpMul, OpDiv:
		return op, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOp, s)
}

// armorFactor is the armor rating that halves incoming damage.
const armorFactor = 100

// Sheet is a set of attributes. The zero Sheet is valid: every attribute
// reads as its clamped zero, so Level starts at 1.
type Sheet struct {
	Health  Health  `yaml:"health"`
	Stamina Stamina `yaml:"stamina"`
	Armor   Armor   `yaml:"armor"`
	Level   Level   `yaml:"level"`
}

// Regenerate restores health by the current stamina.
func (s *Sheet) Regenerate() {
	clamped.AddAssign(&s.Health, s.Stamina)
}

// Mitigate returns the damage left after armor. The result is not bounded by
// Health; overkill is reported as is.
func (s *Sheet) Mitigate(damage float64) float64 {
	armor := float64(s.Armor.Get())
	return damage * armorFactor / (armorFactor + armor)
}

// TakeDamage subtracts mitigated damage from health and returns the amount
// dealt.
func (s *Sheet) TakeDamage(damage float64) float64 {
	dealt := s.Mitigate(damage)
	s.Health.Sub(dealt)
	return dealt
}

// Alive reports whether health is above its minimum.
func (s *Sheet) Alive() bool {
	return s.Health.Gt(HealthBounds{}.Min())
}

// Names returns the attribute names in display order.
func Names() []string {
	return []string{"health", "stamina", "armor", "level"}
}

// Bounds returns the inclusive range of the named attribute.
func Bounds(name string) (lo, hi float64, err error) {
	switch name {
	case "health":
		return rangeOf(clamped.RangeOf[float64, HealthBounds]())
	case "stamina":
		return rangeOf(clamped.RangeOf[float32, StaminaBounds]())
	case "armor":
		return rangeOf(clamped.RangeOf[int, ArmorBounds]())
	case "level":
		return rangeOf(clamped.RangeOf[int, LevelBounds]())
	}
	return 0, 0, fmt.Errorf("%w: %q", ErrUnknownAttribute, name)
}

func rangeOf[T clamped.Number](r clamped.Range[T]) (float64, float64, error) {
	return float64(r.Min()), float64(r.Max()), nil
}

// Get returns the named attribute as a float64.
func (s *Sheet) Get(name string) (float64, error) {
	switch name {
	case "health":
		return s.Health.Get(), nil
	case "stamina":
		return float64(s.Stamina.Get()), nil
	case "armor":
		return float64(s.Armor.Get()), nil
	case "level":
		return float64(s.Level.Get()), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAttribute, name)
}

// Apply runs op with amount against the named attribute. The operation runs
// in float64 and only the clamped result is converted to the attribute's
// type, truncating toward zero for integer attributes.
func (s *Sheet) Apply(name string, op Op, amount float64) error {
	switch name {
	case "health":
		return apply(&s.Health, op, amount)
	case "stamina":
		return apply(&s.Stamina, op, amount)
	case "armor":
		return applyInt(&s.Armor, op, amount)
	case "level":
		return applyInt(&s.Level, op, amount)
	}
	return fmt.Errorf("%w: %q", ErrUnknownAttribute, name)
}

// Snapshot returns every attribute keyed by name.
func (s *Sheet) Snapshot() map[string]float64 {
	out := make(map[string]float64, len(Names()))
	for _, name := range Names() {
		out[name], _ = s.Get(name)
	}
	return out
}

// Restore sets attributes from a snapshot. Unknown keys are rejected; values
// are clamped like any other write.
func (s *Sheet) Restore(values map[string]float64) error {
	for name, v := range values {
		if !slices.Contains(Names(), name) {
			return fmt.Errorf("%w: %q", ErrUnknownAttribute, name)
		}
		if err := s.Apply(name, OpSet, v); err != nil {
			return err
		}
	}
	return nil
}

// amountBounds admits every finite float64, so an amount passes through
// unchanged and infinities saturate.
type amountBounds struct{}

func (amountBounds) Min() float64 { return -math.MaxFloat64 }
func (amountBounds) Max() float64 { return math.MaxFloat64 }

func applyInt[B clamped.Bounds[int]](v *clamped.Value[int, B], op Op, amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Errorf("amount %v is not representable as an integer", amount)
	}
	if op == OpDiv && amount == 0 {
		return ErrDivisionByZero
	}
	return apply(v, op, amount)
}

func apply[T clamped.Number, B clamped.Bounds[T]](v *clamped.Value[T, B], op Op, amount float64) error {
	x := clamped.Must[float64, amountBounds](amount)
	switch op {
	case OpSet:
		clamped.Assign(v, x)
	case OpAdd:
		clamped.AddAssign(v, x)
	case OpSub:
		clamped.SubAssign(v, x)
	case OpMul:
		clamped.MulAssign(v, x)
	case OpDiv:
		clamped.DivAssign(v, x)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, op)
	}
	return nil
}
