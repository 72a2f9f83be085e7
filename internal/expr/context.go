package expr

import "clampvar/internal/attribute"

// Context holds all values available during expression evaluation.
// This is passed to expr-lang as the evaluation environment.
type Context struct {
	Health  float64 `expr:"health"`
	Stamina float64 `expr:"stamina"`
	Armor   float64 `expr:"armor"`
	Level   float64 `expr:"level"`

	// Index of the effect being evaluated, starting at 1
	Step int `expr:"step"`
}

// NewContext captures the current attribute values of a sheet.
func NewContext(s *attribute.Sheet) *Context {
	snap := s.Snapshot()
	return &Context{
		Health:  snap["health"],
		Stamina: snap["stamina"],
		Armor:   snap["armor"],
		Level:   snap["level"],
	}
}

// WithStep returns a copy of the context with the step index set.
func (c *Context) WithStep(step int) *Context {
	cp := *c
	cp.Step = step
	return &cp
}
