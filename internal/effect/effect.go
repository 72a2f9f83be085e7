// Package effect turns configured effects into steps applied to a sheet.
package effect

import (
	"context"
	"fmt"

	"clampvar/internal/attribute"
	"clampvar/internal/config"
	"clampvar/internal/expr"
	"clampvar/internal/logstream"
)

// Status represents the outcome of applying an effect.
type Status int

const (
	StatusPending Status = iota
	StatusSkipped        // when condition was false
	StatusApplied
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusSkipped:
		return "skipped"
	case StatusApplied:
		return "applied"
	case StatusFailed:
		return "failed"
	}
	return "pending"
}

// Result holds the outcome of applying one effect.
type Result struct {
	Error  error
	Before map[string]float64
	After  map[string]float64
	Amount float64
	Status Status
}

// Effect is a compiled, validated effect.
type Effect struct {
	amount *expr.Value
	when   *expr.Value
	label  string
	action string
	target string
	from   string
	op     attribute.Op
}

// Build compiles configured effects. Configs are expected to have passed
// config validation; Build only reports expression errors.
func Build(cfgs []config.Effect) ([]Effect, error) {
	effects := make([]Effect, 0, len(cfgs))
	for i, c := range cfgs {
		e := Effect{
			label:  c.Label(),
			action: c.Action,
			target: c.Target,
			from:   c.From,
			op:     attribute.Op(c.Op),
		}

		if c.Amount != nil {
			v, err := expr.NewValue(c.Amount)
			if err != nil {
				return nil, fmt.Errorf("effect %d (%s): amount: %w", i+1, e.label, err)
			}
			e.amount = v
		}

		if c.When != nil {
			v, err := expr.NewValue(c.When)
			if err != nil {
				return nil, fmt.Errorf("effect %d (%s): when: %w", i+1, e.label, err)
			}
			e.when = v
		}

		effects = append(effects, e)
	}
	return effects, nil
}

// Name returns a human-readable description for display.
func (e Effect) Name() string {
	return e.label
}

// Apply evaluates and applies the effect to s. step is the 1-based index
// exposed to expressions.
func (e Effect) Apply(ctx context.Context, s *attribute.Sheet, step int) Result {
	res := Result{Before: s.Snapshot()}
	ectx := expr.NewContext(s).WithStep(step)

	ok, err := expr.ResolveCondition(e.when, ectx)
	if err != nil {
		return e.fail(res, s, fmt.Errorf("when: %w", err))
	}
	if !ok {
		res.Status = StatusSkipped
		res.After = res.Before
		logstream.Logf(ctx, "%2d. %s: skipped", step, e.label)
		return res
	}

	amount, err := e.resolveAmount(s, ectx)
	if err != nil {
		return e.fail(res, s, err)
	}
	res.Amount = amount

	switch e.action {
	case config.ActionRegenerate:
		s.Regenerate()
	case config.ActionDamage:
		res.Amount = s.TakeDamage(amount)
	default:
		if err := s.Apply(e.target, e.op, amount); err != nil {
			return e.fail(res, s, err)
		}
	}

	res.Status = StatusApplied
	res.After = s.Snapshot()
	logstream.Logf(ctx, "%2d. %s: %s", step, e.label, describeChange(res))
	return res
}

func (e Effect) resolveAmount(s *attribute.Sheet, ectx *expr.Context) (float64, error) {
	switch {
	case e.from != "":
		return s.Get(e.from)
	case e.amount != nil:
		v, err := e.amount.ResolveNumber(ectx)
		if err != nil {
			return 0, fmt.Errorf("amount: %w", err)
		}
		return v, nil
	}
	return 0, nil
}

func (e Effect) fail(res Result, s *attribute.Sheet, err error) Result {
	res.Status = StatusFailed
	res.Error = err
	res.After = s.Snapshot()
	return res
}

func describeChange(res Result) string {
	var out string
	for _, name := range attribute.Names() {
		before, after := res.Before[name], res.After[name]
		if before == after {
			continue
		}
		if out != "" {
			out += ", "
		}
		out += fmt.Sprintf("%s %g -> %g", name, before, after)
	}
	if out == "" {
		return "no change"
	}
	return out
}
