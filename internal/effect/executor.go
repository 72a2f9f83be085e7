package effect

import (
	"context"
	"fmt"

	"clampvar/internal/attribute"
)

// Summary counts results by status.
type Summary struct {
	Applied     int
	Skipped     int
	Failed      int
	Pending     int
	HasFailures bool
}

// Executor applies effects to a sheet in order, stopping at the first
// failure.
type Executor struct {
	sheet   *attribute.Sheet
	effects []Effect
	results []Result
	current int
	aborted bool
}

// NewExecutor returns an Executor with every effect pending.
func NewExecutor(sheet *attribute.Sheet, effects []Effect) *Executor {
	results := make([]Result, len(effects))
	for i := range results {
		results[i] = Result{Status: StatusPending}
	}
	return &Executor{
		sheet:   sheet,
		effects: effects,
		results: results,
	}
}

// Total returns the number of effects.
func (e *Executor) Total() int {
	return len(e.effects)
}

// Done reports whether every effect has run.
func (e *Executor) Done() bool {
	return e.current >= len(e.effects)
}

// Stopped reports whether no further effect will run, either because all
// have run or because one failed.
func (e *Executor) Stopped() bool {
	return e.aborted || e.Done()
}

// Effects returns the effects in run order.
func (e *Executor) Effects() []Effect {
	return e.effects
}

// Results returns one result per effect, in run order. Effects that have not
// run are StatusPending.
func (e *Executor) Results() []Result {
	return e.results
}

// RunNext applies the next effect and records its result. It returns false
// once the executor has stopped.
func (e *Executor) RunNext(ctx context.Context) (Result, bool) {
	if e.Stopped() {
		return Result{}, false
	}

	result := e.effects[e.current].Apply(ctx, e.sheet, e.current+1)
	e.results[e.current] = result
	e.current++

	if result.Status == StatusFailed {
		e.aborted = true
	}

	return result, true
}

// RunAll applies every remaining effect. It returns the first failure,
// leaving the sheet as it was after the last applied effect.
func (e *Executor) RunAll(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		result, ok := e.RunNext(ctx)
		if !ok {
			return nil
		}
		if result.Status == StatusFailed {
			return fmt.Errorf("effect %d (%s): %w", e.current, e.effects[e.current-1].Name(), result.Error)
		}
	}
}

// Summary tallies the current results.
func (e *Executor) Summary() Summary {
	var s Summary
	for _, r := range e.results {
		switch r.Status {
		case StatusApplied:
			s.Applied++
		case StatusSkipped:
			s.Skipped++
		case StatusFailed:
			s.Failed++
		case StatusPending:
			s.Pending++
		}
	}
	s.HasFailures = s.Failed > 0
	return s
}
