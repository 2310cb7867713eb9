package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/roach88/staffroll/internal/roster"
	"github.com/roach88/staffroll/internal/store"
	"github.com/roach88/staffroll/internal/testutil"
)

// Harness runs one scenario against a private store.
type Harness struct {
	store  *store.Store
	dir    *roster.Directory
	logger *slog.Logger
}

// Run executes a test scenario and returns the result.
//
// Each scenario runs in a fresh in-memory database, with the clock frozen on
// the first day of the scenario's today month.
//
// A returned error means the scenario could not be executed (bad today, store
// failure, rejected setup record). Expectation mismatches are reported through
// Result.Pass and Result.Errors instead.
func Run(scenario *Scenario) (*Result, error) {
	return RunContext(context.Background(), scenario, nil)
}

// RunContext is Run with a caller context and logger. A nil logger discards.
func RunContext(ctx context.Context, scenario *Scenario, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	today, err := roster.ParseJoiningDate(scenario.Today)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: today: %w", scenario.Name, err)
	}

	var opts []store.Option
	if scenario.Driver != "" {
		opts = append(opts, store.WithDriver(scenario.Driver))
	}
	opts = append(opts, store.WithLogger(logger))

	st, err := store.Open(":memory:", opts...)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: open store: %w", scenario.Name, err)
	}
	defer st.Close()

	clock := testutil.NewFixedClock(today.FirstOfMonth())
	h := &Harness{
		store:  st,
		dir:    roster.NewDirectory(st, clock).WithLogger(logger),
		logger: logger,
	}
	return h.run(ctx, scenario)
}

func (h *Harness) run(ctx context.Context, scenario *Scenario) (*Result, error) {
	for i, e := range scenario.Setup {
		if err := h.dir.Add(ctx, e); err != nil {
			return nil, fmt.Errorf("scenario %s: setup[%d]: %w", scenario.Name, i, err)
		}
	}

	result := NewResult()
	for i, step := range scenario.Steps {
		out := h.execute(ctx, i, step)
		result.Trace = append(result.Trace, out)
		if step.Expect != nil {
			checkExpect(result, i, step, out)
		}
	}

	final, err := h.dir.Ranked(ctx, roster.Filter{})
	if err != nil {
		return nil, fmt.Errorf("scenario %s: final listing: %w", scenario.Name, err)
	}
	result.Final = final

	h.logger.Debug("scenario finished", "name", scenario.Name, "pass", result.Pass)
	return result, nil
}

// execute runs one step and captures its outcome. Step errors are data here,
// not failures of the run.
func (h *Harness) execute(ctx context.Context, index int, st Step) Outcome {
	out := Outcome{Step: index, Op: st.Op}

	switch st.Op {
	case OpAdd:
		out.Error = roster.Kind(h.dir.Add(ctx, *st.Employee))

	case OpFind:
		emp, err := h.dir.Find(ctx, st.ID)
		out.Error = roster.Kind(err)
		out.Employee = emp

	case OpUpdate:
		emp, err := h.dir.Update(ctx, roster.UpdateRequest{
			ID:          st.Employee.ID,
			Name:        st.Employee.Name,
			Department:  st.Employee.Department,
			Salary:      st.Employee.Salary,
			JoiningDate: st.Employee.JoiningDate,
		})
		out.Error = roster.Kind(err)
		out.Employee = emp

	case OpDelete:
		removed, err := h.dir.Remove(ctx, st.ID, st.Name)
		out.Error = roster.Kind(err)
		if err == nil {
			out.Removed = &removed
		}

	case OpList:
		ranked, err := h.dir.Ranked(ctx, roster.Filter{
			Department:   st.Department,
			NameContains: st.NameContains,
		})
		out.Error = roster.Kind(err)
		if err == nil {
			out.Order = make([]string, 0, len(ranked))
			for _, r := range ranked {
				out.Order = append(out.Order, r.ID)
			}
		}
	}

	return out
}

// checkExpect compares an outcome against the step's expect clause.
func checkExpect(result *Result, index int, st Step, out Outcome) {
	exp := st.Expect

	if out.Error != exp.Error {
		result.AddError(fmt.Sprintf("step %d (%s): expected error %q, got %q",
			index, st.Op, exp.Error, out.Error))
		return
	}

	if exp.Removed != nil {
		got := out.Removed != nil && *out.Removed
		if got != *exp.Removed {
			result.AddError(fmt.Sprintf("step %d (delete): expected removed=%t, got %t",
				index, *exp.Removed, got))
		}
	}

	if exp.Order != nil && !slices.Equal(exp.Order, out.Order) {
		result.AddError(fmt.Sprintf("step %d (list): expected order %v, got %v",
			index, exp.Order, out.Order))
	}

	if exp.Employee != nil {
		if out.Employee == nil {
			result.AddError(fmt.Sprintf("step %d (%s): expected employee %q, got none",
				index, st.Op, exp.Employee.ID))
		} else if *out.Employee != *exp.Employee {
			result.AddError(fmt.Sprintf("step %d (%s): expected %+v, got %+v",
				index, st.Op, *exp.Employee, *out.Employee))
		}
	}
}
