package runner

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// ErrFailed is wrapped by the error returned when at least one case fails.
var ErrFailed = errors.New("verification failed")

// Runner executes conformance cases and records their outcome.
type Runner struct {
	file   string
	cases  []Case
	store  *StateStore
	out    io.Writer
	logger *log.Logger
}

// NewRunner creates a runner for the cases loaded from file. Progress is
// printed to out; logger may be nil.
func NewRunner(file string, cases []Case, store *StateStore, out io.Writer, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		file:   file,
		cases:  cases,
		store:  store,
		out:    out,
		logger: logger,
	}
}

// RunAll executes all cases in order.
// It continues past failing cases and returns an error if any failed.
func (r *Runner) RunAll(ctx context.Context) error {
	return r.executeSequence(ctx, r.cases)
}

// Resume re-runs only the cases that failed in the last run.
func (r *Runner) Resume(ctx context.Context) error {
	failed, err := r.store.LoadFailedCases()
	if err != nil {
		return fmt.Errorf("loading failed cases: %w", err)
	}

	if len(failed) == 0 {
		r.logger.Info("no failed cases to resume")
		return nil
	}

	toRun := []Case{}
	for _, name := range failed {
		c, ok := r.findCase(name)
		if !ok {
			r.logger.Warn("failed case no longer in case file", "case", name)
			continue
		}
		toRun = append(toRun, c)
	}

	return r.executeSequence(ctx, toRun)
}

// RunList executes the named cases.
func (r *Runner) RunList(ctx context.Context, names []string) error {
	var toRun []Case
	for _, name := range names {
		c, ok := r.findCase(name)
		if !ok {
			return fmt.Errorf("case not found: %s", name)
		}
		toRun = append(toRun, c)
	}
	return r.executeSequence(ctx, toRun)
}

func (r *Runner) findCase(name string) (Case, bool) {
	for _, c := range r.cases {
		if c.Name == name {
			return c, true
		}
	}
	return Case{}, false
}

// executeSequence runs cases, updating state.
// It returns an error if any case failed.
func (r *Runner) executeSequence(ctx context.Context, cases []Case) error {
	failed := []string{}
	names := []string{}

	for _, c := range cases {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("verification interrupted before %s: %w", c.Name, err)
		}
		names = append(names, c.Name)

		res := c.Check()
		r.logger.Debug("case checked", "case", c.Name, "schema", c.Schema, "status", res.Status)

		if err := r.store.WriteCaseResult(res); err != nil {
			return fmt.Errorf("writing result for %s: %w", c.Name, err)
		}

		if res.Status != StatusPass {
			failed = append(failed, c.Name)
			_, _ = fmt.Fprintf(r.out, "FAIL: %s\n", c.Name)
			if res.Note != "" {
				_, _ = fmt.Fprintf(r.out, "  %s\n", res.Note)
			}
			continue
		}
		_, _ = fmt.Fprintf(r.out, "PASS: %s\n", c.Name)
	}

	lastRun := LastRun{
		Status: string(StatusPass),
		File:   r.file,
		Cases:  names,
		Failed: failed,
	}
	if len(failed) > 0 {
		lastRun.Status = string(StatusFail)
	}

	if err := r.store.WriteLastRun(lastRun); err != nil {
		return fmt.Errorf("writing last run: %w", err)
	}

	if len(failed) > 0 {
		return fmt.Errorf("%w: %d of %d case(s): %v", ErrFailed, len(failed), len(names), failed)
	}
	return nil
}
