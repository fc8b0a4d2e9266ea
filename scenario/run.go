package scenario

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/markdingo/nsschain/chain"
	"github.com/markdingo/nsschain/format"
	"github.com/markdingo/nsschain/log"
)

// Outcome is the result of running one scenario.
type Outcome struct {
	Name   string
	Lines  []string // Formatted result or a single failure line
	Trace  chain.Trace
	Err    error // Resolution error, if any
	Report format.Report
	Passed bool
}

// Diagnostics explains why a scenario did not pass. It is empty for a passing scenario.
func (t Outcome) Diagnostics() (ar []string) {
	if t.Passed {
		return nil
	}
	if t.Err != nil {
		ar = append(ar, "resolution failed: "+t.Err.Error())
	}

	return append(ar, t.Report.Diagnostics()...)
}

// Run runs every scenario, at most parallel at a time (parallel < 1 means one at a time).
// Outcomes are returned in file order regardless of completion order. The returned error
// is only for construction failures or context cancellation; failed scenarios are
// reported via Outcome.Passed.
func (t *File) Run(ctx context.Context, parallel int) ([]Outcome, error) {
	if parallel < 1 {
		parallel = 1
	}
	outcomes := make([]Outcome, len(t.Scenarios))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)
	for ix := range t.Scenarios {
		ix := ix
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := t.runOne(gctx, t.Scenarios[ix])
			if err != nil {
				return fmt.Errorf("scenario '%s': %w", t.Scenarios[ix].Name, err)
			}
			outcomes[ix] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return outcomes, nil
}

func (t *File) runOne(ctx context.Context, sc Scenario) (Outcome, error) {
	out := Outcome{Name: sc.Name}
	b, err := t.build(sc)
	if err != nil {
		return out, err
	}
	q, err := sc.Query.toQuery()
	if err != nil {
		return out, err
	}
	e, err := chain.New(b.table, b.sources...)
	if err != nil {
		return out, err
	}

	r, trace, err := e.ResolveTrace(ctx, q)
	out.Trace = trace
	out.Err = err
	if err != nil {
		out.Lines = []string{format.Failure(err)}
	} else {
		out.Lines = format.Lines(r, q.Canonical)
	}
	out.Report = format.Verify(out.Lines, sc.Expect)
	out.Passed = (err != nil) == sc.Fail && out.Report.Clean()

	if log.IfMinor() {
		log.Minorf("scenario %s: %s: %s", sc.Name, b.table, trace)
	}

	return out, nil
}
