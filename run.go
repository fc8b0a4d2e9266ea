package main

import (
	"context"
	"fmt"

	"github.com/markdingo/nsschain/format"
	"github.com/markdingo/nsschain/log"
	"github.com/markdingo/nsschain/scenario"
)

// run performs whichever of name resolution or scenario running the options asked
// for. The returned bool is false if anything failed to resolve or verify. An error is
// only returned for problems which stop the run from completing at all.
func (t *nssChain) run(ctx context.Context) (bool, error) {
	if len(t.cfg.scenarios) > 0 {
		return t.runScenarios(ctx)
	}

	return t.resolveAll(ctx), nil
}

// resolveAll resolves every name and prints the results to log.Out(). When more than one
// name is resolved, each set of results is preceded by a "name:" line. Any --expect lines
// are verified against the complete output.
func (t *nssChain) resolveAll(ctx context.Context) bool {
	ok := true
	var output []string
	for _, name := range t.names {
		if len(t.names) > 1 {
			output = t.print(output, "name: "+name)
		}
		lines, resolved := t.resolve(ctx, name)
		if !resolved {
			ok = false
		}
		output = t.print(output, lines...)
	}

	if len(t.cfg.expect) > 0 {
		report := format.Verify(output, t.cfg.expect)
		for _, d := range report.Diagnostics() {
			fmt.Fprintln(log.Out(), d)
		}
		if !report.Clean() {
			ok = false
		}
	}

	return ok
}

// resolve returns the formatted lines for one name and whether resolution succeeded. A
// failure is rendered as a single "error:" line.
func (t *nssChain) resolve(ctx context.Context, name string) ([]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, t.cfg.timeout)
	defer cancel()

	q := t.query
	q.Name = name
	log.Minor("Resolve: ", q.String(), " via ", t.table.String())
	r, trace, err := t.evaluator.ResolveTrace(ctx, q)
	var lines []string
	if t.cfg.trace {
		lines = append(lines, "trace: "+trace.String())
	}
	if err != nil {
		return append(lines, format.Failure(err)), false
	}

	return append(lines, format.Lines(r, q.Canonical)...), true
}

// print writes lines to log.Out() and appends them to the accumulated output.
func (t *nssChain) print(output []string, lines ...string) []string {
	for _, l := range lines {
		fmt.Fprintln(log.Out(), l)
	}

	return append(output, lines...)
}

// runScenarios loads and runs the scenario file, printing one PASS or FAIL line per
// scenario followed by the diagnostics of any which failed.
func (t *nssChain) runScenarios(ctx context.Context) (bool, error) {
	file, err := scenario.Load(t.cfg.scenarios)
	if err != nil {
		return false, err
	}

	outcomes, err := file.Run(ctx, t.cfg.parallel)
	if err != nil {
		return false, err
	}

	passed := 0
	for _, o := range outcomes {
		if o.Passed {
			passed++
			fmt.Fprintln(log.Out(), "PASS", o.Name)
			continue
		}
		fmt.Fprintln(log.Out(), "FAIL", o.Name)
		for _, d := range o.Diagnostics() {
			fmt.Fprintln(log.Out(), "   ", d)
		}
		if t.cfg.trace {
			fmt.Fprintln(log.Out(), "    trace:", o.Trace.String())
		}
	}
	log.Majorf("Scenarios: %d of %d passed", passed, len(outcomes))

	return passed == len(outcomes), nil
}
