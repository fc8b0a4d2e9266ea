package chain

import (
	"context"
	"errors"
	"fmt"

	"github.com/markdingo/nsschain/action"
	"github.com/markdingo/nsschain/addrinfo"
	"github.com/markdingo/nsschain/log"
	"github.com/markdingo/nsschain/source"
)

var (
	// ErrChainExhausted is returned when resolution fails, analogous to "no such
	// host".
	ErrChainExhausted = errors.New("no such host")

	// ErrUnboundSource is returned by New when the table names a source which was
	// not supplied.
	ErrUnboundSource = errors.New("source not bound")
)

// Evaluator binds an immutable action.Table to the sources it names.
type Evaluator struct {
	table   *action.Table
	sources []source.Source // Per step
}

// New creates an Evaluator. Every source named in the table must be present in sources,
// matched by Name(). Supplying two sources with the same name or a nil table is an error
// but unused sources are ignored.
func New(tbl *action.Table, sources ...source.Source) (*Evaluator, error) {
	if tbl == nil {
		return nil, errors.New("chain: nil action table")
	}
	byName := make(map[string]source.Source, len(sources))
	for _, s := range sources {
		if _, dupe := byName[s.Name()]; dupe {
			return nil, fmt.Errorf("chain: duplicate source '%s'", s.Name())
		}
		byName[s.Name()] = source.Guard(s)
	}

	t := &Evaluator{table: tbl}
	for ix := 0; ix < tbl.Len(); ix++ {
		s, ok := byName[tbl.Source(ix)]
		if !ok {
			return nil, fmt.Errorf("chain: '%s': %w", tbl.Source(ix), ErrUnboundSource)
		}
		t.sources = append(t.sources, s)
	}

	return t, nil
}

// Table returns the action table the Evaluator was constructed with.
func (t *Evaluator) Table() *action.Table {
	return t.table
}

// Resolve runs the chain for q. The returned Result is never nil when err is nil and is
// never empty.
func (t *Evaluator) Resolve(ctx context.Context, q addrinfo.Query) (*addrinfo.Result, error) {
	r, _, err := t.ResolveTrace(ctx, q)

	return r, err
}

// ResolveTrace is Resolve which also returns the steps taken.
func (t *Evaluator) ResolveTrace(ctx context.Context, q addrinfo.Query) (*addrinfo.Result, Trace, error) {
	acc := addrinfo.NewResult()
	var trace Trace
	var lastSuccess *source.Outcome // Most recent successful outcome, for trailing continue
	lastAction := action.Continue

	for ix, src := range t.sources {
		out := src.Lookup(ctx, q)
		act := t.table.Action(ix, out.Status)
		lastAction = act
		step := Step{Index: ix, Source: src.Name(), Status: out.Status,
			Records: len(out.Records), Action: act, Err: out.Err}
		if out.Status == source.Success {
			lastSuccess = &out
		}

		switch act {
		case action.Return:
			if out.Status != source.Success {
				step.log()
				trace = append(trace, step)
				return nil, trace, t.exhausted(q, trace)
			}
			// The returning source replaces anything merged so far
			r := addrinfo.NewResult()
			step.Added = r.AddAll(out.Records)
			r.SetCanonical(out.Canonical)
			step.log()
			trace = append(trace, step)
			return r, trace, nil

		case action.Merge:
			if out.Status == source.Success {
				step.Added = acc.AddAll(out.Records)
				acc.SetCanonical(out.Canonical)
			}

		case action.Continue:
		}
		step.log()
		trace = append(trace, step)
	}

	if acc.Len() > 0 {
		return acc, trace, nil
	}
	if lastAction == action.Continue && lastSuccess != nil {
		acc.AddAll(lastSuccess.Records)
		acc.SetCanonical(lastSuccess.Canonical)
		if log.IfDebug() {
			log.Debugf("chain: %s: trailing continue keeps %d records", q.Name, acc.Len())
		}
		return acc, trace, nil
	}

	return nil, trace, t.exhausted(q, trace)
}

func (t *Evaluator) exhausted(q addrinfo.Query, trace Trace) error {
	if log.IfMinor() {
		log.Minorf("chain: %s: %s after %s", q.Name, ErrChainExhausted, trace)
	}

	return fmt.Errorf("%s: %w", q.Name, ErrChainExhausted)
}
