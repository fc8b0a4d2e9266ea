package action

import (
	"strings"

	"github.com/markdingo/nsschain/source"
)

var statuses = []source.Status{source.Success, source.NotFound, source.Unavail}

type step struct {
	source    string
	overrides map[source.Status]Action
}

// Table is the parsed, immutable form of a chain specification.
type Table struct {
	spec  string
	steps []step
}

// Len returns the number of steps in the chain.
func (t *Table) Len() int {
	return len(t.steps)
}

// Source returns the source name for the step.
func (t *Table) Source(ix int) string {
	return t.steps[ix].source
}

// Sources returns the source names in chain order, duplicates included.
func (t *Table) Sources() []string {
	ar := make([]string, 0, len(t.steps))
	for _, s := range t.steps {
		ar = append(ar, s.source)
	}

	return ar
}

// Action returns the action for status at step ix, either the configured override or the
// Default.
func (t *Table) Action(ix int, s source.Status) Action {
	if a, ok := t.steps[ix].overrides[s]; ok {
		return a
	}

	return Default(s)
}

// Entries returns every explicit override in chain order and, within a step, status
// order.
func (t *Table) Entries() (ar []Entry) {
	for ix, st := range t.steps {
		for _, s := range statuses {
			if a, ok := st.overrides[s]; ok {
				ar = append(ar, Entry{Step: ix, Source: st.source, Status: s, Action: a})
			}
		}
	}

	return
}

// String returns the canonical form of the specification, with statuses upper case,
// actions lower case and negations expanded.
func (t *Table) String() string {
	var sb strings.Builder
	for ix, st := range t.steps {
		if ix > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(st.source)
		if len(st.overrides) == 0 {
			continue
		}
		sb.WriteString(" [")
		first := true
		for _, s := range statuses {
			if a, ok := st.overrides[s]; ok {
				if !first {
					sb.WriteByte(' ')
				}
				first = false
				sb.WriteString(s.String() + "=" + a.String())
			}
		}
		sb.WriteByte(']')
	}

	return sb.String()
}

// Spec returns the specification exactly as given to Parse.
func (t *Table) Spec() string {
	return t.spec
}
