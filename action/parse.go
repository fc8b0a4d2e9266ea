package action

import (
	"strings"
	"unicode"

	"github.com/markdingo/nsschain/source"
)

type parser struct {
	spec string
	pos  int
	tbl  *Table
}

func (t *parser) fail(offset int, reason string) error {
	return &ConfigError{Spec: t.spec, Offset: offset, Reason: reason}
}

func (t *parser) skipSpace() {
	for t.pos < len(t.spec) && unicode.IsSpace(rune(t.spec[t.pos])) {
		t.pos++
	}
}

// Parse converts a chain specification into a Table. See the package documentation for
// the syntax.
func Parse(spec string) (*Table, error) {
	p := &parser{spec: spec, tbl: &Table{spec: spec}}
	for {
		p.skipSpace()
		if p.pos >= len(spec) {
			break
		}
		var err error
		switch spec[p.pos] {
		case '[':
			err = p.bracket()
		case ']':
			err = p.fail(p.pos, "unexpected ']'")
		default:
			p.name()
		}
		if err != nil {
			return nil, err
		}
	}

	if len(p.tbl.steps) == 0 {
		return nil, p.fail(0, "no sources")
	}

	return p.tbl, nil
}

// MustParse is Parse for specifications known to be valid, such as compiled-in defaults.
func MustParse(spec string) *Table {
	t, err := Parse(spec)
	if err != nil {
		panic(err)
	}

	return t
}

func (t *parser) name() {
	start := t.pos
	for t.pos < len(t.spec) {
		c := t.spec[t.pos]
		if c == '[' || c == ']' || unicode.IsSpace(rune(c)) {
			break
		}
		t.pos++
	}
	t.tbl.steps = append(t.tbl.steps, step{source: t.spec[start:t.pos]})
}

// bracket parses "[STATUS=action ...]" and applies it to the most recent step.
func (t *parser) bracket() error {
	open := t.pos
	if len(t.tbl.steps) == 0 {
		return t.fail(open, "'[' before any source")
	}
	end := strings.IndexByte(t.spec[open:], ']')
	if end == -1 {
		return t.fail(open, "unterminated '['")
	}
	end += open
	body := t.spec[open+1 : end]
	if strings.IndexByte(body, '[') >= 0 {
		return t.fail(open+1+strings.IndexByte(body, '['), "nested '['")
	}
	t.pos = end + 1

	st := &t.tbl.steps[len(t.tbl.steps)-1]
	fields := strings.Fields(body)
	if len(fields) == 0 {
		return t.fail(open, "empty '[]'")
	}
	walked := 0 // Bytes of body consumed by earlier fields
	for _, f := range fields {
		ix := walked + strings.Index(body[walked:], f)
		walked = ix + len(f)
		offset := open + 1 + ix
		sToken, aToken, ok := strings.Cut(f, "=")
		if !ok {
			return t.fail(offset, "missing '=' in '"+f+"'")
		}
		negate := strings.HasPrefix(sToken, "!")
		sToken = strings.TrimPrefix(sToken, "!")
		status, err := source.ParseStatus(sToken)
		if err != nil {
			return t.fail(offset, err.Error())
		}
		act, err := ParseAction(aToken)
		if err != nil {
			return t.fail(offset, err.Error())
		}
		if st.overrides == nil {
			st.overrides = make(map[source.Status]Action)
		}
		for _, s := range statuses {
			if (s == status) == negate {
				continue
			}
			if _, dupe := st.overrides[s]; dupe {
				return t.fail(offset, "duplicate status "+s.String()+" for "+st.source)
			}
			st.overrides[s] = act
		}
	}

	return nil
}
