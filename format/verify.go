package format

import (
	"errors"
	"strings"
)

// LineCount is how many times an expected line was seen.
type LineCount struct {
	Line string
	Seen int
}

// Report is the outcome of a Verify. It is clean iff every expected line was seen exactly
// once.
type Report struct {
	Counts []LineCount // In expected order
}

// Verify counts each expected line in lines. Duplicate expected lines are collapsed and
// comparison is exact string equality; there is no ordering requirement.
func Verify(lines []string, expected []string) Report {
	var r Report
	index := make(map[string]int, len(expected))
	for _, e := range expected {
		if _, ok := index[e]; ok {
			continue
		}
		index[e] = len(r.Counts)
		r.Counts = append(r.Counts, LineCount{Line: e})
	}
	for _, l := range lines {
		if ix, ok := index[l]; ok {
			r.Counts[ix].Seen++
		}
	}

	return r
}

// VerifyText is Verify for a newline separated buffer.
func VerifyText(buf string, expected []string) Report {
	buf = strings.TrimSuffix(buf, "\n")
	var lines []string
	if len(buf) > 0 {
		lines = strings.Split(buf, "\n")
	}

	return Verify(lines, expected)
}

func (t Report) Clean() bool {
	for _, c := range t.Counts {
		if c.Seen != 1 {
			return false
		}
	}

	return true
}

// Seen returns the count for an expected line or -1 if it was not expected.
func (t Report) Seen(line string) int {
	for _, c := range t.Counts {
		if c.Line == line {
			return c.Seen
		}
	}

	return -1
}

func (t Report) Missing() (ar []string) {
	for _, c := range t.Counts {
		if c.Seen == 0 {
			ar = append(ar, c.Line)
		}
	}

	return
}

func (t Report) Duplicated() (ar []string) {
	for _, c := range t.Counts {
		if c.Seen > 1 {
			ar = append(ar, c.Line)
		}
	}

	return
}

// Diagnostics returns one message per violated line in expected order.
func (t Report) Diagnostics() (ar []string) {
	for _, c := range t.Counts {
		switch {
		case c.Seen == 0:
			ar = append(ar, errorPrefix+c.Line+" not present in output")
		case c.Seen > 1:
			ar = append(ar, errorPrefix+"duplicated line "+c.Line)
		}
	}

	return
}

// Err returns nil for a clean report, otherwise all the diagnostics joined.
func (t Report) Err() error {
	var errs []error
	for _, d := range t.Diagnostics() {
		errs = append(errs, errors.New(d))
	}

	return errors.Join(errs...)
}
