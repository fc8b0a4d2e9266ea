package action

import (
	"testing"

	"github.com/markdingo/nsschain/source"
)

func TestDefaults(t *testing.T) {
	if Default(source.Success) != Return {
		t.Error("SUCCESS should default to return")
	}
	if Default(source.NotFound) != Continue || Default(source.Unavail) != Continue {
		t.Error("Failures should default to continue")
	}
}

// Two steps naming the same source are independent.
func TestPositional(t *testing.T) {
	tbl := MustParse("files [SUCCESS=merge] files [NOTFOUND=return] files")
	type testCase struct {
		step   int
		status source.Status
		exp    Action
	}
	testCases := []testCase{
		{0, source.Success, Merge},
		{0, source.NotFound, Continue},
		{1, source.Success, Return},
		{1, source.NotFound, Return},
		{1, source.Unavail, Continue},
		{2, source.Success, Return},
		{2, source.NotFound, Continue},
	}
	for _, tc := range testCases {
		got := tbl.Action(tc.step, tc.status)
		if got != tc.exp {
			t.Error(tc.step, tc.status, "Expected", tc.exp, "not", got)
		}
	}
	for ix := 0; ix < tbl.Len(); ix++ {
		if tbl.Source(ix) != "files" {
			t.Error("Wrong source at", ix, tbl.Source(ix))
		}
	}
}

func TestActionStrings(t *testing.T) {
	for _, a := range []Action{Return, Continue, Merge} {
		p, err := ParseAction(a.String())
		if err != nil || p != a {
			t.Error("Round trip failed", a, p, err)
		}
	}
	if _, err := ParseAction("notify"); err == nil {
		t.Error("Expected error for unknown action")
	}
	e := Entry{Step: 1, Source: "dns", Status: source.Unavail, Action: Merge}
	if e.String() != "1:dns[UNAVAIL=merge]" {
		t.Error("Unexpected entry string", e.String())
	}
}
