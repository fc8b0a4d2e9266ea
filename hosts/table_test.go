package hosts

import (
	"fmt"
	"net/netip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const small = `# comment line
127.0.0.1   localhost localhost.localdomain
::1         localhost localhost.localdomain

192.0.2.1   example.org www.example.org   # trailing comment
192.0.2.2   Example.ORG
192.0.2.1   example.org
2001:db8::1 example.org
`

func TestParse(t *testing.T) {
	tbl, err := Parse(strings.NewReader(small))
	if err != nil {
		t.Fatal("Unexpected parse error", err)
	}

	type testCase struct {
		name      string
		found     bool
		canonical string
		addrs     string
	}
	testCases := []testCase{
		{"localhost", true, "localhost", "127.0.0.1,::1"},
		{"localhost.localdomain.", true, "localhost", "127.0.0.1,::1"},
		{"EXAMPLE.org", true, "example.org", "192.0.2.1,192.0.2.2,2001:db8::1"},
		{"www.example.org", true, "example.org", "192.0.2.1"},
		{"nosuch.example.org", false, "", ""},
	}
	for _, tc := range testCases {
		addrs, canonical, found := tbl.Lookup(tc.name)
		if found != tc.found {
			t.Error(tc.name, "Expected found", tc.found, "not", found)
			continue
		}
		if canonical != tc.canonical {
			t.Error(tc.name, "Expected canonical", tc.canonical, "not", canonical)
		}
		var ar []string
		for _, a := range addrs {
			ar = append(ar, a.String())
		}
		if got := strings.Join(ar, ","); got != tc.addrs {
			t.Error(tc.name, "Expected", tc.addrs, "not", got)
		}
	}

	if tbl.Names() != 4 {
		t.Error("Expected 4 names, not", tbl.Names())
	}
	if tbl.Count() != 8 { // Duplicate 192.0.2.1 for example.org is not counted
		t.Error("Expected 8 RRs, not", tbl.Count())
	}
}

func TestParseErrors(t *testing.T) {
	testCases := []struct{ in, errContains string }{
		{"192.0.2.1\n", "line 1"},
		{"\n\n300.0.0.1 bad.example\n", "line 3"},
		{"192.0.2.1 bad..name\n", "invalid name"},
	}
	for ix, tc := range testCases {
		_, err := Parse(strings.NewReader(tc.in))
		if err == nil {
			t.Error(ix, "Expected an error from", tc.in)
			continue
		}
		if !strings.Contains(err.Error(), tc.errContains) {
			t.Error(ix, "Expected error to contain", tc.errContains, "not", err)
		}
	}
}

func TestAddMapped(t *testing.T) {
	tbl := NewTable()
	if tbl.Add(netip.MustParseAddr("192.0.2.9"), "a.example") != 1 {
		t.Error("First add should succeed")
	}
	if tbl.Add(netip.MustParseAddr("::ffff:192.0.2.9"), "a.example") != 0 {
		t.Error("Mapped form should be a duplicate")
	}
}

func TestLoad(t *testing.T) {
	var sb strings.Builder
	for ix := 1; ix < 512; ix++ {
		fmt.Fprintf(&sb, "192.0.%d.%d example.org\n", (ix/256)&0xff, ix&0xff)
	}
	path := filepath.Join(t.TempDir(), "hosts")
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		t.Fatal(err)
	}

	tbl, err := Load(path)
	if err != nil {
		t.Fatal("Unexpected error", err)
	}
	addrs, _, _ := tbl.Lookup("example.org")
	if len(addrs) != 511 {
		t.Error("Expected 511 addresses, not", len(addrs))
	}
	if addrs[0].String() != "192.0.0.1" || addrs[510].String() != "192.0.1.255" {
		t.Error("File order not preserved", addrs[0], addrs[510])
	}

	_, err = Load(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Error("Expected error from missing file")
	}
}
