package format

import (
	"errors"
	"net/netip"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/markdingo/nsschain/addrinfo"
)

func newResult(canonical string, addrs ...string) *addrinfo.Result {
	var ar []netip.Addr
	for _, a := range addrs {
		ar = append(ar, netip.MustParseAddr(a))
	}
	r := addrinfo.NewResult()
	r.AddAll(addrinfo.Expand(addrinfo.Query{Port: 80}, ar))
	r.SetCanonical(canonical)

	return r
}

func TestLines(t *testing.T) {
	r := newResult("example.org", "192.0.0.1", "2001:db8::1")
	exp := []string{
		"address: STREAM/TCP 192.0.0.1 80",
		"address: DGRAM/UDP 192.0.0.1 80",
		"address: RAW/IP 192.0.0.1 80",
		"address: STREAM/TCP 2001:db8::1 80",
		"address: DGRAM/UDP 2001:db8::1 80",
		"address: RAW/IP 2001:db8::1 80",
	}
	if diff := cmp.Diff(exp, Lines(r, false)); diff != "" {
		t.Error("Lines mismatch (-want +got):\n", diff)
	}
	withCanon := append([]string{"canonname: example.org"}, exp...)
	if diff := cmp.Diff(withCanon, Lines(r, true)); diff != "" {
		t.Error("Canonical Lines mismatch (-want +got):\n", diff)
	}

	noCanon := newResult("", "192.0.0.1")
	if len(Lines(noCanon, true)) != 3 {
		t.Error("Empty canonical name should not produce a line")
	}

	txt := Text(newResult("", "192.0.0.1"), false)
	expTxt := "address: STREAM/TCP 192.0.0.1 80\naddress: DGRAM/UDP 192.0.0.1 80\naddress: RAW/IP 192.0.0.1 80\n"
	if txt != expTxt {
		t.Errorf("Expected %q, not %q", expTxt, txt)
	}
	if Text(addrinfo.NewResult(), false) != "" {
		t.Error("Empty result should produce empty text")
	}

	if Failure(errors.New("example.org: no such host")) != "error: example.org: no such host" {
		t.Error("Unexpected failure line", Failure(errors.New("example.org: no such host")))
	}
}

func TestVerify(t *testing.T) {
	rep := Verify([]string{"a", "b", "a"}, []string{"a", "b", "c"})
	if rep.Clean() {
		t.Error("Report should not be clean")
	}
	if rep.Seen("a") != 2 || rep.Seen("b") != 1 || rep.Seen("c") != 0 || rep.Seen("d") != -1 {
		t.Error("Wrong counts", rep.Counts)
	}
	if diff := cmp.Diff([]string{"a"}, rep.Duplicated()); diff != "" {
		t.Error("Duplicated mismatch (-want +got):\n", diff)
	}
	if diff := cmp.Diff([]string{"c"}, rep.Missing()); diff != "" {
		t.Error("Missing mismatch (-want +got):\n", diff)
	}
	expDiag := []string{"error: duplicated line a", "error: c not present in output"}
	if diff := cmp.Diff(expDiag, rep.Diagnostics()); diff != "" {
		t.Error("Diagnostics mismatch (-want +got):\n", diff)
	}
	if rep.Err() == nil {
		t.Error("Dirty report should have an error")
	}

	clean := Verify([]string{"x", "b", "a", "y"}, []string{"a", "b", "a"})
	if !clean.Clean() || clean.Err() != nil {
		t.Error("Report should be clean", clean.Counts)
	}
	if len(clean.Counts) != 2 {
		t.Error("Duplicate expected lines should collapse", clean.Counts)
	}
}

// Matching is exact, not a substring or pattern match.
func TestVerifyExact(t *testing.T) {
	rep := VerifyText("address: RAW/IP 192.0.0.1 80 \naddress: RAW/IP 192.0.0.10 80\n",
		[]string{"address: RAW/IP 192.0.0.1 80"})
	if rep.Seen("address: RAW/IP 192.0.0.1 80") != 0 {
		t.Error("Near matches should not count", rep.Counts)
	}

	rep = VerifyText("", []string{"a"})
	if diff := cmp.Diff([]string{"a"}, rep.Missing()); diff != "" {
		t.Error("Empty buffer should miss everything (-want +got):\n", diff)
	}
	if !VerifyText("", nil).Clean() {
		t.Error("Nothing expected in nothing should be clean")
	}
}

// The continue chain output must contain each line exactly once across the whole run.
func TestVerifyResultText(t *testing.T) {
	r := newResult("", "192.0.0.1")
	r.AddAll(newResult("", "192.0.0.1", "192.0.0.2").Records())
	rep := VerifyText(Text(r, false), []string{
		"address: STREAM/TCP 192.0.0.1 80",
		"address: DGRAM/UDP 192.0.0.1 80",
		"address: RAW/IP 192.0.0.1 80",
	})
	if !rep.Clean() {
		t.Error("Expected clean report", rep.Diagnostics())
	}
}
