package dnsutil

import (
	"errors"
	"testing"
)

func TestShorten(t *testing.T) {
	testCases := []struct{ in, out string }{
		{"This should remain unchanged", ""},
		{"read udp 127.0.0.1:1->127.0.0.1:53: i/o timeout", "Timeout"},
		{"An embedded connection refused is a", "Connection refused"},
		{"dial udp: connect: network is unreachable", "Network unreachable"},
	}

	if ShortenLookupError(nil) != nil {
		t.Error("shorten created an error out of thin air!")
	}

	for ix, tc := range testCases {
		orig := errors.New(tc.in)
		e := ShortenLookupError(orig)
		exp := tc.out
		if len(exp) == 0 {
			exp = tc.in
		}
		if e.Error() != exp {
			t.Error(ix, "Expected", exp, "Got", e.Error())
		}
		if !errors.Is(e, orig) {
			t.Error(ix, "Shortened error lost the original")
		}
	}
}
