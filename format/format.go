// Package format renders resolution results as canonical text lines and verifies captured
// output against expected lines.
package format

import (
	"strings"

	"github.com/markdingo/nsschain/addrinfo"
)

const (
	addressPrefix   = "address: "
	canonnamePrefix = "canonname: "
	errorPrefix     = "error: "
)

// Address renders one record as "address: STREAM/TCP 192.0.2.1 80".
func Address(r addrinfo.Record) string {
	return addressPrefix + r.String()
}

// Lines renders a result one line per record in result order. If canonical is true and
// the result carries a canonical name, a "canonname: NAME" line comes first.
func Lines(r *addrinfo.Result, canonical bool) []string {
	ar := make([]string, 0, r.Len()+1)
	if canonical && len(r.Canonical()) > 0 {
		ar = append(ar, canonnamePrefix+r.Canonical())
	}
	for _, rec := range r.Records() {
		ar = append(ar, Address(rec))
	}

	return ar
}

// Text is Lines joined into a newline terminated buffer.
func Text(r *addrinfo.Result, canonical bool) string {
	lines := Lines(r, canonical)
	if len(lines) == 0 {
		return ""
	}

	return strings.Join(lines, "\n") + "\n"
}

// Failure renders a resolution error as a single line.
func Failure(err error) string {
	return errorPrefix + err.Error()
}
