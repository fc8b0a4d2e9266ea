package source

import (
	"fmt"
	"strings"

	"github.com/markdingo/nsschain/addrinfo"
)

type Status int

const (
	Success Status = iota
	NotFound
	Unavail
)

var statusNames = []string{"SUCCESS", "NOTFOUND", "UNAVAIL"}

func (t Status) String() string {
	if t >= 0 && int(t) < len(statusNames) {
		return statusNames[t]
	}

	return fmt.Sprintf("STATUS-%d", int(t))
}

// ParseStatus converts a status token, case-insensitive.
func ParseStatus(s string) (Status, error) {
	for ix, n := range statusNames {
		if strings.EqualFold(s, n) {
			return Status(ix), nil
		}
	}

	return Success, fmt.Errorf("unknown status '%s'", s)
}

// Outcome is the result of a single Lookup. Records is only populated for Success and Err
// is only populated for Unavail. Outcomes are created fresh for each Lookup and are never
// shared between sources.
type Outcome struct {
	Status    Status
	Records   []addrinfo.Record
	Canonical string
	Err       error
}

// Found creates a Success Outcome. A Success with no records is treated as NotFound
// since there is nothing for the chain to return.
func Found(canonical string, recs []addrinfo.Record) Outcome {
	if len(recs) == 0 {
		return Outcome{Status: NotFound}
	}

	return Outcome{Status: Success, Records: recs, Canonical: canonical}
}

func Missing() Outcome {
	return Outcome{Status: NotFound}
}

func Transient(err error) Outcome {
	return Outcome{Status: Unavail, Err: err}
}

func (t Outcome) String() string {
	switch t.Status {
	case Success:
		return fmt.Sprintf("%s(%d)", t.Status, len(t.Records))
	case Unavail:
		if t.Err != nil {
			return fmt.Sprintf("%s(%s)", t.Status, t.Err)
		}
	}

	return t.Status.String()
}
