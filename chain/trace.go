package chain

import (
	"fmt"
	"strings"

	"github.com/markdingo/nsschain/action"
	"github.com/markdingo/nsschain/log"
	"github.com/markdingo/nsschain/source"
)

// Step records what happened at one position in the chain.
type Step struct {
	Index   int
	Source  string
	Status  source.Status
	Records int // Returned by the source
	Action  action.Action
	Added   int   // New records added to the result
	Err     error // Unavail reason, if any
}

// String returns "files:SUCCESS(3)=merge+3"
func (t Step) String() string {
	s := fmt.Sprintf("%s:%s", t.Source, t.Status)
	if t.Status == source.Success {
		s += fmt.Sprintf("(%d)", t.Records)
	}
	s += "=" + t.Action.String()
	if t.Added > 0 {
		s += fmt.Sprintf("+%d", t.Added)
	}

	return s
}

func (t Step) log() {
	if log.IfDebug() {
		if t.Err != nil {
			log.Debugf("chain: step %d %s: %s", t.Index, t, t.Err)
		} else {
			log.Debugf("chain: step %d %s", t.Index, t)
		}
	}
}

// Trace is the ordered list of steps taken by one evaluation.
type Trace []Step

func (t Trace) String() string {
	ar := make([]string, 0, len(t))
	for _, s := range t {
		ar = append(ar, s.String())
	}

	return strings.Join(ar, " ")
}
