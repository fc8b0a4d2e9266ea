package source

import (
	"context"
	"fmt"

	"github.com/markdingo/nsschain/addrinfo"
	"github.com/markdingo/nsschain/log"
)

// Source is one queryable backend in a resolution chain. Implementations must not retain
// state between lookups and must be safe to call from one goroutine at a time; isolated
// chains each construct their own Sources.
type Source interface {
	Name() string
	Lookup(ctx context.Context, q addrinfo.Query) Outcome
}

type guarded struct {
	Source
}

// Guard wraps a Source so that a panic within Lookup is converted into an Unavail
// Outcome.
func Guard(s Source) Source {
	if _, ok := s.(*guarded); ok {
		return s
	}

	return &guarded{s}
}

func (t *guarded) Lookup(ctx context.Context, q addrinfo.Query) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%s: panic: %v", t.Name(), r)
			log.Minor(err.Error())
			out = Transient(err)
		}
	}()

	return t.Source.Lookup(ctx, q)
}
