package source

import (
	"context"
	"fmt"
	"net/netip"
	"sort"

	"github.com/markdingo/nsschain/addrinfo"
	"github.com/markdingo/nsschain/dnsutil"
)

// Static resolves names from a fixed in-memory map. Names are canonicalized on
// construction and lookup.
type Static struct {
	name  string
	table map[string][]netip.Addr
	fail  Status // If not Success, every lookup returns this status
}

func NewStatic(name string, table map[string][]netip.Addr) *Static {
	t := &Static{name: name, table: make(map[string][]netip.Addr)}
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys) // Variants of the same name fold in a stable order
	for _, k := range keys {
		ck := dnsutil.ChompCanonicalName(k)
		t.table[ck] = append(t.table[ck], table[k]...)
	}

	return t
}

// NewFailing creates a Static source which answers every lookup with status, which is
// normally NotFound or Unavail.
func NewFailing(name string, status Status) *Static {
	return &Static{name: name, fail: status}
}

func (t *Static) Name() string {
	return t.name
}

func (t *Static) Lookup(ctx context.Context, q addrinfo.Query) Outcome {
	switch t.fail {
	case NotFound:
		return Missing()
	case Unavail:
		return Transient(fmt.Errorf("%s: unavailable", t.name))
	}
	name := dnsutil.ChompCanonicalName(q.Name)
	addrs, ok := t.table[name]
	if !ok {
		return Missing()
	}

	return Found(name, addrinfo.Expand(q, addrs))
}
