package hosts

import (
	"net/netip"

	"github.com/miekg/dns"

	"github.com/markdingo/nsschain/dnsutil"
)

type entry struct {
	canonical string   // First name of the first line mentioning this name
	rrs       []dns.RR // A and AAAA in file order
	seen      map[netip.Addr]struct{}
}

// Table is constructed with NewTable() or Parse() - using a default construction will
// result in a panic due to the unconstructed map.
type Table struct {
	names map[string]*entry // Keyed by ChompCanonicalName
	count int               // RRs added
}

func NewTable() *Table {
	return &Table{names: make(map[string]*entry)}
}

// Add associates addr with the canonical name and all aliases. Return the number of names
// for which the address was new; duplicates are silently ignored.
func (t *Table) Add(addr netip.Addr, canonical string, aliases ...string) (added int) {
	canonical = dnsutil.ChompCanonicalName(canonical)
	for _, name := range append([]string{canonical}, aliases...) {
		name = dnsutil.ChompCanonicalName(name)
		e := t.names[name]
		if e == nil {
			e = &entry{canonical: canonical, seen: make(map[netip.Addr]struct{})}
			t.names[name] = e
		}
		if e.add(addr.Unmap(), dnsutil.NewAddrRR(name, addr)) {
			added++
			t.count++
		}
	}

	return
}

// Large tables commonly list hundreds of addresses for one name so duplicates are found
// via the seen set rather than by comparing RRs.
func (t *entry) add(addr netip.Addr, rr dns.RR) bool {
	if _, ok := t.seen[addr]; ok {
		return false
	}
	t.seen[addr] = struct{}{}
	t.rrs = append(t.rrs, rr)

	return true
}

// Lookup returns all addresses for name in the order they were added along with the
// canonical name. found is false if the name is not present at all.
func (t *Table) Lookup(name string) (addrs []netip.Addr, canonical string, found bool) {
	e := t.names[dnsutil.ChompCanonicalName(name)]
	if e == nil {
		return
	}
	for _, rr := range e.rrs {
		if a, ok := dnsutil.RRAddr(rr); ok {
			addrs = append(addrs, a)
		}
	}

	return addrs, e.canonical, true
}

// Count returns the total number of address RRs across all names.
func (t *Table) Count() int {
	return t.count
}

// Names returns the number of distinct names, aliases included.
func (t *Table) Names() int {
	return len(t.names)
}
