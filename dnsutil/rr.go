package dnsutil

import (
	"fmt"
	"net/netip"

	"github.com/miekg/dns"
)

// NewAddrRR creates an A or AAAA RR for name depending on the family of addr. The TTL is
// zero as address RRs built from host tables carry no lifetime.
func NewAddrRR(name string, addr netip.Addr) dns.RR {
	hdr := dns.RR_Header{Name: dns.Fqdn(name), Class: dns.ClassINET}
	addr = addr.Unmap()
	if addr.Is4() {
		hdr.Rrtype = dns.TypeA
		return &dns.A{Hdr: hdr, A: addr.AsSlice()}
	}
	hdr.Rrtype = dns.TypeAAAA

	return &dns.AAAA{Hdr: hdr, AAAA: addr.AsSlice()}
}

// RRAddr extracts the address from an A or AAAA RR. ok is false for any other type.
func RRAddr(rr dns.RR) (addr netip.Addr, ok bool) {
	switch rrt := rr.(type) {
	case *dns.A:
		addr, ok = netip.AddrFromSlice(rrt.A.To4())
	case *dns.AAAA:
		addr, ok = netip.AddrFromSlice(rrt.AAAA.To16())
	}

	return
}

// RcodeToString converts an miekg rcode to a string, but if the resulting string is empty
// it's replaced with the numeric value.
func RcodeToString(r int) (s string) {
	s = dns.RcodeToString[r]
	if len(s) == 0 {
		s = fmt.Sprintf("r-%d", r)
	}

	return
}
