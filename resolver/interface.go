package resolver

import (
	"context"
	"net/netip"
	"time"

	"github.com/markdingo/nsschain/addrinfo"
)

const (
	defaultSingleExchangeTimeout = 4 * time.Second
	defaultQueryTries            = 2 // Total number of exchange attempts per server
)

// Answer is the combined outcome of the address queries for one name. Rcode is the
// "best" rcode seen across all queries: NOERROR if any query succeeded, otherwise
// NXDOMAIN if any query said so, otherwise the last rcode received.
type Answer struct {
	Rcode     int
	Canonical string // Owner name of the address RRs, after following any CNAMEs
	Addrs     []netip.Addr
}

// Resolver is implemented by both the real network resolver and the mock resolver.
// Implementations must be concurrency safe.
type Resolver interface {

	// LookupAddrs queries A and/or AAAA for name as dictated by family. An error is
	// only returned if no server produced a response at all; a response with an
	// unsuccessful rcode is reported via Answer.Rcode.
	//
	// LookupAddrs derives a WithDeadline context from the supplied context so there
	// is no need for the caller to worry about timeouts.
	LookupAddrs(ctx context.Context, name string, family addrinfo.Family) (Answer, error)
}

// QTypes returns the query types needed to satisfy family, in query order.
func QTypes(family addrinfo.Family) []uint16 {
	switch family {
	case addrinfo.Inet:
		return []uint16{typeA}
	case addrinfo.Inet6:
		return []uint16{typeAAAA}
	}

	return []uint16{typeA, typeAAAA}
}
