package addrinfo

import (
	"fmt"
	"net/netip"
	"strings"
)

type SocketType int

const (
	AnySocket SocketType = iota // Only meaningful in a Query
	Stream
	Dgram
	Raw
)

// SocketTypes is the order in which records are expanded for each address.
var SocketTypes = []SocketType{Stream, Dgram, Raw}

func (t SocketType) String() string {
	switch t {
	case Stream:
		return "STREAM"
	case Dgram:
		return "DGRAM"
	case Raw:
		return "RAW"
	}

	return "ANY"
}

// ParseSocketType accepts "stream", "dgram", "raw" in any case. An empty string or "any"
// is AnySocket.
func ParseSocketType(s string) (SocketType, error) {
	switch strings.ToLower(s) {
	case "", "any":
		return AnySocket, nil
	case "stream":
		return Stream, nil
	case "dgram":
		return Dgram, nil
	case "raw":
		return Raw, nil
	}

	return AnySocket, fmt.Errorf("unknown socket type '%s'", s)
}

// Protocol returns the protocol conventionally carried by the socket type.
func (t SocketType) Protocol() Protocol {
	switch t {
	case Stream:
		return TCP
	case Dgram:
		return UDP
	}

	return IP
}

type Protocol int

const (
	IP Protocol = iota
	TCP
	UDP
)

func (t Protocol) String() string {
	switch t {
	case TCP:
		return "TCP"
	case UDP:
		return "UDP"
	}

	return "IP"
}

type Family int

const (
	Unspec Family = iota
	Inet
	Inet6
)

func (t Family) String() string {
	switch t {
	case Inet:
		return "AF_INET"
	case Inet6:
		return "AF_INET6"
	}

	return "AF_UNSPEC"
}

// ParseFamily accepts both the short names used in configuration files ("unspec", "inet",
// "inet6", "4", "6") and the AF_* names produced by String().
func ParseFamily(s string) (Family, error) {
	switch strings.ToLower(s) {
	case "", "unspec", "af_unspec":
		return Unspec, nil
	case "inet", "af_inet", "4", "ipv4":
		return Inet, nil
	case "inet6", "af_inet6", "6", "ipv6":
		return Inet6, nil
	}

	return Unspec, fmt.Errorf("unknown address family '%s'", s)
}

// Matches returns true if addr belongs to the family. Unspec matches everything.
func (t Family) Matches(addr netip.Addr) bool {
	switch t {
	case Inet:
		return addr.Unmap().Is4()
	case Inet6:
		return !addr.Unmap().Is4()
	}

	return true
}

// Record is a single resolved address as returned to a caller. Records are compared with
// ==.
type Record struct {
	SocketType SocketType
	Protocol   Protocol
	Address    netip.Addr
	Port       uint16
}

// String returns "STREAM/TCP 192.0.2.1 80"
func (t Record) String() string {
	return fmt.Sprintf("%s/%s %s %d", t.SocketType, t.Protocol, t.Address, t.Port)
}

// Query carries the name to resolve along with the hints which shape the returned
// records.
type Query struct {
	Name       string
	Port       uint16
	Family     Family
	SocketType SocketType // AnySocket means all of SocketTypes
	Canonical  bool       // Caller wants the canonical name reported
}

func (t Query) String() string {
	s := fmt.Sprintf("%s port=%d %s", t.Name, t.Port, t.Family)
	if t.SocketType != AnySocket {
		s += " " + t.SocketType.String()
	}
	if t.Canonical {
		s += " canonical"
	}

	return s
}

// Expand converts addresses into Records according to the query hints. Each address
// which matches the query family produces one Record per socket type in SocketTypes
// order, or just the one if the query names a socket type. IPv4-mapped addresses are
// unmapped so they compare equal to their plain IPv4 form.
func Expand(q Query, addrs []netip.Addr) []Record {
	types := SocketTypes
	if q.SocketType != AnySocket {
		types = []SocketType{q.SocketType}
	}

	recs := make([]Record, 0, len(addrs)*len(types))
	for _, a := range addrs {
		if !q.Family.Matches(a) {
			continue
		}
		a = a.Unmap()
		for _, st := range types {
			recs = append(recs, Record{SocketType: st, Protocol: st.Protocol(), Address: a, Port: q.Port})
		}
	}

	return recs
}
