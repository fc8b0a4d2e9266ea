package resolver

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/miekg/dns"

	"github.com/markdingo/nsschain/addrinfo"
	mockdns "github.com/markdingo/nsschain/mock/dns"
)

func newRR(s string) dns.RR {
	rr, err := dns.NewRR(s)
	if err != nil {
		panic(err)
	}

	return rr
}

func TestLookupAddrs(t *testing.T) {
	zs := &mockdns.ZoneServer{}
	zs.Set("example.org", dns.TypeA, &mockdns.ZoneResponse{Answer: []dns.RR{
		newRR("example.org. 60 IN A 192.0.2.1"), newRR("example.org. 60 IN A 192.0.2.2")}})
	zs.Set("example.org", dns.TypeAAAA, &mockdns.ZoneResponse{Answer: []dns.RR{
		newRR("example.org. 60 IN AAAA 2001:db8::1")}})
	zs.Set("www.example.org", dns.TypeA, &mockdns.ZoneResponse{Answer: []dns.RR{
		newRR("www.example.org. 60 IN CNAME host.example.org."),
		newRR("host.example.org. 60 IN A 192.0.2.7")}})
	zs.Set("www.example.org", dns.TypeAAAA, &mockdns.ZoneResponse{})
	zs.Set("fail.example.org", dns.TypeA, &mockdns.ZoneResponse{Rcode: dns.RcodeServerFailure})
	srv, addr := mockdns.StartServer(zs)
	defer srv.Shutdown()

	r := NewResolver(addr)
	ctx := context.Background()

	type testCase struct {
		name      string
		family    addrinfo.Family
		rcode     int
		canonical string
		addrs     string
	}
	testCases := []testCase{
		{"example.org", addrinfo.Unspec, dns.RcodeSuccess, "example.org", "192.0.2.1,192.0.2.2,2001:db8::1"},
		{"example.org", addrinfo.Inet, dns.RcodeSuccess, "example.org", "192.0.2.1,192.0.2.2"},
		{"example.org.", addrinfo.Inet6, dns.RcodeSuccess, "example.org", "2001:db8::1"},
		{"www.example.org", addrinfo.Unspec, dns.RcodeSuccess, "host.example.org", "192.0.2.7"},
		{"nosuch.example.org", addrinfo.Unspec, dns.RcodeNameError, "nosuch.example.org", ""},
		{"fail.example.org", addrinfo.Inet, dns.RcodeServerFailure, "fail.example.org", ""},
	}
	for _, tc := range testCases {
		ans, err := r.LookupAddrs(ctx, tc.name, tc.family)
		if err != nil {
			t.Error(tc.name, "Unexpected error", err)
			continue
		}
		if ans.Rcode != tc.rcode {
			t.Error(tc.name, tc.family, "Expected rcode", tc.rcode, "not", ans.Rcode)
		}
		if ans.Canonical != tc.canonical {
			t.Error(tc.name, "Expected canonical", tc.canonical, "not", ans.Canonical)
		}
		if got := addrStrings(ans.Addrs); got != tc.addrs {
			t.Error(tc.name, tc.family, "Expected", tc.addrs, "not", got)
		}
	}
	if zs.Count("example.org", dns.TypeA) != 2 {
		t.Error("Expected two A queries for example.org, not", zs.Count("example.org", dns.TypeA))
	}
}

func TestLookupTimeout(t *testing.T) {
	zs := &mockdns.ZoneServer{}
	zs.Set("slow.example.org", dns.TypeA, &mockdns.ZoneResponse{Ignore: true})
	srv, addr := mockdns.StartServer(zs)
	defer srv.Shutdown()

	r := NewResolver(addr)
	r.singleExchangeTimeout = 100 * time.Millisecond
	_, err := r.LookupAddrs(context.Background(), "slow.example.org", addrinfo.Inet)
	if err == nil {
		t.Fatal("Expected timeout error")
	}
	if err.Error() != "Timeout" {
		t.Error("Expected shortened Timeout error, not", err)
	}
	if zs.Count("slow.example.org", dns.TypeA) != defaultQueryTries {
		t.Error("Expected", defaultQueryTries, "attempts, not", zs.Count("slow.example.org", dns.TypeA))
	}
}

func TestNewResolverFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resolv.conf")
	err := os.WriteFile(path, []byte("nameserver 192.0.2.53\nnameserver 2001:db8::53\noptions timeout:1 attempts:3\n"), 0644)
	if err != nil {
		t.Fatal(err)
	}
	r, err := NewResolverFromFile(path)
	if err != nil {
		t.Fatal("Unexpected error", err)
	}
	servers := r.Servers()
	if len(servers) != 2 || servers[0] != "192.0.2.53:53" || servers[1] != "[2001:db8::53]:53" {
		t.Error("Wrong servers", servers)
	}
	if r.singleExchangeTimeout != time.Second || r.queryTries != 3 {
		t.Error("Options not transferred", r.singleExchangeTimeout, r.queryTries)
	}

	empty := filepath.Join(t.TempDir(), "empty.conf")
	os.WriteFile(empty, []byte("search example.org\n"), 0644)
	if _, err := NewResolverFromFile(empty); err == nil {
		t.Error("Expected error with no nameservers")
	}
}

func TestNewResolverPorts(t *testing.T) {
	r := NewResolver("192.0.2.1", "192.0.2.2:5353")
	s := r.Servers()
	if s[0] != "192.0.2.1:domain" || s[1] != "192.0.2.2:5353" {
		t.Error("Port coercion wrong", s)
	}
}
