package resolver

import (
	"context"
	"strings"
	"sync"

	"github.com/miekg/dns"

	"github.com/markdingo/nsschain/addrinfo"
	"github.com/markdingo/nsschain/dnsutil"
	"github.com/markdingo/nsschain/log"
	"github.com/markdingo/nsschain/resolver"
)

// mockResolver implements the resolver.Resolver interface by converting queries to file
// names and loading responses from those files. If the file doesn't exist the response is
// REFUSED. If the file exists, each line is parsed as described in loadFile().
//
// The filename convention is: $dir/lookup/$Class/$Type/$qname
type mockResolver struct {
	dir string

	mu      sync.Mutex
	lookups map[string]int // Per qname
}

// NewResolver creates a mock resolver which uses the supplied directory as the location
// of mock files to parse to produce lookup responses.
func NewResolver(dir string) *mockResolver {
	return &mockResolver{dir: dir, lookups: make(map[string]int)}
}

// Lookups returns the number of LookupAddrs calls made for name.
func (t *mockResolver) Lookups(name string) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.lookups[dnsutil.ChompCanonicalName(name)]
}

func (t *mockResolver) LookupAddrs(ctx context.Context, name string, family addrinfo.Family) (ans resolver.Answer, err error) {
	name = dnsutil.ChompCanonicalName(name)
	t.mu.Lock()
	t.lookups[name]++
	t.mu.Unlock()

	ans.Rcode = -1
	var paths []string
	responded := false
	for _, qType := range resolver.QTypes(family) {
		msg, path, lerr := t.loadLookupFile("IN", dns.TypeToString[qType], name)
		paths = append(paths, path)
		if lerr != nil {
			err = lerr
			continue
		}
		responded = true
		switch {
		case msg.Rcode == dns.RcodeSuccess:
			ans.Rcode = dns.RcodeSuccess
		case ans.Rcode == dns.RcodeSuccess:
		case msg.Rcode == dns.RcodeNameError:
			ans.Rcode = dns.RcodeNameError
		case ans.Rcode != dns.RcodeNameError:
			ans.Rcode = msg.Rcode
		}
		for _, rr := range msg.Answer {
			if a, ok := dnsutil.RRAddr(rr); ok {
				ans.Addrs = append(ans.Addrs, a)
				if len(ans.Canonical) == 0 {
					ans.Canonical = dnsutil.ChompCanonicalName(rr.Header().Name)
				}
			}
		}
	}

	if !responded {
		ans = resolver.Answer{}
	} else {
		err = nil
		if len(ans.Canonical) == 0 {
			ans.Canonical = name
		}
	}
	if log.IfDebug() {
		resolver.LogAddrs(name, ans, strings.Join(paths, ","), err)
	}

	return
}
