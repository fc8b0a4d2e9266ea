package source

import (
	"context"
	"fmt"

	"github.com/miekg/dns"

	"github.com/markdingo/nsschain/addrinfo"
	"github.com/markdingo/nsschain/dnsutil"
	"github.com/markdingo/nsschain/log"
	"github.com/markdingo/nsschain/resolver"
)

// DNS resolves names via a resolver.Resolver.
type DNS struct {
	name     string
	resolver resolver.Resolver
}

func NewDNS(name string, r resolver.Resolver) *DNS {
	return &DNS{name: name, resolver: r}
}

func (t *DNS) Name() string {
	return t.name
}

// Lookup maps responses onto outcomes: NOERROR with addresses is Success, NXDOMAIN or
// NOERROR/NODATA is NotFound and everything else, including no response at all, is
// Unavail.
func (t *DNS) Lookup(ctx context.Context, q addrinfo.Query) Outcome {
	ans, err := t.resolver.LookupAddrs(ctx, q.Name, q.Family)
	if err != nil {
		err = fmt.Errorf("%s: %w", t.name, dnsutil.ShortenLookupError(err))
		log.Minor(err.Error())
		return Transient(err)
	}

	switch ans.Rcode {
	case dns.RcodeSuccess:
		return Found(ans.Canonical, addrinfo.Expand(q, ans.Addrs))
	case dns.RcodeNameError:
		return Missing()
	}

	err = fmt.Errorf("%s: %s for %s", t.name, dnsutil.RcodeToString(ans.Rcode), q.Name)
	log.Minor(err.Error())

	return Transient(err)
}
