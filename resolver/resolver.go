package resolver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/miekg/dns"

	"github.com/markdingo/nsschain/addrinfo"
	"github.com/markdingo/nsschain/dnsutil"
	"github.com/markdingo/nsschain/log"
)

const (
	typeA    = dns.TypeA
	typeAAAA = dns.TypeAAAA
)

type resolver struct {
	servers []string // host:port

	// Currently these timeout and retry values cannot be changed from the defaults.
	singleExchangeTimeout time.Duration
	queryTries            int
}

// NewResolver creates a fully formed resolver which queries the supplied servers in
// order. Servers lacking a port have the DNS service appended.
func NewResolver(servers ...string) *resolver {
	t := &resolver{
		singleExchangeTimeout: defaultSingleExchangeTimeout,
		queryTries:            defaultQueryTries,
	}
	for _, s := range servers {
		if _, _, err := net.SplitHostPort(s); err != nil { // Coerce a service onto the
			s = net.JoinHostPort(s, dnsutil.DefaultService) // name if it hasn't got one
		}
		t.servers = append(t.servers, s)
	}

	return t
}

// NewResolverFromFile creates a resolver using the nameservers listed in a resolv.conf
// style file.
func NewResolverFromFile(path string) (*resolver, error) {
	cc, err := dns.ClientConfigFromFile(path)
	if err != nil {
		return nil, err
	}
	if len(cc.Servers) == 0 {
		return nil, fmt.Errorf("%s: no nameservers", path)
	}
	servers := make([]string, 0, len(cc.Servers))
	for _, s := range cc.Servers {
		servers = append(servers, net.JoinHostPort(s, cc.Port))
	}
	t := NewResolver(servers...)
	if cc.Timeout > 0 {
		t.singleExchangeTimeout = time.Duration(cc.Timeout) * time.Second
	}
	if cc.Attempts > 0 {
		t.queryTries = cc.Attempts
	}

	return t, nil
}

// Servers returns the servers in query order.
func (t *resolver) Servers() []string {
	return append([]string(nil), t.servers...)
}

func (t *resolver) LookupAddrs(ctx context.Context, name string, family addrinfo.Family) (Answer, error) {
	var ans Answer
	var lastErr error
	responded := false
	ans.Rcode = -1
	qName := dns.Fqdn(name)

	for _, qType := range QTypes(family) {
		r, err := t.exchange(ctx, qName, qType)
		if err != nil {
			lastErr = err
			continue
		}
		responded = true
		ans.merge(r)
	}

	if !responded {
		if lastErr == nil {
			lastErr = errors.New("no servers configured")
		}
		if log.IfDebug() {
			LogAddrs(name, Answer{}, "", lastErr)
		}
		return Answer{}, lastErr
	}
	if len(ans.Canonical) == 0 {
		ans.Canonical = dnsutil.ChompCanonicalName(qName)
	}
	if log.IfDebug() {
		LogAddrs(name, ans, "", nil)
	}

	return ans, nil
}

// merge folds a response into the answer following the rcode precedence documented on
// Answer.
func (t *Answer) merge(r *dns.Msg) {
	switch {
	case r.Rcode == dns.RcodeSuccess:
		t.Rcode = dns.RcodeSuccess
	case t.Rcode == dns.RcodeSuccess:
	case r.Rcode == dns.RcodeNameError:
		t.Rcode = dns.RcodeNameError
	case t.Rcode != dns.RcodeNameError:
		t.Rcode = r.Rcode
	}
	if r.Rcode != dns.RcodeSuccess {
		return
	}
	for _, rr := range r.Answer {
		if a, ok := dnsutil.RRAddr(rr); ok {
			t.Addrs = append(t.Addrs, a)
			if len(t.Canonical) == 0 {
				t.Canonical = dnsutil.ChompCanonicalName(rr.Header().Name)
			}
		}
	}
}

// exchange tries each server in turn, each for up to queryTries attempts, and returns the
// first response received. Truncated UDP responses are retried over TCP.
func (t *resolver) exchange(ctx context.Context, qName string, qType uint16) (*dns.Msg, error) {
	q := new(dns.Msg)
	q.SetQuestion(qName, qType)
	q.SetEdns0(dnsutil.MaxUDPSize, false)

	var lastErr error
	for _, server := range t.servers {
		for try := 0; try < t.queryTries; try++ {
			r, err := t.singleExchange(ctx, dnsutil.UDPNetwork, q, server)
			if err == nil && r.Truncated {
				r, err = t.singleExchange(ctx, dnsutil.TCPNetwork, q, server)
			}
			if err == nil {
				return r, nil
			}
			lastErr = dnsutil.ShortenLookupError(err)
			if ctx.Err() != nil {
				return nil, lastErr
			}
		}
	}

	return nil, lastErr
}

func (t *resolver) singleExchange(ctx context.Context, network string, q *dns.Msg,
	server string) (*dns.Msg, error) {
	ctxWithTO, cancel := context.WithDeadline(ctx, time.Now().Add(t.singleExchangeTimeout))
	defer cancel()
	client := &dns.Client{Net: network, Timeout: t.singleExchangeTimeout, UDPSize: dnsutil.MaxUDPSize}
	if log.IfDebug() {
		LogExchangeQ(network, server, q.Question[0])
	}
	q.Id = dns.Id()
	r, _, err := client.ExchangeContext(ctxWithTO, q, server)
	if log.IfDebug() {
		LogExchangeA(server, q.Question[0], r, err)
	}

	return r, err
}
