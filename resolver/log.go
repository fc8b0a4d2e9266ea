package resolver

import (
	"net/netip"
	"strings"

	"github.com/miekg/dns"

	"github.com/markdingo/nsschain/dnsutil"
	"github.com/markdingo/nsschain/log"
)

// LogAddrs logs results from LookupAddrs. Exported for mock resolver. Caller should test
// for log.IfDebug() prior to calling.
func LogAddrs(name string, ans Answer, note string, err error) {
	var s [6]string
	s[0] = "res:ADDR"
	s[1] = name
	if err != nil {
		s[4] = err.Error()
	} else {
		s[2] = dnsutil.RcodeToString(ans.Rcode)
		s[3] = addrStrings(ans.Addrs)
	}
	s[5] = note
	log.Debug(strings.Join(s[:], "#"))
}

// LogExchangeQ logs the question given to miekg.Exchange(). Caller should test for
// log.IfDebug() prior to calling.
func LogExchangeQ(net, server string, q dns.Question) {
	log.Debugf("miekg Q:%s:%s %s/%s", net, server,
		dnsutil.ChompCanonicalName(q.Name), dns.TypeToString[q.Qtype])
}

// LogExchangeA logs the answer returned by miekg.Exchange(). See above.
func LogExchangeA(server string, q dns.Question, r *dns.Msg, err error) {
	if err == nil {
		log.Debugf("miekg A:%s %s/%s %s an=%d", server,
			dnsutil.ChompCanonicalName(q.Name), dns.TypeToString[q.Qtype],
			dnsutil.RcodeToString(r.Rcode), len(r.Answer))
	} else {
		log.Debugf("miekg E:%s %s/%s %s", server,
			dnsutil.ChompCanonicalName(q.Name), dns.TypeToString[q.Qtype],
			dnsutil.ShortenLookupError(err).Error())
	}
}

func addrStrings(addrs []netip.Addr) string {
	ar := make([]string, 0, len(addrs))
	for _, a := range addrs {
		ar = append(ar, a.String())
	}

	return strings.Join(ar, ",")
}
