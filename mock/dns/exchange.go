package dns

import (
	"fmt"
	"sync"

	"github.com/miekg/dns"
)

// ZoneResponse is the canned reply for one qName/qType pair.
type ZoneResponse struct {
	Ignore bool // Never reply, forcing the client to time out
	Rcode  int
	Answer []dns.RR

	QueryCount int // Times ZoneServer served this response
}

// ZoneServer is a dumb dns.Handler which replies from canned responses keyed by
// qName/qType. Unknown keys get NXDOMAIN. It never checks anything else in the query.
type ZoneServer struct {
	mu        sync.Mutex
	responses map[string]*ZoneResponse
}

func key(qName string, qType uint16) string {
	return dns.CanonicalName(qName) + "/" + dns.TypeToString[qType]
}

// Set a response for qName/qType, replacing any previous one.
func (t *ZoneServer) Set(qName string, qType uint16, r *ZoneResponse) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.responses == nil {
		t.responses = make(map[string]*ZoneResponse)
	}
	t.responses[key(qName, qType)] = r
}

// Count returns the number of times qName/qType has been served.
func (t *ZoneServer) Count(qName string, qType uint16) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if r := t.responses[key(qName, qType)]; r != nil {
		return r.QueryCount
	}

	return 0
}

// Meets the interface definition for dns.Handler
func (t *ZoneServer) ServeDNS(wtr dns.ResponseWriter, q *dns.Msg) {
	m := new(dns.Msg)
	if len(q.Question) != 1 {
		m.SetRcode(q, dns.RcodeFormatError)
		wtr.WriteMsg(m)
		return
	}
	question := q.Question[0]

	t.mu.Lock()
	resp := t.responses[key(question.Name, question.Qtype)]
	if resp != nil {
		resp.QueryCount++
	}
	t.mu.Unlock()

	switch {
	case resp == nil:
		m.SetRcode(q, dns.RcodeNameError)
	case resp.Ignore:
		return
	default:
		m.SetRcode(q, resp.Rcode)
		if resp.Rcode == dns.RcodeSuccess {
			m.Answer = resp.Answer
		}
	}

	err := wtr.WriteMsg(m)
	if err != nil {
		fmt.Println("Alert: WriteMsg error:", err)
	}
}
