package dnsutil

import (
	"github.com/miekg/dns"
)

// Make name canonical but lose trailing dot. Host tables and log output never carry the
// trailing dot so names are compared in this form.
func ChompCanonicalName(n string) string {
	n = dns.CanonicalName(n)
	if len(n) > 0 && n[len(n)-1] == '.' {
		n = n[:len(n)-1]
	}

	return n
}
