package resolver

import (
	"bufio"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/miekg/dns"

	"github.com/markdingo/nsschain/log"
)

func (t *mockResolver) loadLookupFile(qClass, qType, qName string) (r dns.Msg, fname string, err error) {
	fname = path.Join(t.dir, "lookup", strings.ToUpper(qClass), strings.ToUpper(qType), qName)
	r, err = t.loadFile(fname)

	return
}

// Attempt to open a mock file. If it doesn't exist, return REFUSED. If it does exist and
// is empty return NXDOMAIN. If it's not empty parse as a series of lines with a prefix
// indicating what the line contributes:
//
// A:Answer RR parsed with dns.NewRR()
// RCODE:miekg rcode string - must be uppercase, e.g. SERVFAIL
// ERROR:text - no response at all, the lookup returns an error with this text
// ;; Comment
// Blank lines ignored
// No spaces between the ":" separator
//
// Malformed files are a setup error and panic.
func (t *mockResolver) loadFile(fname string) (r dns.Msg, err error) {
	log.Debug("mock:Resolver:Open:", fname)
	file, oerr := os.Open(fname)
	if oerr != nil { // Assume no exist
		r.MsgHdr.Rcode = dns.RcodeRefused
		return
	}
	defer file.Close()
	rcode := -1 // Means not set

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 || strings.HasPrefix(line, ";;") {
			continue
		}
		ar := strings.SplitN(line, ":", 2)
		if len(ar) != 2 {
			panic("Malformed loadfile " + fname)
		}

		switch ar[0] {
		case "RCODE":
			var ok bool
			rcode, ok = dns.StringToRcode[ar[1]]
			if !ok {
				panic("filemock bad RCODE: " + ar[1])
			}
		case "ERROR":
			err = fmt.Errorf("%s", ar[1])
		case "A":
			rr, perr := dns.NewRR(ar[1])
			if perr != nil {
				panic(perr) // Parse failure is a setup error
			}
			r.Answer = append(r.Answer, rr)
		default:
			panic("filemock bad Section: " + ar[0])
		}
	}

	if rcode == -1 {
		if len(r.Answer) == 0 {
			rcode = dns.RcodeNameError
		} else {
			rcode = dns.RcodeSuccess
		}
	}
	r.MsgHdr.Rcode = rcode

	return
}
