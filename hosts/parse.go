package hosts

import (
	"bufio"
	"fmt"
	"io"
	"net/netip"
	"os"
	"strings"

	"github.com/miekg/dns"
)

// Parse reads a hosts file. Any malformed line is an error which identifies the line
// number; a partially read table is never returned.
func Parse(r io.Reader) (*Table, error) {
	t := NewTable()
	scanner := bufio.NewScanner(r)
	ln := 0
	for scanner.Scan() {
		ln++
		line := scanner.Text()
		if ix := strings.IndexByte(line, '#'); ix >= 0 {
			line = line[:ix]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: address '%s' has no names", ln, fields[0])
		}
		addr, err := netip.ParseAddr(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", ln, err)
		}
		for _, name := range fields[1:] {
			if _, ok := dns.IsDomainName(name); !ok {
				return nil, fmt.Errorf("line %d: invalid name '%s'", ln, name)
			}
		}
		t.Add(addr, fields[1], fields[2:]...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return t, nil
}

// Load opens and parses the named hosts file.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}
