/*
Package hosts provides a static name to address table loaded from the conventional
line-oriented hosts file format:

	# comment
	127.0.0.1   localhost localhost.localdomain
	192.0.2.1   example.org www.example.org

The first name on a line is the canonical name and any subsequent names are aliases. A
name appearing on many lines accumulates every address in file order, which is how a
hosts file with "multi on" semantics is read.

Addresses are stored as A and AAAA dns.RRs so duplicates are detected the same way as for
any other RR. A Table is read-only once Parse returns and is then safe for concurrent
Lookup calls.

Expected usage is:

	tbl, err := hosts.Parse(reader)
	addrs, canonical, found := tbl.Lookup("example.org")
*/
package hosts
