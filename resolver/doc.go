/*
Package resolver defines an interface and provides a concrete implementation of the
network address lookups needed by the DNS source adapter. The implementation exchanges A
and AAAA queries directly with configured servers via the github.com/miekg/dns package so
that response codes are visible to the caller; net.Resolver hides them.

The sole reason this package presents resolving as an interface is so it can be mocked for
testing purposes.
*/
package resolver
