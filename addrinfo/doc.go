/*
Package addrinfo defines the values which flow through a resolution chain: the Query being
resolved, the address Records produced by sources and the Result which accumulates records
across the chain.

A Record is a plain value with structural equality. A Result never holds two equal Records
and always presents them in first-seen order, regardless of how many times a record is
subsequently added.
*/
package addrinfo
