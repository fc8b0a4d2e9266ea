/*
Package source provides the adapters which sit between a resolution chain and its
backends. Every adapter answers a Lookup with an Outcome: Success with records, NotFound,
or Unavail. Lookups never return errors and never panic; a backend fault, including a
malformed hosts file, becomes an Unavail Outcome so one misconfigured source cannot abort
the chain.

Adapters hold no state between lookups. The Files adapter re-reads its hosts file on every
call so repeated or reordered lookups always see the same behavior.
*/
package source
