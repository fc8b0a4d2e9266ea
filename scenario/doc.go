/*
Package scenario loads YAML files describing resolution scenarios and runs them. A
scenario names a chain specification, a query and the lines expected in the formatted
output, each of which must appear exactly once:

	sources:
	  files: {type: files, path: hosts}
	  dns:   {type: dns, servers: [192.0.2.53]}
	scenarios:
	  - name: continue
	    chain: "files [SUCCESS=continue] files"
	    query: {name: example.org, port: 80, family: inet, canonical: true}
	    expect:
	      - "address: STREAM/TCP 192.0.0.1 80"
	  - name: unknown
	    chain: "files"
	    query: {name: nosuch.example.org}
	    fail: true

Relative hosts file paths are relative to the directory of the YAML file.

Every scenario is run with its own action Table, Evaluator and freshly built Sources so
scenarios share no mutable state and may be run concurrently.
*/
package scenario
