// Copyright (c) 2026 Mark Delany. All rights reserved. Use of this source code is
// governed by a BSD-style license that can be found in the LICENSE file.

// This file exists so that "go doc github.com/markdingo/nsschain" displays something
// useful.

/*
nsschain resolves host names through an ordered chain of data sources, such as a hosts
file and DNS, in the manner of the hosts line in nsswitch.conf. After each source an
operator-configured action decides whether to stop with that source's answer (return),
fold its answer into an accumulated result and keep going (merge), or disregard it and
keep going (continue).

Results are printed one address record per line, eg:

	address: STREAM/TCP 192.0.2.1 80

and can be verified with --expect so that every expected line must appear exactly once.
Collections of chains and expectations can be run as YAML scenario files with
--scenarios.

Project site: https://github.com/markdingo/nsschain
*/
package main
