package main

import (
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/markdingo/nsschain/log"
)

type parseResult int // This is a ternary variable
const (
	parseStop     parseResult = iota // No error, but don't continue
	parseContinue                    // No errors and continue
	parseFailed                      // Errors, do not continue
)

// parseOptions populates t.cfg from the command line and leaves any remaining arguments,
// the names to resolve, in t.names. As with most flag packages there is little control
// over the formatting of the usage output, so some of the option descriptions carry a
// trailing \n to space out the denser options.
func (t *nssChain) parseOptions(args []string) parseResult {
	var helpFlag, versionFlag bool

	name := programName
	if len(args) > 0 {
		name = args[0]
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Consider '-h' for command-line usage")
	}

	fs.SetOutput(log.Out())

	// Non-config flags

	fs.BoolVarP(&helpFlag, "help", "h", false, "Print command-line usage")
	fs.BoolVarP(&versionFlag, "version", "v", false, "Print version and origin URL")

	// config flags

	fs.BoolVar(&t.cfg.logMajorFlag, "log-major", false, "Log major events to Stdout")
	fs.BoolVar(&t.cfg.logMinorFlag, "log-minor", false,
		"Log minor events to Stdout - this implies --log-major")
	fs.BoolVar(&t.cfg.logDebugFlag, "log-debug", false,
		"Log debug events to Stdout - this implies --log-minor")
	fs.StringVar(&t.cfg.logLevel, "log-level", "",
		`Set the log level by name: silent, major, minor or debug. This
overrides any of the --log-* flags.`)

	fs.StringVar(&t.cfg.chain, "chain", t.cfg.chain,
		`The action chain. Sources are consulted in order and each may
be followed by bracketed STATUS=action pairs where STATUS is
one of SUCCESS, NOTFOUND or UNAVAIL (optionally negated with
'!') and action is one of return, continue or merge, eg:
"files [SUCCESS=merge] dns [NOTFOUND=return] files".`)
	fs.Uint16Var(&t.cfg.port, "port", t.cfg.port, "Port number placed in every address record")
	fs.StringVar(&t.cfg.family, "family", t.cfg.family,
		"Address family to resolve: unspec, inet or inet6")
	fs.StringVar(&t.cfg.socket, "socket", "",
		"Restrict records to one socket type: stream, dgram or raw")
	fs.BoolVar(&t.cfg.canonical, "canonical", false,
		"Print the canonical name ahead of the address records")
	fs.DurationVar(&t.cfg.timeout, "timeout", t.cfg.timeout,
		"Maximum time allowed to resolve each name")
	fs.StringVar(&t.cfg.resolvConf, "resolv-conf", t.cfg.resolvConf,
		"resolv.conf used by dns sources which have no explicit servers")
	fs.BoolVar(&t.cfg.trace, "trace", false,
		"Print the source, status and action of each chain step")

	fs.StringVar(&t.cfg.scenarios, "scenarios", "",
		`Run the scenarios in this YAML file instead of resolving names
from the command line.
`)
	fs.IntVar(&t.cfg.parallel, "parallel", t.cfg.parallel,
		"Maximum number of scenarios run concurrently")

	// config String Arrays

	fs.StringArrayVar(&t.cfg.sources, "source", []string{},
		`Bind a chain name to a data source. Forms are 'name=files:PATH',
'name=dns', 'name=dns:SERVER[,SERVER...]', 'name=notfound' and
'name=unavail'. Unbound names in the default chain use
'files=files:/etc/hosts' and 'dns=dns'.
`)
	fs.StringArrayVar(&t.cfg.expect, "expect", []string{},
		`Verify that this line appears exactly once in the output, eg
'address: STREAM/TCP 192.0.2.1 80'.
`)

	////////////////////////////////////////

	// Neither "flag" nor "spf13/pflag" detect duplicate options so we manage them
	// ourselves.

	dupes := make(map[string]bool) // True means dupes are ok

	dupes["help"] = true    // Documentation options that never resolve anything
	dupes["version"] = true // can be duplicate because the user may be fumbling
	// around trying to work it out.

	dupes["source"] = true // These are legitimately allowed multiple times and
	dupes["expect"] = true // nsschain honors all values.

	fs.SetInterspersed(false) // Names follow options
	err := fs.ParseAll(args[1:],
		func(f *flag.Flag, v string) error {
			if tf, ok := dupes[f.Name]; ok {
				if tf {
					return fs.Set(f.Name, v)

				}
				return fmt.Errorf("Duplicate option '--%v %v' not allowed",
					f.Name, v)
			}
			dupes[f.Name] = false
			return fs.Set(f.Name, v)
		})

	if err != nil {
		fmt.Fprintln(log.Out(), "Error:", err.Error())
		return parseFailed
	}

	// Handle all documentation options locally

	if helpFlag {
		printUsage(fs)
		fmt.Fprintln(log.Out())
		t.cfg.printVersion()
		return parseStop
	}

	if versionFlag {
		t.cfg.printVersion()
		return parseStop
	}

	t.names = fs.Args()
	if len(t.cfg.scenarios) > 0 && len(t.names) > 0 {
		fmt.Fprintln(log.Out(), "Error: Names cannot be resolved with --scenarios")
		return parseFailed
	}
	if len(t.cfg.scenarios) == 0 && len(t.names) == 0 {
		fmt.Fprintln(log.Out(), "Error: Need at least one name to resolve. Consider '-h'")
		return parseFailed
	}

	return parseContinue
}

// I trust all output devices can render UTF-8 these days otherwise the ellipses will look
// a bit odd.
func printUsage(fs *flag.FlagSet) {
	o := log.Out()
	fmt.Fprintln(o, "NAME")
	fmt.Fprintln(o, " ", programName, "-- resolve names through a configurable chain of sources")
	fmt.Fprintln(o)
	fmt.Fprintln(o, "SYNOPSIS")
	fmt.Fprintln(o, "     nsschain -h | --help | -v | --version")
	fmt.Fprintln(o, `     nsschain [--chain spec] [--source name=type[:arg]]…
              [--port number] [--family unspec|inet|inet6]
              [--socket stream|dgram|raw] [--canonical]
              [--expect line]… [--timeout time.Duration=10s]
              [--resolv-conf path] [--trace]
              [--log-major] [--log-minor] [--log-debug] [--log-level name]
              name…
     nsschain --scenarios file [--parallel N]`)

	fmt.Fprintln(o)
	fmt.Fprintln(o, "DESCRIPTION")
	fmt.Fprintln(o, `     nsschain looks up each name across the sources named in --chain.
     After each source the configured action decides whether to stop with
     that source's result (return), add its records to the result and keep
     going (merge), or ignore it and keep going (continue). Merged records
     are deduplicated and printed in first-seen order.`)
	fmt.Fprintln(o)
	fmt.Fprintln(o, "OPTIONS")
	fs.PrintDefaults()
}
