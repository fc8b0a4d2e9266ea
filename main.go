package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/markdingo/nsschain/action"
	"github.com/markdingo/nsschain/addrinfo"
	"github.com/markdingo/nsschain/chain"
	"github.com/markdingo/nsschain/log"
	"github.com/markdingo/nsschain/pregen"
	"github.com/markdingo/nsschain/source"
)

// nssChain holds everything derived from the command line. It is populated by
// parseOptions and ValidateCommandLineOptions and is read-only thereafter.
type nssChain struct {
	cfg   *config
	names []string // Names to resolve, from the command line

	table     *action.Table
	sources   []source.Source
	evaluator *chain.Evaluator
	query     addrinfo.Query // Template; Name is set per lookup
}

func newNSSChain(cfg *config) *nssChain {
	if cfg == nil {
		cfg = newConfig()
	}

	return &nssChain{cfg: cfg}
}

func reportError(severity string, err error, messages ...string) {
	msg := severity
	if len(messages) > 0 {
		msg += ": " + strings.Join(messages, " ")
	}
	if err != nil {
		msg += ": " + err.Error()
	}
	fmt.Fprintln(log.Out(), msg)
}

func fatal(err error, messages ...string) {
	reportError("Fatal", err, messages...)
	os.Exit(1)
}

func warning(err error, messages ...string) {
	reportError("Warning", err, messages...)
}

// setLogLevel transfers the logging options to the log package. --log-level wins over
// the individual flags.
func (t *nssChain) setLogLevel() error {
	if t.cfg.logMajorFlag {
		log.SetLevel(log.MajorLevel)
	}
	if t.cfg.logMinorFlag {
		log.SetLevel(log.MinorLevel)
	}
	if t.cfg.logDebugFlag {
		log.SetLevel(log.DebugLevel)
	}
	if len(t.cfg.logLevel) > 0 {
		l, err := log.ParseLevel(t.cfg.logLevel)
		if err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
		log.SetLevel(l)
	}

	return nil
}

//////////////////////////////////////////////////////////////////////

func main() {
	t := newNSSChain(nil)
	switch t.parseOptions(os.Args) {
	case parseStop:
		return
	case parseFailed:
		os.Exit(1)
	case parseContinue:
	}

	if err := t.setLogLevel(); err != nil {
		fatal(err)
	}

	log.Majorf("%s %s Starting with Log Level: %s", programName, pregen.Version, log.Level())

	// Validate everything that is likely a typo or usage error
	err := t.ValidateCommandLineOptions()
	if err != nil {
		fatal(err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	ok, err := t.run(ctx)
	cancel()
	if err != nil {
		fatal(err)
	}
	if !ok {
		os.Exit(1)
	}
}
