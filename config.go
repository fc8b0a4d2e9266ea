package main

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/markdingo/nsschain/dnsutil"
	"github.com/markdingo/nsschain/log"
	"github.com/markdingo/nsschain/pregen"
)

const (
	programName = "nsschain"

	// Kinda subtle, but uppercase HTTPS implies BuildInfo was empty which in turn
	// implies a non-module build. That knowledge my be of some use to someone...
	defaultProjectURL = "HTTPS://github.com/markdingo/nsschain"

	defaultChain    = "files dns"
	defaultPort     = 80
	defaultFamily   = "unspec"
	defaultTimeout  = time.Second * 10
	defaultParallel = 4
)

// defaultSources bind the names in defaultChain. They are only consulted for names which
// have no --source of their own.
var defaultSources = map[string]string{
	"files": "files:/etc/hosts",
	"dns":   "dns",
}

// config defines the global configuration settings used by nsschain. Once set it should
// never be changed as it is shared amongst go-routines without any lock protections.
type config struct {
	projectURL string

	logMajorFlag bool
	logMinorFlag bool
	logDebugFlag bool
	logLevel     string // Alternative to the --log-* flags

	chain     string   // Action chain, eg "files [SUCCESS=merge] dns"
	sources   []string // name=type[:arg] bindings
	port      uint16
	family    string
	socket    string
	canonical bool
	expect    []string // Lines which must appear exactly once in the output
	timeout   time.Duration

	resolvConf string // Used by dns sources with no explicit servers

	scenarios string // Path to scenario file
	parallel  int
	trace     bool // Print the per-step trace of each resolution
}

func newConfig() *config {
	t := &config{
		projectURL: defaultProjectURL,
		chain:      defaultChain,
		port:       defaultPort,
		family:     defaultFamily,
		timeout:    defaultTimeout,
		resolvConf: dnsutil.ResolvConf,
		parallel:   defaultParallel,
	}
	info, ok := debug.ReadBuildInfo()
	if ok && len(info.Main.Path) > 0 {
		t.projectURL = info.Main.Path // Override with embedded if present
	}

	return t
}

func (t *config) printVersion() {
	fmt.Fprintf(log.Out(), "Program:     %s %s (%s)\n",
		programName, pregen.Version, pregen.ReleaseDate)
	fmt.Fprintf(log.Out(), "Project:     %s\n", t.projectURL)
	fmt.Fprintf(log.Out(), "Inspiration: %s\n",
		"https://man7.org/linux/man-pages/man5/nsswitch.conf.5.html")
}
