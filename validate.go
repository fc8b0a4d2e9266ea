package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/markdingo/nsschain/action"
	"github.com/markdingo/nsschain/addrinfo"
	"github.com/markdingo/nsschain/chain"
	"github.com/markdingo/nsschain/resolver"
	"github.com/markdingo/nsschain/source"
)

// Check everything that could likely be a typo or usage error. Mostly check in order
// presented by the flag package. Scenario runs carry their own chains and sources so only
// the scenario options are checked for them.
func (t *nssChain) ValidateCommandLineOptions() error {
	if len(t.cfg.scenarios) > 0 {
		if t.cfg.parallel < 1 {
			return fmt.Errorf("--parallel must be at least 1")
		}
		return nil
	}

	var err error
	t.table, err = action.Parse(t.cfg.chain)
	if err != nil {
		return fmt.Errorf("--chain: %w", err)
	}

	t.query.Port = t.cfg.port
	t.query.Canonical = t.cfg.canonical
	t.query.Family, err = addrinfo.ParseFamily(t.cfg.family)
	if err != nil {
		return fmt.Errorf("--family: %w", err)
	}
	t.query.SocketType, err = addrinfo.ParseSocketType(t.cfg.socket)
	if err != nil {
		return fmt.Errorf("--socket: %w", err)
	}

	if t.cfg.timeout < time.Millisecond {
		return fmt.Errorf("--timeout must be at least 1ms")
	}

	bound := make(map[string]bool)
	for _, s := range t.cfg.sources {
		src, err := t.newSource(s)
		if err != nil {
			return fmt.Errorf("--source %s: %w", s, err)
		}
		if bound[src.Name()] {
			return fmt.Errorf("Duplicate --source for '%s'", src.Name())
		}
		bound[src.Name()] = true
		t.sources = append(t.sources, src)
	}

	// Fill in any defaults for chain names not explicitly bound

	for _, name := range t.table.Sources() {
		if bound[name] {
			continue
		}
		def, ok := defaultSources[name]
		if !ok {
			return fmt.Errorf("--chain source '%s' has no --source binding", name)
		}
		src, err := t.newSource(name + "=" + def)
		if err != nil {
			return fmt.Errorf("default source %s=%s: %w", name, def, err)
		}
		bound[name] = true
		t.sources = append(t.sources, src)
	}

	used := make(map[string]bool)
	for _, name := range t.table.Sources() {
		used[name] = true
	}
	for _, src := range t.sources {
		if !used[src.Name()] {
			warning(nil, "--source", src.Name(), "is not used by --chain")
		}
	}

	t.evaluator, err = chain.New(t.table, t.sources...)

	return err
}

// newSource converts a --source value of the form name=type[:arg] into a Source.
func (t *nssChain) newSource(s string) (source.Source, error) {
	name, spec, ok := strings.Cut(s, "=")
	if !ok || len(name) == 0 || len(spec) == 0 {
		return nil, fmt.Errorf("expected name=type[:arg]")
	}
	if strings.ContainsAny(name, " \t[]") {
		return nil, fmt.Errorf("invalid source name '%s'", name)
	}
	typ, arg, _ := strings.Cut(spec, ":")

	switch strings.ToLower(typ) {
	case "files":
		if len(arg) == 0 {
			return nil, fmt.Errorf("files source needs a path")
		}
		return source.NewFiles(name, arg), nil

	case "dns":
		if len(arg) > 0 {
			return source.NewDNS(name, resolver.NewResolver(strings.Split(arg, ",")...)), nil
		}
		r, err := resolver.NewResolverFromFile(t.cfg.resolvConf)
		if err != nil {
			return nil, err
		}
		return source.NewDNS(name, r), nil

	case "notfound":
		return source.NewFailing(name, source.NotFound), nil

	case "unavail":
		return source.NewFailing(name, source.Unavail), nil
	}

	return nil, fmt.Errorf("unknown source type '%s'", typ)
}
