package main

import (
	"strings"
	"testing"

	"github.com/markdingo/nsschain/log"
	"github.com/markdingo/nsschain/mock"
)

// Why not?
func TestVersion(t *testing.T) {
	out := &mock.IOWriter{}
	log.SetOut(out)
	cfg := newConfig()
	cfg.printVersion()
	got := out.String()
	if !strings.Contains(got, "Program:") ||
		!strings.Contains(got, "Project:") ||
		!strings.Contains(got, "Inspiration:") ||
		!strings.Contains(got, programName) ||
		!strings.Contains(got, cfg.projectURL) {
		t.Error("Unexpected version output", got)
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := newConfig()
	if cfg.chain != defaultChain {
		t.Error("Expected default chain", defaultChain, "not", cfg.chain)
	}
	if cfg.port != defaultPort || cfg.parallel != defaultParallel {
		t.Error("Wrong numeric defaults", cfg.port, cfg.parallel)
	}
	for _, name := range strings.Fields(defaultChain) {
		if _, ok := defaultSources[name]; !ok {
			t.Error("Default chain name has no default source", name)
		}
	}
}
