package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/markdingo/nsschain/addrinfo"
	"github.com/markdingo/nsschain/log"
	"github.com/markdingo/nsschain/mock"
)

func TestValidate(t *testing.T) {
	out := &mock.IOWriter{}
	log.SetOut(out)

	dir := t.TempDir()
	rc := filepath.Join(dir, "resolv.conf")
	err := os.WriteFile(rc, []byte("nameserver 127.0.0.1\n"), 0600)
	if err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		chain   string
		sources []string
		modify  func(*config)
		expect  string // Error substring, empty means success
	}{
		{"files", nil, nil, ""},
		{"files dns", nil, nil, ""},
		{"files dns", []string{"dns=dns:192.0.2.53,192.0.2.54"}, nil, ""},
		{"files [SUCCESS=merge] files", []string{"files=files:testdata/hosts"}, nil, ""},
		{"a [UNAVAIL=return] b", []string{"a=unavail", "b=notfound"}, nil, ""},
		{"files [SUCCESS=bogus]", nil, nil, "--chain"},
		{"", nil, nil, "--chain"},
		{"files", nil, func(c *config) { c.family = "ipx" }, "--family"},
		{"files", nil, func(c *config) { c.socket = "seqpacket" }, "--socket"},
		{"files", nil, func(c *config) { c.timeout = 0 }, "--timeout"},
		{"files", []string{"bad"}, nil, "expected name=type"},
		{"files", []string{"=files:/x"}, nil, "expected name=type"},
		{"files", []string{"a b=files:/x"}, nil, "invalid source name"},
		{"files", []string{"files=nis"}, nil, "unknown source type"},
		{"files", []string{"files=files"}, nil, "needs a path"},
		{"files", []string{"files=files:/a", "files=files:/b"}, nil, "Duplicate --source"},
		{"nis", nil, nil, "has no --source binding"},
		{"dns", nil, func(c *config) { c.resolvConf = filepath.Join(dir, "missing") }, "default source"},
		{"dns", []string{"dns=dns"}, func(c *config) { c.resolvConf = filepath.Join(dir, "missing") }, "--source dns=dns"},
	}

	for ix, tc := range testCases {
		cfg := newConfig()
		cfg.chain = tc.chain
		cfg.sources = tc.sources
		cfg.resolvConf = rc
		if tc.modify != nil {
			tc.modify(cfg)
		}
		nc := newNSSChain(cfg)
		err := nc.ValidateCommandLineOptions()
		if len(tc.expect) == 0 {
			if err != nil {
				t.Error(ix, "Unexpected error", err)
				continue
			}
			if nc.evaluator == nil {
				t.Error(ix, "Evaluator not constructed")
			}
			continue
		}
		if err == nil {
			t.Error(ix, "Expected error containing", tc.expect)
			continue
		}
		if !strings.Contains(err.Error(), tc.expect) {
			t.Error(ix, "Expected error containing", tc.expect, "not", err)
		}
	}
}

func TestValidateQuery(t *testing.T) {
	out := &mock.IOWriter{}
	log.SetOut(out)
	cfg := newConfig()
	cfg.chain = "files"
	cfg.port = 443
	cfg.family = "inet6"
	cfg.socket = "dgram"
	cfg.canonical = true
	nc := newNSSChain(cfg)
	if err := nc.ValidateCommandLineOptions(); err != nil {
		t.Fatal(err)
	}
	exp := addrinfo.Query{Port: 443, Family: addrinfo.Inet6, SocketType: addrinfo.Dgram, Canonical: true}
	if nc.query != exp {
		t.Error("Expected", exp, "not", nc.query)
	}
}

func TestValidateUnusedSource(t *testing.T) {
	out := &mock.IOWriter{}
	log.SetOut(out)
	cfg := newConfig()
	cfg.chain = "files"
	cfg.sources = []string{"spare=notfound"}
	nc := newNSSChain(cfg)
	if err := nc.ValidateCommandLineOptions(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Warning: --source spare is not used") {
		t.Error("Expected unused source warning, not", out.String())
	}
}

func TestValidateScenarios(t *testing.T) {
	cfg := newConfig()
	cfg.scenarios = "testdata/scenarios.yaml"
	cfg.chain = "files [SUCCESS=bogus]" // Ignored for scenario runs
	nc := newNSSChain(cfg)
	if err := nc.ValidateCommandLineOptions(); err != nil {
		t.Error("Unexpected error", err)
	}

	cfg.parallel = 0
	if err := nc.ValidateCommandLineOptions(); err == nil {
		t.Error("Expected --parallel error")
	}

	cfg.parallel = 1
	if err := nc.ValidateCommandLineOptions(); err != nil {
		t.Error("Unexpected error", err)
	}
}
