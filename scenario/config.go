package scenario

import (
	"fmt"
	"io"
	"net/netip"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/markdingo/nsschain/action"
	"github.com/markdingo/nsschain/addrinfo"
	"github.com/markdingo/nsschain/dnsutil"
	"github.com/markdingo/nsschain/resolver"
	"github.com/markdingo/nsschain/source"
)

const (
	TypeFiles  = "files"
	TypeDNS    = "dns"
	TypeStatic = "static"
)

// SourceConfig describes how to build one Source.
type SourceConfig struct {
	Type       string              `yaml:"type"`
	Path       string              `yaml:"path"`        // files
	Servers    []string            `yaml:"servers"`     // dns
	ResolvConf string              `yaml:"resolv_conf"` // dns, used if Servers is empty
	Hosts      map[string][]string `yaml:"hosts"`       // static
	Status     string              `yaml:"status"`      // static, forces every lookup to this status
}

type Query struct {
	Name      string `yaml:"name"`
	Port      uint16 `yaml:"port"`
	Family    string `yaml:"family"`
	Socket    string `yaml:"socket"`
	Canonical bool   `yaml:"canonical"`
}

type Scenario struct {
	Name    string                  `yaml:"name"`
	Chain   string                  `yaml:"chain"`
	Sources map[string]SourceConfig `yaml:"sources"` // Overrides File.Sources by name
	Query   Query                   `yaml:"query"`
	Expect  []string                `yaml:"expect"`
	Fail    bool                    `yaml:"fail"` // Resolution is expected to fail
}

type File struct {
	Sources   map[string]SourceConfig `yaml:"sources"`
	Scenarios []Scenario              `yaml:"scenarios"`

	dir string // Base for relative paths
}

// Load reads and validates a scenario file.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scenario file: %w", err)
	}
	defer f.Close()

	file, err := Parse(f, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return file, nil
}

// Parse decodes and validates a scenario file. dir is the base for relative hosts paths.
func Parse(r io.Reader, dir string) (*File, error) {
	file := &File{dir: dir}
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(file); err != nil {
		return nil, fmt.Errorf("parsing scenario file: %w", err)
	}
	if err := file.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario file: %w", err)
	}

	return file, nil
}

// Validate checks everything which can be checked without performing lookups, so all
// configuration errors are reported before any scenario runs.
func (t *File) Validate() error {
	if len(t.Scenarios) == 0 {
		return fmt.Errorf("no scenarios")
	}
	names := make(map[string]bool)
	for ix, sc := range t.Scenarios {
		if len(sc.Name) == 0 {
			return fmt.Errorf("scenario %d has no name", ix)
		}
		if names[sc.Name] {
			return fmt.Errorf("duplicate scenario name '%s'", sc.Name)
		}
		names[sc.Name] = true
		if _, err := t.build(sc); err != nil {
			return fmt.Errorf("scenario '%s': %w", sc.Name, err)
		}
		if _, err := sc.Query.toQuery(); err != nil {
			return fmt.Errorf("scenario '%s': %w", sc.Name, err)
		}
	}

	return nil
}

func (t Query) toQuery() (addrinfo.Query, error) {
	q := addrinfo.Query{Name: t.Name, Port: t.Port, Canonical: t.Canonical}
	if len(q.Name) == 0 {
		return q, fmt.Errorf("query has no name")
	}
	var err error
	q.Family, err = addrinfo.ParseFamily(t.Family)
	if err != nil {
		return q, err
	}
	q.SocketType, err = addrinfo.ParseSocketType(t.Socket)
	if err != nil {
		return q, err
	}

	return q, nil
}

// built is everything one scenario needs, constructed fresh for every run.
type built struct {
	table   *action.Table
	sources []source.Source
}

// build parses the chain and constructs a new Source for each distinct name it uses.
func (t *File) build(sc Scenario) (*built, error) {
	tbl, err := action.Parse(sc.Chain)
	if err != nil {
		return nil, err
	}
	b := &built{table: tbl}
	done := make(map[string]bool)
	for _, name := range tbl.Sources() {
		if done[name] {
			continue
		}
		done[name] = true
		cfg, ok := sc.Sources[name]
		if !ok {
			cfg, ok = t.Sources[name]
		}
		if !ok {
			return nil, fmt.Errorf("source '%s' not defined", name)
		}
		src, err := t.newSource(name, cfg)
		if err != nil {
			return nil, fmt.Errorf("source '%s': %w", name, err)
		}
		b.sources = append(b.sources, src)
	}

	return b, nil
}

func (t *File) newSource(name string, cfg SourceConfig) (source.Source, error) {
	switch cfg.Type {
	case TypeFiles:
		if len(cfg.Path) == 0 {
			return nil, fmt.Errorf("files source needs a path")
		}
		path := cfg.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(t.dir, path)
		}
		return source.NewFiles(name, path), nil

	case TypeDNS:
		if len(cfg.Servers) > 0 {
			return source.NewDNS(name, resolver.NewResolver(cfg.Servers...)), nil
		}
		rc := cfg.ResolvConf
		if len(rc) == 0 {
			rc = dnsutil.ResolvConf
		}
		r, err := resolver.NewResolverFromFile(rc)
		if err != nil {
			return nil, err
		}
		return source.NewDNS(name, r), nil

	case TypeStatic:
		if len(cfg.Status) > 0 {
			s, err := source.ParseStatus(cfg.Status)
			if err != nil {
				return nil, err
			}
			if s != source.Success {
				return source.NewFailing(name, s), nil
			}
		}
		table := make(map[string][]netip.Addr)
		for host, addrs := range cfg.Hosts {
			for _, a := range addrs {
				addr, err := netip.ParseAddr(a)
				if err != nil {
					return nil, fmt.Errorf("host '%s': %w", host, err)
				}
				table[host] = append(table[host], addr)
			}
		}
		return source.NewStatic(name, table), nil
	}

	return nil, fmt.Errorf("unknown source type '%s'", cfg.Type)
}
