package source

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/markdingo/nsschain/addrinfo"
	"github.com/markdingo/nsschain/hosts"
	"github.com/markdingo/nsschain/log"
)

// Files resolves names from a hosts table. The table is re-read on every Lookup.
type Files struct {
	name string
	open func() (io.ReadCloser, error)
}

// NewFiles creates a Files source backed by the hosts file at path. The file need not
// exist yet; a missing file is reported as Unavail at lookup time.
func NewFiles(name, path string) *Files {
	return &Files{name: name, open: func() (io.ReadCloser, error) { return os.Open(path) }}
}

// NewFilesFromOpener creates a Files source which calls open for a fresh reader on every
// Lookup.
func NewFilesFromOpener(name string, open func() (io.ReadCloser, error)) *Files {
	return &Files{name: name, open: open}
}

func (t *Files) Name() string {
	return t.name
}

func (t *Files) Lookup(ctx context.Context, q addrinfo.Query) Outcome {
	rc, err := t.open()
	if err != nil {
		return t.unavail(err)
	}
	defer rc.Close()

	tbl, err := hosts.Parse(rc)
	if err != nil {
		return t.unavail(err)
	}

	addrs, canonical, found := tbl.Lookup(q.Name)
	if !found {
		return Missing()
	}

	return Found(canonical, addrinfo.Expand(q, addrs))
}

func (t *Files) unavail(err error) Outcome {
	err = fmt.Errorf("%s: %w", t.name, err)
	log.Minor(err.Error())

	return Transient(err)
}
