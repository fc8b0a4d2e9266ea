package dnsutil

import (
	"strings"
)

// shortenedError is a wrapped error so the caller doesn't lose the original error
// context, if that is of interest to them.
type shortenedError struct {
	msg string
	err error
}

func (t *shortenedError) Error() string {
	return t.msg
}

func (t *shortenedError) Unwrap() error {
	return t.err
}

// ShortenLookupError turns a long unwieldy network error into a succinct one in the
// common cases. Source adapters put these into Unavail outcomes where they end up in log
// lines and scenario reports.
func ShortenLookupError(err error) error {
	if err == nil {
		return err
	}
	m := err.Error()
	switch {
	case strings.Contains(m, "i/o timeout"):
		err = &shortenedError{msg: "Timeout", err: err}
	case strings.Contains(m, "connection refused"):
		err = &shortenedError{msg: "Connection refused", err: err}
	case strings.Contains(m, "network is unreachable"):
		err = &shortenedError{msg: "Network unreachable", err: err}
	}

	return err
}
