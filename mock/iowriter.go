package mock

import (
	"strings"
	"sync"
)

// IOWriter captures everything written to it. It is safe for concurrent use as the log
// package may be written to by scenarios evaluated in parallel.
type IOWriter struct {
	mu   sync.Mutex
	line []byte
}

func (t *IOWriter) Reset() {
	t.mu.Lock()
	t.line = make([]byte, 0)
	t.mu.Unlock()
}

func (t *IOWriter) Write(b []byte) (int, error) {
	t.mu.Lock()
	t.line = append(t.line, b...)
	t.mu.Unlock()

	return len(b), nil
}

func (t *IOWriter) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return string(t.line)
}

func (t *IOWriter) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.line)
}

// Lines returns the captured output split into lines with the trailing newline removed.
func (t *IOWriter) Lines() []string {
	s := strings.TrimSuffix(t.String(), "\n")
	if len(s) == 0 {
		return nil
	}

	return strings.Split(s, "\n")
}
