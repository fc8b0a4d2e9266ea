package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

type logLevel int

const (
	SilentLevel logLevel = iota
	MajorLevel
	MinorLevel
	DebugLevel
)

var (
	majorPrefix = ""
	minorPrefix = "  "
	debugPrefix = "   Dbg:"

	mu    sync.RWMutex // Protects out and level
	out   io.Writer
	level logLevel
)

func init() {
	out = os.Stdout
}

func (t logLevel) String() string {
	switch t {
	case MajorLevel:
		return "Major"
	case MinorLevel:
		return "Minor"
	case DebugLevel:
		return "Debug"
	}

	return "Silent"
}

// ParseLevel converts a level name, as produced by String(), back into a logLevel. The
// comparison is case-insensitive.
func ParseLevel(s string) (logLevel, error) {
	for _, l := range []logLevel{SilentLevel, MajorLevel, MinorLevel, DebugLevel} {
		if strings.EqualFold(s, l.String()) {
			return l, nil
		}
	}

	return SilentLevel, fmt.Errorf("unknown log level '%s'", s)
}

// SetOut changes the output of logging to the supplied io.Writer. The default is
// os.Stdout. The supplied io.Writer must never be nil.
func SetOut(w io.Writer) {
	if w == nil {
		panic("log.SetOut() called with a nil io.Writer")
	}
	mu.Lock()
	out = w
	mu.Unlock()
}

// Out returns the current io.Writer for specialist output functions which are not
// controlled by log levels. The return value will never be nil.
func Out() io.Writer {
	mu.RLock()
	defer mu.RUnlock()

	return out
}

// SetLevel sets the current logging level.
func SetLevel(l logLevel) {
	mu.Lock()
	level = l
	mu.Unlock()
}

func Level() logLevel {
	mu.RLock()
	defer mu.RUnlock()

	return level
}

// IfMajor returns true if Major logging is written to the output stream. Callers use the
// If* functions when evaluation of the log arguments is expensive, such as rendering a
// complete chain trace.
func IfMajor() bool {
	return Level() >= MajorLevel
}

func IfMinor() bool {
	return Level() >= MinorLevel
}

func IfDebug() bool {
	return Level() >= DebugLevel
}

// Majorf provides an approximate fmt.Printf equivalent interface to logging. Output is
// only generated if the level is >= Major. A newline is always added to the end of the
// output so the caller should not have that in their string.
func Majorf(format string, a ...interface{}) (n int, err error) {
	if IfMajor() {
		return prefixAndPrintLines(fmt.Sprintf(format, a...), majorPrefix)
	}

	return 0, nil
}

// Major provides a fmt.Print like interface to logging. Output is only generated if the
// level is >= Major. Major uses fmt.Sprint to generate the output line thus it inherits
// the feature whereby spaces are added between operands when neither is a string.
func Major(a ...interface{}) (n int, err error) {
	if IfMajor() {
		return prefixAndPrintLines(fmt.Sprint(a...), majorPrefix)
	}

	return 0, nil
}

// Minorf is Majorf for Minor level output.
func Minorf(format string, a ...interface{}) (n int, err error) {
	if IfMinor() {
		return prefixAndPrintLines(fmt.Sprintf(format, a...), minorPrefix)
	}

	return 0, nil
}

func Minor(a ...interface{}) (n int, err error) {
	if IfMinor() {
		return prefixAndPrintLines(fmt.Sprint(a...), minorPrefix)
	}

	return 0, nil
}

// Debugf is Majorf for Debug level output.
func Debugf(format string, a ...interface{}) (n int, err error) {
	if IfDebug() {
		return prefixAndPrintLines(fmt.Sprintf(format, a...), debugPrefix)
	}

	return 0, nil
}

func Debug(a ...interface{}) (n int, err error) {
	if IfDebug() {
		return prefixAndPrintLines(fmt.Sprint(a...), debugPrefix)
	}

	return 0, nil
}

// prefixAndPrintLines takes potentially multiple lines and sends them to the out stream
// prefixed with the supplied prefix. The whole lot is assembled first so that it reaches
// the writer in one Write call.
func prefixAndPrintLines(lines, prefix string) (int, error) {
	ar := strings.Split(lines, "\n")
	for len(ar) > 1 && len(ar[len(ar)-1]) == 0 { // Chomp trailing empty lines
		ar = ar[:len(ar)-1]
	}

	var sb strings.Builder
	for _, l := range ar {
		sb.WriteString(prefix)
		sb.WriteString(l)
		sb.WriteByte('\n')
	}

	mu.Lock()
	defer mu.Unlock()

	return io.WriteString(out, sb.String())
}
