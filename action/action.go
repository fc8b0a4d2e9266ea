package action

import (
	"fmt"
	"strings"

	"github.com/markdingo/nsschain/source"
)

type Action int

const (
	Return Action = iota
	Continue
	Merge
)

var actionNames = []string{"return", "continue", "merge"}

func (t Action) String() string {
	if t >= 0 && int(t) < len(actionNames) {
		return actionNames[t]
	}

	return fmt.Sprintf("action-%d", int(t))
}

// ParseAction converts an action token, case-insensitive.
func ParseAction(s string) (Action, error) {
	for ix, n := range actionNames {
		if strings.EqualFold(s, n) {
			return Action(ix), nil
		}
	}

	return Return, fmt.Errorf("unknown action '%s'", s)
}

// Default returns the action applied when a step has no override for status.
func Default(s source.Status) Action {
	if s == source.Success {
		return Return
	}

	return Continue
}

// Entry is one explicit override.
type Entry struct {
	Step   int
	Source string
	Status source.Status
	Action Action
}

func (t Entry) String() string {
	return fmt.Sprintf("%d:%s[%s=%s]", t.Step, t.Source, t.Status, t.Action)
}

// ConfigError describes why a specification could not be parsed. Offset is the byte
// offset in Spec at which the problem was detected.
type ConfigError struct {
	Spec   string
	Offset int
	Reason string
}

func (t *ConfigError) Error() string {
	return fmt.Sprintf("chain spec '%s' offset %d: %s", t.Spec, t.Offset, t.Reason)
}
