package counter

import (
	"fmt"
	"strings"
)

// ActionKind identifies one of the four UI actions.
type ActionKind int

const (
	ActionStart ActionKind = iota + 1
	ActionIncrement
	ActionRaiseError
	ActionComplete
)

func (k ActionKind) String() string {
	switch k {
	case ActionStart:
		return "start"
	case ActionIncrement:
		return "inc"
	case ActionRaiseError:
		return "error"
	case ActionComplete:
		return "complete"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// Action is one UI event. Message is only read for ActionRaiseError.
type Action struct {
	Kind    ActionKind
	Message string
}

var (
	Start     = Action{Kind: ActionStart}
	Increment = Action{Kind: ActionIncrement}
	Complete  = Action{Kind: ActionComplete}
)

// RaiseError returns the action raising message.
func RaiseError(message string) Action {
	return Action{Kind: ActionRaiseError, Message: message}
}

// String returns the script token for the action, as accepted by ParseAction.
func (a Action) String() string {
	if a.Kind == ActionRaiseError && a.Message != "" {
		return a.Kind.String() + ":" + a.Message
	}

	return a.Kind.String()
}

var actionNames = map[string]ActionKind{
	"start":     ActionStart,
	"new":       ActionStart,
	"inc":       ActionIncrement,
	"increment": ActionIncrement,
	"+":         ActionIncrement,
	"error":     ActionRaiseError,
	"raise":     ActionRaiseError,
	"complete":  ActionComplete,
	"done":      ActionComplete,
}

// ParseAction parses a single script token: start, inc, complete, or
// error[:message]. Everything after the first colon is the message, verbatim.
func ParseAction(token string) (Action, error) {
	name, message, hasMessage := strings.Cut(strings.TrimSpace(token), ":")

	kind, ok := actionNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, token)
	}

	if hasMessage && kind != ActionRaiseError {
		return Action{}, fmt.Errorf("%w: %q takes no message", ErrUnknownAction, name)
	}

	return Action{Kind: kind, Message: message}, nil
}

// ParseScript parses a comma or newline separated list of actions.
// Blank entries are skipped.
func ParseScript(script string) ([]Action, error) {
	tokens := strings.FieldsFunc(script, func(r rune) bool {
		return r == ',' || r == '\n'
	})

	actions := make([]Action, 0, len(tokens))
	for i, token := range tokens {
		if strings.TrimSpace(token) == "" {
			continue
		}

		a, err := ParseAction(token)
		if err != nil {
			return nil, fmt.Errorf("action %d: %w", i+1, err)
		}
		actions = append(actions, a)
	}

	return actions, nil
}
