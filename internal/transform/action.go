package transform

import (
	"fmt"
	"strings"
)

// Action identifies one of the String Modifiers commands that rewrite text.
type Action int

const (
	// ActionNone is the zero value and never rewrites anything.
	ActionNone Action = iota
	ActionBraces
	ActionBrackets
	ActionQuotes
	ActionCustom
	ActionCharArray
	ActionWordArray
)

// Actions lists the text actions in menu order.
var Actions = []Action{
	ActionBraces,
	ActionBrackets,
	ActionQuotes,
	ActionCustom,
	ActionCharArray,
	ActionWordArray,
}

// String returns the action's command-line name.
func (a Action) String() string {
	switch a {
	case ActionBraces:
		return "braces"
	case ActionBrackets:
		return "brackets"
	case ActionQuotes:
		return "quotes"
	case ActionCustom:
		return "custom"
	case ActionCharArray:
		return "char-array"
	case ActionWordArray:
		return "word-array"
	default:
		return "none"
	}
}

// actionAliases maps accepted names (lowercase) to actions.
var actionAliases = map[string]Action{
	"braces":        ActionBraces,
	"brackets":      ActionBrackets,
	"quotes":        ActionQuotes,
	"custom":        ActionCustom,
	"char-array":    ActionCharArray,
	"chararray":     ActionCharArray,
	"str2chararray": ActionCharArray,
	"word-array":    ActionWordArray,
	"wordarray":     ActionWordArray,
	"str2wordarray": ActionWordArray,
}

// ParseAction resolves a case-insensitive action name. Both the command-line
// names ("char-array") and the menu action names ("Str2CharArray") are accepted.
func ParseAction(name string) (Action, error) {
	if a, ok := actionAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return a, nil
	}
	return ActionNone, fmt.Errorf("%w: %q", ErrUnknownAction, name)
}

// Options carries the user-configurable parts of the transformations.
type Options struct {
	// CustomStart and CustomEnd are used by ActionCustom.
	CustomStart string
	CustomEnd   string

	// CharArrayChoice and WordArrayChoice index Palette.
	CharArrayChoice int
	WordArrayChoice int
}

// DefaultOptions returns the options used when no configuration exists.
func DefaultOptions() Options {
	return Options{CustomStart: `"`, CustomEnd: `"`}
}

// Apply runs action over the selection s. It returns false, and no text,
// when s is empty or the action is ActionNone; the caller should then leave
// the document untouched. An out-of-range palette choice is reported as
// ErrChoiceOutOfRange and an undefined action as ErrUnknownAction.
func Apply(action Action, s string, opts Options) (string, bool, error) {
	if s == "" {
		return "", false, nil
	}

	switch action {
	case ActionBraces:
		return Enclose(s, "{", "}"), true, nil
	case ActionBrackets:
		return Enclose(s, "[", "]"), true, nil
	case ActionQuotes:
		return Enclose(s, `"`, `"`), true, nil
	case ActionCustom:
		return Enclose(s, opts.CustomStart, opts.CustomEnd), true, nil
	case ActionCharArray:
		p, err := PairAt(opts.CharArrayChoice)
		if err != nil {
			return "", false, err
		}
		return CharArray(s, p), true, nil
	case ActionWordArray:
		p, err := PairAt(opts.WordArrayChoice)
		if err != nil {
			return "", false, err
		}
		return WordArray(s, p), true, nil
	case ActionNone:
		return "", false, nil
	default:
		return "", false, fmt.Errorf("%w: %d", ErrUnknownAction, int(action))
	}
}
