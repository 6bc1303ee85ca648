package cmdline

import (
	"errors"
	"fmt"
)

// UnknownCommandError is returned when the first token of a line is not a
// registered keyword.
type UnknownCommandError struct {
	Keyword string
}

func (e *UnknownCommandError) Error() string {
	return "I'm sorry, but I don't know what that means!"
}

// ErrorKind classifies a grammar violation.
type ErrorKind int

const (
	ArgumentNotAllowed ErrorKind = iota + 1
	MultipleArguments
	UnknownSwitch
	DuplicateSwitch
	MissingArgument
	MissingSwitch
)

var kindNames = map[ErrorKind]string{
	ArgumentNotAllowed: "argument-not-allowed",
	MultipleArguments:  "multiple-arguments",
	UnknownSwitch:      "unknown-switch",
	DuplicateSwitch:    "duplicate-switch",
	MissingArgument:    "missing-argument",
	MissingSwitch:      "missing-switch",
}

func (k ErrorKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// GrammarError is a help-style failure: it carries the grammar of the
// command being parsed so callers can print its usage.
type GrammarError struct {
	Kind    ErrorKind
	Message string
	// Switch names the offending switch for UnknownSwitch, DuplicateSwitch
	// and MissingSwitch.
	Switch  string
	Grammar *Grammar
}

func (e *GrammarError) Error() string { return e.Message }

func newGrammarError(g *Grammar, kind ErrorKind, sw string) *GrammarError {
	var msg string
	switch kind {
	case ArgumentNotAllowed:
		msg = "This command should not have an argument!"
	case MultipleArguments:
		msg = "Multiple arguments supplied!"
	case UnknownSwitch:
		if sw == "" {
			msg = "I don't know what this switch is: -"
		} else {
			msg = "I don't know what this switch is: " + sw
		}
	case DuplicateSwitch:
		msg = "Multiple values supplied for " + sw + " switch!"
	case MissingArgument:
		msg = g.emptyArgMessage()
	case MissingSwitch:
		msg = "You need to give me this switch: " + sw
	}
	return &GrammarError{Kind: kind, Message: msg, Switch: sw, Grammar: g}
}

// IsHelp reports whether err carries a grammar that can be rendered as usage.
func IsHelp(err error) (*Grammar, bool) {
	var ge *GrammarError
	if errors.As(err, &ge) && ge.Grammar != nil {
		return ge.Grammar, true
	}
	return nil, false
}

// KindOf returns the violation kind of err, or zero if err is not a
// GrammarError.
func KindOf(err error) ErrorKind {
	var ge *GrammarError
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return 0
}
