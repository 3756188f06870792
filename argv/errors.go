package argv

import (
	"errors"
	"fmt"
)

// SetupErrorKind categorizes registration-time failures. These are programmer
// errors: they are raised as panics at the call site, never accumulated as
// parse state.
type SetupErrorKind string

const (
	SetupNoKeySpecified  SetupErrorKind = "no_key_specified"
	SetupKeyExists       SetupErrorKind = "key_already_exists"
	SetupNoValueID       SetupErrorKind = "no_value_id_specified"
	SetupVersionExists   SetupErrorKind = "version_already_exists"
	SetupBadInterval     SetupErrorKind = "wrong_minmax_interval"
	SetupBadConstraint   SetupErrorKind = "wrong_constraint"
	SetupBadPrefix       SetupErrorKind = "wrong_prefix"
	SetupNoValues        SetupErrorKind = "argument_takes_no_values"
	SetupBadPattern      SetupErrorKind = "bad_regex_pattern"
	SetupKeyNotFound     SetupErrorKind = "key_not_found"
	SetupMenuNotFound    SetupErrorKind = "help_menu_not_found"
	SetupBadDefaultsFile SetupErrorKind = "bad_defaults_file"
)

// SetupError reports a misconfigured parser, argument or constraint.
type SetupError struct {
	Kind    SetupErrorKind
	Message string
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("argv: %s: %s", e.Kind, e.Message)
}

// setupPanic raises a *SetupError; registration APIs use it the way
// regexp.MustCompile reports bad patterns.
func setupPanic(kind SetupErrorKind, format string, args ...any) {
	panic(&SetupError{Kind: kind, Message: fmt.Sprintf(format, args...)})
}

// ErrValueNotFound is returned by throwing typed accessors when the requested
// value position holds nothing.
var ErrValueNotFound = errors.New("value not found")
