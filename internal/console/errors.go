package console

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrAlreadyInvited blocks an invite whose email is already among the league's members.
	ErrAlreadyInvited = errors.New("this email has already been invited to the league")
	// ErrNoActiveForm is returned when an action needs a form that is not open.
	ErrNoActiveForm = errors.New("no form is open for this action")
	// ErrUnknownField is returned by SetField for names outside the form.
	ErrUnknownField = errors.New("unknown form field")
	// ErrUnknownLeague is returned when an id is not in the fetched list.
	ErrUnknownLeague = errors.New("league is not in the current list")
)

// ValidationError blocks a submission that fails the form rules of its mode.
// No API call is made.
type ValidationError struct {
	Mode   Mode
	Fields []string
	// InvalidEmail is set when the invite email is present but malformed.
	InvalidEmail bool
}

func (e *ValidationError) Error() string {
	if e.InvalidEmail {
		return EmailErrorMessage
	}
	return fmt.Sprintf("please fill in: %s", strings.Join(e.Fields, ", "))
}

// TransportError wraps a failed API call. The state is left as it was
// before the action.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
