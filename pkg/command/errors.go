package command

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyDescription = errors.New("empty description")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrInvalidNumber    = errors.New("invalid task number")
	ErrPersistence      = errors.New("persistence failure")
)

// Error is a recoverable command failure. Kind is one of the Err* sentinels.
// Subject is the command keyword for ErrEmptyDescription and the raw input
// for ErrUnknownCommand.
type Error struct {
	Kind    error
	Subject string
	Msg     string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	s := e.Kind.Error()
	if e.Subject != "" {
		s = fmt.Sprintf("%s %q", s, e.Subject)
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func emptyDescription(keyword string) error {
	return &Error{Kind: ErrEmptyDescription, Subject: keyword}
}

func unknownCommand(input string) error {
	return &Error{Kind: ErrUnknownCommand, Subject: input}
}

func badDate(input string, err error) error {
	return &Error{Kind: ErrUnknownCommand, Subject: input, Msg: DateFormatMessage, Err: err}
}

func invalidNumber(token string, err error) error {
	return &Error{Kind: ErrInvalidNumber, Subject: token, Err: err}
}

func persistence(err error) error {
	return &Error{Kind: ErrPersistence, Err: err}
}

// DateFormatMessage explains the accepted date form.
const DateFormatMessage = "The date format is incorrect. Please use yyyy-MM-dd format."
