package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/laher/taskpad/pkg/command"
	"github.com/laher/taskpad/pkg/task"
)

const divider = "____________________________________________________________"

// UI reads commands line by line and writes framed responses.
type UI struct {
	in  *bufio.Reader
	out io.Writer
	err error
}

func New(r io.Reader, w io.Writer) *UI {
	return &UI{in: bufio.NewReader(r), out: w}
}

// ReadLine blocks for the next input line, however long. It returns false
// at end of input or on a read error, which Err then reports.
func (u *UI) ReadLine() (string, bool) {
	if u.err != nil {
		return "", false
	}
	line, err := u.in.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			u.err = err
			return "", false
		}
		if line == "" {
			u.err = io.EOF
			return "", false
		}
	}
	return strings.TrimRight(line, "\r\n"), true
}

// Err is the read error that stopped ReadLine, or nil at a clean end of input.
func (u *UI) Err() error {
	if u.err == io.EOF {
		return nil
	}
	return u.err
}

func (u *UI) Show(lines ...string) {
	var b strings.Builder
	b.WriteString(divider + "\n")
	for _, l := range lines {
		b.WriteString(" " + l + "\n")
	}
	b.WriteString(divider + "\n")
	io.WriteString(u.out, b.String())
}

func (u *UI) ShowWelcome() {
	u.Show("Hello! I'm taskpad", "What can I do for you?")
}

func (u *UI) ShowError(err error) {
	u.Show(Message(err))
}

// Message picks the user-facing text for err by its kind.
func Message(err error) string {
	var cmdErr *command.Error
	errors.As(err, &cmdErr)

	switch {
	case errors.Is(err, command.ErrEmptyDescription):
		what := "a task"
		if cmdErr != nil && cmdErr.Subject != "" {
			what = "a " + cmdErr.Subject
		}
		return fmt.Sprintf("OOPS!!! The description of %s cannot be empty.", what)
	case errors.Is(err, command.ErrUnknownCommand):
		if cmdErr != nil && cmdErr.Msg != "" {
			return "OOPS!!! " + cmdErr.Msg
		}
		return "OOPS!!! I'm sorry, but I don't know what that means :-("
	case errors.Is(err, command.ErrInvalidNumber):
		return "OOPS!!! The task number must be a valid integer."
	case errors.Is(err, task.ErrIndexOutOfRange):
		return "OOPS!!! The task number is out of range."
	case errors.Is(err, command.ErrPersistence):
		return "An error occurred while saving your tasks."
	default:
		return "OOPS!!! " + err.Error()
	}
}
