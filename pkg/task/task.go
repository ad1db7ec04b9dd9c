package task

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the stored and typed form of a date (yyyy-MM-dd).
	DateLayout = "2006-01-02"
	// DisplayLayout is how dates are shown to the user (MMM dd yyyy).
	DisplayLayout = "Jan 02 2006"
)

type Kind int

const (
	ToDo Kind = iota
	Deadline
	Event
)

func (k Kind) Tag() string {
	switch k {
	case Deadline:
		return "D"
	case Event:
		return "E"
	default:
		return "T"
	}
}

func (k Kind) String() string {
	switch k {
	case Deadline:
		return "deadline"
	case Event:
		return "event"
	default:
		return "todo"
	}
}

// Task is one trackable item. Kind selects which payload fields are meaningful:
// By for a Deadline, From and To for an Event.
type Task struct {
	Kind        Kind
	Description string
	Done        bool

	By time.Time

	// Free text, never parsed as dates.
	From string
	To   string
}

func NewToDo(description string) *Task {
	return &Task{Kind: ToDo, Description: description}
}

func NewDeadline(description string, by time.Time) *Task {
	return &Task{Kind: Deadline, Description: description, By: DateOf(by)}
}

func NewEvent(description, from, to string) *Task {
	return &Task{Kind: Event, Description: description, From: from, To: to}
}

func (t *Task) IsDone() bool { return t.Done }

func (t *Task) MarkAsDone() { t.Done = true }

func (t *Task) MarkAsNotDone() { t.Done = false }

func (t *Task) TypeTag() string { return t.Kind.Tag() }

func (t *Task) statusIcon() string {
	if t.Done {
		return "X"
	}
	return " "
}

// Suffix is the variant-specific tail of the display string, empty for a ToDo.
func (t *Task) Suffix() string {
	switch t.Kind {
	case Deadline:
		return fmt.Sprintf(" (by: %s)", t.By.Format(DisplayLayout))
	case Event:
		return fmt.Sprintf(" (from: %s to: %s)", t.From, t.To)
	default:
		return ""
	}
}

func (t *Task) String() string {
	return fmt.Sprintf("[%s][%s] %s%s", t.TypeTag(), t.statusIcon(), t.Description, t.Suffix())
}

// ParseDate parses an ISO calendar date (yyyy-MM-dd).
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// DateOf drops the time of day so dates compare as calendar dates.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
