package command

import (
	"fmt"
	"time"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/laher/taskpad/pkg/task"
)

// Saver persists the whole list after a mutation.
type Saver interface {
	Save(l *task.List) error
}

// Response is what a command produced for the user. Exit asks the caller
// to stop reading input.
type Response struct {
	Lines []string
	Exit  bool
}

type Command interface {
	Execute(l *task.List, s Saver) (Response, error)
}

const countKey = "Now you have %d tasks in the list."

var printer = newPrinter()

func newPrinter() *message.Printer {
	// Set only fails for malformed selectors.
	if err := message.Set(language.English, countKey,
		plural.Selectf(1, "%d",
			plural.One, "Now you have %d task in the list.",
			plural.Other, "Now you have %d tasks in the list.",
		)); err != nil {
		panic(err)
	}
	return message.NewPrinter(language.English)
}

func countLine(n int) string {
	return printer.Sprintf(countKey, n)
}

func taskLine(t *task.Task) string {
	return "  " + t.String()
}

func numbered(tasks []*task.Task) []string {
	lines := make([]string, 0, len(tasks))
	for i, t := range tasks {
		lines = append(lines, fmt.Sprintf("%d.%s", i+1, t))
	}
	return lines
}

func save(l *task.List, s Saver) error {
	if err := s.Save(l); err != nil {
		return persistence(err)
	}
	return nil
}

type Exit struct{}

func (Exit) Execute(*task.List, Saver) (Response, error) {
	return Response{Lines: []string{"Bye. Hope to see you again soon!"}, Exit: true}, nil
}

type List struct{}

func (List) Execute(l *task.List, _ Saver) (Response, error) {
	lines := append([]string{"Here are the tasks in your list:"}, numbered(l.All())...)
	return Response{Lines: lines}, nil
}

type Mark struct {
	Index int
}

func (c Mark) Execute(l *task.List, s Saver) (Response, error) {
	t, err := l.MarkDone(c.Index)
	if err != nil {
		return Response{}, err
	}
	if err := save(l, s); err != nil {
		return Response{}, err
	}
	return Response{Lines: []string{"Nice! I've marked this task as done:", taskLine(t)}}, nil
}

type Unmark struct {
	Index int
}

func (c Unmark) Execute(l *task.List, s Saver) (Response, error) {
	t, err := l.MarkNotDone(c.Index)
	if err != nil {
		return Response{}, err
	}
	if err := save(l, s); err != nil {
		return Response{}, err
	}
	return Response{Lines: []string{"OK, I've marked this task as not done yet:", taskLine(t)}}, nil
}

type Delete struct {
	Index int
}

func (c Delete) Execute(l *task.List, s Saver) (Response, error) {
	t, err := l.Delete(c.Index)
	if err != nil {
		return Response{}, err
	}
	if err := save(l, s); err != nil {
		return Response{}, err
	}
	return Response{Lines: []string{
		"Noted. I've removed this task:",
		taskLine(t),
		countLine(l.Len()),
	}}, nil
}

type Add struct {
	Task *task.Task
}

func (c Add) Execute(l *task.List, s Saver) (Response, error) {
	l.Add(c.Task)
	if err := save(l, s); err != nil {
		return Response{}, err
	}
	return Response{Lines: []string{
		"Got it. I've added this task:",
		taskLine(c.Task),
		countLine(l.Len()),
	}}, nil
}

type Find struct {
	Keyword string
}

func (c Find) Execute(l *task.List, _ Saver) (Response, error) {
	found := l.Find(c.Keyword)
	if len(found) == 0 {
		return Response{Lines: []string{"No matching tasks found."}}, nil
	}
	lines := append([]string{"Here are the matching tasks in your list:"}, numbered(found)...)
	return Response{Lines: lines}, nil
}

type ShowOnDate struct {
	Date time.Time
}

func (c ShowOnDate) Execute(l *task.List, _ Saver) (Response, error) {
	lines := []string{fmt.Sprintf("Here are the tasks occurring on %s:", c.Date.Format(task.DateLayout))}
	found := l.OnDate(c.Date)
	if len(found) == 0 {
		return Response{Lines: append(lines, "No tasks found on this date.")}, nil
	}
	for _, t := range found {
		lines = append(lines, taskLine(t))
	}
	return Response{Lines: lines}, nil
}
