package task

import (
	"strings"
	"time"
)

// List is an ordered collection of tasks. Positions are zero-based here;
// callers showing them to a user add one.
//
// A List is not safe for concurrent use.
type List struct {
	tasks []*Task
}

func NewList(tasks ...*Task) *List {
	l := &List{}
	l.tasks = append(l.tasks, tasks...)
	return l
}

func (l *List) Len() int { return len(l.tasks) }

// All returns the tasks in list order. The slice is a copy; the tasks are not.
func (l *List) All() []*Task {
	out := make([]*Task, len(l.tasks))
	copy(out, l.tasks)
	return out
}

func (l *List) Add(t *Task) {
	l.tasks = append(l.tasks, t)
}

func (l *List) check(index int) error {
	if index < 0 || index >= len(l.tasks) {
		return &IndexError{Index: index, Size: len(l.tasks)}
	}
	return nil
}

func (l *List) Get(index int) (*Task, error) {
	if err := l.check(index); err != nil {
		return nil, err
	}
	return l.tasks[index], nil
}

func (l *List) Delete(index int) (*Task, error) {
	if err := l.check(index); err != nil {
		return nil, err
	}
	t := l.tasks[index]
	copy(l.tasks[index:], l.tasks[index+1:])
	l.tasks[len(l.tasks)-1] = nil
	l.tasks = l.tasks[:len(l.tasks)-1]
	return t, nil
}

func (l *List) MarkDone(index int) (*Task, error) {
	t, err := l.Get(index)
	if err != nil {
		return nil, err
	}
	t.MarkAsDone()
	return t, nil
}

func (l *List) MarkNotDone(index int) (*Task, error) {
	t, err := l.Get(index)
	if err != nil {
		return nil, err
	}
	t.MarkAsNotDone()
	return t, nil
}

// Find returns the tasks whose description contains keyword, case-sensitive,
// in list order.
func (l *List) Find(keyword string) []*Task {
	var found []*Task
	for _, t := range l.tasks {
		if strings.Contains(t.Description, keyword) {
			found = append(found, t)
		}
	}
	return found
}

// OnDate returns the deadlines falling on date. Events are never included:
// their from/to are free text.
func (l *List) OnDate(date time.Time) []*Task {
	day := DateOf(date)
	var found []*Task
	for _, t := range l.tasks {
		if t.Kind == Deadline && t.By.Equal(day) {
			found = append(found, t)
		}
	}
	return found
}
