package command

import (
	"sync"

	"github.com/laher/taskpad/pkg/task"
)

// Session owns a task list and its store and runs one command at a time.
// It is safe for concurrent use; the list itself is not.
type Session struct {
	mu    sync.Mutex
	list  *task.List
	saver Saver
}

func NewSession(l *task.List, s Saver) *Session {
	if l == nil {
		l = task.NewList()
	}
	return &Session{list: l, saver: s}
}

// Handle parses line and executes it against the session's list.
func (s *Session) Handle(line string) (Response, error) {
	cmd, err := Parse(line)
	if err != nil {
		return Response{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return cmd.Execute(s.list, s.saver)
}

// Tasks returns a snapshot of the list in order.
func (s *Session) Tasks() []*task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.All()
}
