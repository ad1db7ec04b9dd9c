package storage

import (
	"fmt"

	"github.com/laher/taskpad/pkg/task"
)

// Store loads and saves a whole task list.
type Store interface {
	Load() (*task.List, error)
	Save(l *task.List) error
	Close() error
}

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Open returns the store for backend, rooted at path.
func Open(backend, path string) (Store, error) {
	switch backend {
	case BackendSQLite:
		s, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		return s, nil
	case BackendFile, "":
		return NewFileStore(path), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q (expected %s|%s)", backend, BackendFile, BackendSQLite)
	}
}

// Unavailable stands in for a store that could not be opened. Load reports
// err and Save refuses, so a session can still run on an in-memory list.
type Unavailable struct {
	Err error
}

func (u Unavailable) Load() (*task.List, error) {
	return nil, u.Err
}

func (u Unavailable) Save(*task.List) error {
	return fmt.Errorf("storage unavailable: %w", u.Err)
}

func (Unavailable) Close() error { return nil }
