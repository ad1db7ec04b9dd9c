package task

import (
	"errors"
	"fmt"
)

var ErrIndexOutOfRange = errors.New("task index out of range")

// IndexError reports a zero-based index outside [0, Size).
type IndexError struct {
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %d not in [0, %d)", ErrIndexOutOfRange.Error(), e.Index, e.Size)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }
