package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/laher/taskpad/pkg/task"
)

// Record layout, one task per line:
//
//	T|<0/1>|<description>
//	D|<0/1>|<description>|<yyyy-MM-dd>
//	E|<0/1>|<description>|<from>|<to>
//
// Free text escapes '\' as `\\`, '|' as `\|`, and line breaks as `\n` and `\r`.
const (
	separator = '|'
	escape    = '\\'
)

var ErrMalformedRecord = errors.New("malformed task record")

// DecodeError reports a line of the backing file that could not be decoded.
type DecodeError struct {
	Line int
	Text string
	Msg  string
}

func (e *DecodeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d: %s", ErrMalformedRecord.Error(), e.Line, e.Msg)
	}
	return fmt.Sprintf("%s: %s", ErrMalformedRecord.Error(), e.Msg)
}

func (e *DecodeError) Unwrap() error { return ErrMalformedRecord }

func malformedf(text, format string, args ...any) error {
	return &DecodeError{Text: text, Msg: fmt.Sprintf(format, args...)}
}

func escapeField(s string) string {
	if !strings.ContainsAny(s, "\\|\n\r") {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		switch r {
		case escape, separator:
			b.WriteRune(escape)
			b.WriteRune(r)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// splitFields splits on unescaped separators and unescapes each field.
func splitFields(line string) ([]string, error) {
	var (
		fields  []string
		b       strings.Builder
		escaped bool
	)
	for _, r := range line {
		switch {
		case escaped:
			switch r {
			case 'n':
				b.WriteRune('\n')
			case 'r':
				b.WriteRune('\r')
			default:
				b.WriteRune(r)
			}
			escaped = false
		case r == escape:
			escaped = true
		case r == separator:
			fields = append(fields, b.String())
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	if escaped {
		return nil, errors.New("dangling escape")
	}
	return append(fields, b.String()), nil
}

// EncodeTask renders t as a single record line, without the newline.
func EncodeTask(t *task.Task) string {
	done := "0"
	if t.Done {
		done = "1"
	}
	fields := []string{t.TypeTag(), done, escapeField(t.Description)}
	switch t.Kind {
	case task.Deadline:
		fields = append(fields, t.By.Format(task.DateLayout))
	case task.Event:
		fields = append(fields, escapeField(t.From), escapeField(t.To))
	}
	return strings.Join(fields, string(separator))
}

// DecodeLine parses one record line back into a task.
func DecodeLine(line string) (*task.Task, error) {
	fields, err := splitFields(line)
	if err != nil {
		return nil, malformedf(line, "%v", err)
	}
	if len(fields) < 3 {
		return nil, malformedf(line, "expected at least 3 fields, got %d", len(fields))
	}

	var done bool
	switch fields[1] {
	case "1":
		done = true
	case "0":
	default:
		return nil, malformedf(line, "invalid done flag %q", fields[1])
	}
	description := fields[2]
	if strings.TrimSpace(description) == "" {
		return nil, malformedf(line, "empty description")
	}

	var t *task.Task
	switch fields[0] {
	case "T":
		if len(fields) != 3 {
			return nil, malformedf(line, "todo expects 3 fields, got %d", len(fields))
		}
		t = task.NewToDo(description)
	case "D":
		if len(fields) != 4 {
			return nil, malformedf(line, "deadline expects 4 fields, got %d", len(fields))
		}
		by, err := task.ParseDate(fields[3])
		if err != nil {
			return nil, malformedf(line, "invalid date %q", fields[3])
		}
		t = task.NewDeadline(description, by)
	case "E":
		if len(fields) != 5 {
			return nil, malformedf(line, "event expects 5 fields, got %d", len(fields))
		}
		t = task.NewEvent(description, fields[3], fields[4])
	default:
		return nil, malformedf(line, "unknown type tag %q", fields[0])
	}
	t.Done = done
	return t, nil
}

// WriteTasks writes every task of l to w, one record per line, in list order.
func WriteTasks(w io.Writer, l *task.List) error {
	bw := bufio.NewWriter(w)
	for _, t := range l.All() {
		if _, err := bw.WriteString(EncodeTask(t) + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadTasks decodes records from r. Blank lines are ignored; malformed lines
// are logged and skipped, so a damaged file still yields every good record.
// Lines have no length limit.
func ReadTasks(r io.Reader) (*task.List, error) {
	l := task.NewList()
	br := bufio.NewReader(r)
	for n := 1; ; n++ {
		line, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return nil, readErr
		}
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if strings.TrimSpace(line) != "" {
			if t, err := DecodeLine(line); err != nil {
				var decErr *DecodeError
				if errors.As(err, &decErr) {
					decErr.Line = n
				}
				log.Printf("skipping record: %v", err)
			} else {
				l.Add(t)
			}
		}
		if readErr == io.EOF {
			return l, nil
		}
	}
}
