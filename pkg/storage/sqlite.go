package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/laher/taskpad/pkg/task"
	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS tasks (
	position    INTEGER PRIMARY KEY,
	kind        TEXT    NOT NULL,
	done        INTEGER NOT NULL,
	description TEXT    NOT NULL,
	by_date     TEXT    NOT NULL DEFAULT '',
	from_text   TEXT    NOT NULL DEFAULT '',
	to_text     TEXT    NOT NULL DEFAULT ''
)`

type SQLiteStore struct {
	sqlDB *sql.DB
}

func OpenSQLite(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(cleanPath), 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	sqlDB, err := sql.Open("sqlite", cleanPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLiteStore{sqlDB: sqlDB}, nil
}

func (s *SQLiteStore) Load() (*task.List, error) {
	rows, err := s.sqlDB.Query(`SELECT kind, done, description, by_date, from_text, to_text FROM tasks ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	l := task.NewList()
	for rows.Next() {
		var (
			kind, description, by, from, to string
			done                            int
		)
		if err := rows.Scan(&kind, &done, &description, &by, &from, &to); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		t, err := rowTask(kind, description, by, from, to)
		if err != nil {
			return nil, err
		}
		t.Done = done != 0
		l.Add(t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return l, nil
}

func rowTask(kind, description, by, from, to string) (*task.Task, error) {
	switch kind {
	case "T":
		return task.NewToDo(description), nil
	case "D":
		date, err := task.ParseDate(by)
		if err != nil {
			return nil, malformedf(by, "invalid date %q", by)
		}
		return task.NewDeadline(description, date), nil
	case "E":
		return task.NewEvent(description, from, to), nil
	default:
		return nil, malformedf(kind, "unknown type tag %q", kind)
	}
}

func (s *SQLiteStore) Save(l *task.List) error {
	tx, err := s.sqlDB.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM tasks`); err != nil {
		return fmt.Errorf("clear tasks: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO tasks (position, kind, done, description, by_date, from_text, to_text) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, t := range l.All() {
		done := 0
		if t.Done {
			done = 1
		}
		var by string
		if t.Kind == task.Deadline {
			by = t.By.Format(task.DateLayout)
		}
		if _, err := stmt.Exec(i, t.TypeTag(), done, t.Description, by, t.From, t.To); err != nil {
			return fmt.Errorf("insert task %d: %w", i+1, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

var _ Store = (*SQLiteStore)(nil)
