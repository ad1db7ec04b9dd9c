package command

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/laher/taskpad/pkg/task"
)

const (
	byMarker   = " /by "
	fromMarker = " /from "
	toMarker   = " /to "
	onPrefix   = "on "
)

// splitKeyword returns the first whitespace-delimited token and everything
// after the whitespace character that ends it.
func splitKeyword(line string) (string, string) {
	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
	i := strings.IndexFunc(trimmed, unicode.IsSpace)
	if i < 0 {
		return trimmed, ""
	}
	_, size := utf8.DecodeRuneInString(trimmed[i:])
	return trimmed[:i], trimmed[i+size:]
}

// Parse turns one input line into a Command. It never touches state.
func Parse(line string) (Command, error) {
	keyword, rest := splitKeyword(line)

	switch keyword {
	case "bye":
		return Exit{}, nil
	case "list":
		return List{}, nil
	case "mark":
		i, err := parseIndex(rest)
		if err != nil {
			return nil, err
		}
		return Mark{Index: i}, nil
	case "unmark":
		i, err := parseIndex(rest)
		if err != nil {
			return nil, err
		}
		return Unmark{Index: i}, nil
	case "delete":
		i, err := parseIndex(rest)
		if err != nil {
			return nil, err
		}
		return Delete{Index: i}, nil
	case "todo":
		description := strings.TrimSpace(rest)
		if description == "" {
			return nil, emptyDescription("todo")
		}
		return Add{Task: task.NewToDo(description)}, nil
	case "deadline":
		return parseDeadline(line, rest)
	case "event":
		return parseEvent(rest)
	case "find":
		keyword := strings.TrimSpace(rest)
		if keyword == "" {
			return nil, emptyDescription("find")
		}
		return Find{Keyword: keyword}, nil
	case "show":
		if !strings.HasPrefix(rest, onPrefix) {
			return nil, emptyDescription("show on")
		}
		date, err := task.ParseDate(strings.TrimSpace(rest[len(onPrefix):]))
		if err != nil {
			return nil, badDate(line, err)
		}
		return ShowOnDate{Date: date}, nil
	default:
		return nil, unknownCommand(line)
	}
}

// parseIndex converts a 1-based task number into a 0-based index. Range is
// checked when the command runs.
func parseIndex(rest string) (int, error) {
	token := strings.TrimSpace(rest)
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, invalidNumber(token, err)
	}
	return n - 1, nil
}

func parseDeadline(line, rest string) (Command, error) {
	if strings.TrimSpace(rest) == "" {
		return nil, emptyDescription("deadline")
	}
	parts := dropTrailingEmpty(strings.Split(rest, byMarker))
	if len(parts) < 2 {
		return nil, emptyDescription("deadline")
	}
	description := strings.TrimSpace(parts[0])
	if description == "" {
		return nil, emptyDescription("deadline")
	}
	by, err := task.ParseDate(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, badDate(line, err)
	}
	return Add{Task: task.NewDeadline(description, by)}, nil
}

// dropTrailingEmpty trims empty parts off the end, so "x /by " has no date part.
func dropTrailingEmpty(parts []string) []string {
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

func parseEvent(rest string) (Command, error) {
	description, span, ok := strings.Cut(rest, fromMarker)
	if !ok {
		return nil, emptyDescription("event")
	}
	from, to, ok := strings.Cut(span, toMarker)
	if !ok {
		return nil, emptyDescription("event")
	}
	description = strings.TrimSpace(description)
	from = strings.TrimSpace(from)
	to = strings.TrimSpace(to)
	if description == "" || from == "" || to == "" {
		return nil, emptyDescription("event")
	}
	return Add{Task: task.NewEvent(description, from, to)}, nil
}
