package markdown

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/russross/blackfriday/v2"

	"github.com/laher/taskpad/pkg/task"
)

var exportTime = time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC)

func sampleList() *task.List {
	done := task.NewToDo("read book")
	done.MarkAsDone()
	return task.NewList(
		done,
		task.NewDeadline("return book", time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC)),
		task.NewEvent("project meeting", "Mon 2pm", "4pm"),
	)
}

func TestBuild(t *testing.T) {
	doc := Build(sampleList().All(), exportTime)

	heading := doc.FirstChild
	if heading == nil || heading.Type != blackfriday.Heading || heading.Level != 1 {
		t.Fatalf("expected a level 1 heading first, got %v", heading)
	}
	if got := string(heading.FirstChild.Literal); got != "Tasks, 2024-01-15, Monday" {
		t.Fatalf("unexpected heading %q", got)
	}
	list := heading.Next
	if list == nil || list.Type != blackfriday.List {
		t.Fatalf("expected a list after the heading, got %v", list)
	}
	items := 0
	for n := list.FirstChild; n != nil; n = n.Next {
		items++
	}
	if items != 3 {
		t.Fatalf("expected 3 items, got %d", items)
	}
}

func TestBuildEmpty(t *testing.T) {
	doc := Build(nil, exportTime)
	if doc.FirstChild == nil || doc.FirstChild.Next != nil {
		t.Fatal("expected only the heading")
	}
}

func TestExport(t *testing.T) {
	var out bytes.Buffer
	if err := Export(&out, sampleList(), exportTime); err != nil {
		t.Fatalf("export: %v", err)
	}
	s := out.String()
	if !strings.HasPrefix(s, "Tasks, 2024-01-15, Monday\n=") {
		t.Errorf("expected an underlined title first, got:\n%s", s)
	}
	for _, want := range []string{"Tasks, 2024-01-15, Monday", "read book", "return book", "Jan 20 2024", "project meeting", "Mon 2pm"} {
		if !strings.Contains(s, want) {
			t.Errorf("expected export to contain %q, got:\n%s", want, s)
		}
	}
}

func TestImport(t *testing.T) {
	src := `# Tasks, 2024-01-15, Monday

Some notes that are not tasks.

- [x] read book
- [ ] return book (by: Jan 20 2024)
* [C] project meeting (from: Mon 2pm to: 4pm)
- plain item
- [ ]
- [ ] bad deadline (by: tomorrow)
  - [X] nested
`
	got := Import([]byte(src))
	want := []string{
		"[T][X] read book",
		"[D][ ] return book (by: Jan 20 2024)",
		"[E][X] project meeting (from: Mon 2pm to: 4pm)",
		"[T][ ] plain item",
		"[T][ ] bad deadline (by: tomorrow)",
		"[T][X] nested",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d tasks, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i].String() != want[i] {
			t.Errorf("task %d: expected %q, got %q", i, want[i], got[i].String())
		}
	}
	if !got[1].By.Equal(time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected deadline %v", got[1].By)
	}
}

func TestImportFlattensBlocks(t *testing.T) {
	src := "- [ ] first\n\n    ```\n    line one\n    line two\n    ```\n- [ ] second\n"
	got := Import([]byte(src))
	if len(got) != 2 {
		t.Fatalf("expected 2 tasks, got %d: %v", len(got), got)
	}
	for _, tk := range got {
		if strings.ContainsAny(tk.Description, "\n\r") {
			t.Fatalf("expected a single-line description, got %q", tk.Description)
		}
	}
	if d := got[0].Description; !strings.HasPrefix(d, "first ") || !strings.Contains(d, "line one line two") {
		t.Fatalf("unexpected description %q", d)
	}
	if got[1].Description != "second" {
		t.Fatalf("unexpected description %q", got[1].Description)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	l := sampleList()
	var out bytes.Buffer
	if err := Export(&out, l, exportTime); err != nil {
		t.Fatalf("export: %v", err)
	}
	got := Import(out.Bytes())
	want := l.All()
	if len(got) != len(want) {
		t.Fatalf("expected %d tasks, got %d from:\n%s", len(want), len(got), out.String())
	}
	for i := range want {
		if got[i].String() != want[i].String() {
			t.Errorf("task %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}
