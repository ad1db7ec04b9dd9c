package markdown

import (
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"

	"github.com/laher/taskpad/pkg/task"
)

var doneMarkers = []string{"x", "X", "c", "C"}

var (
	boxPattern   = regexp.MustCompile(`^\\?\[(.)\\?\]\s*`)
	byPattern    = regexp.MustCompile(`^(.*) \(by: (.+)\)$`)
	eventPattern = regexp.MustCompile(`^(.*) \(from: (.*?) to: (.*)\)$`)
)

func isDone(marker string) bool {
	for _, d := range doneMarkers {
		if marker == d {
			return true
		}
	}
	return false
}

// Import returns one task per list item in src, in document order.
func Import(src []byte) []*task.Task {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	doc := markdown.Parse(src, p)

	var tasks []*task.Task
	f := func(node ast.Node, entering bool) ast.WalkStatus {
		item, ok := node.(*ast.ListItem)
		if !ok || !entering {
			return ast.GoToNext
		}
		if t := itemTask(itemText(item)); t != nil {
			tasks = append(tasks, t)
		}
		return ast.GoToNext
	}
	ast.Walk(doc, ast.NodeVisitorFunc(f))
	return tasks
}

// itemText flattens an item's own text onto one line. Nested lists are
// left for their own items.
func itemText(item ast.Node) string {
	var b strings.Builder
	collectText(&b, item)
	return strings.Join(strings.Fields(b.String()), " ")
}

func collectText(b *strings.Builder, n ast.Node) {
	for _, c := range n.GetChildren() {
		switch c := c.(type) {
		case *ast.List:
			continue
		case *ast.Softbreak, *ast.Hardbreak:
			b.WriteString(" ")
		default:
			if leaf := c.AsLeaf(); leaf != nil {
				b.Write(leaf.Literal)
			} else {
				collectText(b, c)
			}
		}
		if _, block := n.(*ast.ListItem); block {
			b.WriteString(" ")
		}
	}
}

func itemTask(text string) *task.Task {
	done := false
	if m := boxPattern.FindStringSubmatch(text); m != nil {
		done = isDone(m[1])
		text = text[len(m[0]):]
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	t := classify(text)
	if done {
		t.MarkAsDone()
	}
	return t
}

func classify(text string) *task.Task {
	if m := byPattern.FindStringSubmatch(text); m != nil && strings.TrimSpace(m[1]) != "" {
		by, err := time.Parse(task.DisplayLayout, m[2])
		if err == nil {
			return task.NewDeadline(strings.TrimSpace(m[1]), by)
		}
		log.Printf("treating %q as a todo: %v", text, err)
	}
	if m := eventPattern.FindStringSubmatch(text); m != nil {
		desc, from, to := strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), strings.TrimSpace(m[3])
		if desc != "" && from != "" && to != "" {
			return task.NewEvent(desc, from, to)
		}
	}
	return task.NewToDo(text)
}
