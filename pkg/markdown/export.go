package markdown

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	mdfmt "github.com/laher/markdownfmt/markdown"
	"github.com/russross/blackfriday/v2"

	"github.com/laher/taskpad/pkg/task"
)

func headingNode(parent *blackfriday.Node, level int, text string) *blackfriday.Node {
	h := blackfriday.NewNode(blackfriday.Heading)
	h.Level = level
	parent.AppendChild(h)
	textNode := blackfriday.NewNode(blackfriday.Text)
	textNode.Literal = []byte(text)
	h.AppendChild(textNode)
	return h
}

func titleNode(parent *blackfriday.Node, now time.Time) *blackfriday.Node {
	return headingNode(parent, 1, "Tasks, "+now.Format("2006-01-02, Monday"))
}

var escaper = strings.NewReplacer(
	`\`, `\\`, "`", "\\`", "*", `\*`, "_", `\_`,
	"[", `\[`, "]", `\]`, "<", `\<`, "&", `\&`,
)

func checkbox(t *task.Task) string {
	if t.IsDone() {
		return `\[x\]`
	}
	return `\[ \]`
}

// checklist is the markdown source of one bullet per task.
func checklist(tasks []*task.Task) []byte {
	var b bytes.Buffer
	for _, t := range tasks {
		fmt.Fprintf(&b, "- %s %s\n", checkbox(t), escaper.Replace(t.Description+t.Suffix()))
	}
	return b.Bytes()
}

func Build(tasks []*task.Task, now time.Time) *blackfriday.Node {
	doc := blackfriday.NewNode(blackfriday.Document)
	titleNode(doc, now)
	if len(tasks) == 0 {
		return doc
	}
	parsed := blackfriday.New().Parse(checklist(tasks))
	for n := parsed.FirstChild; n != nil; {
		next := n.Next
		doc.AppendChild(n)
		n = next
	}
	return doc
}

// Export writes the list as a markdown checklist headed with now's date.
func Export(w io.Writer, l *task.List, now time.Time) error {
	var buf bytes.Buffer
	r := mdfmt.NewRenderer(&mdfmt.Options{Terminal: false})
	render(r, &buf, Build(l.All(), now))
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

func render(r blackfriday.Renderer, w io.Writer, ast *blackfriday.Node) {
	r.RenderHeader(w, ast)
	ast.Walk(func(node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		return r.RenderNode(w, node, entering)
	})
	r.RenderFooter(w, ast)
}
