package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/laher/taskpad/pkg/config"
	"github.com/laher/taskpad/pkg/markdown"
	"github.com/laher/taskpad/pkg/storage"
	"github.com/laher/taskpad/pkg/task"
)

const (
	usage = `taskpad
Usage:
	taskpad              - start an interactive session (same as repl)
	taskpad repl         - start an interactive session
	taskpad config       - print config variables
	taskpad export [f]   - write tasks as a markdown checklist to f (default stdout)
	taskpad import f     - append tasks from a markdown checklist
	taskpad help         - print this message
`
)

func main() {
	args := os.Args[1:]
	sub := "repl"
	if len(args) > 0 {
		sub = args[0]
	}
	var (
		err        error
		printUsage = false
	)
	switch sub {
	case "repl":
		err = repl(os.Stdin, os.Stdout)
	case "config":
		err = printConfig(os.Stdout)
	case "export":
		err = export(args[1:])
	case "import":
		err = importFile(args[1:])
	case "help", "-h", "--help":
		fmt.Fprint(os.Stdout, usage)
	default:
		err = errors.New("Unrecognised subcommand")
		printUsage = true
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error handling [%s]: %v\n", sub, err)
		if printUsage {
			fmt.Fprint(os.Stderr, usage)
		}
		os.Exit(1)
	}
}

func openStore() (storage.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log.Printf("using %s storage at %s", cfg.Storage, cfg.File)
	return storage.Open(cfg.Storage, cfg.File)
}

func printConfig(w io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	c, err := json.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(c))
	return nil
}

func repl(in io.Reader, out io.Writer) error {
	store, err := openStore()
	if err != nil {
		log.Printf("opening storage: %v", err)
		store = storage.Unavailable{Err: err}
	}
	defer store.Close()
	return run(in, out, store)
}

func export(args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()
	l, err := store.Load()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return markdown.Export(os.Stdout, l, time.Now())
	}
	return exportFile(args[0], l, time.Now())
}

func exportFile(filename string, l *task.List, now time.Time) error {
	fh, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := markdown.Export(fh, l, now); err != nil {
		fh.Close()
		return err
	}
	return fh.Close()
}

func importFile(args []string) error {
	if len(args) < 1 {
		return errors.New("import needs a markdown file")
	}
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()
	n, err := importInto(store, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Imported %d tasks from %s\n", n, args[0])
	return nil
}

// importInto appends the tasks in a markdown file to the stored list.
func importInto(store storage.Store, filename string) (int, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return 0, err
	}
	l, err := store.Load()
	if err != nil {
		return 0, err
	}
	imported := markdown.Import(src)
	for _, t := range imported {
		l.Add(t)
	}
	if err := store.Save(l); err != nil {
		return 0, fmt.Errorf("save imported tasks: %w", err)
	}
	return len(imported), nil
}
