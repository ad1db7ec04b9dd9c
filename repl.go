package main

import (
	"io"
	"log"

	"github.com/laher/taskpad/pkg/command"
	"github.com/laher/taskpad/pkg/storage"
	"github.com/laher/taskpad/pkg/task"
	"github.com/laher/taskpad/pkg/ui"
)

// run drives one interactive session until bye or end of input.
func run(in io.Reader, out io.Writer, store storage.Store) error {
	u := ui.New(in, out)

	l, err := store.Load()
	if err != nil {
		log.Printf("loading tasks: %v", err)
		u.ShowError(err)
		l = task.NewList()
	}
	session := command.NewSession(l, store)

	u.ShowWelcome()
	for {
		line, ok := u.ReadLine()
		if !ok {
			if err := u.Err(); err != nil {
				log.Printf("reading input: %v", err)
				u.ShowError(err)
				return err
			}
			return nil
		}
		resp, err := session.Handle(line)
		if err != nil {
			u.ShowError(err)
			continue
		}
		u.Show(resp.Lines...)
		if resp.Exit {
			return nil
		}
	}
}
