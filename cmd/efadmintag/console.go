package main

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/Adirelle/efadmintag/pkg/commands"
	"github.com/Adirelle/efadmintag/pkg/events"
	"github.com/Adirelle/efadmintag/pkg/minecraft"
	"github.com/apex/log"
	"github.com/thejerf/suture/v4"
)

type (
	// Console reads operator input. Registered commands are dispatched as
	// console commands, anything else goes to the server console.
	Console struct {
		input      io.Reader
		output     io.Writer
		server     minecraft.Console
		dispatcher events.Dispatcher
	}

	consoleActor struct {
		output io.Writer
	}
)

var _ commands.Console = consoleActor{}

func NewConsole(input io.Reader, output io.Writer, server minecraft.Console, dispatcher events.Dispatcher) *Console {
	return &Console{input: input, output: output, server: server, dispatcher: dispatcher}
}

func (c *Console) GoString() string {
	return "Console"
}

func (c *Console) Serve(ctx context.Context) error {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.input)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	for {
		select {
		case line, open := <-lines:
			if !open {
				log.Debug("console.closed")
				return suture.ErrDoNotRestart
			}
			c.handleLine(line)
		case <-ctx.Done():
			return nil
		}
	}
}

func (c *Console) handleLine(line string) {
	cmd, err := commands.Parse(line, consoleActor{c.output})
	if err == nil {
		c.dispatcher.DispatchEvent(cmd)
		return
	}
	if err == commands.ErrEmptyCommand {
		return
	}
	if err := c.server.Execute(line); err != nil {
		log.WithError(err).WithField("line", line).Warn("console.forward")
	}
}

func (consoleActor) Name() string    { return "console" }
func (consoleActor) IsConsole() bool { return true }

func (a consoleActor) SendMessage(message string) error {
	_, err := fmt.Fprintln(a.output, minecraft.StripColorCodes(message))
	return err
}
