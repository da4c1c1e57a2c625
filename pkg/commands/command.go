package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Adirelle/efadmintag/pkg/events"
	"github.com/apex/log"
)

type (
	Name string

	Definition struct {
		Name        Name
		Description string
		Category
	}

	Command struct {
		*Definition
		Actor     Actor
		Arguments []string
	}

	// Actor is whoever issued a command: an online player or the supervisor console.
	Actor interface {
		Name() string
		SendMessage(string) error
	}

	HandlerFunc func(cmd *Command) error
)

var (
	Prefix rune = '/'

	ErrEmptyCommand     = errors.New("empty command")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrPermissionDenied = errors.New("permission denied")

	// interface checks
	_ events.Event = (*Command)(nil)
	_ log.Fielder  = (*Command)(nil)
)

func (n Name) String() string {
	return fmt.Sprintf("%c%s", Prefix, string(n))
}

// OnCommand runs handler when event is a command named name, and reports whether it did.
// The handler is responsible for replying to the actor; OnCommand only logs the outcome.
func OnCommand(name Name, event events.Event, handler HandlerFunc) bool {
	cmd, ok := event.(*Command)
	if !ok || cmd.Name != name {
		return false
	}
	logger := log.WithFields(cmd)
	if !cmd.Allow(cmd.Actor) {
		_ = cmd.Actor.SendMessage(ErrPermissionDenied.Error())
		logger.WithError(ErrPermissionDenied).Warn("command.denied")
		return true
	}
	logger.Debug("command.handle")
	if err := handler(cmd); err == nil {
		logger.Info("command.success")
	} else {
		logger.WithError(err).Warn("command.error")
	}
	return true
}

func (c *Command) String() string {
	return strings.Join(append([]string{string(c.Name)}, c.Arguments...), " ")
}

func (c *Command) Fields() log.Fields {
	fields := log.Fields{
		"command": c.Name,
		"args":    c.Arguments,
		"actor":   c.Actor.Name(),
	}
	if actor, isFielder := c.Actor.(log.Fielder); isFielder {
		for key, value := range actor.Fields() {
			fields[key] = value
		}
	}
	return fields
}

// Parse builds a command from a command line, with or without the leading prefix.
func Parse(line string, actor Actor) (*Command, error) {
	words := strings.Fields(strings.TrimPrefix(strings.TrimSpace(line), string(Prefix)))
	if len(words) == 0 {
		return nil, ErrEmptyCommand
	}

	def, found := Lookup(Name(strings.ToLower(words[0])))
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, words[0])
	}

	return &Command{def, actor, words[1:]}, nil
}
