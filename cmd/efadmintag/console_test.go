package main

import (
	"bytes"
	"testing"

	"github.com/Adirelle/efadmintag/pkg/admintag"
	"github.com/Adirelle/efadmintag/pkg/commands"
	"github.com/Adirelle/efadmintag/pkg/events"
)

type fakeServer struct {
	executed []string
}

func (s *fakeServer) Execute(command string) error {
	s.executed = append(s.executed, command)
	return nil
}

type fakeDispatcher []events.Event

func (d *fakeDispatcher) DispatchEvent(ev events.Event) {
	*d = append(*d, ev)
}

func TestConsoleRouting(t *testing.T) {
	t.Parallel()
	server := &fakeServer{}
	dispatcher := &fakeDispatcher{}
	c := NewConsole(nil, &bytes.Buffer{}, server, dispatcher)

	c.handleLine("say hello")
	c.handleLine("")
	c.handleLine("admintag")
	c.handleLine("/perms Notch info")

	if len(server.executed) != 1 || server.executed[0] != "say hello" {
		t.Errorf("unexpected forwarded lines: %v", server.executed)
	}
	if len(*dispatcher) != 2 {
		t.Fatalf("expected two commands, got %v", *dispatcher)
	}
	if cmd := (*dispatcher)[0].(*commands.Command); cmd.Name != admintag.AdminTagCommand {
		t.Errorf("unexpected command: %s", cmd)
	}
	cmd := (*dispatcher)[1].(*commands.Command)
	if !cmd.Allow(cmd.Actor) {
		t.Error("console is not allowed to run console commands")
	}
	if _, isPlayer := cmd.Actor.(admintag.PlayerSession); isPlayer {
		t.Error("console must not be a player")
	}
}

func TestConsoleActorStripsColors(t *testing.T) {
	t.Parallel()
	out := &bytes.Buffer{}

	_ = consoleActor{out}.SendMessage("§0[§bEF§0]§r §cYou must be a player to use that command!")

	if out.String() != "[EF] You must be a player to use that command!\n" {
		t.Errorf("unexpected output: %q", out.String())
	}
}
