package commands_test

import (
	"errors"
	"testing"

	"github.com/Adirelle/efadmintag/pkg/commands"
	"github.com/apex/log"
)

const (
	testCommand    commands.Name = "testcmd"
	consoleCommand commands.Name = "testconsole"
)

func init() {
	commands.Register(commands.Definition{Name: testCommand, Description: "test"})
	commands.Register(commands.Definition{Name: consoleCommand, Description: "console test", Category: commands.ConsoleCategory})
}

type actor struct {
	name     string
	console  bool
	messages []string
}

func (a *actor) Name() string    { return a.name }
func (a *actor) IsConsole() bool { return a.console }

func (a *actor) SendMessage(msg string) error {
	a.messages = append(a.messages, msg)
	return nil
}

type notACommand struct{}

func (notACommand) Fields() log.Fields { return nil }

func TestParse(t *testing.T) {
	t.Parallel()
	a := &actor{name: "Notch"}

	for _, line := range []string{"/testcmd foo bar", "testcmd foo bar", "  /TESTCMD  foo   bar "} {
		cmd, err := commands.Parse(line, a)
		if err != nil {
			t.Fatalf("%q: unexpected error: %s", line, err)
		}
		if cmd.Name != testCommand {
			t.Errorf("%q: wrong name %q", line, cmd.Name)
		}
		if len(cmd.Arguments) != 2 || cmd.Arguments[0] != "foo" || cmd.Arguments[1] != "bar" {
			t.Errorf("%q: wrong arguments %v", line, cmd.Arguments)
		}
		if cmd.Actor != a {
			t.Errorf("%q: wrong actor", line)
		}
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	if _, err := commands.Parse("  ", &actor{}); !errors.Is(err, commands.ErrEmptyCommand) {
		t.Errorf("expected ErrEmptyCommand, got %v", err)
	}
	if _, err := commands.Parse("/nope", &actor{}); !errors.Is(err, commands.ErrUnknownCommand) {
		t.Errorf("expected ErrUnknownCommand, got %v", err)
	}
}

func TestOnCommand(t *testing.T) {
	t.Parallel()
	cmd, err := commands.Parse("testcmd", &actor{name: "Notch"})
	if err != nil {
		t.Fatal(err)
	}

	called := 0
	handler := func(*commands.Command) error {
		called++
		return nil
	}

	if commands.OnCommand("other", cmd, handler) {
		t.Error("handled a command with another name")
	}
	if commands.OnCommand(testCommand, notACommand{}, handler) {
		t.Error("handled an event that is not a command")
	}
	if !commands.OnCommand(testCommand, cmd, handler) {
		t.Error("did not handle the command")
	}
	if called != 1 {
		t.Errorf("handler called %d times", called)
	}
}

func TestOnCommandConsoleOnly(t *testing.T) {
	t.Parallel()
	player := &actor{name: "Notch"}
	cmd, err := commands.Parse("testconsole", player)
	if err != nil {
		t.Fatal(err)
	}

	handled := commands.OnCommand(consoleCommand, cmd, func(*commands.Command) error {
		t.Error("handler must not run for a player")
		return nil
	})
	if !handled {
		t.Error("denied command must still be reported as handled")
	}
	if len(player.messages) != 1 || player.messages[0] != commands.ErrPermissionDenied.Error() {
		t.Errorf("unexpected messages: %v", player.messages)
	}

	console := &actor{name: "console", console: true}
	cmd.Actor = console
	called := false
	commands.OnCommand(consoleCommand, cmd, func(*commands.Command) error {
		called = true
		return nil
	})
	if !called {
		t.Error("handler did not run for the console")
	}
}
