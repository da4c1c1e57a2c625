package admintag

import (
	"github.com/Adirelle/efadmintag/pkg/commands"
	"github.com/Adirelle/efadmintag/pkg/events"
	"github.com/Adirelle/efadmintag/pkg/minecraft"
)

const AdminTagCommand commands.Name = "admintag"

func init() {
	commands.Register(commands.Definition{
		Name:        AdminTagCommand,
		Description: "show or hide your staff rank",
	})
}

func (t *Toggler) HandleEvent(event events.Event) {
	t.HandleCommand(event)
}

// HandleCommand reports whether event was an admintag command. It is true
// even when the toggle failed; failures are reported in chat and in the logs.
func (t *Toggler) HandleCommand(event events.Event) bool {
	return commands.OnCommand(AdminTagCommand, event, t.handleCommand)
}

func (t *Toggler) handleCommand(cmd *commands.Command) error {
	player, isPlayer := cmd.Actor.(PlayerSession)
	if !isPlayer {
		_ = cmd.Actor.SendMessage(minecraft.TranslateColorCodes('&', t.conf.ChatTag+t.messages.NotAPlayer))
		return ErrNotAPlayer
	}
	_, err := t.Toggle(player)
	return err
}
