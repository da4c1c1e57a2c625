package permissions

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Adirelle/efadmintag/pkg/commands"
	"github.com/Adirelle/efadmintag/pkg/events"
	"github.com/apex/log"
	"github.com/google/uuid"
)

type (
	// Login is implemented by events announcing that a player connected.
	Login interface {
		events.Event
		LoginIdentity() (uuid.UUID, string)
	}

	// Manager registers users on login and serves the console-only perms command.
	Manager struct {
		Store
	}
)

const PermsCommand commands.Name = "perms"

var (
	ErrUsage = errors.New("usage: perms <player> info|parent add|remove <group>|meta set <key> <value>|meta unset <key>")

	_ events.Handler = (*Manager)(nil)
)

func init() {
	commands.Register(commands.Definition{
		Name:        PermsCommand,
		Description: "inspect and edit player permissions",
		Category:    commands.ConsoleCategory,
	})
}

func NewManager(store Store) *Manager {
	return &Manager{Store: store}
}

func (m *Manager) HandleEvent(event events.Event) {
	if login, isLogin := event.(Login); isLogin {
		id, name := login.LoginIdentity()
		if _, err := m.EnsureUser(id, name); err != nil {
			log.WithError(err).WithField("player", name).Error("permissions.register")
		}
		return
	}
	commands.OnCommand(PermsCommand, event, m.handlePermsCommand)
}

func (m *Manager) handlePermsCommand(cmd *commands.Command) (err error) {
	defer func() {
		if err != nil {
			_ = cmd.Actor.SendMessage(err.Error())
		}
	}()

	args := cmd.Arguments
	if len(args) < 2 {
		return ErrUsage
	}

	user, err := m.UserByName(args[0])
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	var node Node
	var adding bool
	switch verb := strings.ToLower(args[1]); {
	case verb == "info" && len(args) == 2:
		return cmd.Actor.SendMessage(Describe(user))
	case verb == "parent" && len(args) == 4:
		node = Group(args[3])
		switch strings.ToLower(args[2]) {
		case "add":
			adding = true
		case "remove":
		default:
			return ErrUsage
		}
	case verb == "meta" && len(args) == 5 && strings.EqualFold(args[2], "set"):
		for _, n := range user.Nodes() {
			if n.Type == MetaNode && n.Key == args[3] {
				user.RemoveNode(n)
			}
		}
		node, adding = Meta(args[3], args[4]), true
	case verb == "meta" && len(args) == 4 && strings.EqualFold(args[2], "unset"):
		value, found := MetaValue(user, args[3])
		if !found {
			return fmt.Errorf("%s has no %s meta", user.Username(), args[3])
		}
		node = Meta(args[3], value)
	default:
		return ErrUsage
	}

	var result Result
	if adding {
		result = user.AddNode(node)
	} else {
		result = user.RemoveNode(node)
	}
	if !result.WasSuccessful() {
		return fmt.Errorf("%s %s: %s", user.Username(), node, result)
	}
	if err = m.SaveUser(user); err != nil {
		return err
	}

	log.WithFields(log.Fields{"player": user.Username(), "node": node.String(), "added": adding}).Info("permissions.updated")
	return cmd.Actor.SendMessage(Describe(user))
}

// Describe formats the permission data of a user for display.
func Describe(r Record) string {
	lines := make([]string, 0, 4)
	for _, n := range r.Nodes() {
		lines = append(lines, "  "+n.String())
	}
	sort.Strings(lines)
	return fmt.Sprintf("%s (%s):\n%s", r.Username(), r.UniqueID(), strings.Join(lines, "\n"))
}
