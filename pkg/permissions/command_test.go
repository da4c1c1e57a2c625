package permissions_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/Adirelle/efadmintag/pkg/commands"
	"github.com/Adirelle/efadmintag/pkg/permissions"
	"github.com/apex/log"
	"github.com/google/uuid"
)

type console struct {
	messages []string
}

func (*console) Name() string    { return "console" }
func (*console) IsConsole() bool { return true }

func (c *console) SendMessage(msg string) error {
	c.messages = append(c.messages, msg)
	return nil
}

type login struct {
	id   uuid.UUID
	name string
}

func (l login) Fields() log.Fields                 { return log.Fields{"player": l.name} }
func (l login) LoginIdentity() (uuid.UUID, string) { return l.id, l.name }

func runPerms(t *testing.T, m *permissions.Manager, line string) *console {
	t.Helper()
	c := &console{}
	cmd, err := commands.Parse(line, c)
	if err != nil {
		t.Fatal(err)
	}
	m.HandleEvent(cmd)
	return c
}

func TestManagerRegistersLogins(t *testing.T) {
	t.Parallel()
	store := permissions.NewMemoryStore()
	m := permissions.NewManager(store)

	m.HandleEvent(login{notch, "Notch"})

	if _, err := store.User(notch); err != nil {
		t.Errorf("user was not registered: %s", err)
	}
}

func TestPermsCommand(t *testing.T) {
	t.Parallel()
	store := permissions.NewMemoryStore(permissions.NewUser(notch, "Notch"))
	m := permissions.NewManager(store)

	runPerms(t, m, "perms Notch parent add admin")
	runPerms(t, m, "perms notch meta set ef.group.disabled moderator")
	runPerms(t, m, "perms notch meta set ef.group.disabled admin")

	user, _ := store.User(notch)
	expected := []permissions.Node{permissions.Group("admin"), permissions.Meta("ef.group.disabled", "admin")}
	if !reflect.DeepEqual(user.Nodes(), expected) {
		t.Fatalf("expected %v, got %v", expected, user.Nodes())
	}

	runPerms(t, m, "perms notch parent remove admin")
	runPerms(t, m, "perms notch meta unset ef.group.disabled")

	user, _ = store.User(notch)
	if len(user.Nodes()) != 0 {
		t.Errorf("expected no nodes, got %v", user.Nodes())
	}

	c := runPerms(t, m, "perms notch info")
	if len(c.messages) != 1 || !strings.HasPrefix(c.messages[0], "Notch (") {
		t.Errorf("unexpected info reply: %v", c.messages)
	}
}

func TestPermsCommandErrors(t *testing.T) {
	t.Parallel()
	store := permissions.NewMemoryStore(permissions.NewUser(notch, "Notch"))
	m := permissions.NewManager(store)

	for _, line := range []string{
		"perms",
		"perms notch",
		"perms notch parent toggle admin",
		"perms notch parent remove admin",
		"perms notch meta unset missing",
		"perms jeb_ info",
	} {
		c := runPerms(t, m, line)
		if len(c.messages) != 1 {
			t.Errorf("%q: expected an error reply, got %v", line, c.messages)
		}
	}
}
