package admintag

import (
	"reflect"
	"testing"

	"github.com/Adirelle/efadmintag/pkg/permissions"
	"github.com/google/uuid"
)

func TestClearingIsIdempotent(t *testing.T) {
	t.Parallel()
	user := permissions.NewUser(uuid.New(), "Notch", permissions.Group("default"))
	before := user.Nodes()

	for i := 0; i < 2; i++ {
		if err := setMembership(user, "admin", false); err != nil {
			t.Errorf("removal #%d: %s", i, err)
		}
		if err := setMeta(user, "ef.group.disabled", ""); err != nil {
			t.Errorf("clear #%d: %s", i, err)
		}
	}

	if !reflect.DeepEqual(before, user.Nodes()) {
		t.Errorf("user was modified: %v", user.Nodes())
	}
}

func TestSettingDoesNotDuplicate(t *testing.T) {
	t.Parallel()
	user := permissions.NewUser(uuid.New(), "Notch")

	for i := 0; i < 2; i++ {
		if err := setMembership(user, "Admin", true); err != nil {
			t.Errorf("add #%d: %s", i, err)
		}
		if err := setMeta(user, "ef.group.disabled", "admin"); err != nil {
			t.Errorf("set #%d: %s", i, err)
		}
	}

	expected := []permissions.Node{permissions.Group("admin"), permissions.Meta("ef.group.disabled", "admin")}
	if !reflect.DeepEqual(expected, user.Nodes()) {
		t.Errorf("expected %v, got %v", expected, user.Nodes())
	}
}

func TestSetMetaReplacesEveryValue(t *testing.T) {
	t.Parallel()
	user := permissions.NewUser(uuid.New(), "Notch",
		permissions.Meta("ef.group.disabled", "admin"),
		permissions.Meta("ef.group.disabled", "moderator"),
	)

	if err := setMeta(user, "ef.group.disabled", "owner"); err != nil {
		t.Fatal(err)
	}

	expected := []permissions.Node{permissions.Meta("ef.group.disabled", "owner")}
	if !reflect.DeepEqual(expected, user.Nodes()) {
		t.Errorf("expected %v, got %v", expected, user.Nodes())
	}
}
