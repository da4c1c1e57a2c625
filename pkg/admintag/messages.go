package admintag

import (
	properties "github.com/dmotylev/goproperties"
)

// Messages are the chat replies of the admintag command, using '&' color codes.
type Messages struct {
	NotAPlayer            string
	NotInPermissionSystem string
	NoPermission          string
	TagRemoved            string
	TagAdded              string
	ToggleFailed          string
}

func DefaultMessages() Messages {
	return Messages{
		NotAPlayer:            "&cYou must be a player to use that command!",
		NotInPermissionSystem: "&cYou are not in the permissions system...",
		NoPermission:          "&cYou do not have permission to do that!",
		TagRemoved:            "&aRemoving Admin Tag",
		TagAdded:              "&aAdding Admin Tag",
		ToggleFailed:          "&cUnable to toggle your Admin Tag, please try again.",
	}
}

// LoadMessages reads message overrides from a properties file. Missing keys keep their default.
func LoadMessages(path string) (Messages, error) {
	m := DefaultMessages()
	props, err := properties.Load(path)
	if err != nil {
		return m, err
	}
	m.NotAPlayer = props.String("not-a-player", m.NotAPlayer)
	m.NotInPermissionSystem = props.String("not-in-permission-system", m.NotInPermissionSystem)
	m.NoPermission = props.String("no-permission", m.NoPermission)
	m.TagRemoved = props.String("tag-removed", m.TagRemoved)
	m.TagAdded = props.String("tag-added", m.TagAdded)
	m.ToggleFailed = props.String("toggle-failed", m.ToggleFailed)
	return m, nil
}
