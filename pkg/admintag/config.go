package admintag

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Adirelle/efadmintag/pkg/permissions"
	"golang.org/x/exp/slices"
)

// Config lists the staff groups, highest rank first, and the subset of them
// whose members are server operators.
type Config struct {
	StaffGroups    []string `json:"staff_groups" validate:"required,min=1,dive,required"`
	OpGroups       []string `json:"op_groups" validate:"dive,required"`
	HiddenGroupKey string   `json:"hidden_group_key" validate:"required"`
	ChatTag        string   `json:"chat_tag"`
	MessagesFile   string   `json:"messages_file,omitempty" validate:"omitempty,file"`
}

var ErrUnknownOpGroup = errors.New("operator group is not a staff group")

func NewConfig() *Config {
	return &Config{
		StaffGroups:    []string{"owner", "coowner", "rootadmin", "admin", "moderator", "tmod"},
		OpGroups:       []string{"owner", "coowner", "rootadmin", "admin"},
		HiddenGroupKey: "ef.group.disabled",
		ChatTag:        "&0[&bEF&0]&r ",
	}
}

func (c Config) clone() Config {
	c.StaffGroups = slices.Clone(c.StaffGroups)
	c.OpGroups = slices.Clone(c.OpGroups)
	return c
}

// Validate checks that every operator group is also a staff group.
func (c Config) Validate() error {
	for _, group := range c.OpGroups {
		if !containsFold(c.StaffGroups, group) {
			return fmt.Errorf("%w: %s", ErrUnknownOpGroup, group)
		}
	}
	return nil
}

func (c Config) IsOpGroup(group string) bool {
	return containsFold(c.OpGroups, group)
}

// ActiveGroup returns the highest ranking staff group the user is a member of.
func (c Config) ActiveGroup(r permissions.Record) (string, bool) {
	groups := permissions.Groups(r)
	for _, group := range c.StaffGroups {
		if slices.Contains(groups, permissions.Group(group).Key) {
			return group, true
		}
	}
	return "", false
}

// HiddenGroup returns the group recorded when the tag was last hidden.
func (c Config) HiddenGroup(r permissions.Record) (string, bool) {
	group, found := permissions.MetaValue(r, c.HiddenGroupKey)
	return group, found && group != ""
}

func containsFold(groups []string, group string) bool {
	return slices.IndexFunc(groups, func(g string) bool { return strings.EqualFold(g, group) }) >= 0
}
