package admintag

import (
	"errors"
	"fmt"

	"github.com/Adirelle/efadmintag/pkg/events"
	"github.com/Adirelle/efadmintag/pkg/minecraft"
	"github.com/Adirelle/efadmintag/pkg/permissions"
	"github.com/apex/log"
	"github.com/google/uuid"
)

type (
	// PlayerSession is the part of an online player the toggler acts upon.
	PlayerSession interface {
		UniqueID() uuid.UUID
		Name() string
		SetOperator(bool) error
		SendMessage(string) error
	}

	Toggler struct {
		conf       Config
		messages   Messages
		directory  permissions.Directory
		dispatcher events.Dispatcher
		logger     log.Interface
	}

	Option func(*Toggler)

	// TagToggled is dispatched after a tag has been successfully shown or hidden.
	TagToggled struct {
		Player  string
		Group   string
		Enabled bool
	}

	MutationError struct {
		Node   permissions.Node
		Added  bool
		Result permissions.Result
	}
)

var (
	ErrNotAPlayer            = errors.New("not a player")
	ErrNotInPermissionSystem = errors.New("not in the permission system")
	ErrNoPermission          = errors.New("no staff group")
	ErrMutationFailed        = errors.New("mutation failed")
	ErrSaveFailed            = errors.New("could not save user")

	_ events.Event   = TagToggled{}
	_ events.Handler = (*Toggler)(nil)
)

func WithMessages(messages Messages) Option {
	return func(t *Toggler) { t.messages = messages }
}

func WithDispatcher(dispatcher events.Dispatcher) Option {
	return func(t *Toggler) { t.dispatcher = dispatcher }
}

func WithLogger(logger log.Interface) Option {
	return func(t *Toggler) { t.logger = logger }
}

func NewToggler(conf Config, directory permissions.Directory, options ...Option) *Toggler {
	t := &Toggler{
		conf:      conf.clone(),
		messages:  DefaultMessages(),
		directory: directory,
		logger:    log.Log,
	}
	for _, apply := range options {
		apply(t)
	}
	return t
}

// Toggle hides the highest staff group of the player, or restores the hidden
// one. The active group is checked first: when the rank of a player changed
// while their tag was hidden, the stale hidden group must not be restored.
func (t *Toggler) Toggle(player PlayerSession) (toggled TagToggled, err error) {
	toggled.Player = player.Name()

	user, err := t.directory.User(player.UniqueID())
	if err != nil {
		t.reply(player, t.messages.NotInPermissionSystem)
		t.logger.WithError(err).WithField("player", toggled.Player).Warn("admintag.unknown")
		if !errors.Is(err, permissions.ErrUserNotFound) {
			err = fmt.Errorf("%w: %s", ErrNotInPermissionSystem, err)
		} else {
			err = ErrNotInPermissionSystem
		}
		return
	}

	if group, active := t.conf.ActiveGroup(user); active {
		toggled.Group = group
		err = t.hide(user, group)
	} else if group, hidden := t.conf.HiddenGroup(user); hidden {
		toggled.Group, toggled.Enabled = group, true
		err = t.restore(user, group)
	} else {
		t.reply(player, t.messages.NoPermission)
		t.logger.WithField("player", toggled.Player).Warn("admintag.denied")
		return toggled, ErrNoPermission
	}

	logger := t.logger.WithFields(toggled)
	if err == nil {
		if serr := t.directory.SaveUser(user); serr != nil {
			err = fmt.Errorf("%w: %s", ErrSaveFailed, serr)
		}
	}
	if err != nil {
		t.reply(player, t.messages.ToggleFailed)
		logger.WithError(err).Warn("admintag.failed")
		return
	}

	if t.conf.IsOpGroup(toggled.Group) {
		if oerr := player.SetOperator(toggled.Enabled); oerr != nil {
			logger.WithError(oerr).Warn("admintag.operator")
		}
	}
	if toggled.Enabled {
		t.reply(player, t.messages.TagAdded)
	} else {
		t.reply(player, t.messages.TagRemoved)
	}
	logger.Info("admintag.toggled")

	if t.dispatcher != nil {
		t.dispatcher.DispatchEvent(toggled)
	}
	return
}

func (t *Toggler) hide(user permissions.Record, group string) error {
	if err := setMembership(user, group, false); err != nil {
		return err
	}
	return setMeta(user, t.conf.HiddenGroupKey, group)
}

func (t *Toggler) restore(user permissions.Record, group string) error {
	if err := setMembership(user, group, true); err != nil {
		return err
	}
	return setMeta(user, t.conf.HiddenGroupKey, "")
}

func (t *Toggler) reply(player PlayerSession, message string) {
	if err := player.SendMessage(minecraft.TranslateColorCodes('&', t.conf.ChatTag+message)); err != nil {
		t.logger.WithError(err).WithField("player", player.Name()).Warn("admintag.reply")
	}
}

// setMembership removes every membership of the user in the group, then adds
// one back if isMember is set. Removing a missing membership is a no-op.
func setMembership(user permissions.Record, group string, isMember bool) error {
	node := permissions.Group(group)
	if err := removeAll(user, node); err != nil {
		return err
	}
	if isMember {
		return add(user, node)
	}
	return nil
}

// setMeta replaces every value of the key with the given one, or just removes them when value is empty.
func setMeta(user permissions.Record, key, value string) error {
	node := permissions.Meta(key, value)
	if err := removeAll(user, node); err != nil {
		return err
	}
	if value != "" {
		return add(user, node)
	}
	return nil
}

func removeAll(user permissions.Record, node permissions.Node) error {
	for _, n := range user.Nodes() {
		if !n.SameKey(node) {
			continue
		}
		if result := user.RemoveNode(n); !result.WasSuccessful() {
			return &MutationError{Node: n, Result: result}
		}
	}
	return nil
}

func add(user permissions.Record, node permissions.Node) error {
	if result := user.AddNode(node); !result.WasSuccessful() {
		return &MutationError{Node: node, Added: true, Result: result}
	}
	return nil
}

func (e TagToggled) Direction() string {
	if e.Enabled {
		return "on"
	}
	return "off"
}

func (e TagToggled) Fields() log.Fields {
	return log.Fields{
		"player":    e.Player,
		"group":     e.Group,
		"direction": e.Direction(),
	}
}

// Message describes the toggle for audit notifications.
func (e TagToggled) Message() string {
	if e.Enabled {
		return fmt.Sprintf("%s is showing the %s tag again", e.Player, e.Group)
	}
	return fmt.Sprintf("%s has hidden the %s tag", e.Player, e.Group)
}

func (e TagToggled) String() string {
	return fmt.Sprintf("toggling %s %s %s's tag", e.Direction(), e.Group, e.Player)
}

func (e *MutationError) Error() string {
	verb := "remove"
	if e.Added {
		verb = "add"
	}
	return fmt.Sprintf("could not %s %s: %s", verb, e.Node, e.Result)
}

func (e *MutationError) Unwrap() error {
	return ErrMutationFailed
}
