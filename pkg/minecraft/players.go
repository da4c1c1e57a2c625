package minecraft

import (
	"errors"
	"regexp"
	"strings"

	"github.com/Adirelle/efadmintag/pkg/commands"
	"github.com/Adirelle/efadmintag/pkg/events"
	"github.com/apex/log"
	"github.com/google/uuid"
)

type (
	// PlayerTracker follows players joining and leaving from the server output,
	// and turns the commands they issue into command events.
	PlayerTracker struct {
		console    Console
		dispatcher events.Dispatcher
		players    map[string]*Player
	}

	PlayerJoined struct{ *Player }
	PlayerLeft   struct{ *Player }
)

// Server log lines start with "[time level]: " or "[time] [thread/level]: ".
// Patterns are anchored on that prefix so that chat messages cannot forge them.
const (
	linePrefix = `^\[[^\]]*\](?: \[[^\]]*\])?: `
	authPrefix = `^\[[^\]]*\](?: \[User Authenticator #\d+/INFO\])?: `
)

var (
	uuidPattern    = regexp.MustCompile(authPrefix + `UUID of player (\w{1,16}) is ([0-9a-fA-F-]{32,36})\s*$`)
	leftPattern    = regexp.MustCompile(linePrefix + `(\w{1,16}) left the game\s*$`)
	commandPattern = regexp.MustCompile(linePrefix + `(\w{1,16}) issued server command: (/.*?)\s*$`)

	_ events.Handler = (*PlayerTracker)(nil)
)

func NewPlayerTracker(console Console, dispatcher events.Dispatcher) *PlayerTracker {
	return &PlayerTracker{
		console:    console,
		dispatcher: dispatcher,
		players:    make(map[string]*Player),
	}
}

func (t *PlayerTracker) HandleEvent(event events.Event) {
	switch typed := event.(type) {
	case ServerOutput:
		t.parse(string(typed))
	case ServerStopped:
		for key, player := range t.players {
			delete(t.players, key)
			t.dispatcher.DispatchEvent(PlayerLeft{player})
		}
	}
}

// Player returns an online player by name.
func (t *PlayerTracker) Player(name string) (*Player, bool) {
	player, found := t.players[strings.ToLower(name)]
	return player, found
}

func (t *PlayerTracker) parse(line string) {
	if m := uuidPattern.FindStringSubmatch(line); m != nil {
		id, err := uuid.Parse(m[2])
		if err != nil {
			log.WithError(err).WithField("player", m[1]).Warn("players.uuid")
			return
		}
		player := NewPlayer(m[1], id, t.console)
		t.players[strings.ToLower(m[1])] = player
		log.WithFields(player).Info("players.joined")
		t.dispatcher.DispatchEvent(PlayerJoined{player})
	} else if m := leftPattern.FindStringSubmatch(line); m != nil {
		key := strings.ToLower(m[1])
		if player, found := t.players[key]; found {
			delete(t.players, key)
			log.WithFields(player).Info("players.left")
			t.dispatcher.DispatchEvent(PlayerLeft{player})
		}
	} else if m := commandPattern.FindStringSubmatch(line); m != nil {
		t.handleCommand(m[1], m[2])
	}
}

func (t *PlayerTracker) handleCommand(name, line string) {
	logger := log.WithFields(log.Fields{"player": name, "line": line})
	player, found := t.Player(name)
	if !found {
		logger.Warn("players.unknown")
		return
	}
	cmd, err := commands.Parse(line, player)
	if errors.Is(err, commands.ErrUnknownCommand) {
		return
	} else if err != nil {
		logger.WithError(err).Debug("players.command")
		return
	}
	t.dispatcher.DispatchEvent(cmd)
}

func (e PlayerJoined) LoginIdentity() (uuid.UUID, string) {
	return e.UniqueID(), e.Name()
}
