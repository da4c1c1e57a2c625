package discord

import (
	"context"
	"fmt"

	"github.com/Adirelle/efadmintag/pkg/events"
	"github.com/apex/log"
	"github.com/bwmarrin/discordgo"
)

type (
	// Notification is implemented by events worth reporting in Discord.
	Notification interface {
		events.Event
		Message() string
	}

	// Notifier posts notifications to the configured channels.
	Notifier struct {
		Config
		messages chan string
	}

	sender interface {
		ChannelMessageSend(channelID string, content string) (*discordgo.Message, error)
	}
)

var _ events.Handler = (*Notifier)(nil)

func NewNotifier(conf Config) *Notifier {
	return &Notifier{Config: conf, messages: make(chan string, 20)}
}

func (n *Notifier) GoString() string {
	return fmt.Sprintf("Discord Notifier (%d channels)", len(n.ChannelIDs))
}

// HandleEvent queues notifications; they are dropped when the queue is full.
func (n *Notifier) HandleEvent(event events.Event) {
	notif, ok := event.(Notification)
	if !ok {
		return
	}
	select {
	case n.messages <- notif.Message():
	default:
		log.WithFields(notif).Warn("discord.dropped")
	}
}

func (n *Notifier) Serve(ctx context.Context) error {
	session, err := discordgo.New("Bot " + n.Token.Reveal())
	if err != nil {
		return fmt.Errorf("could not create Discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds
	if err = session.Open(); err != nil {
		return fmt.Errorf("could not connect to Discord: %w", err)
	}
	log.Debug("discord.connected")
	defer func() {
		if err := session.Close(); err != nil {
			log.WithError(err).Info("discord.disconnect")
		}
	}()

	for {
		select {
		case msg := <-n.messages:
			n.deliver(session, msg)
		case <-ctx.Done():
			return nil
		}
	}
}

func (n *Notifier) deliver(s sender, msg string) {
	for _, channelID := range n.ChannelIDs {
		if _, err := s.ChannelMessageSend(channelID.String(), msg); err != nil {
			log.WithError(err).WithField("channelID", channelID).Warn("discord.notify")
		}
	}
}
