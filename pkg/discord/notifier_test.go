package discord

import (
	"errors"
	"testing"

	"github.com/apex/log"
	"github.com/bwmarrin/discordgo"
)

type fakeSender struct {
	sent map[string][]string
}

func (f *fakeSender) ChannelMessageSend(channelID, content string) (*discordgo.Message, error) {
	if channelID == "0" {
		return nil, errors.New("unknown channel")
	}
	f.sent[channelID] = append(f.sent[channelID], content)
	return &discordgo.Message{ChannelID: channelID, Content: content}, nil
}

type notification string

func (n notification) Fields() log.Fields { return nil }
func (n notification) Message() string    { return string(n) }

type otherEvent struct{}

func (otherEvent) Fields() log.Fields { return nil }

func TestHandleEvent(t *testing.T) {
	t.Parallel()
	n := NewNotifier(Config{})

	n.HandleEvent(otherEvent{})
	n.HandleEvent(notification("hello"))

	if len(n.messages) != 1 {
		t.Fatalf("expected one queued message, got %d", len(n.messages))
	}
	if msg := <-n.messages; msg != "hello" {
		t.Errorf("unexpected message: %q", msg)
	}
}

func TestDeliver(t *testing.T) {
	t.Parallel()
	n := NewNotifier(Config{ChannelIDs: []Snowflake{"0", "4194305", "4194306"}})
	s := &fakeSender{sent: make(map[string][]string)}

	n.deliver(s, "hello")

	if len(s.sent) != 2 || len(s.sent["4194305"]) != 1 || len(s.sent["4194306"]) != 1 {
		t.Errorf("unexpected deliveries: %v", s.sent)
	}
}
