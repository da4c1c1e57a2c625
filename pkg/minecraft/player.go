package minecraft

import (
	"encoding/json"
	"fmt"

	"github.com/apex/log"
	"github.com/google/uuid"
)

type (
	// Console executes commands on the server console.
	Console interface {
		Execute(command string) error
	}

	// Player is an online player, acted upon through the server console.
	Player struct {
		name    string
		id      uuid.UUID
		console Console
	}

	textComponent struct {
		Text string `json:"text"`
	}
)

func NewPlayer(name string, id uuid.UUID, console Console) *Player {
	return &Player{name: name, id: id, console: console}
}

func (p *Player) Name() string        { return p.name }
func (p *Player) UniqueID() uuid.UUID { return p.id }

func (p *Player) SetOperator(op bool) error {
	if op {
		return p.console.Execute("op " + p.name)
	}
	return p.console.Execute("deop " + p.name)
}

func (p *Player) SendMessage(message string) error {
	text, err := json.Marshal(textComponent{message})
	if err != nil {
		return err
	}
	return p.console.Execute(fmt.Sprintf("tellraw %s %s", p.name, text))
}

func (p *Player) Fields() log.Fields {
	return log.Fields{"player": p.name, "uuid": p.id}
}

func (p *Player) String() string {
	return p.name
}
