package events

import "github.com/apex/log"

type (
	Event interface {
		log.Fielder
	}

	Handler interface {
		HandleEvent(Event)
	}

	HandlerFunc func(Event)
)

func (f HandlerFunc) HandleEvent(ev Event) {
	f(ev)
}
