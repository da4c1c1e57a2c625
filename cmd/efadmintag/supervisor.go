package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/Adirelle/efadmintag/pkg/events"
	"github.com/apex/log"
	"github.com/thejerf/suture/v4"
)

type (
	RootSupervisor struct {
		*suture.Supervisor
		Dispatcher *events.AsyncDispatcher
	}
)

var SutureEventLabels = map[suture.EventType]string{
	suture.EventTypeStopTimeout:      "timeout",
	suture.EventTypeServicePanic:     "panic",
	suture.EventTypeServiceTerminate: "terminate",
	suture.EventTypeBackoff:          "backoff",
	suture.EventTypeResume:           "resume",
}

// MakeRootSupervisor creates the supervisor; stopTimeout bounds how long services may take to stop.
func MakeRootSupervisor(stopTimeout time.Duration) RootSupervisor {
	specs := suture.Spec{EventHook: EventHook, Timeout: stopTimeout}
	supervisor := suture.New(filepath.Base(os.Args[0]), specs)
	dispatcher := events.NewAsyncDispatcher()
	supervisor.Add(dispatcher)
	return RootSupervisor{supervisor, dispatcher}
}

// Add registers svc with the supervisor and, when it handles events, with the dispatcher.
func (s RootSupervisor) Add(svc suture.Service) suture.ServiceToken {
	s.AddHandler(svc)
	return s.Supervisor.Add(svc)
}

// AddHandler subscribes handler to events if it is an events.Handler.
func (s RootSupervisor) AddHandler(handler interface{}) {
	if h, isHandler := handler.(events.Handler); isHandler {
		s.Dispatcher.AddHandler(h)
	}
}

func EventHook(event suture.Event) {
	log.
		WithField("message", event.String()).
		WithFields(log.Fields(event.Map())).
		Warnf("suture.%s", SutureEventLabels[event.Type()])
}
