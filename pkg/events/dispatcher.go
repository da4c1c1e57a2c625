package events

import (
	"context"
	"fmt"
	"sync"
)

type (
	Dispatcher interface {
		DispatchEvent(Event)
	}

	// AsyncDispatcher delivers events to its handlers on the goroutine running Serve,
	// one event at a time and in dispatch order. Handlers may dispatch new events;
	// those are queued behind the current one.
	AsyncDispatcher struct {
		mu       sync.Mutex
		queue    []command
		notify   chan struct{}
		handlers []Handler
	}

	command interface{}

	addCommand    struct{ Handler }
	removeCommand struct{ Handler }

	dispatchCommand struct {
		Event
		done chan struct{}
	}
)

var _ Dispatcher = (*AsyncDispatcher)(nil)

func NewAsyncDispatcher() *AsyncDispatcher {
	return &AsyncDispatcher{notify: make(chan struct{}, 1)}
}

func (d *AsyncDispatcher) Serve(ctx context.Context) error {
	for {
		select {
		case <-d.notify:
			for _, cmd := range d.drain() {
				d.handleCommand(cmd)
			}
		case <-ctx.Done():
			return nil
		}
	}
}

func (d *AsyncDispatcher) GoString() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return fmt.Sprintf("Dispatcher(%d handlers, %d queued)", len(d.handlers), len(d.queue))
}

func (d *AsyncDispatcher) push(cmd command) {
	d.mu.Lock()
	d.queue = append(d.queue, cmd)
	d.mu.Unlock()
	select {
	case d.notify <- struct{}{}:
	default:
	}
}

func (d *AsyncDispatcher) drain() (cmds []command) {
	d.mu.Lock()
	cmds, d.queue = d.queue, nil
	d.mu.Unlock()
	return
}

func (d *AsyncDispatcher) handleCommand(cmd command) {
	switch c := cmd.(type) {
	case addCommand:
		d.handlers = append(d.handlers, c.Handler)
	case removeCommand:
		for i, handler := range d.handlers {
			if sameHandler(handler, c.Handler) {
				d.handlers = append(d.handlers[:i], d.handlers[i+1:]...)
				break
			}
		}
	case dispatchCommand:
		defer close(c.done)
		for _, handler := range d.handlers {
			handler.HandleEvent(c.Event)
		}
	}
}

// Dispatch queues the event and returns a channel closed once every handler has seen it.
func (d *AsyncDispatcher) Dispatch(event Event) <-chan struct{} {
	done := make(chan struct{})
	d.push(dispatchCommand{event, done})
	return done
}

func (d *AsyncDispatcher) DispatchEvent(event Event) {
	d.Dispatch(event)
}

func (d *AsyncDispatcher) AddHandler(handler Handler) {
	d.push(addCommand{handler})
}

// RemoveHandler unregisters a handler. A HandlerFunc cannot be compared, so
// removing one has no effect.
func (d *AsyncDispatcher) RemoveHandler(handler Handler) {
	d.push(removeCommand{handler})
}

func sameHandler(a, b Handler) bool {
	switch a.(type) {
	case HandlerFunc, nil:
		return false
	}
	switch b.(type) {
	case HandlerFunc, nil:
		return false
	}
	return a == b
}
