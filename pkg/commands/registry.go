package commands

import "sync"

type (
	Category string

	// Console marks the supervisor console actor.
	Console interface {
		Actor
		IsConsole() bool
	}
)

const (
	Anyone          Category = ""
	ConsoleCategory Category = "console"
)

var (
	mu          sync.RWMutex
	definitions = make(map[Name]*Definition, 4)
)

func Register(def Definition) {
	mu.Lock()
	defer mu.Unlock()
	definitions[def.Name] = &def
}

func Lookup(name Name) (*Definition, bool) {
	mu.RLock()
	defer mu.RUnlock()
	def, found := definitions[name]
	return def, found
}

func (c Category) Allow(actor Actor) bool {
	switch c {
	case ConsoleCategory:
		console, isConsole := actor.(Console)
		return isConsole && console.IsConsole()
	default:
		return true
	}
}
