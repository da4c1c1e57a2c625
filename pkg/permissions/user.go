package permissions

import (
	"errors"

	"github.com/google/uuid"
)

type (
	// Record is the permission data of a single user.
	Record interface {
		UniqueID() uuid.UUID
		Username() string
		Nodes() []Node
		AddNode(Node) Result
		RemoveNode(Node) Result
	}

	// Directory loads and persists user records.
	Directory interface {
		User(id uuid.UUID) (Record, error)
		SaveUser(Record) error
	}

	Store interface {
		Directory
		// EnsureUser returns the record of the user, creating it if needed.
		EnsureUser(id uuid.UUID, name string) (Record, error)
		UserByName(name string) (Record, error)
	}

	User struct {
		ID   uuid.UUID `json:"uuid"`
		Name string    `json:"name"`
		Data []Node    `json:"nodes"`
	}
)

var (
	ErrUserNotFound = errors.New("user not found")

	_ Record = (*User)(nil)
)

func NewUser(id uuid.UUID, name string, nodes ...Node) *User {
	return &User{ID: id, Name: name, Data: append([]Node(nil), nodes...)}
}

// CopyUser makes a detached copy of any record.
func CopyUser(r Record) *User {
	return NewUser(r.UniqueID(), r.Username(), r.Nodes()...)
}

func (u *User) UniqueID() uuid.UUID { return u.ID }
func (u *User) Username() string    { return u.Name }

func (u *User) Nodes() []Node {
	return append([]Node(nil), u.Data...)
}

func (u *User) AddNode(node Node) Result {
	for _, n := range u.Data {
		if n == node {
			return AlreadyHas
		}
	}
	u.Data = append(u.Data, node)
	return Success
}

func (u *User) RemoveNode(node Node) Result {
	for i, n := range u.Data {
		if n == node {
			u.Data = append(u.Data[:i], u.Data[i+1:]...)
			return Success
		}
	}
	return Lacks
}

// Groups lists the groups the user is a direct member of.
func Groups(r Record) (groups []string) {
	for _, n := range r.Nodes() {
		if n.Type == InheritanceNode {
			groups = append(groups, n.Key)
		}
	}
	return
}

// MetaValue returns the value of the first metadata node with the given key.
func MetaValue(r Record, key string) (string, bool) {
	for _, n := range r.Nodes() {
		if n.Type == MetaNode && n.Key == key {
			return n.Value, true
		}
	}
	return "", false
}
