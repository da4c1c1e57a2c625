package permissions

import (
	"fmt"
	"strings"
)

type (
	NodeType int

	// Node is a single entry of a user's permission data: either a membership
	// in a group or a metadata key/value pair.
	Node struct {
		Type  NodeType `json:"type"`
		Key   string   `json:"key"`
		Value string   `json:"value,omitempty"`
	}

	// Result reports the outcome of a mutation of permission data.
	Result int
)

const (
	InheritanceNode NodeType = iota + 1
	MetaNode
)

const (
	Success Result = iota
	AlreadyHas
	Lacks
	Fail
)

// Group returns the node making a user a member of the named group.
func Group(name string) Node {
	return Node{Type: InheritanceNode, Key: strings.ToLower(name)}
}

// Meta returns a metadata node.
func Meta(key, value string) Node {
	return Node{Type: MetaNode, Key: key, Value: value}
}

func (t NodeType) String() string {
	switch t {
	case InheritanceNode:
		return "group"
	case MetaNode:
		return "meta"
	default:
		return fmt.Sprintf("NodeType(%d)", int(t))
	}
}

func (n Node) String() string {
	if n.Type == MetaNode {
		return fmt.Sprintf("meta.%s.%s", n.Key, n.Value)
	}
	return fmt.Sprintf("%s.%s", n.Type, n.Key)
}

// SameKey is true when both nodes have the same type and key, whatever their value.
func (n Node) SameKey(o Node) bool {
	return n.Type == o.Type && n.Key == o.Key
}

func (r Result) WasSuccessful() bool {
	return r == Success
}

func (r Result) String() string {
	switch r {
	case Success:
		return "success"
	case AlreadyHas:
		return "already has"
	case Lacks:
		return "lacks"
	case Fail:
		return "fail"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}
