// Copyright 2024 The goyin Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package schema defines the resolved YANG schema model consumed by the YIN
// serializer.  The model is produced elsewhere (by a compiler or by the
// loader package) and is treated as read-only: nothing in this module
// mutates a schema tree after it has been linked.
//
// Every data-tree statement kind is represented by its own struct embedding
// NodeBase; all of them implement Node.  NodeKind is a bit set so that a
// parent context can describe the statement kinds it permits as a mask.
package schema

import "fmt"

// A TriState may be true, false, or unset.
type TriState int

// The possible states of a TriState.
const (
	TSUnset = TriState(iota)
	TSTrue
	TSFalse
)

// Value returns the value of t as a boolean.  Unset is returned as false.
func (t TriState) Value() bool {
	return t == TSTrue
}

// String displays t as a string.
func (t TriState) String() string {
	switch t {
	case TSUnset:
		return "unset"
	case TSTrue:
		return "true"
	case TSFalse:
		return "false"
	default:
		return fmt.Sprintf("ts-%d", t)
	}
}

// A Status is the argument of a status statement.  The zero value means the
// statement was not present; such nodes default to current but print no
// status element.
type Status int

// The possible values of a Status.
const (
	StatusUnset = Status(iota)
	StatusCurrent
	StatusDeprecated
	StatusObsolete
)

// String displays s as the argument of a status statement.
func (s Status) String() string {
	switch s {
	case StatusUnset:
		return "unset"
	case StatusCurrent:
		return "current"
	case StatusDeprecated:
		return "deprecated"
	case StatusObsolete:
		return "obsolete"
	default:
		return fmt.Sprintf("status-%d", s)
	}
}

// NACMFlags is the set of NETCONF access control extensions attached to a
// node.  The flags are inherited by descendants; a node records the full
// inherited set so a printer only emits the bits absent on the parent.
type NACMFlags uint8

// The defined NACM extension flags.
const (
	NACMDenyWrite = NACMFlags(1 << iota)
	NACMDenyAll
)

// A NodeKind identifies the statement kind of a schema node.  Kinds are
// single bits so they can be combined into permitted-child masks.
type NodeKind uint32

// The defined node kinds.
const (
	ContainerKind = NodeKind(1 << iota)
	ChoiceKind
	LeafKind
	LeafListKind
	ListKind
	AnyXMLKind
	CaseKind
	NotificationKind
	RPCKind
	InputKind
	OutputKind
	GroupingKind
	UsesKind
	AugmentKind
)

// String returns the YANG keyword for k.
func (k NodeKind) String() string {
	switch k {
	case ContainerKind:
		return "container"
	case ChoiceKind:
		return "choice"
	case LeafKind:
		return "leaf"
	case LeafListKind:
		return "leaf-list"
	case ListKind:
		return "list"
	case AnyXMLKind:
		return "anyxml"
	case CaseKind:
		return "case"
	case NotificationKind:
		return "notification"
	case RPCKind:
		return "rpc"
	case InputKind:
		return "input"
	case OutputKind:
		return "output"
	case GroupingKind:
		return "grouping"
	case UsesKind:
		return "uses"
	case AugmentKind:
		return "augment"
	default:
		return fmt.Sprintf("kind-%d", k)
	}
}

// A Node is a single statement in the schema data tree.  Only pointers to
// structures embedding NodeBase implement Node.
type Node interface {
	// Kind returns the kind of the statement.
	Kind() NodeKind
	// NName returns the node's name (the statement's argument).
	NName() string
	// ParentNode returns the parent of this node, or nil for a
	// top-level node.
	ParentNode() Node
	// OwningModule returns the module or submodule that declared this
	// node.
	OwningModule() *Module
	// Base returns the attributes shared by all statement kinds.
	Base() *NodeBase
}

// NodeBase carries the attributes common to every schema node.  The Parent
// and Module references are back-references only: the tree is owned by the
// Module that declares it and is never traversed upward during printing
// except to consult inherited attributes.
type NodeBase struct {
	Name        string
	Module      *Module
	Parent      Node
	Status      Status
	Description string
	Reference   string

	// Config is the resolved config value of the node.  The linker sets
	// it on every data node; it is unset only on kinds that have no
	// config notion.
	Config TriState
	// Mandatory is set only when a mandatory statement was present.
	Mandatory TriState

	NACM NACMFlags

	When       *When
	IfFeatures []*Feature
}

// NName returns the node's name.
func (b *NodeBase) NName() string { return b.Name }

// ParentNode returns the node's parent, or nil.
func (b *NodeBase) ParentNode() Node { return b.Parent }

// OwningModule returns the module or submodule that declared the node.
func (b *NodeBase) OwningModule() *Module { return b.Module }

// Base returns b itself.
func (b *NodeBase) Base() *NodeBase { return b }

// ExplicitConfig reports whether a node whose resolved config value is own,
// under a parent whose resolved value is parent, must carry an explicit
// config statement.  A top-level node (parent unset) is explicit only when
// it is read-only; any other node is explicit only when it differs from its
// parent.
func ExplicitConfig(own, parent TriState) bool {
	if own == TSUnset {
		return false
	}
	if parent == TSUnset {
		return own == TSFalse
	}
	return own != parent
}

// A When is the condition constraining a node's existence.  Condition is
// held in the internal encoding, with node names qualified by module name.
type When struct {
	Condition   string
	Description string
	Reference   string
}

// A Restriction is a value-space constraint: the body of a must, range,
// length or pattern statement.  Must expressions are held in the internal
// encoding; range, length and pattern expressions are literal.
type Restriction struct {
	Expr         string
	Description  string
	Reference    string
	ErrorAppTag  string
	ErrorMessage string
}

// A Unique is the argument of a unique statement: the schema node
// identifiers of the leaves that must be unique together.
type Unique struct {
	Exprs []string
}

// Children returns the ordered child statements of n, or nil for kinds that
// have none.
func Children(n Node) []Node {
	switch t := n.(type) {
	case *Container:
		return t.Children
	case *Choice:
		return t.Children
	case *Case:
		return t.Children
	case *List:
		return t.Children
	case *Grouping:
		return t.Children
	case *Augment:
		return t.Children
	case *RPC:
		return t.Children
	case *Notification:
		return t.Children
	case *Input:
		return t.Children
	case *Output:
		return t.Children
	default:
		return nil
	}
}
