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

package schema

// This file contains the per-kind node structures of the schema data tree.
// Field order within each struct follows the substatement order of the YIN
// grammar where one is mandated.

// A Container represents a container statement.
type Container struct {
	NodeBase

	Musts    []*Restriction
	Presence string
	Typedefs []*Typedef
	Children []Node
}

// Kind returns ContainerKind.
func (*Container) Kind() NodeKind { return ContainerKind }

// A Choice represents a choice statement.  Default, when set, points at one
// of the choice's own children.
type Choice struct {
	NodeBase

	Default  Node
	Children []Node
}

// Kind returns ChoiceKind.
func (*Choice) Kind() NodeKind { return ChoiceKind }

// A Case represents a case statement within a choice.
type Case struct {
	NodeBase

	Children []Node
}

// Kind returns CaseKind.
func (*Case) Kind() NodeKind { return CaseKind }

// A Leaf represents a leaf statement.
type Leaf struct {
	NodeBase

	Musts   []*Restriction
	Type    *Type
	Units   string
	Default string
}

// Kind returns LeafKind.
func (*Leaf) Kind() NodeKind { return LeafKind }

// A LeafList represents a leaf-list statement.  MinElements and MaxElements
// of zero mean the statements were absent (an absent max-elements is
// unbounded).
type LeafList struct {
	NodeBase

	Musts         []*Restriction
	Type          *Type
	Units         string
	MinElements   uint32
	MaxElements   uint32
	OrderedByUser bool
}

// Kind returns LeafListKind.
func (*LeafList) Kind() NodeKind { return LeafListKind }

// A List represents a list statement.  Keys point at the list's own key
// leaves, in key-statement order.
type List struct {
	NodeBase

	Musts         []*Restriction
	Keys          []*Leaf
	Uniques       []*Unique
	MinElements   uint32
	MaxElements   uint32
	OrderedByUser bool
	Typedefs      []*Typedef
	Children      []Node
}

// Kind returns ListKind.
func (*List) Kind() NodeKind { return ListKind }

// An AnyXML represents an anyxml statement.
type AnyXML struct {
	NodeBase

	Musts []*Restriction
}

// Kind returns AnyXMLKind.
func (*AnyXML) Kind() NodeKind { return AnyXMLKind }

// A Grouping represents a grouping statement.  Groupings carry no config,
// mandatory, when or if-feature of their own.
type Grouping struct {
	NodeBase

	Typedefs []*Typedef
	Children []Node
}

// Kind returns GroupingKind.
func (*Grouping) Kind() NodeKind { return GroupingKind }

// A Uses represents a uses statement.  Grouping is the referenced grouping;
// the uses' own Name is the grouping's unqualified name, prefixed on output
// when the grouping lives in another module.
type Uses struct {
	NodeBase

	Grouping *Grouping
	Refines  []*Refine
	Augments []*Augment
}

// Kind returns UsesKind.
func (*Uses) Kind() NodeKind { return UsesKind }

// A Refine alters a node brought in by a uses statement.  Target is a
// schema node identifier in the internal encoding and TargetKind is the
// kind of the refined node, which dictates the refinements that apply.
// MinElements and MaxElements of nil mean unset; a MaxElements of zero
// means unbounded.
type Refine struct {
	Target      string
	TargetKind  NodeKind
	Config      TriState
	Mandatory   TriState
	Status      Status
	Description string
	Reference   string
	Musts       []*Restriction
	Default     string
	Presence    string
	MinElements *uint32
	MaxElements *uint32
}

// An Augment represents an augment statement, either at module level or
// inside a uses.  Target is a schema node identifier in the internal
// encoding.
type Augment struct {
	NodeBase

	Target   string
	Children []Node
}

// Kind returns AugmentKind.
func (*Augment) Kind() NodeKind { return AugmentKind }

// An RPC represents an rpc statement.  Children holds the rpc's groupings
// and its input and output nodes.
type RPC struct {
	NodeBase

	Typedefs []*Typedef
	Children []Node
}

// Kind returns RPCKind.
func (*RPC) Kind() NodeKind { return RPCKind }

// A Notification represents a notification statement.
type Notification struct {
	NodeBase

	Typedefs []*Typedef
	Children []Node
}

// Kind returns NotificationKind.
func (*Notification) Kind() NodeKind { return NotificationKind }

// An Input represents the input block of an rpc.
type Input struct {
	NodeBase

	Typedefs []*Typedef
	Children []Node
}

// Kind returns InputKind.
func (*Input) Kind() NodeKind { return InputKind }

// An Output represents the output block of an rpc.
type Output struct {
	NodeBase

	Typedefs []*Typedef
	Children []Node
}

// Kind returns OutputKind.
func (*Output) Kind() NodeKind { return OutputKind }
