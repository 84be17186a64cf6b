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

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTriState(t *testing.T) {
	for _, tt := range []struct {
		in    TriState
		want  string
		value bool
	}{
		{TSUnset, "unset", false},
		{TSTrue, "true", true},
		{TSFalse, "false", false},
		{TriState(42), "ts-42", false},
	} {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("%d: got %q, want %q", int(tt.in), got, tt.want)
		}
		if got := tt.in.Value(); got != tt.value {
			t.Errorf("%s: got value %v, want %v", tt.want, got, tt.value)
		}
	}
}

func TestStatusString(t *testing.T) {
	for _, tt := range []struct {
		in   Status
		want string
	}{
		{StatusUnset, "unset"},
		{StatusCurrent, "current"},
		{StatusDeprecated, "deprecated"},
		{StatusObsolete, "obsolete"},
	} {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("%d: got %q, want %q", int(tt.in), got, tt.want)
		}
	}
}

func TestNodeKindString(t *testing.T) {
	for _, tt := range []struct {
		in   NodeKind
		want string
	}{
		{ContainerKind, "container"},
		{LeafKind, "leaf"},
		{LeafListKind, "leaf-list"},
		{ListKind, "list"},
		{ChoiceKind, "choice"},
		{CaseKind, "case"},
		{AnyXMLKind, "anyxml"},
		{GroupingKind, "grouping"},
		{UsesKind, "uses"},
		{RPCKind, "rpc"},
		{NotificationKind, "notification"},
		{InputKind, "input"},
		{OutputKind, "output"},
		{AugmentKind, "augment"},
	} {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestExplicitConfig(t *testing.T) {
	for _, tt := range []struct {
		name   string
		own    TriState
		parent TriState
		want   bool
	}{
		{"unset is never explicit", TSUnset, TSTrue, false},
		{"top-level read-write", TSTrue, TSUnset, false},
		{"top-level read-only", TSFalse, TSUnset, true},
		{"same as parent true", TSTrue, TSTrue, false},
		{"same as parent false", TSFalse, TSFalse, false},
		{"differs from parent", TSFalse, TSTrue, true},
		{"differs from read-only parent", TSTrue, TSFalse, true},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExplicitConfig(tt.own, tt.parent); got != tt.want {
				t.Errorf("ExplicitConfig(%s, %s): got %v, want %v", tt.own, tt.parent, got, tt.want)
			}
		})
	}
}

func TestMainModule(t *testing.T) {
	m := &Module{Name: "m"}
	sub := &Module{Name: "sub", BelongsTo: m}
	if m.IsSubmodule() {
		t.Errorf("module m reports being a submodule")
	}
	if !sub.IsSubmodule() {
		t.Errorf("submodule sub reports being a module")
	}
	if got := m.MainModule(); got != m {
		t.Errorf("m.MainModule(): got %s, want m", got.Name)
	}
	if got := sub.MainModule(); got != m {
		t.Errorf("sub.MainModule(): got %s, want m", got.Name)
	}
}

func TestChildren(t *testing.T) {
	m := &Module{Name: "m"}
	leaf := &Leaf{NodeBase: NodeBase{Name: "x", Module: m}}
	cont := &Container{
		NodeBase: NodeBase{Name: "c", Module: m},
		Children: []Node{leaf},
	}
	leaf.Parent = cont

	if diff := cmp.Diff([]string{"x"}, childNames(cont)); diff != "" {
		t.Errorf("container children (-want +got):\n%s", diff)
	}
	if got := Children(leaf); got != nil {
		t.Errorf("leaf children: got %v, want nil", got)
	}
	if got := leaf.ParentNode(); got != Node(cont) {
		t.Errorf("leaf parent: got %v, want container c", got)
	}
	if got := leaf.OwningModule(); got != m {
		t.Errorf("leaf owning module: got %v, want m", got)
	}
}

func childNames(n Node) []string {
	var names []string
	for _, c := range Children(n) {
		names = append(names, c.NName())
	}
	return names
}

func TestPrint(t *testing.T) {
	m := &Module{Name: "m"}
	host := &Leaf{NodeBase: NodeBase{Name: "host", Module: m, Config: TSTrue},
		Type: &Type{Name: "string", Kind: Ystring}}
	peers := &List{
		NodeBase: NodeBase{Name: "peer", Module: m, Config: TSTrue},
		Keys:     []*Leaf{host},
		Children: []Node{host},
	}
	host.Parent = peers
	m.Data = []Node{peers}

	var buf bytes.Buffer
	m.Print(&buf)
	out := buf.String()
	for _, want := range []string{
		"module: m {",
		"[host]peer {",
		"string host",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
