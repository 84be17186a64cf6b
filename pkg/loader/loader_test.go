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

package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kylelemons/godebug/pretty"
	"github.com/openconfig/gnmi/errdiff"

	"github.com/yangtools/goyin/pkg/schema"
)

func mustLoadYAML(t *testing.T, doc string) *Set {
	t.Helper()
	set, err := LoadYAML([]byte(doc))
	if err != nil {
		t.Fatalf("loading document: %v", err)
	}
	return set
}

func TestLoadJSON(t *testing.T) {
	set, err := Load([]byte(`{
  "modules": [
    {
      "name": "base",
      "namespace": "urn:base",
      "prefix": "b",
      "features": [{"name": "f1"}],
      "identities": [{"name": "alg"}]
    },
    {
      "name": "m",
      "namespace": "urn:m",
      "prefix": "m",
      "yang-version": 2,
      "imports": [{"module": "base", "prefix": "b"}],
      "features": [{"name": "adv", "if-features": ["base:f1"]}],
      "identities": [{"name": "aes", "base": "base:alg"}],
      "typedefs": [
        {"name": "retry", "type": {"name": "uint8"}, "default": "3"}
      ]
    }
  ]
}`))
	if err != nil {
		t.Fatalf("loading document: %v", err)
	}

	if diff := cmp.Diff([]string{"base", "m"}, set.Names); diff != "" {
		t.Errorf("module names (-want +got):\n%s", diff)
	}
	base, m := set.Modules["base"], set.Modules["m"]
	if base == nil || m == nil {
		t.Fatalf("modules missing from set: %v", set.Names)
	}
	if m.Version != 2 {
		t.Errorf("m.Version: got %d, want 2", m.Version)
	}
	if len(m.Imports) != 1 || m.Imports[0].Module != base {
		t.Errorf("m.Imports not linked to base: %v", m.Imports)
	}
	if len(m.Features) != 1 || len(m.Features[0].IfFeatures) != 1 ||
		m.Features[0].IfFeatures[0] != base.Features[0] {
		t.Errorf("feature adv not linked to base:f1")
	}
	if len(m.Identities) != 1 || m.Identities[0].Base != base.Identities[0] {
		t.Errorf("identity aes not linked to base:alg")
	}
	if len(m.Typedefs) != 1 {
		t.Fatalf("m.Typedefs: got %d, want 1", len(m.Typedefs))
	}
	if diff := pretty.Compare(m.Typedefs[0], &schema.Typedef{
		Name:    "retry",
		Type:    &schema.Type{Name: "uint8", Kind: schema.Yuint8},
		Default: "3",
	}); diff != "" {
		t.Errorf("typedef retry (-got +want):\n%s", diff)
	}
}

func TestLoadDataTree(t *testing.T) {
	set := mustLoadYAML(t, `
modules:
  - name: m
    namespace: urn:m
    prefix: m
    data:
      - kind: container
        name: state
        config: false
        nacm: [default-deny-all]
        children:
          - kind: leaf
            name: counter
            type: {name: uint64}
      - kind: list
        name: peer
        keys: [host]
        children:
          - kind: leaf
            name: host
            type: {name: string}
      - kind: choice
        name: transport
        default: tcp
        children:
          - kind: case
            name: tcp
          - kind: case
            name: udp
      - kind: grouping
        name: g
        children:
          - kind: leaf
            name: x
            type: {name: string}
      - kind: uses
        grouping: g
`)
	m := set.Modules["m"]
	if len(m.Data) != 5 {
		t.Fatalf("m.Data: got %d nodes, want 5", len(m.Data))
	}

	state := m.Data[0].(*schema.Container)
	if state.Config != schema.TSFalse {
		t.Errorf("state.Config: got %s, want false", state.Config)
	}
	if state.NACM != schema.NACMDenyAll {
		t.Errorf("state.NACM: got %d, want deny-all", state.NACM)
	}
	counter := state.Children[0].(*schema.Leaf)
	if counter.Config != schema.TSFalse {
		t.Errorf("counter.Config not inherited: got %s, want false", counter.Config)
	}
	if counter.NACM != schema.NACMDenyAll {
		t.Errorf("counter.NACM not inherited: got %d, want deny-all", counter.NACM)
	}
	if counter.ParentNode() != schema.Node(state) {
		t.Errorf("counter parent: got %v, want state", counter.ParentNode())
	}

	peer := m.Data[1].(*schema.List)
	if peer.Config != schema.TSTrue {
		t.Errorf("peer.Config: got %s, want true", peer.Config)
	}
	if len(peer.Keys) != 1 || peer.Keys[0] != peer.Children[0] {
		t.Errorf("peer key not resolved to the host leaf")
	}

	transport := m.Data[2].(*schema.Choice)
	if transport.Default == nil || transport.Default.NName() != "tcp" {
		t.Errorf("transport default not resolved: %v", transport.Default)
	}

	g := m.Data[3].(*schema.Grouping)
	uses := m.Data[4].(*schema.Uses)
	if uses.Grouping != g {
		t.Errorf("uses not linked to grouping g")
	}
	if uses.NName() != "g" {
		t.Errorf("uses name: got %q, want %q", uses.NName(), "g")
	}
}

// A uses may name a grouping whose defining module appears later in the
// document, or one declared later in the same module; both resolve to the
// same node the defining module's own pass builds.
func TestLoadUsesOrder(t *testing.T) {
	set := mustLoadYAML(t, `
modules:
  - name: first
    namespace: urn:first
    prefix: f
    imports:
      - {module: second, prefix: s}
    data:
      - kind: uses
        grouping: "second:grp"
      - kind: uses
        grouping: local
      - kind: grouping
        name: local
        children:
          - kind: leaf
            name: x
            type: {name: string}
  - name: second
    namespace: urn:second
    prefix: s
    data:
      - kind: grouping
        name: grp
        children:
          - kind: leaf
            name: y
            type: {name: string}
`)
	first, second := set.Modules["first"], set.Modules["second"]

	cross := first.Data[0].(*schema.Uses)
	if cross.Grouping != second.Data[0].(*schema.Grouping) {
		t.Errorf("uses second:grp not linked to second's grouping")
	}
	if cross.NName() != "grp" {
		t.Errorf("uses name: got %q, want %q", cross.NName(), "grp")
	}
	if len(cross.Grouping.Children) != 1 {
		t.Errorf("grouping grp children: got %d, want 1", len(cross.Grouping.Children))
	}

	fwd := first.Data[1].(*schema.Uses)
	if fwd.Grouping != first.Data[2].(*schema.Grouping) {
		t.Errorf("uses local not linked to the grouping declared after it")
	}
}

func TestLoadRPC(t *testing.T) {
	set := mustLoadYAML(t, `
modules:
  - name: m
    namespace: urn:m
    prefix: m
    data:
      - kind: rpc
        name: restart
        children:
          - kind: input
            children:
              - kind: leaf
                name: delay
                type: {name: uint32}
          - kind: output
            children:
              - kind: leaf
                name: at
                type: {name: uint64}
`)
	rpc := set.Modules["m"].Data[0].(*schema.RPC)
	if len(rpc.Children) != 2 {
		t.Fatalf("rpc children: got %d, want 2", len(rpc.Children))
	}
	in := rpc.Children[0].(*schema.Input)
	out := rpc.Children[1].(*schema.Output)
	if in.NName() != "input" || out.NName() != "output" {
		t.Errorf("input/output names: got %q, %q", in.NName(), out.NName())
	}
	if len(in.Children) != 1 || len(out.Children) != 1 {
		t.Errorf("input/output children: got %d, %d, want 1, 1",
			len(in.Children), len(out.Children))
	}
}

func TestLoadErrors(t *testing.T) {
	for _, tt := range []struct {
		name    string
		doc     string
		wantErr string
	}{{
		name:    "not yaml",
		doc:     "\t",
		wantErr: "decoding document",
	}, {
		name:    "no modules",
		doc:     "modules: []",
		wantErr: "invalid document",
	}, {
		name: "module without a name",
		doc: `
modules:
  - namespace: urn:m
    prefix: m
`,
		wantErr: "invalid document",
	}, {
		name: "bad revision date",
		doc: `
modules:
  - name: m
    revisions:
      - {date: June 30}
`,
		wantErr: "invalid document",
	}, {
		name: "bad node kind",
		doc: `
modules:
  - name: m
    data:
      - kind: widget
        name: x
`,
		wantErr: "invalid document",
	}, {
		name: "duplicate module",
		doc: `
modules:
  - name: m
  - name: m
`,
		wantErr: "module m declared twice",
	}, {
		name: "unknown import",
		doc: `
modules:
  - name: m
    imports:
      - {module: ghost, prefix: g}
`,
		wantErr: "imported module ghost not in document",
	}, {
		name: "unknown belongs-to",
		doc: `
modules:
  - name: sub
    belongs-to: ghost
`,
		wantErr: "belongs-to module ghost not in document",
	}, {
		name: "unknown submodule",
		doc: `
modules:
  - name: m
    includes:
      - {submodule: ghost}
`,
		wantErr: "included submodule ghost not in document",
	}, {
		name: "unknown feature",
		doc: `
modules:
  - name: m
    features:
      - name: f
        if-features: [ghost]
`,
		wantErr: `feature "ghost" not defined in module m`,
	}, {
		name: "unknown identity base",
		doc: `
modules:
  - name: m
    identities:
      - name: aes
        base: "ghost:alg"
`,
		wantErr: "module ghost not in document",
	}, {
		name: "derived type without kind",
		doc: `
modules:
  - name: m
    typedefs:
      - name: t
        type: {name: mystery}
`,
		wantErr: "derived types need an explicit kind",
	}, {
		name: "identityref without base",
		doc: `
modules:
  - name: m
    data:
      - kind: leaf
        name: x
        type: {name: identityref}
`,
		wantErr: "identityref needs a base",
	}, {
		name: "leafref without path",
		doc: `
modules:
  - name: m
    data:
      - kind: leaf
        name: x
        type: {name: leafref}
`,
		wantErr: "leafref needs a path",
	}, {
		name: "leaf without type",
		doc: `
modules:
  - name: m
    data:
      - kind: leaf
        name: x
`,
		wantErr: "leaf x: missing type",
	}, {
		name: "choice default not a child",
		doc: `
modules:
  - name: m
    data:
      - kind: choice
        name: c
        default: ghost
        children:
          - kind: case
            name: tcp
`,
		wantErr: `default "ghost" is not a child`,
	}, {
		name: "list key not a leaf",
		doc: `
modules:
  - name: m
    data:
      - kind: list
        name: l
        keys: [ghost]
`,
		wantErr: `key "ghost" is not a leaf child`,
	}, {
		name: "unknown grouping",
		doc: `
modules:
  - name: m
    data:
      - kind: uses
        grouping: ghost
`,
		wantErr: `grouping "ghost" not defined at the top level of module m`,
	}} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadYAML([]byte(tt.doc))
			if diff := errdiff.Substring(err, tt.wantErr); diff != "" {
				t.Errorf("LoadYAML: %s", diff)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "doc.yaml")
	if err := os.WriteFile(yamlPath, []byte("modules:\n  - name: m\n"), 0644); err != nil {
		t.Fatal(err)
	}
	set, err := LoadFile(yamlPath)
	if err != nil {
		t.Fatalf("LoadFile(yaml): %v", err)
	}
	if set.Modules["m"] == nil {
		t.Errorf("LoadFile(yaml): module m missing")
	}

	jsonPath := filepath.Join(dir, "doc.json")
	if err := os.WriteFile(jsonPath, []byte(`{"modules": [{"name": "m"}]}`), 0644); err != nil {
		t.Fatal(err)
	}
	set, err = LoadFile(jsonPath)
	if err != nil {
		t.Fatalf("LoadFile(json): %v", err)
	}
	if set.Modules["m"] == nil {
		t.Errorf("LoadFile(json): module m missing")
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Errorf("LoadFile(missing): got nil error")
	}
}
