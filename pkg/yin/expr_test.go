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

package yin

import (
	"testing"

	"github.com/openconfig/gnmi/errdiff"

	"github.com/yangtools/goyin/pkg/schema"
)

// exprModule returns a module named m importing base under the prefix b.
func exprModule() *schema.Module {
	base := &schema.Module{Name: "base", Namespace: "urn:base", Prefix: "b"}
	m := &schema.Module{Name: "m", Namespace: "urn:m", Prefix: "m"}
	m.Imports = []*schema.Import{{Module: base, Prefix: "b"}}
	return m
}

func TestTranslateExpr(t *testing.T) {
	mod := exprModule()
	for _, tt := range []struct {
		name    string
		in      string
		want    string
		wantErr string
	}{{
		name: "no qualifiers",
		in:   "../enabled = 'true'",
		want: "../enabled = 'true'",
	}, {
		name: "self qualifier dropped",
		in:   "/m:system/m:hostname",
		want: "/system/hostname",
	}, {
		name: "import qualifier rewritten",
		in:   "/base:system/base:hostname",
		want: "/b:system/b:hostname",
	}, {
		name: "qualifier inside predicate",
		in:   "count(../base:peer[base:weight > 0]) >= 1",
		want: "count(../b:peer[b:weight > 0]) >= 1",
	}, {
		name: "single quoted literal untouched",
		in:   "mode = 'base:keep'",
		want: "mode = 'base:keep'",
	}, {
		name: "double quoted literal untouched",
		in:   `derived-from-or-self(., "m:keep")`,
		want: `derived-from-or-self(., "m:keep")`,
	}, {
		name: "axis is not a qualifier",
		in:   "ancestor-or-self::base",
		want: "ancestor-or-self::base",
	}, {
		name: "unterminated literal copied verbatim",
		in:   "mode = 'open",
		want: "mode = 'open",
	}, {
		name: "mixed self and import",
		in:   "/m:system/base:endpoint/m:port",
		want: "/system/b:endpoint/port",
	}, {
		name:    "unknown module",
		in:      "/nope:system",
		wantErr: "no import prefix for module nope",
	}} {
		t.Run(tt.name, func(t *testing.T) {
			got, err := translateExpr(mod, tt.in)
			if diff := errdiff.Substring(err, tt.wantErr); diff != "" {
				t.Fatalf("translateExpr(%q): %s", tt.in, diff)
			}
			if err != nil {
				return
			}
			if got != tt.want {
				t.Errorf("translateExpr(%q): got %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestImportPrefix(t *testing.T) {
	c := &schema.Module{Name: "c", Namespace: "urn:c", Prefix: "c"}
	sub := &schema.Module{Name: "sub", Prefix: "a"}
	a := &schema.Module{Name: "a", Namespace: "urn:a", Prefix: "a"}
	sub.BelongsTo = a
	sub.Imports = []*schema.Import{{Module: c, Prefix: "cee"}}
	b := &schema.Module{Name: "b", Namespace: "urn:b", Prefix: "b"}
	a.Imports = []*schema.Import{{Module: b, Prefix: "bee"}}
	a.Includes = []*schema.Include{{Submodule: sub}}

	for _, tt := range []struct {
		target  string
		want    string
		wantErr string
	}{
		{target: "a", want: ""},
		{target: "b", want: "bee"},
		{target: "c", want: "cee"},
		{target: "zz", wantErr: "module a has no import prefix for module zz"},
	} {
		got, err := importPrefix(a, tt.target)
		if diff := errdiff.Substring(err, tt.wantErr); diff != "" {
			t.Errorf("importPrefix(a, %q): %s", tt.target, diff)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("importPrefix(a, %q): got %q, want %q", tt.target, got, tt.want)
		}
	}
}

func TestQualifiedName(t *testing.T) {
	mod := exprModule()
	base := mod.Imports[0].Module
	sub := &schema.Module{Name: "m-sub", Prefix: "m", BelongsTo: mod}

	for _, tt := range []struct {
		name string
		def  *schema.Module
		want string
	}{
		{name: "own definition", def: mod, want: "thing"},
		{name: "submodule definition", def: sub, want: "thing"},
		{name: "imported definition", def: base, want: "b:thing"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, err := qualifiedName(mod, tt.def, "thing")
			if err != nil {
				t.Fatalf("qualifiedName: %v", err)
			}
			if got != tt.want {
				t.Errorf("qualifiedName: got %q, want %q", got, tt.want)
			}
		})
	}

	if _, err := qualifiedName(mod, &schema.Module{Name: "stranger"}, "thing"); err == nil {
		t.Errorf("qualifiedName with unimported module: got nil error")
	}
}

func TestNACMPrefix(t *testing.T) {
	acm := &schema.Module{Name: "ietf-netconf-acm", Prefix: "nacm"}
	mod := &schema.Module{
		Name:    "m",
		Prefix:  "m",
		Imports: []*schema.Import{{Module: acm, Prefix: "acl"}},
	}
	if got, err := nacmPrefix(mod); err != nil || got != "acl" {
		t.Errorf("nacmPrefix(importer): got %q, %v, want %q, nil", got, err, "acl")
	}
	if got, err := nacmPrefix(acm); err != nil || got != "nacm" {
		t.Errorf("nacmPrefix(self): got %q, %v, want %q, nil", got, err, "nacm")
	}
	if _, err := nacmPrefix(&schema.Module{Name: "bare", Prefix: "x"}); err == nil {
		t.Errorf("nacmPrefix without import: got nil error")
	}
}
