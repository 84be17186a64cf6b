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
	"github.com/yangtools/goyin/pkg/schema"
)

// restrSub emits the optional substatements of a restriction, in the fixed
// order description, reference, error-app-tag, error-message.
func (p *printer) restrSub(level int, r *schema.Restriction) {
	if r.Description != "" {
		p.text(level, "description", r.Description)
	}
	if r.Reference != "" {
		p.text(level, "reference", r.Reference)
	}
	if r.ErrorAppTag != "" {
		p.open(level, "error-app-tag", "value", r.ErrorAppTag, true)
	}
	if r.ErrorMessage != "" {
		p.printf("%*s<error-message>\n", level*2, "")
		p.printf("%*s<value>%s</value>\n", (level+1)*2, "", escapeText(r.ErrorMessage))
		p.closeElem(level, "error-message")
	}
}

// restrHasSub reports whether r carries any substatement, which decides
// whether its element may self-close.
func restrHasSub(r *schema.Restriction) bool {
	return r.Description != "" || r.Reference != "" || r.ErrorAppTag != "" || r.ErrorMessage != ""
}

// restr emits a range, length or pattern restriction.  The expression is
// literal; see must for the translated form.
func (p *printer) restr(level int, elem string, r *schema.Restriction) {
	if !restrHasSub(r) {
		p.open(level, elem, "value", r.Expr, true)
		return
	}
	p.open(level, elem, "value", r.Expr, false)
	p.restrSub(level+1, r)
	p.closeElem(level, elem)
}

// must emits a must restriction.  The condition is held in the internal
// encoding and must be translated before emission.
func (p *printer) must(level int, mod *schema.Module, r *schema.Restriction) {
	cond, err := translateExpr(mod, r.Expr)
	if err != nil {
		p.fail(err)
		return
	}
	if !restrHasSub(r) {
		p.open(level, "must", "condition", cond, true)
		return
	}
	p.open(level, "must", "condition", cond, false)
	p.restrSub(level+1, r)
	p.closeElem(level, "must")
}

// typeSelfCloses reports whether t's type element carries no substatement.
// Only four categories can: binary without a length, instance-identifier
// without an explicit require-instance, integers without a range, and
// string without length or patterns.  decimal64, enumeration, identityref,
// bits, union and leafref always carry at least one mandatory substatement.
func typeSelfCloses(t *schema.Type) bool {
	switch {
	case t.Kind == schema.Ybinary:
		return t.Length == nil
	case t.Kind == schema.YinstanceIdentifier:
		return t.RequireInstance == schema.TSUnset
	case t.Kind.IsInteger():
		return t.Range == nil
	case t.Kind == schema.Ystring:
		return t.Length == nil && len(t.Patterns) == 0
	case t.Kind == schema.Ydecimal64, t.Kind == schema.Yenum, t.Kind == schema.Yidentityref,
		t.Kind == schema.Ybits, t.Kind == schema.Yunion, t.Kind == schema.Yleafref:
		return false
	default:
		return true
	}
}

// typ emits a type statement and, recursively, its payload.
func (p *printer) typ(level int, mod *schema.Module, t *schema.Type) {
	selfClose := typeSelfCloses(t)

	name := t.Name
	if t.ModuleName != "" && t.ModuleName != mod.MainModule().Name {
		prefix, err := importPrefix(mod, t.ModuleName)
		if err != nil {
			p.fail(err)
			return
		}
		if prefix != "" {
			name = prefix + ":" + name
		}
	}
	p.open(level, "type", "name", name, selfClose)
	if selfClose {
		return
	}

	level++
	switch t.Kind {
	case schema.Ybinary:
		if t.Length != nil {
			p.restr(level, "length", t.Length)
		}
	case schema.Ybits:
		for _, bit := range t.Bits {
			p.open(level, "bit", "name", bit.Name, false)
			p.status(level+1, bit.Status)
			p.descRef(level+1, bit.Description, bit.Reference)
			p.unsigned(level+1, "position", "value", bit.Position)
			p.closeElem(level, "bit")
		}
	case schema.Ydecimal64:
		p.unsigned(level, "fraction-digits", "value", uint32(t.FractionDigits))
		if t.Range != nil {
			p.restr(level, "range", t.Range)
		}
	case schema.Yenum:
		for _, e := range t.Enums {
			p.open(level, "enum", "name", e.Name, false)
			p.status(level+1, e.Status)
			p.descRef(level+1, e.Description, e.Reference)
			p.printf("%*s<value value=\"%d\"/>\n", (level+1)*2, "", e.Value)
			p.closeElem(level, "enum")
		}
	case schema.Yidentityref:
		base, err := qualifiedName(mod, t.IdentityBase.Module, t.IdentityBase.Name)
		if err != nil {
			p.fail(err)
			return
		}
		p.open(level, "base", "name", base, true)
	case schema.YinstanceIdentifier:
		switch t.RequireInstance {
		case schema.TSTrue:
			p.open(level, "require-instance", "value", "true", true)
		case schema.TSFalse:
			p.open(level, "require-instance", "value", "false", true)
		}
	case schema.Yleafref:
		path, err := translateExpr(mod, t.Path)
		if err != nil {
			p.fail(err)
			return
		}
		p.open(level, "path", "value", path, true)
	case schema.Ystring:
		if t.Length != nil {
			p.restr(level, "length", t.Length)
		}
		for _, pat := range t.Patterns {
			p.restr(level, "pattern", pat)
		}
	case schema.Yunion:
		for _, member := range t.Types {
			p.typ(level, mod, member)
		}
	default:
		if t.Kind.IsInteger() && t.Range != nil {
			p.restr(level, "range", t.Range)
		}
	}
	level--

	p.closeElem(level, "type")
}
