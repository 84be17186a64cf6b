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
	"strings"

	"github.com/yangtools/goyin/pkg/schema"
)

// Permitted-child masks per parent context.  A kind not in the parent's
// mask is silently skipped; a valid schema never triggers that.
const (
	dataDefMask = schema.ChoiceKind | schema.ContainerKind | schema.LeafKind |
		schema.LeafListKind | schema.ListKind | schema.UsesKind |
		schema.GroupingKind | schema.AnyXMLKind
	caseBodyMask = schema.ChoiceKind | schema.ContainerKind | schema.LeafKind |
		schema.LeafListKind | schema.ListKind | schema.UsesKind | schema.AnyXMLKind
	choiceBodyMask = schema.ContainerKind | schema.LeafKind | schema.LeafListKind |
		schema.ListKind | schema.AnyXMLKind | schema.CaseKind
	augmentBodyMask = caseBodyMask | schema.CaseKind
	rpcBodyMask     = schema.GroupingKind | schema.InputKind | schema.OutputKind
)

// snode renders node when its kind intersects mask, dispatching to the
// kind-specific printer.
func (p *printer) snode(level int, node schema.Node, mask schema.NodeKind) {
	if node.Kind()&mask == 0 {
		return
	}
	switch t := node.(type) {
	case *schema.Container:
		p.container(level, t)
	case *schema.Choice:
		p.choice(level, t)
	case *schema.Leaf:
		p.leaf(level, t)
	case *schema.LeafList:
		p.leafList(level, t)
	case *schema.List:
		p.list(level, t)
	case *schema.Uses:
		p.uses(level, t)
	case *schema.Grouping:
		p.grouping(level, t)
	case *schema.AnyXML:
		p.anyxml(level, t)
	case *schema.Case:
		p.caseNode(level, t)
	case *schema.Input:
		p.inputOutput(level, "input", t.Typedefs, t.Children, t)
	case *schema.Output:
		p.inputOutput(level, "output", t.Typedefs, t.Children, t)
	}
}

// children renders the children of node permitted by mask, skipping nodes
// materialized into the tree by an augment or a submodule: those are owned
// by another module and are rendered by its own pass.
func (p *printer) children(level int, node schema.Node, mask schema.NodeKind) {
	own := node.Base().Module
	for _, sub := range schema.Children(node) {
		if sub.Base().Module != own {
			continue
		}
		p.snode(level, sub, mask)
	}
}

// status emits a status element when the statement was explicitly present.
func (p *printer) status(level int, s schema.Status) {
	switch s {
	case schema.StatusCurrent:
		p.open(level, "status", "value", "current", true)
	case schema.StatusDeprecated:
		p.open(level, "status", "value", "deprecated", true)
	case schema.StatusObsolete:
		p.open(level, "status", "value", "obsolete", true)
	}
}

func (p *printer) descRef(level int, desc, ref string) {
	if desc != "" {
		p.text(level, "description", desc)
	}
	if ref != "" {
		p.text(level, "reference", ref)
	}
}

func hasCommon(b *schema.NodeBase) bool {
	return b.Status != schema.StatusUnset || b.Description != "" || b.Reference != ""
}

// common covers status, description and reference.
func (p *printer) common(level int, b *schema.NodeBase) {
	p.status(level, b.Status)
	p.descRef(level, b.Description, b.Reference)
}

func parentConfig(n schema.Node) schema.TriState {
	if parent := n.ParentNode(); parent != nil {
		return parent.Base().Config
	}
	return schema.TSUnset
}

func hasCommon2(n schema.Node) bool {
	b := n.Base()
	if schema.ExplicitConfig(b.Config, parentConfig(n)) || b.Mandatory != schema.TSUnset {
		return true
	}
	return hasCommon(b)
}

// common2 covers config and mandatory in addition to the common
// substatements.  Config is printed only when it differs from the parent's
// resolved value, or for a top-level read-only node; mandatory only when
// explicitly set.
func (p *printer) common2(level int, n schema.Node) {
	b := n.Base()
	if schema.ExplicitConfig(b.Config, parentConfig(n)) {
		if b.Config == schema.TSTrue {
			p.open(level, "config", "value", "true", true)
		} else {
			p.open(level, "config", "value", "false", true)
		}
	}
	p.mandatory(level, b.Mandatory)
	p.common(level, b)
}

func (p *printer) mandatory(level int, m schema.TriState) {
	switch m {
	case schema.TSTrue:
		p.open(level, "mandatory", "value", "true", true)
	case schema.TSFalse:
		p.open(level, "mandatory", "value", "false", true)
	}
}

// localNACM returns the access-control bits set on n and absent on its
// parent; only those are emitted, the rest being inherited.
func localNACM(n schema.Node) schema.NACMFlags {
	b := n.Base()
	if b.NACM == 0 {
		return 0
	}
	var inherited schema.NACMFlags
	if parent := n.ParentNode(); parent != nil {
		inherited = parent.Base().NACM
	}
	return b.NACM &^ inherited
}

func (p *printer) nacm(level int, mod *schema.Module, n schema.Node) {
	local := localNACM(n)
	if local == 0 {
		return
	}
	prefix, err := nacmPrefix(mod)
	if err != nil {
		p.fail(err)
		return
	}
	if local&schema.NACMDenyWrite != 0 {
		p.printf("%*s<%s:default-deny-write/>\n", level*2, "", prefix)
	}
	if local&schema.NACMDenyAll != 0 {
		p.printf("%*s<%s:default-deny-all/>\n", level*2, "", prefix)
	}
}

func (p *printer) ifFeature(level int, mod *schema.Module, f *schema.Feature) {
	name, err := qualifiedName(mod, f.Module, f.Name)
	if err != nil {
		p.fail(err)
		return
	}
	p.open(level, "if-feature", "name", name, true)
}

func (p *printer) ifFeatures(level int, mod *schema.Module, feats []*schema.Feature) {
	for _, f := range feats {
		p.ifFeature(level, mod, f)
	}
}

func (p *printer) when(level int, mod *schema.Module, w *schema.When) {
	cond, err := translateExpr(mod, w.Condition)
	if err != nil {
		p.fail(err)
		return
	}
	selfClose := w.Description == "" && w.Reference == ""
	p.open(level, "when", "condition", cond, selfClose)
	if selfClose {
		return
	}
	p.descRef(level+1, w.Description, w.Reference)
	p.closeElem(level, "when")
}

func (p *printer) musts(level int, mod *schema.Module, rs []*schema.Restriction) {
	for _, r := range rs {
		p.must(level, mod, r)
	}
}

func (p *printer) unique(level int, u *schema.Unique) {
	p.open(level, "unique", "tag", strings.Join(u.Exprs, " "), true)
}

func (p *printer) typedef(level int, mod *schema.Module, td *schema.Typedef) {
	p.open(level, "typedef", "name", td.Name, false)
	p.status(level+1, td.Status)
	p.descRef(level+1, td.Description, td.Reference)
	p.typ(level+1, mod, td.Type)
	if td.Units != "" {
		p.open(level+1, "units", "name", td.Units, true)
	}
	if td.Default != "" {
		p.open(level+1, "default", "value", td.Default, true)
	}
	p.closeElem(level, "typedef")
}

func (p *printer) typedefs(level int, mod *schema.Module, tds []*schema.Typedef) {
	for _, td := range tds {
		p.typedef(level, mod, td)
	}
}

func (p *printer) feature(level int, f *schema.Feature) {
	selfClose := f.Status == schema.StatusUnset && f.Description == "" &&
		f.Reference == "" && len(f.IfFeatures) == 0
	p.open(level, "feature", "name", f.Name, selfClose)
	if selfClose {
		return
	}
	p.status(level+1, f.Status)
	p.descRef(level+1, f.Description, f.Reference)
	p.ifFeatures(level+1, f.Module, f.IfFeatures)
	p.closeElem(level, "feature")
}

func (p *printer) identity(level int, id *schema.Identity) {
	selfClose := id.Status == schema.StatusUnset && id.Description == "" &&
		id.Reference == "" && id.Base == nil
	p.open(level, "identity", "name", id.Name, selfClose)
	if selfClose {
		return
	}
	p.status(level+1, id.Status)
	p.descRef(level+1, id.Description, id.Reference)
	if id.Base != nil {
		base, err := qualifiedName(id.Module.MainModule(), id.Base.Module, id.Base.Name)
		if err != nil {
			p.fail(err)
			return
		}
		p.open(level+1, "base", "name", base, true)
	}
	p.closeElem(level, "identity")
}

func (p *printer) container(level int, c *schema.Container) {
	p.open(level, "container", "name", c.Name, false)

	level++
	p.nacm(level, c.Module, c)
	if c.When != nil {
		p.when(level, c.Module, c.When)
	}
	p.ifFeatures(level, c.Module, c.IfFeatures)
	p.musts(level, c.Module, c.Musts)
	if c.Presence != "" {
		p.open(level, "presence", "value", c.Presence, true)
	}
	p.common2(level, c)
	p.typedefs(level, c.Module, c.Typedefs)
	p.children(level, c, dataDefMask)
	level--

	p.closeElem(level, "container")
}

func (p *printer) caseNode(level int, c *schema.Case) {
	p.open(level, "case", "name", c.Name, false)

	level++
	p.nacm(level, c.Module, c)
	p.common2(level, c)
	p.ifFeatures(level, c.Module, c.IfFeatures)
	if c.When != nil {
		p.when(level, c.Module, c.When)
	}
	p.children(level, c, caseBodyMask)
	level--

	p.closeElem(level, "case")
}

func (p *printer) choice(level int, c *schema.Choice) {
	p.open(level, "choice", "name", c.Name, false)

	level++
	p.nacm(level, c.Module, c)
	if c.Default != nil {
		p.open(level, "default", "value", c.Default.NName(), true)
	}
	p.common2(level, c)
	p.ifFeatures(level, c.Module, c.IfFeatures)
	if c.When != nil {
		p.when(level, c.Module, c.When)
	}
	p.children(level, c, choiceBodyMask)
	level--

	p.closeElem(level, "choice")
}

func (p *printer) leaf(level int, l *schema.Leaf) {
	p.open(level, "leaf", "name", l.Name, false)

	level++
	p.nacm(level, l.Module, l)
	if l.When != nil {
		p.when(level, l.Module, l.When)
	}
	p.ifFeatures(level, l.Module, l.IfFeatures)
	p.musts(level, l.Module, l.Musts)
	p.common2(level, l)
	p.typ(level, l.Module, l.Type)
	if l.Units != "" {
		p.open(level, "units", "name", l.Units, true)
	}
	if l.Default != "" {
		p.open(level, "default", "value", l.Default, true)
	}
	level--

	p.closeElem(level, "leaf")
}

func (p *printer) anyxml(level int, a *schema.AnyXML) {
	selfClose := localNACM(a) == 0 && !hasCommon2(a) && len(a.IfFeatures) == 0 &&
		len(a.Musts) == 0 && a.When == nil
	p.open(level, "anyxml", "name", a.Name, selfClose)
	if selfClose {
		return
	}

	level++
	p.nacm(level, a.Module, a)
	p.common2(level, a)
	p.ifFeatures(level, a.Module, a.IfFeatures)
	p.musts(level, a.Module, a.Musts)
	if a.When != nil {
		p.when(level, a.Module, a.When)
	}
	level--

	p.closeElem(level, "anyxml")
}

func (p *printer) leafList(level int, l *schema.LeafList) {
	p.open(level, "leaf-list", "name", l.Name, false)

	level++
	p.nacm(level, l.Module, l)
	if l.When != nil {
		p.when(level, l.Module, l.When)
	}
	p.ifFeatures(level, l.Module, l.IfFeatures)
	p.musts(level, l.Module, l.Musts)
	p.common2(level, l)
	p.typ(level, l.Module, l.Type)
	if l.Units != "" {
		p.open(level, "units", "name", l.Units, true)
	}
	if l.MinElements > 0 {
		p.unsigned(level, "min-elements", "value", l.MinElements)
	}
	if l.MaxElements > 0 {
		p.unsigned(level, "max-elements", "value", l.MaxElements)
	}
	if l.OrderedByUser {
		p.open(level, "ordered-by", "value", "user", true)
	}
	level--

	p.closeElem(level, "leaf-list")
}

func (p *printer) list(level int, l *schema.List) {
	p.open(level, "list", "name", l.Name, false)

	level++
	p.nacm(level, l.Module, l)
	if l.When != nil {
		p.when(level, l.Module, l.When)
	}
	p.ifFeatures(level, l.Module, l.IfFeatures)
	p.musts(level, l.Module, l.Musts)
	if len(l.Keys) > 0 {
		names := make([]string, len(l.Keys))
		for i, k := range l.Keys {
			names[i] = k.Name
		}
		p.open(level, "key", "value", strings.Join(names, " "), true)
	}
	for _, u := range l.Uniques {
		p.unique(level, u)
	}
	p.common2(level, l)
	if l.MinElements > 0 {
		p.unsigned(level, "min-elements", "value", l.MinElements)
	}
	if l.MaxElements > 0 {
		p.unsigned(level, "max-elements", "value", l.MaxElements)
	}
	if l.OrderedByUser {
		p.open(level, "ordered-by", "value", "user", true)
	}
	p.typedefs(level, l.Module, l.Typedefs)
	p.children(level, l, dataDefMask)
	level--

	p.closeElem(level, "list")
}

func (p *printer) grouping(level int, g *schema.Grouping) {
	p.open(level, "grouping", "name", g.Name, false)

	level++
	p.common(level, g.Base())
	p.typedefs(level, g.Module, g.Typedefs)
	for _, sub := range schema.Children(g) {
		p.snode(level, sub, dataDefMask)
	}
	level--

	p.closeElem(level, "grouping")
}

func (p *printer) uses(level int, u *schema.Uses) {
	selfClose := localNACM(u) == 0 && !hasCommon(u.Base()) && len(u.IfFeatures) == 0 &&
		u.When == nil && len(u.Refines) == 0 && len(u.Augments) == 0

	name := u.Name
	if u.Grouping != nil {
		var err error
		name, err = qualifiedName(u.Module.MainModule(), u.Grouping.Module, u.Name)
		if err != nil {
			p.fail(err)
			return
		}
	}
	p.open(level, "uses", "name", name, selfClose)
	if selfClose {
		return
	}

	level++
	p.nacm(level, u.Module, u)
	p.common(level, u.Base())
	p.ifFeatures(level, u.Module, u.IfFeatures)
	if u.When != nil {
		p.when(level, u.Module, u.When)
	}
	for _, r := range u.Refines {
		p.refine(level, u.Module, r)
	}
	for _, a := range u.Augments {
		p.augment(level, u.Module, a)
	}
	level--

	p.closeElem(level, "uses")
}

func (p *printer) refine(level int, mod *schema.Module, r *schema.Refine) {
	target, err := translateExpr(mod, r.Target)
	if err != nil {
		p.fail(err)
		return
	}
	p.open(level, "refine", "target-node", target, false)

	level++
	switch r.Config {
	case schema.TSTrue:
		p.open(level, "config", "value", "true", true)
	case schema.TSFalse:
		p.open(level, "config", "value", "false", true)
	}
	p.mandatory(level, r.Mandatory)
	p.status(level, r.Status)
	p.descRef(level, r.Description, r.Reference)
	p.musts(level, mod, r.Musts)
	switch {
	case r.TargetKind&(schema.LeafKind|schema.ChoiceKind) != 0:
		if r.Default != "" {
			p.open(level, "default", "value", r.Default, true)
		}
	case r.TargetKind == schema.ContainerKind:
		if r.Presence != "" {
			p.open(level, "presence", "value", r.Presence, true)
		}
	case r.TargetKind&(schema.ListKind|schema.LeafListKind) != 0:
		if r.MinElements != nil {
			p.unsigned(level, "min-elements", "value", *r.MinElements)
		}
		if r.MaxElements != nil {
			if *r.MaxElements > 0 {
				p.unsigned(level, "max-elements", "value", *r.MaxElements)
			} else {
				p.open(level, "max-elements", "value", "unbounded", true)
			}
		}
	}
	level--

	p.closeElem(level, "refine")
}

func (p *printer) augment(level int, mod *schema.Module, a *schema.Augment) {
	target, err := translateExpr(mod, a.Target)
	if err != nil {
		p.fail(err)
		return
	}
	p.open(level, "augment", "target-node", target, false)

	level++
	p.nacm(level, mod, a)
	p.common(level, a.Base())
	p.ifFeatures(level, mod, a.IfFeatures)
	if a.When != nil {
		p.when(level, mod, a.When)
	}
	for _, sub := range a.Children {
		p.snode(level, sub, augmentBodyMask)
	}
	level--

	p.closeElem(level, "augment")
}

func (p *printer) deviation(level int, mod *schema.Module, d *schema.Deviation) {
	target, err := translateExpr(mod, d.Target)
	if err != nil {
		p.fail(err)
		return
	}
	p.open(level, "deviation", "target-node", target, false)

	level++
	p.descRef(level, d.Description, d.Reference)
	for _, dev := range d.Deviates {
		p.open(level, "deviate", "value", dev.Action.String(), false)

		level++
		switch dev.Config {
		case schema.TSTrue:
			p.open(level, "config", "value", "true", true)
		case schema.TSFalse:
			p.open(level, "config", "value", "false", true)
		}
		p.mandatory(level, dev.Mandatory)
		if dev.Default != "" {
			p.open(level, "default", "value", dev.Default, true)
		}
		if dev.MinElements != nil {
			p.unsigned(level, "min-elements", "value", *dev.MinElements)
		}
		if dev.MaxElements != nil {
			if *dev.MaxElements > 0 {
				p.unsigned(level, "max-elements", "value", *dev.MaxElements)
			} else {
				p.open(level, "max-elements", "value", "unbounded", true)
			}
		}
		p.musts(level, mod, dev.Musts)
		for _, u := range dev.Uniques {
			p.unique(level, u)
		}
		if dev.Type != nil {
			p.typ(level, mod, dev.Type)
		}
		if dev.Units != "" {
			p.open(level, "units", "name", dev.Units, true)
		}
		level--

		p.closeElem(level, "deviate")
	}
	level--

	p.closeElem(level, "deviation")
}

func (p *printer) inputOutput(level int, elem string, tds []*schema.Typedef, children []schema.Node, n schema.Node) {
	p.printf("%*s<%s>\n", level*2, "", elem)

	level++
	p.typedefs(level, n.Base().Module, tds)
	own := n.Base().Module
	for _, sub := range children {
		if sub.Base().Module != own {
			continue
		}
		p.snode(level, sub, dataDefMask)
	}
	level--

	p.closeElem(level, elem)
}

func (p *printer) rpc(level int, r *schema.RPC) {
	selfClose := !hasCommon(r.Base()) && len(r.IfFeatures) == 0 &&
		len(r.Typedefs) == 0 && len(r.Children) == 0
	p.open(level, "rpc", "name", r.Name, selfClose)
	if selfClose {
		return
	}

	level++
	p.common(level, r.Base())
	p.ifFeatures(level, r.Module, r.IfFeatures)
	p.typedefs(level, r.Module, r.Typedefs)
	p.children(level, r, rpcBodyMask)
	level--

	p.closeElem(level, "rpc")
}

func (p *printer) notification(level int, n *schema.Notification) {
	selfClose := !hasCommon(n.Base()) && len(n.IfFeatures) == 0 &&
		len(n.Typedefs) == 0 && len(n.Children) == 0
	p.open(level, "notification", "name", n.Name, selfClose)
	if selfClose {
		return
	}

	level++
	p.common(level, n.Base())
	p.ifFeatures(level, n.Module, n.IfFeatures)
	p.typedefs(level, n.Module, n.Typedefs)
	p.children(level, n, dataDefMask)
	level--

	p.closeElem(level, "notification")
}
