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

// Package loader builds resolved schema models from schema documents.  A
// document is the JSON or YAML description of one or more already-compiled
// modules; the loader validates its shape, resolves the by-name references
// into pointers, and fills in the inherited attributes (config, access
// control) the serializer relies on.  It is a stand-in for a schema
// compiler, not a YANG parser.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/yangtools/goyin/pkg/schema"
)

// A Set is the result of loading one document: the linked modules, by name
// and in document order.
type Set struct {
	Modules map[string]*schema.Module
	Names   []string
}

// Load builds a Set from a JSON schema document.
func Load(data []byte) (*Set, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding document: %v", err)
	}
	return link(&doc)
}

// LoadYAML builds a Set from a YAML schema document.
func LoadYAML(data []byte) (*Set, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding document: %v", err)
	}
	return link(&doc)
}

// LoadFile builds a Set from the document at path, decoding by file
// extension (.yaml and .yml as YAML, anything else as JSON).
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return LoadYAML(data)
	default:
		return Load(data)
	}
}

// A linker holds the by-name tables built in the first pass so the second
// pass can resolve references in any direction between modules.
type linker struct {
	modules    map[string]*schema.Module
	features   map[string]map[string]*schema.Feature
	identities map[string]map[string]*schema.Identity
	groupings  map[string]map[string]*schema.Grouping
}

func link(doc *document) (*Set, error) {
	if err := validator.New().Struct(doc); err != nil {
		return nil, fmt.Errorf("invalid document: %v", err)
	}

	l := &linker{
		modules:    map[string]*schema.Module{},
		features:   map[string]map[string]*schema.Feature{},
		identities: map[string]map[string]*schema.Identity{},
		groupings:  map[string]map[string]*schema.Grouping{},
	}
	set := &Set{Modules: l.modules}

	// First pass: create the modules and their named definitions so
	// cross-module references resolve regardless of document order.
	for _, md := range doc.Modules {
		if _, ok := l.modules[md.Name]; ok {
			return nil, fmt.Errorf("module %s declared twice", md.Name)
		}
		m := &schema.Module{
			Name:         md.Name,
			Namespace:    md.Namespace,
			Prefix:       md.Prefix,
			Version:      md.Version,
			Deviated:     md.Deviated,
			Organization: md.Organization,
			Contact:      md.Contact,
			Description:  md.Description,
			Reference:    md.Reference,
		}
		for _, rd := range md.Revisions {
			m.Revisions = append(m.Revisions, &schema.Revision{
				Date:        rd.Date,
				Description: rd.Description,
				Reference:   rd.Reference,
			})
		}
		l.modules[md.Name] = m
		set.Names = append(set.Names, md.Name)

		l.features[md.Name] = map[string]*schema.Feature{}
		for _, fd := range md.Features {
			f := &schema.Feature{
				Name:        fd.Name,
				Module:      m,
				Status:      parseStatus(fd.Status),
				Description: fd.Description,
				Reference:   fd.Reference,
			}
			l.features[md.Name][fd.Name] = f
			m.Features = append(m.Features, f)
		}
		l.identities[md.Name] = map[string]*schema.Identity{}
		for _, id := range md.Identities {
			i := &schema.Identity{
				Name:        id.Name,
				Module:      m,
				Status:      parseStatus(id.Status),
				Description: id.Description,
				Reference:   id.Reference,
			}
			l.identities[md.Name][id.Name] = i
			m.Identities = append(m.Identities, i)
		}
		// Top-level groupings get a shell now so a uses can point at
		// them before their defining module is linked; the second pass
		// fills the shells in.
		l.groupings[md.Name] = map[string]*schema.Grouping{}
		for _, nd := range md.Data {
			if nd.Kind != "grouping" || nd.Name == "" {
				continue
			}
			l.groupings[md.Name][nd.Name] = &schema.Grouping{
				NodeBase: schema.NodeBase{Name: nd.Name, Module: m},
			}
		}
	}

	// Second pass: resolve every reference and build the data trees.
	for _, md := range doc.Modules {
		if err := l.linkModule(md); err != nil {
			return nil, fmt.Errorf("module %s: %v", md.Name, err)
		}
	}
	return set, nil
}

func (l *linker) linkModule(md *moduleDoc) error {
	m := l.modules[md.Name]

	if md.BelongsTo != "" {
		owner, ok := l.modules[md.BelongsTo]
		if !ok {
			return fmt.Errorf("belongs-to module %s not in document", md.BelongsTo)
		}
		m.BelongsTo = owner
	}
	for _, id := range md.Imports {
		imp, ok := l.modules[id.Module]
		if !ok {
			return fmt.Errorf("imported module %s not in document", id.Module)
		}
		m.Imports = append(m.Imports, &schema.Import{
			Module:       imp,
			Prefix:       id.Prefix,
			RevisionDate: id.RevisionDate,
			External:     id.External,
		})
	}
	for _, id := range md.Includes {
		sub, ok := l.modules[id.Submodule]
		if !ok {
			return fmt.Errorf("included submodule %s not in document", id.Submodule)
		}
		m.Includes = append(m.Includes, &schema.Include{
			Submodule:    sub,
			RevisionDate: id.RevisionDate,
			External:     id.External,
		})
	}

	for i, fd := range md.Features {
		f := m.Features[i]
		for _, ref := range fd.IfFeatures {
			dep, err := l.resolveFeature(m, ref)
			if err != nil {
				return err
			}
			f.IfFeatures = append(f.IfFeatures, dep)
		}
	}
	for i, id := range md.Identities {
		if id.Base == "" {
			continue
		}
		base, err := l.resolveIdentity(m, id.Base)
		if err != nil {
			return err
		}
		m.Identities[i].Base = base
	}

	for _, td := range md.Typedefs {
		t, err := l.typedef(m, td)
		if err != nil {
			return err
		}
		m.Typedefs = append(m.Typedefs, t)
	}
	for _, dd := range md.Deviations {
		d, err := l.deviation(m, dd)
		if err != nil {
			return err
		}
		m.Deviations = append(m.Deviations, d)
	}
	for _, nd := range md.Data {
		n, err := l.node(m, nil, nd)
		if err != nil {
			return err
		}
		m.Data = append(m.Data, n)
	}
	for _, ad := range md.Augments {
		a, err := l.augment(m, ad)
		if err != nil {
			return err
		}
		m.Augments = append(m.Augments, a)
	}
	return nil
}

// splitRef splits a possibly module-qualified reference into its module
// name (empty when local) and base name.
func splitRef(ref string) (string, string) {
	if i := strings.IndexByte(ref, ':'); i >= 0 {
		return ref[:i], ref[i+1:]
	}
	return "", ref
}

func (l *linker) resolveFeature(cur *schema.Module, ref string) (*schema.Feature, error) {
	modName, name := splitRef(ref)
	if modName == "" {
		modName = cur.Name
	}
	if _, ok := l.modules[modName]; !ok {
		return nil, fmt.Errorf("feature %q: module %s not in document", ref, modName)
	}
	f, ok := l.features[modName][name]
	if !ok {
		return nil, fmt.Errorf("feature %q not defined in module %s", name, modName)
	}
	return f, nil
}

func (l *linker) resolveIdentity(cur *schema.Module, ref string) (*schema.Identity, error) {
	modName, name := splitRef(ref)
	if modName == "" {
		modName = cur.Name
	}
	if _, ok := l.modules[modName]; !ok {
		return nil, fmt.Errorf("identity %q: module %s not in document", ref, modName)
	}
	id, ok := l.identities[modName][name]
	if !ok {
		return nil, fmt.Errorf("identity %q not defined in module %s", name, modName)
	}
	return id, nil
}

func (l *linker) typedef(m *schema.Module, td *typedefDoc) (*schema.Typedef, error) {
	t, err := l.typ(m, td.Type)
	if err != nil {
		return nil, fmt.Errorf("typedef %s: %v", td.Name, err)
	}
	return &schema.Typedef{
		Name:        td.Name,
		Status:      parseStatus(td.Status),
		Description: td.Description,
		Reference:   td.Reference,
		Type:        t,
		Units:       td.Units,
		Default:     td.Default,
	}, nil
}

func (l *linker) typ(m *schema.Module, td *typeDoc) (*schema.Type, error) {
	kindName := td.Kind
	if kindName == "" {
		kindName = td.Name
	}
	kind, ok := schema.TypeKindFromName[kindName]
	if !ok {
		return nil, fmt.Errorf("type %s: derived types need an explicit kind", td.Name)
	}
	t := &schema.Type{
		Name:            td.Name,
		Kind:            kind,
		ModuleName:      td.Module,
		Range:           restriction(td.Range),
		Length:          restriction(td.Length),
		FractionDigits:  td.FractionDigits,
		Path:            td.Path,
		RequireInstance: triState(td.RequireInstance),
	}
	for _, pd := range td.Patterns {
		t.Patterns = append(t.Patterns, restriction(pd))
	}
	for _, ed := range td.Enums {
		t.Enums = append(t.Enums, &schema.Enum{
			Name:        ed.Name,
			Value:       ed.Value,
			Status:      parseStatus(ed.Status),
			Description: ed.Description,
			Reference:   ed.Reference,
		})
	}
	for _, bd := range td.Bits {
		t.Bits = append(t.Bits, &schema.Bit{
			Name:        bd.Name,
			Position:    bd.Position,
			Status:      parseStatus(bd.Status),
			Description: bd.Description,
			Reference:   bd.Reference,
		})
	}
	if kind == schema.Yidentityref {
		if td.Base == "" {
			return nil, fmt.Errorf("type %s: identityref needs a base", td.Name)
		}
		base, err := l.resolveIdentity(m, td.Base)
		if err != nil {
			return nil, err
		}
		t.IdentityBase = base
	}
	if kind == schema.Yleafref && td.Path == "" {
		return nil, fmt.Errorf("type %s: leafref needs a path", td.Name)
	}
	for _, sub := range td.Types {
		member, err := l.typ(m, sub)
		if err != nil {
			return nil, err
		}
		t.Types = append(t.Types, member)
	}
	return t, nil
}

func (l *linker) deviation(m *schema.Module, dd *deviationDoc) (*schema.Deviation, error) {
	d := &schema.Deviation{
		Target:      dd.Target,
		Description: dd.Description,
		Reference:   dd.Reference,
	}
	for _, vd := range dd.Deviates {
		dev := &schema.Deviate{
			Action:      parseDeviateAction(vd.Action),
			Config:      triState(vd.Config),
			Mandatory:   triState(vd.Mandatory),
			Default:     vd.Default,
			MinElements: vd.MinElements,
			MaxElements: vd.MaxElements,
			Musts:       restrictions(vd.Musts),
			Units:       vd.Units,
		}
		for _, u := range vd.Uniques {
			dev.Uniques = append(dev.Uniques, &schema.Unique{Exprs: strings.Fields(u)})
		}
		if vd.Type != nil {
			t, err := l.typ(m, vd.Type)
			if err != nil {
				return nil, fmt.Errorf("deviation %s: %v", dd.Target, err)
			}
			dev.Type = t
		}
		d.Deviates = append(d.Deviates, dev)
	}
	return d, nil
}

func (l *linker) augment(m *schema.Module, ad *augmentDoc) (*schema.Augment, error) {
	a := &schema.Augment{
		NodeBase: schema.NodeBase{
			Name:        ad.Target,
			Module:      m,
			Status:      parseStatus(ad.Status),
			Description: ad.Description,
			Reference:   ad.Reference,
			NACM:        parseNACM(ad.NACM),
			When:        when(ad.When),
		},
		Target: ad.Target,
	}
	for _, ref := range ad.IfFeatures {
		f, err := l.resolveFeature(m, ref)
		if err != nil {
			return nil, err
		}
		a.IfFeatures = append(a.IfFeatures, f)
	}
	for _, cd := range ad.Children {
		c, err := l.node(m, a, cd)
		if err != nil {
			return nil, err
		}
		a.Children = append(a.Children, c)
	}
	return a, nil
}

// node builds the schema node described by nd under parent.  Config and
// access-control flags inherit from the parent unless overridden, which is
// what lets the serializer print them only where they change.
func (l *linker) node(m *schema.Module, parent schema.Node, nd *nodeDoc) (schema.Node, error) {
	owning := m
	if nd.Module != "" {
		var ok bool
		if owning, ok = l.modules[nd.Module]; !ok {
			return nil, fmt.Errorf("node %s: owning module %s not in document", nd.Name, nd.Module)
		}
	}

	base := schema.NodeBase{
		Name:        nd.Name,
		Module:      owning,
		Parent:      parent,
		Status:      parseStatus(nd.Status),
		Description: nd.Description,
		Reference:   nd.Reference,
		Mandatory:   triState(nd.Mandatory),
		When:        when(nd.When),
	}

	parentCfg := schema.TSTrue
	var parentNACM schema.NACMFlags
	if parent != nil {
		parentCfg = parent.Base().Config
		parentNACM = parent.Base().NACM
	}
	switch {
	case nd.Config != nil && *nd.Config:
		base.Config = schema.TSTrue
	case nd.Config != nil:
		base.Config = schema.TSFalse
	default:
		base.Config = parentCfg
	}
	base.NACM = parentNACM | parseNACM(nd.NACM)

	for _, ref := range nd.IfFeatures {
		f, err := l.resolveFeature(m, ref)
		if err != nil {
			return nil, err
		}
		base.IfFeatures = append(base.IfFeatures, f)
	}

	var n schema.Node
	switch nd.Kind {
	case "container":
		c := &schema.Container{NodeBase: base, Musts: restrictions(nd.Musts), Presence: nd.Presence}
		if err := l.typedefs(m, nd, &c.Typedefs); err != nil {
			return nil, err
		}
		if err := l.nodeChildren(m, c, nd, &c.Children); err != nil {
			return nil, err
		}
		n = c
	case "choice":
		c := &schema.Choice{NodeBase: base}
		if err := l.nodeChildren(m, c, nd, &c.Children); err != nil {
			return nil, err
		}
		if nd.Default != "" {
			for _, sub := range c.Children {
				if sub.NName() == nd.Default {
					c.Default = sub
					break
				}
			}
			if c.Default == nil {
				return nil, fmt.Errorf("choice %s: default %q is not a child", nd.Name, nd.Default)
			}
		}
		n = c
	case "case":
		c := &schema.Case{NodeBase: base}
		if err := l.nodeChildren(m, c, nd, &c.Children); err != nil {
			return nil, err
		}
		n = c
	case "leaf":
		if nd.Type == nil {
			return nil, fmt.Errorf("leaf %s: missing type", nd.Name)
		}
		t, err := l.typ(m, nd.Type)
		if err != nil {
			return nil, fmt.Errorf("leaf %s: %v", nd.Name, err)
		}
		n = &schema.Leaf{NodeBase: base, Musts: restrictions(nd.Musts), Type: t, Units: nd.Units, Default: nd.Default}
	case "leaf-list":
		if nd.Type == nil {
			return nil, fmt.Errorf("leaf-list %s: missing type", nd.Name)
		}
		t, err := l.typ(m, nd.Type)
		if err != nil {
			return nil, fmt.Errorf("leaf-list %s: %v", nd.Name, err)
		}
		n = &schema.LeafList{
			NodeBase:      base,
			Musts:         restrictions(nd.Musts),
			Type:          t,
			Units:         nd.Units,
			MinElements:   nd.MinElements,
			MaxElements:   nd.MaxElements,
			OrderedByUser: nd.OrderedBy == "user",
		}
	case "list":
		lst := &schema.List{
			NodeBase:      base,
			Musts:         restrictions(nd.Musts),
			MinElements:   nd.MinElements,
			MaxElements:   nd.MaxElements,
			OrderedByUser: nd.OrderedBy == "user",
		}
		for _, u := range nd.Uniques {
			lst.Uniques = append(lst.Uniques, &schema.Unique{Exprs: strings.Fields(u)})
		}
		if err := l.typedefs(m, nd, &lst.Typedefs); err != nil {
			return nil, err
		}
		if err := l.nodeChildren(m, lst, nd, &lst.Children); err != nil {
			return nil, err
		}
		for _, key := range nd.Keys {
			leaf := findLeaf(lst.Children, key)
			if leaf == nil {
				return nil, fmt.Errorf("list %s: key %q is not a leaf child", nd.Name, key)
			}
			lst.Keys = append(lst.Keys, leaf)
		}
		n = lst
	case "anyxml":
		n = &schema.AnyXML{NodeBase: base, Musts: restrictions(nd.Musts)}
	case "grouping":
		g := &schema.Grouping{}
		if parent == nil {
			if pre := l.groupings[m.Name][nd.Name]; pre != nil {
				g = pre
			}
		}
		g.NodeBase = base
		if err := l.typedefs(m, nd, &g.Typedefs); err != nil {
			return nil, err
		}
		if err := l.nodeChildren(m, g, nd, &g.Children); err != nil {
			return nil, err
		}
		n = g
	case "uses":
		ref := nd.Grouping
		if ref == "" {
			ref = nd.Name
		}
		grp, err := l.resolveGrouping(m, ref)
		if err != nil {
			return nil, err
		}
		base.Name = grp.Name
		u := &schema.Uses{NodeBase: base, Grouping: grp}
		for _, rd := range nd.Refines {
			u.Refines = append(u.Refines, refine(rd))
		}
		for _, ad := range nd.Augments {
			a, err := l.augment(m, ad)
			if err != nil {
				return nil, err
			}
			a.Parent = u
			u.Augments = append(u.Augments, a)
		}
		n = u
	case "rpc":
		r := &schema.RPC{NodeBase: base}
		if err := l.typedefs(m, nd, &r.Typedefs); err != nil {
			return nil, err
		}
		if err := l.nodeChildren(m, r, nd, &r.Children); err != nil {
			return nil, err
		}
		n = r
	case "notification":
		no := &schema.Notification{NodeBase: base}
		if err := l.typedefs(m, nd, &no.Typedefs); err != nil {
			return nil, err
		}
		if err := l.nodeChildren(m, no, nd, &no.Children); err != nil {
			return nil, err
		}
		n = no
	case "input":
		base.Name = "input"
		in := &schema.Input{NodeBase: base}
		if err := l.typedefs(m, nd, &in.Typedefs); err != nil {
			return nil, err
		}
		if err := l.nodeChildren(m, in, nd, &in.Children); err != nil {
			return nil, err
		}
		n = in
	case "output":
		base.Name = "output"
		out := &schema.Output{NodeBase: base}
		if err := l.typedefs(m, nd, &out.Typedefs); err != nil {
			return nil, err
		}
		if err := l.nodeChildren(m, out, nd, &out.Children); err != nil {
			return nil, err
		}
		n = out
	default:
		return nil, fmt.Errorf("node %s: unknown kind %q", nd.Name, nd.Kind)
	}
	return n, nil
}

// nodeChildren builds nd's children under parent into dst.  parent must
// already carry its resolved config and access-control flags.
func (l *linker) nodeChildren(m *schema.Module, parent schema.Node, nd *nodeDoc, dst *[]schema.Node) error {
	for _, cd := range nd.Children {
		c, err := l.node(m, parent, cd)
		if err != nil {
			return err
		}
		*dst = append(*dst, c)
	}
	return nil
}

func (l *linker) typedefs(m *schema.Module, nd *nodeDoc, dst *[]*schema.Typedef) error {
	for _, td := range nd.Typedefs {
		t, err := l.typedef(m, td)
		if err != nil {
			return err
		}
		*dst = append(*dst, t)
	}
	return nil
}

// resolveGrouping finds a grouping by possibly qualified name among the
// top-level definitions of the owning module.  The lookup goes through the
// shells registered in the first pass, so document order between the using
// and the defining module does not matter.
func (l *linker) resolveGrouping(cur *schema.Module, ref string) (*schema.Grouping, error) {
	modName, name := splitRef(ref)
	target := cur
	if modName != "" {
		var ok bool
		if target, ok = l.modules[modName]; !ok {
			return nil, fmt.Errorf("grouping %q: module %s not in document", ref, modName)
		}
	}
	if g, ok := l.groupings[target.Name][name]; ok {
		return g, nil
	}
	return nil, fmt.Errorf("grouping %q not defined at the top level of module %s", name, target.Name)
}

func findLeaf(nodes []schema.Node, name string) *schema.Leaf {
	for _, n := range nodes {
		if leaf, ok := n.(*schema.Leaf); ok && leaf.Name == name {
			return leaf
		}
	}
	return nil
}

func refine(rd *refineDoc) *schema.Refine {
	return &schema.Refine{
		Target:      rd.Target,
		TargetKind:  kindFromName(rd.TargetKind),
		Config:      triState(rd.Config),
		Mandatory:   triState(rd.Mandatory),
		Status:      parseStatus(rd.Status),
		Description: rd.Description,
		Reference:   rd.Reference,
		Musts:       restrictions(rd.Musts),
		Default:     rd.Default,
		Presence:    rd.Presence,
		MinElements: rd.MinElements,
		MaxElements: rd.MaxElements,
	}
}

func kindFromName(s string) schema.NodeKind {
	switch s {
	case "container":
		return schema.ContainerKind
	case "choice":
		return schema.ChoiceKind
	case "leaf":
		return schema.LeafKind
	case "leaf-list":
		return schema.LeafListKind
	case "list":
		return schema.ListKind
	case "anyxml":
		return schema.AnyXMLKind
	default:
		return 0
	}
}

func parseStatus(s string) schema.Status {
	switch s {
	case "current":
		return schema.StatusCurrent
	case "deprecated":
		return schema.StatusDeprecated
	case "obsolete":
		return schema.StatusObsolete
	default:
		return schema.StatusUnset
	}
}

func parseDeviateAction(s string) schema.DeviateAction {
	switch s {
	case "add":
		return schema.DeviateAdd
	case "replace":
		return schema.DeviateReplace
	case "delete":
		return schema.DeviateDelete
	default:
		return schema.DeviateNotSupported
	}
}

func parseNACM(flags []string) schema.NACMFlags {
	var f schema.NACMFlags
	for _, s := range flags {
		switch s {
		case "default-deny-write":
			f |= schema.NACMDenyWrite
		case "default-deny-all":
			f |= schema.NACMDenyAll
		}
	}
	return f
}

func triState(b *bool) schema.TriState {
	switch {
	case b == nil:
		return schema.TSUnset
	case *b:
		return schema.TSTrue
	default:
		return schema.TSFalse
	}
}

func when(wd *whenDoc) *schema.When {
	if wd == nil {
		return nil
	}
	return &schema.When{
		Condition:   wd.Condition,
		Description: wd.Description,
		Reference:   wd.Reference,
	}
}

func restriction(rd *restrictionDoc) *schema.Restriction {
	if rd == nil {
		return nil
	}
	return &schema.Restriction{
		Expr:         rd.Value,
		Description:  rd.Description,
		Reference:    rd.Reference,
		ErrorAppTag:  rd.ErrorAppTag,
		ErrorMessage: rd.ErrorMessage,
	}
}

func restrictions(rds []*restrictionDoc) []*schema.Restriction {
	var rs []*schema.Restriction
	for _, rd := range rds {
		rs = append(rs, restriction(rd))
	}
	return rs
}
