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

// Package yin serializes a resolved schema into YIN, the XML form of YANG
// defined in RFC 6020 section 11.
//
// Serialization is a single synchronous recursive pass over the schema
// tree.  The model is never mutated, so distinct modules may be serialized
// concurrently onto distinct writers; a single Write call is not safe to
// share.
package yin

import (
	"io"

	"github.com/yangtools/goyin/pkg/schema"
)

// NSYin is the YIN namespace, declared on every emitted document.
const NSYin = "urn:ietf:params:xml:ns:yang:yin:1"

// Write serializes m as a YIN document onto w.  On failure, part of the
// document may already have been written; nothing further is written after
// the first error.
func Write(w io.Writer, m *schema.Module) error {
	p := &printer{w: w}
	p.module(m)
	return p.err
}

// namespaces emits the xmlns attribute block of the root tag: the YIN
// namespace, the module's own namespace (modules only), and one
// declaration per non-external import, in import order.  The continuation
// lines are aligned under the root tag's first attribute.
func (p *printer) namespaces(m *schema.Module) {
	pad := len("<module ")
	if m.IsSubmodule() {
		pad = len("<submodule ")
	}
	p.printf("%*sxmlns=\"%s\"", pad, "", NSYin)
	if !m.IsSubmodule() {
		p.printf("\n%*sxmlns:%s=\"%s\"", pad, "", m.Prefix, escapeAttr(m.Namespace))
	}
	for _, imp := range m.Imports {
		if imp.External {
			continue
		}
		p.printf("\n%*sxmlns:%s=\"%s\"", pad, "", imp.Prefix, escapeAttr(imp.Module.Namespace))
	}
}

func (p *printer) module(m *schema.Module) {
	p.printf("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	if m.Deviated {
		p.printf("<!-- DEVIATED -->\n")
	}

	level := 0

	// (sub)module-header-stmts
	if m.IsSubmodule() {
		p.printf("<submodule name=\"%s\"\n", escapeAttr(m.Name))
		p.namespaces(m)
		p.printf(">\n")

		level++
		if m.Version != 0 {
			p.open(level, "yang-version", "value", versionString(m.BelongsTo.Version), true)
		}
		p.open(level, "belongs-to", "module", m.BelongsTo.Name, false)
		p.open(level+1, "prefix", "value", m.Prefix, true)
		p.closeElem(level, "belongs-to")
	} else {
		p.printf("<module name=\"%s\"\n", escapeAttr(m.Name))
		p.namespaces(m)
		p.printf(">\n")

		level++
		if m.Version != 0 {
			p.open(level, "yang-version", "value", versionString(m.Version), true)
		}
		p.open(level, "namespace", "uri", m.Namespace, true)
		p.open(level, "prefix", "value", m.Prefix, true)
	}

	// linkage-stmts
	for _, imp := range m.Imports {
		if imp.External {
			continue
		}
		p.open(level, "import", "module", imp.Module.Name, false)
		p.open(level+1, "prefix", "value", imp.Prefix, true)
		if imp.RevisionDate != "" {
			p.open(level+1, "revision-date", "date", imp.RevisionDate, true)
		}
		p.closeElem(level, "import")
	}
	for _, inc := range m.Includes {
		if inc.External {
			continue
		}
		if inc.RevisionDate == "" {
			p.open(level, "include", "value", inc.Submodule.Name, true)
			continue
		}
		p.open(level, "include", "value", inc.Submodule.Name, false)
		p.open(level+1, "revision-date", "date", inc.RevisionDate, true)
		p.closeElem(level, "include")
	}

	// meta-stmts
	if m.Organization != "" {
		p.text(level, "organization", m.Organization)
	}
	if m.Contact != "" {
		p.text(level, "contact", m.Contact)
	}
	p.descRef(level, m.Description, m.Reference)

	// revision-stmts
	for _, rev := range m.Revisions {
		if rev.Description == "" && rev.Reference == "" {
			p.open(level, "revision", "date", rev.Date, true)
			continue
		}
		p.open(level, "revision", "date", rev.Date, false)
		p.descRef(level+1, rev.Description, rev.Reference)
		p.closeElem(level, "revision")
	}

	// body-stmts
	for _, f := range m.Features {
		p.feature(level, f)
	}
	for _, id := range m.Identities {
		p.identity(level, id)
	}
	p.typedefs(level, m, m.Typedefs)
	for _, d := range m.Deviations {
		p.deviation(level, m, d)
	}
	for _, node := range m.Data {
		if node.Base().Module != m {
			continue
		}
		switch t := node.(type) {
		case *schema.RPC:
			p.rpc(level, t)
		case *schema.Notification:
			p.notification(level, t)
		default:
			p.snode(level, node, dataDefMask)
		}
	}
	for _, a := range m.Augments {
		p.augment(level, m, a)
	}

	if m.IsSubmodule() {
		p.printf("</submodule>\n")
	} else {
		p.printf("</module>\n")
	}
}

// versionString maps the internal yang-version marker to its external
// spelling.
func versionString(v int) string {
	if v == 2 {
		return "1.1"
	}
	return "1"
}
