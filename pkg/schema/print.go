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
	"fmt"
	"io"

	"github.com/yangtools/goyin/pkg/indent"
)

// Print writes a human readable rendition of m's data tree to w.  The
// format is a debugging aid, not a serialization.
func (m *Module) Print(w io.Writer) {
	kw := "module"
	if m.IsSubmodule() {
		kw = "submodule"
	}
	fmt.Fprintf(w, "%s: %s {\n", kw, m.Name) //}
	for _, n := range m.Data {
		PrintNode(indent.NewWriter(w, "  "), n)
	}
	// { matching brace for the open above
	fmt.Fprintln(w, "}")
}

// PrintNode writes a human readable rendition of n and its descendants
// to w.
func PrintNode(w io.Writer, n Node) {
	b := n.Base()
	if b.Description != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(indent.NewWriter(w, "// "), b.Description)
	}
	switch b.Config {
	case TSFalse:
		fmt.Fprintf(w, "RO: ")
	case TSTrue:
		fmt.Fprintf(w, "rw: ")
	default:
		fmt.Fprintf(w, "%s: ", n.Kind())
	}
	if l, ok := n.(*Leaf); ok && l.Type != nil {
		fmt.Fprintf(w, "%s ", l.Type.Name)
	}
	if l, ok := n.(*LeafList); ok && l.Type != nil {
		fmt.Fprintf(w, "%s ", l.Type.Name)
	}
	children := Children(n)
	switch {
	case children == nil && n.Kind() == LeafListKind:
		fmt.Fprintf(w, "[]%s\n", b.Name)
		return
	case children == nil:
		fmt.Fprintf(w, "%s\n", b.Name)
		return
	case n.Kind() == ListKind:
		fmt.Fprintf(w, "[%s]%s {\n", keyNames(n.(*List)), b.Name) //}
	default:
		fmt.Fprintf(w, "%s {\n", b.Name) //}
	}
	for _, c := range children {
		PrintNode(indent.NewWriter(w, "  "), c)
	}
	// { matching brace for the switch above
	fmt.Fprintln(w, "}")
}

func keyNames(l *List) string {
	s := ""
	for i, k := range l.Keys {
		if i > 0 {
			s += " "
		}
		s += k.Name
	}
	return s
}
