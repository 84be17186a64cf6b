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

package main

import (
	"fmt"
	"io"

	"github.com/kylelemons/godebug/pretty"
	"github.com/yangtools/goyin/pkg/schema"
)

func init() {
	register(&formatter{
		name: "info",
		f:    doInfo,
		help: "summary of each module's header and linkage",
	})
}

// moduleInfo is the flattened header of one module; it carries no
// back-references so it can be dumped structurally.
type moduleInfo struct {
	Name       string
	Kind       string
	Namespace  string
	Prefix     string
	BelongsTo  string
	Imports    []string
	Includes   []string
	Revisions  []string
	Features   int
	Identities int
	Typedefs   int
	Deviations int
	Augments   int
	DataNodes  int
}

func doInfo(w io.Writer, mods []*schema.Module) error {
	for _, m := range mods {
		info := moduleInfo{
			Name:       m.Name,
			Kind:       "module",
			Namespace:  m.Namespace,
			Prefix:     m.Prefix,
			Features:   len(m.Features),
			Identities: len(m.Identities),
			Typedefs:   len(m.Typedefs),
			Deviations: len(m.Deviations),
			Augments:   len(m.Augments),
			DataNodes:  len(m.Data),
		}
		if m.IsSubmodule() {
			info.Kind = "submodule"
			info.BelongsTo = m.BelongsTo.Name
		}
		for _, imp := range m.Imports {
			info.Imports = append(info.Imports, fmt.Sprintf("%s (as %s)", imp.Module.Name, imp.Prefix))
		}
		for _, inc := range m.Includes {
			info.Includes = append(info.Includes, inc.Submodule.Name)
		}
		for _, rev := range m.Revisions {
			info.Revisions = append(info.Revisions, rev.Date)
		}
		if _, err := fmt.Fprintln(w, pretty.Sprint(info)); err != nil {
			return err
		}
	}
	return nil
}
