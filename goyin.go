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

// Program goyin renders resolved YANG schema documents.
//
// Usage: goyin [--format FORMAT] [--output FILE] [FILE ...]
//
// Each FILE is a schema document (JSON, or YAML when the file ends in
// .yaml or .yml) describing one or more compiled modules.  If no FILE is
// given a JSON document is read from standard input.  Modules are rendered
// in document order; submodules are rendered only when named by an
// include.
//
// FORMAT, which defaults to "yin", specifies the output to produce:
//
//	yin   YIN (XML) serialization of each module
//	tree  all modules in a debugging tree form
//	info  a summary of each module's header and linkage
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pborman/getopt"
	"github.com/yangtools/goyin/pkg/loader"
	"github.com/yangtools/goyin/pkg/schema"
)

// A formatter renders loaded modules in one output format.
type formatter struct {
	name string
	f    func(io.Writer, []*schema.Module) error
	help string
}

var formatters = map[string]*formatter{}

func register(f *formatter) {
	formatters[f.name] = f
}

func exitIfError(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	format := "yin"
	output := ""
	getopt.CommandLine.StringVarLong(&format, "format", 0, "format to display: yin, tree, info")
	getopt.CommandLine.StringVarLong(&output, "output", 'o', "write to FILE instead of standard output", "FILE")
	getopt.Parse()
	files := getopt.Args()

	fmtr, ok := formatters[format]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown format: %s\n", format)
		os.Exit(1)
	}

	var mods []*schema.Module
	if len(files) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			exitIfError(err)
		}
		set, err := loader.Load(data)
		exitIfError(err)
		mods = append(mods, modules(set)...)
	}
	for _, name := range files {
		set, err := loader.LoadFile(name)
		if err != nil {
			exitIfError(fmt.Errorf("%s: %v", name, err))
		}
		mods = append(mods, modules(set)...)
	}

	w := io.Writer(os.Stdout)
	if output != "" {
		f, err := os.Create(output)
		exitIfError(err)
		defer f.Close()
		w = f
	}
	exitIfError(fmtr.f(w, mods))
}

// modules returns set's modules in document order, leaving out submodules
// not named by an include of another module in the set.
func modules(set *loader.Set) []*schema.Module {
	included := map[*schema.Module]bool{}
	for _, name := range set.Names {
		for _, inc := range set.Modules[name].Includes {
			included[inc.Submodule] = true
		}
	}
	var mods []*schema.Module
	for _, name := range set.Names {
		m := set.Modules[name]
		if m.IsSubmodule() && !included[m] {
			continue
		}
		mods = append(mods, m)
	}
	return mods
}
