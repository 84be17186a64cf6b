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
	"fmt"

	"github.com/yangtools/goyin/pkg/schema"
)

// importPrefix returns the prefix under which mod refers to the module
// named target.  The empty prefix is returned when target is mod itself.
// Otherwise mod's import list is searched, then the import lists of the
// submodules mod includes.  A compiled schema guarantees a usable import
// exists; failing that, an error naming both modules is returned rather
// than emitting an ambiguous unprefixed name.
func importPrefix(mod *schema.Module, target string) (string, error) {
	if mod.Name == target {
		return "", nil
	}
	for _, imp := range mod.Imports {
		if imp.Module.Name == target {
			return imp.Prefix, nil
		}
	}
	for _, inc := range mod.Includes {
		for _, imp := range inc.Submodule.Imports {
			if imp.Module.Name == target {
				return imp.Prefix, nil
			}
		}
	}
	return "", fmt.Errorf("module %s has no import prefix for module %s", mod.Name, target)
}

// qualifiedName returns name as it must appear inside mod when its
// definition lives in def: unprefixed when def's main module is mod,
// otherwise prefixed with mod's import prefix for it.
func qualifiedName(mod, def *schema.Module, name string) (string, error) {
	def = def.MainModule()
	if def.Name == mod.MainModule().Name {
		return name, nil
	}
	prefix, err := importPrefix(mod, def.Name)
	if err != nil {
		return "", err
	}
	return prefix + ":" + name, nil
}

// nacmModule is the module defining the NETCONF access control extensions.
const nacmModule = "ietf-netconf-acm"

// nacmPrefix returns the prefix under which mod refers to the NACM module.
func nacmPrefix(mod *schema.Module) (string, error) {
	if mod.Name == nacmModule {
		return mod.Prefix, nil
	}
	return importPrefix(mod, nacmModule)
}
