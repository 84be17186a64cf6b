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

// A Module is a resolved module or submodule.  A submodule has a non-nil
// BelongsTo and no Namespace of its own.  The slices preserve declaration
// order; the serializer relies on it.
type Module struct {
	Name      string
	Namespace string
	Prefix    string
	// Version is the declared yang-version: 0 when absent, 1 for "1",
	// 2 for "1.1".
	Version   int
	BelongsTo *Module
	// Deviated marks a module that has had deviations from other
	// modules applied to it.
	Deviated bool

	Imports  []*Import
	Includes []*Include

	Organization string
	Contact      string
	Description  string
	Reference    string

	Revisions []*Revision

	Features   []*Feature
	Identities []*Identity
	Typedefs   []*Typedef
	Deviations []*Deviation
	Augments   []*Augment

	// Data holds the top-level data, rpc and notification nodes in
	// declaration order, including nodes materialized into the tree
	// from submodules and augments (which carry their own owning
	// module).
	Data []Node
}

// IsSubmodule reports whether m is a submodule.
func (m *Module) IsSubmodule() bool { return m.BelongsTo != nil }

// MainModule returns the module m belongs to: m itself for a module, the
// belongs-to module for a submodule.
func (m *Module) MainModule() *Module {
	if m.BelongsTo != nil {
		return m.BelongsTo
	}
	return m
}

// An Import is one import statement of a (sub)module.  External marks an
// import declared on behalf of another (sub)module whose namespace must not
// be re-declared here.
type Import struct {
	Module       *Module
	Prefix       string
	RevisionDate string
	External     bool
}

// An Include is one include statement of a module.
type Include struct {
	Submodule    *Module
	RevisionDate string
	External     bool
}

// A Revision is one revision statement.
type Revision struct {
	Date        string
	Description string
	Reference   string
}

// A Feature is a feature definition.  Module is the (sub)module declaring
// the feature; if-feature references resolve prefixes against the feature's
// main module.
type Feature struct {
	Name        string
	Module      *Module
	Status      Status
	Description string
	Reference   string
	IfFeatures  []*Feature
}

// An Identity is an identity definition.
type Identity struct {
	Name        string
	Module      *Module
	Base        *Identity
	Status      Status
	Description string
	Reference   string
}

// A Typedef is a typedef definition, at module level or nested inside a
// data node.
type Typedef struct {
	Name        string
	Status      Status
	Description string
	Reference   string
	Type        *Type
	Units       string
	Default     string
}

// A DeviateAction is the argument of a deviate statement.
type DeviateAction int

// The possible deviate actions.
const (
	DeviateNotSupported = DeviateAction(iota)
	DeviateAdd
	DeviateReplace
	DeviateDelete
)

// String returns the YANG argument for a.
func (a DeviateAction) String() string {
	switch a {
	case DeviateNotSupported:
		return "not-supported"
	case DeviateAdd:
		return "add"
	case DeviateReplace:
		return "replace"
	case DeviateDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// A Deviation is a deviation statement.  Target is a schema node identifier
// in the internal encoding.
type Deviation struct {
	Target      string
	Description string
	Reference   string
	Deviates    []*Deviate
}

// A Deviate is one deviate entry of a deviation.  MinElements and
// MaxElements of nil mean unset; a MaxElements of zero means unbounded.
type Deviate struct {
	Action      DeviateAction
	Config      TriState
	Mandatory   TriState
	Default     string
	MinElements *uint32
	MaxElements *uint32
	Musts       []*Restriction
	Uniques     []*Unique
	Type        *Type
	Units       string
}
