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

package loader

// The wire form of a schema document.  References between definitions are
// by name, qualified with a module name where they cross modules
// ("other-module:feature").  The linker turns these into the pointer graph
// of the schema package.

type document struct {
	Modules []*moduleDoc `json:"modules" yaml:"modules" validate:"required,min=1,dive,required"`
}

type moduleDoc struct {
	Name      string `json:"name" yaml:"name" validate:"required"`
	Namespace string `json:"namespace" yaml:"namespace"`
	Prefix    string `json:"prefix" yaml:"prefix"`
	Version   int    `json:"yang-version" yaml:"yang-version" validate:"gte=0,lte=2"`
	BelongsTo string `json:"belongs-to" yaml:"belongs-to"`
	Deviated  bool   `json:"deviated" yaml:"deviated"`

	Imports  []*importDoc  `json:"imports" yaml:"imports" validate:"omitempty,dive,required"`
	Includes []*includeDoc `json:"includes" yaml:"includes" validate:"omitempty,dive,required"`

	Organization string `json:"organization" yaml:"organization"`
	Contact      string `json:"contact" yaml:"contact"`
	Description  string `json:"description" yaml:"description"`
	Reference    string `json:"reference" yaml:"reference"`

	Revisions []*revisionDoc `json:"revisions" yaml:"revisions" validate:"omitempty,dive,required"`

	Features   []*featureDoc   `json:"features" yaml:"features" validate:"omitempty,dive,required"`
	Identities []*identityDoc  `json:"identities" yaml:"identities" validate:"omitempty,dive,required"`
	Typedefs   []*typedefDoc   `json:"typedefs" yaml:"typedefs" validate:"omitempty,dive,required"`
	Deviations []*deviationDoc `json:"deviations" yaml:"deviations" validate:"omitempty,dive,required"`
	Augments   []*augmentDoc   `json:"augments" yaml:"augments" validate:"omitempty,dive,required"`
	Data       []*nodeDoc      `json:"data" yaml:"data" validate:"omitempty,dive,required"`
}

type importDoc struct {
	Module       string `json:"module" yaml:"module" validate:"required"`
	Prefix       string `json:"prefix" yaml:"prefix" validate:"required"`
	RevisionDate string `json:"revision-date" yaml:"revision-date" validate:"omitempty,datetime=2006-01-02"`
	External     bool   `json:"external" yaml:"external"`
}

type includeDoc struct {
	Submodule    string `json:"submodule" yaml:"submodule" validate:"required"`
	RevisionDate string `json:"revision-date" yaml:"revision-date" validate:"omitempty,datetime=2006-01-02"`
	External     bool   `json:"external" yaml:"external"`
}

type revisionDoc struct {
	Date        string `json:"date" yaml:"date" validate:"required,datetime=2006-01-02"`
	Description string `json:"description" yaml:"description"`
	Reference   string `json:"reference" yaml:"reference"`
}

type featureDoc struct {
	Name        string   `json:"name" yaml:"name" validate:"required"`
	Status      string   `json:"status" yaml:"status" validate:"omitempty,oneof=current deprecated obsolete"`
	Description string   `json:"description" yaml:"description"`
	Reference   string   `json:"reference" yaml:"reference"`
	IfFeatures  []string `json:"if-features" yaml:"if-features"`
}

type identityDoc struct {
	Name        string `json:"name" yaml:"name" validate:"required"`
	Base        string `json:"base" yaml:"base"`
	Status      string `json:"status" yaml:"status" validate:"omitempty,oneof=current deprecated obsolete"`
	Description string `json:"description" yaml:"description"`
	Reference   string `json:"reference" yaml:"reference"`
}

type typedefDoc struct {
	Name        string   `json:"name" yaml:"name" validate:"required"`
	Status      string   `json:"status" yaml:"status" validate:"omitempty,oneof=current deprecated obsolete"`
	Description string   `json:"description" yaml:"description"`
	Reference   string   `json:"reference" yaml:"reference"`
	Type        *typeDoc `json:"type" yaml:"type" validate:"required"`
	Units       string   `json:"units" yaml:"units"`
	Default     string   `json:"default" yaml:"default"`
}

type typeDoc struct {
	Name string `json:"name" yaml:"name" validate:"required"`
	// Kind may be omitted when Name is itself a built-in type name.
	Kind   string `json:"kind" yaml:"kind" validate:"omitempty,oneof=none int8 int16 int32 int64 uint8 uint16 uint32 uint64 binary bits boolean decimal64 empty enumeration identityref instance-identifier leafref string union"`
	Module string `json:"module" yaml:"module"`

	Range           *restrictionDoc   `json:"range" yaml:"range"`
	Length          *restrictionDoc   `json:"length" yaml:"length"`
	Patterns        []*restrictionDoc `json:"patterns" yaml:"patterns" validate:"omitempty,dive,required"`
	FractionDigits  int               `json:"fraction-digits" yaml:"fraction-digits" validate:"gte=0,lte=18"`
	Enums           []*enumDoc        `json:"enums" yaml:"enums" validate:"omitempty,dive,required"`
	Bits            []*bitDoc         `json:"bits" yaml:"bits" validate:"omitempty,dive,required"`
	Base            string            `json:"base" yaml:"base"`
	Path            string            `json:"path" yaml:"path"`
	RequireInstance *bool             `json:"require-instance" yaml:"require-instance"`
	Types           []*typeDoc        `json:"types" yaml:"types" validate:"omitempty,dive,required"`
}

type restrictionDoc struct {
	Value        string `json:"value" yaml:"value" validate:"required"`
	Description  string `json:"description" yaml:"description"`
	Reference    string `json:"reference" yaml:"reference"`
	ErrorAppTag  string `json:"error-app-tag" yaml:"error-app-tag"`
	ErrorMessage string `json:"error-message" yaml:"error-message"`
}

type enumDoc struct {
	Name        string `json:"name" yaml:"name" validate:"required"`
	Value       int64  `json:"value" yaml:"value"`
	Status      string `json:"status" yaml:"status" validate:"omitempty,oneof=current deprecated obsolete"`
	Description string `json:"description" yaml:"description"`
	Reference   string `json:"reference" yaml:"reference"`
}

type bitDoc struct {
	Name        string `json:"name" yaml:"name" validate:"required"`
	Position    uint32 `json:"position" yaml:"position"`
	Status      string `json:"status" yaml:"status" validate:"omitempty,oneof=current deprecated obsolete"`
	Description string `json:"description" yaml:"description"`
	Reference   string `json:"reference" yaml:"reference"`
}

type whenDoc struct {
	Condition   string `json:"condition" yaml:"condition" validate:"required"`
	Description string `json:"description" yaml:"description"`
	Reference   string `json:"reference" yaml:"reference"`
}

type deviationDoc struct {
	Target      string        `json:"target" yaml:"target" validate:"required"`
	Description string        `json:"description" yaml:"description"`
	Reference   string        `json:"reference" yaml:"reference"`
	Deviates    []*deviateDoc `json:"deviates" yaml:"deviates" validate:"omitempty,dive,required"`
}

type deviateDoc struct {
	Action      string            `json:"action" yaml:"action" validate:"required,oneof=not-supported add replace delete"`
	Config      *bool             `json:"config" yaml:"config"`
	Mandatory   *bool             `json:"mandatory" yaml:"mandatory"`
	Default     string            `json:"default" yaml:"default"`
	MinElements *uint32           `json:"min-elements" yaml:"min-elements"`
	MaxElements *uint32           `json:"max-elements" yaml:"max-elements"`
	Musts       []*restrictionDoc `json:"musts" yaml:"musts" validate:"omitempty,dive,required"`
	Uniques     []string          `json:"uniques" yaml:"uniques"`
	Type        *typeDoc          `json:"type" yaml:"type"`
	Units       string            `json:"units" yaml:"units"`
}

type augmentDoc struct {
	Target      string     `json:"target" yaml:"target" validate:"required"`
	Status      string     `json:"status" yaml:"status" validate:"omitempty,oneof=current deprecated obsolete"`
	Description string     `json:"description" yaml:"description"`
	Reference   string     `json:"reference" yaml:"reference"`
	When        *whenDoc   `json:"when" yaml:"when"`
	IfFeatures  []string   `json:"if-features" yaml:"if-features"`
	NACM        []string   `json:"nacm" yaml:"nacm" validate:"omitempty,dive,oneof=default-deny-write default-deny-all"`
	Children    []*nodeDoc `json:"children" yaml:"children" validate:"omitempty,dive,required"`
}

type refineDoc struct {
	Target      string            `json:"target" yaml:"target" validate:"required"`
	TargetKind  string            `json:"target-kind" yaml:"target-kind" validate:"required,oneof=container choice leaf leaf-list list anyxml"`
	Config      *bool             `json:"config" yaml:"config"`
	Mandatory   *bool             `json:"mandatory" yaml:"mandatory"`
	Status      string            `json:"status" yaml:"status" validate:"omitempty,oneof=current deprecated obsolete"`
	Description string            `json:"description" yaml:"description"`
	Reference   string            `json:"reference" yaml:"reference"`
	Musts       []*restrictionDoc `json:"musts" yaml:"musts" validate:"omitempty,dive,required"`
	Default     string            `json:"default" yaml:"default"`
	Presence    string            `json:"presence" yaml:"presence"`
	MinElements *uint32           `json:"min-elements" yaml:"min-elements"`
	MaxElements *uint32           `json:"max-elements" yaml:"max-elements"`
}

type nodeDoc struct {
	Kind string `json:"kind" yaml:"kind" validate:"required,oneof=container choice case leaf leaf-list list anyxml grouping uses rpc notification input output"`
	Name string `json:"name" yaml:"name"`
	// Module names the owning module when the node was materialized into
	// this tree by a submodule or an augment; empty means the enclosing
	// module.
	Module string `json:"module" yaml:"module"`

	Status      string   `json:"status" yaml:"status" validate:"omitempty,oneof=current deprecated obsolete"`
	Description string   `json:"description" yaml:"description"`
	Reference   string   `json:"reference" yaml:"reference"`
	Config      *bool    `json:"config" yaml:"config"`
	Mandatory   *bool    `json:"mandatory" yaml:"mandatory"`
	NACM        []string `json:"nacm" yaml:"nacm" validate:"omitempty,dive,oneof=default-deny-write default-deny-all"`

	When       *whenDoc          `json:"when" yaml:"when"`
	IfFeatures []string          `json:"if-features" yaml:"if-features"`
	Musts      []*restrictionDoc `json:"musts" yaml:"musts" validate:"omitempty,dive,required"`

	Presence    string   `json:"presence" yaml:"presence"`
	Type        *typeDoc `json:"type" yaml:"type"`
	Units       string   `json:"units" yaml:"units"`
	Default     string   `json:"default" yaml:"default"`
	MinElements uint32   `json:"min-elements" yaml:"min-elements"`
	MaxElements uint32   `json:"max-elements" yaml:"max-elements"`
	OrderedBy   string   `json:"ordered-by" yaml:"ordered-by" validate:"omitempty,oneof=system user"`
	Keys        []string `json:"keys" yaml:"keys"`
	// Uniques holds one space-separated operand list per unique
	// statement.
	Uniques []string `json:"uniques" yaml:"uniques"`

	Typedefs []*typedefDoc `json:"typedefs" yaml:"typedefs" validate:"omitempty,dive,required"`

	// Grouping is the uses target, possibly module-qualified; Name is
	// used when empty.
	Grouping string        `json:"grouping" yaml:"grouping"`
	Refines  []*refineDoc  `json:"refines" yaml:"refines" validate:"omitempty,dive,required"`
	Augments []*augmentDoc `json:"augments" yaml:"augments" validate:"omitempty,dive,required"`

	Children []*nodeDoc `json:"children" yaml:"children" validate:"omitempty,dive,required"`
}
