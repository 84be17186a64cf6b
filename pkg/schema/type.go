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

// A TypeKind is the resolved base kind of a YANG type.
type TypeKind int

// The defined type kinds.
const (
	Ynone = TypeKind(iota)
	Yint8
	Yint16
	Yint32
	Yint64
	Yuint8
	Yuint16
	Yuint32
	Yuint64
	Ybinary
	Ybits
	Ybool
	Ydecimal64
	Yempty
	Yenum
	Yidentityref
	YinstanceIdentifier
	Yleafref
	Ystring
	Yunion
)

var (
	// TypeKindFromName maps the name used in a YANG file to the
	// enumerated TypeKind used in this library.
	TypeKindFromName = map[string]TypeKind{
		"none":                Ynone,
		"int8":                Yint8,
		"int16":               Yint16,
		"int32":               Yint32,
		"int64":               Yint64,
		"uint8":               Yuint8,
		"uint16":              Yuint16,
		"uint32":              Yuint32,
		"uint64":              Yuint64,
		"binary":              Ybinary,
		"bits":                Ybits,
		"boolean":             Ybool,
		"decimal64":           Ydecimal64,
		"empty":               Yempty,
		"enumeration":         Yenum,
		"identityref":         Yidentityref,
		"instance-identifier": YinstanceIdentifier,
		"leafref":             Yleafref,
		"string":              Ystring,
		"union":               Yunion,
	}

	// TypeKindToName maps the enumerated kind used in this library to
	// the name used in a YANG file.
	TypeKindToName = map[TypeKind]string{
		Ynone:               "none",
		Yint8:               "int8",
		Yint16:              "int16",
		Yint32:              "int32",
		Yint64:              "int64",
		Yuint8:              "uint8",
		Yuint16:             "uint16",
		Yuint32:             "uint32",
		Yuint64:             "uint64",
		Ybinary:             "binary",
		Ybits:               "bits",
		Ybool:               "boolean",
		Ydecimal64:          "decimal64",
		Yempty:              "empty",
		Yenum:               "enumeration",
		Yidentityref:        "identityref",
		YinstanceIdentifier: "instance-identifier",
		Yleafref:            "leafref",
		Ystring:             "string",
		Yunion:              "union",
	}
)

// String returns the YANG name of k.
func (k TypeKind) String() string {
	if s, ok := TypeKindToName[k]; ok {
		return s
	}
	return "unknown"
}

// IsInteger reports whether k is one of the signed or unsigned integer
// kinds.
func (k TypeKind) IsInteger() bool {
	return k >= Yint8 && k <= Yuint64
}

// A Type is the resolved type of a leaf or leaf-list, or a member of a
// union.  Name is the type name as it must be printed (the derived type's
// name when the type was derived); ModuleName, when non-empty, names the
// module defining the derivation and forces a prefix on output when it is
// not the printing module.  The remaining fields are kind-specific payload;
// only the fields applicable to Kind are consulted.
type Type struct {
	Name       string
	Kind       TypeKind
	ModuleName string

	Range           *Restriction // integer and decimal64 kinds
	Length          *Restriction // string and binary
	Patterns        []*Restriction
	FractionDigits  int
	Enums           []*Enum
	Bits            []*Bit
	IdentityBase    *Identity
	Path            string // leafref target, internal encoding
	RequireInstance TriState
	Types           []*Type // union members
}

// An Enum is one entry of an enumeration type.  Value is always the
// resolved integer value, even when it equals the implicit default.
type Enum struct {
	Name        string
	Value       int64
	Status      Status
	Description string
	Reference   string
}

// A Bit is one entry of a bits type.
type Bit struct {
	Name        string
	Position    uint32
	Status      Status
	Description string
	Reference   string
}
