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
	"strings"

	"github.com/yangtools/goyin/pkg/schema"
)

// Internally, condition expressions and schema node identifiers qualify
// node names with the defining module's name.  The printed form qualifies
// them with mod's import prefix instead, and drops the qualifier entirely
// for mod's own names.  translateExpr performs that rewrite.
//
// The expression may be a full XPath condition (when, must) or a schema
// node identifier path (augment, deviation, refine targets).  Quoted
// literals are copied untouched; "name::" axis steps are not module
// qualifiers.  An unresolvable module name fails the translation.
func translateExpr(mod *schema.Module, expr string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(expr); {
		c := expr[i]
		switch {
		case c == '\'' || c == '"':
			end := strings.IndexByte(expr[i+1:], c)
			if end < 0 {
				b.WriteString(expr[i:])
				i = len(expr)
				break
			}
			b.WriteString(expr[i : i+end+2])
			i += end + 2
		case isNameStart(c):
			j := i + 1
			for j < len(expr) && isNameChar(expr[j]) {
				j++
			}
			name := expr[i:j]
			if j+1 < len(expr) && expr[j] == ':' && expr[j+1] == ':' {
				// XPath axis, not a module qualifier.
				b.WriteString(name)
				b.WriteString("::")
				i = j + 2
				break
			}
			if j < len(expr) && expr[j] == ':' {
				prefix, err := importPrefix(mod, name)
				if err != nil {
					return "", fmt.Errorf("cannot translate %q: %v", expr, err)
				}
				if prefix != "" {
					b.WriteString(prefix)
					b.WriteByte(':')
				}
				i = j + 1
				break
			}
			b.WriteString(name)
			i = j
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String(), nil
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameChar(c byte) bool {
	return isNameStart(c) || (c >= '0' && c <= '9') || c == '-' || c == '.'
}
