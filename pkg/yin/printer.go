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
	"io"
	"strings"
)

// A printer accumulates YIN output on w.  The first error, whether from the
// sink or from a failed expression translation, sticks: all later writes
// become no-ops and the error is returned from the top-level call.
type printer struct {
	w   io.Writer
	err error
}

// fail records err as the printer's terminal error if none is set yet.
func (p *printer) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// open writes an element with a single attribute, self-closed when
// selfClose is set.  The attribute value is escaped.
func (p *printer) open(level int, elem, attr, value string, selfClose bool) {
	slash := ""
	if selfClose {
		slash = "/"
	}
	p.printf("%*s<%s %s=\"%s\"%s>\n", level*2, "", elem, attr, escapeAttr(value), slash)
}

// closeElem writes the closing tag of elem.
func (p *printer) closeElem(level int, elem string) {
	p.printf("%*s</%s>\n", level*2, "", elem)
}

// unsigned writes a self-closed element carrying an unsigned attribute.
func (p *printer) unsigned(level int, elem, attr string, value uint32) {
	p.printf("%*s<%s %s=\"%d\"/>\n", level*2, "", elem, attr, value)
}

// text writes elem wrapping a text block.  Newlines in text are preserved
// literally, which is why the value lives in a nested text element rather
// than an attribute.
func (p *printer) text(level int, elem, text string) {
	p.printf("%*s<%s>\n", level*2, "", elem)
	p.printf("%*s<text>%s</text>\n", (level+1)*2, "", escapeText(text))
	p.closeElem(level, elem)
}

var (
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
)

// escapeText escapes s for embedding as XML character data.
func escapeText(s string) string { return textEscaper.Replace(s) }

// escapeAttr escapes s for embedding as an XML attribute value.
func escapeAttr(s string) string { return attrEscaper.Replace(s) }
