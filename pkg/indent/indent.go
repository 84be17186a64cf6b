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

// Package indent indents lines of text with a prefix.
package indent

import (
	"bytes"
	"io"
	"strings"
)

// String returns s with each line prefixed by prefix.
func String(prefix, s string) string {
	if prefix == "" || s == "" {
		return s
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return prefix + strings.Join(lines, prefix)
}

// Bytes returns b with each line prefixed by prefix.
func Bytes(prefix, b []byte) []byte {
	if len(prefix) == 0 || len(b) == 0 {
		return b
	}
	lines := bytes.SplitAfter(b, []byte{'\n'})
	if len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	return append(append([]byte{}, prefix...), bytes.Join(lines, prefix)...)
}

// NewWriter returns an io.Writer that prefixes each line written to it with
// prefix and then writes the result to w.  The count returned by Write is the
// number of bytes of the caller's buffer consumed, never counting the
// injected prefixes.
func NewWriter(w io.Writer, prefix string) io.Writer {
	if prefix == "" {
		return w
	}
	return &indenter{
		w:      w,
		prefix: []byte(prefix),
	}
}

type indenter struct {
	w      io.Writer
	prefix []byte
	// partial is true when the last write did not end with a newline, in
	// which case the next write must not be prefixed.
	partial bool
}

func (in *indenter) Write(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}
	out := Bytes(in.prefix, buf)
	if in.partial {
		out = out[len(in.prefix):]
	}
	wasPartial := in.partial
	in.partial = buf[len(buf)-1] != '\n'
	n, err := in.w.Write(out)
	if n == len(out) {
		return len(buf), err
	}

	// Short write.  Work out how many bytes of buf made it to the
	// underlying writer, not charging the caller for prefixes.
	consumed := 0
	atStart := !wasPartial
	for _, b := range buf {
		if atStart {
			if n < len(in.prefix) {
				break
			}
			n -= len(in.prefix)
			atStart = false
		}
		if n <= 0 {
			break
		}
		n--
		consumed++
		if b == '\n' {
			atStart = true
		}
	}
	return consumed, err
}
