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
	"io"

	"github.com/yangtools/goyin/pkg/schema"
	"github.com/yangtools/goyin/pkg/yin"
)

func init() {
	register(&formatter{
		name: "yin",
		f:    doYin,
		help: "YIN (XML) serialization of each module",
	})
}

func doYin(w io.Writer, mods []*schema.Module) error {
	for _, m := range mods {
		if err := yin.Write(w, m); err != nil {
			return err
		}
	}
	return nil
}
