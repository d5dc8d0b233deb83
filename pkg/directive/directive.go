// Copyright 2025 walteh LLC
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

package directive

import (
	"strings"
)

// 🔍 FromFinder returns the inclusive start offset of a snippet in text, or -1.
type FromFinder func(text string) int

// 🔍 ToFinder returns the exclusive end offset of a snippet that starts at
// from, or -1.
type ToFinder func(from int, text string) int

// 🏷️ Kind tags one of the built-in matcher families.
type Kind int

const (
	KindStart Kind = iota
	KindGroup
	KindFirst
	KindLast
)

// String returns the directive keyword for the kind
func (k Kind) String() string {
	switch k {
	case KindStart:
		return "start"
	case KindGroup:
		return "group"
	case KindFirst:
		return "first"
	case KindLast:
		return "last"
	default:
		return "unknown"
	}
}

type (
	fromBuilder func(args []string) (FromFinder, error)
	toBuilder   func(args []string) (ToFinder, error)
)

// 🧩 Matcher is the definition of one keyword: the argument counts it accepts,
// in the order they are tried, and how to turn parsed arguments into finders.
type Matcher struct {
	kind      Kind
	arities   []int
	buildFrom fromBuilder
	buildTo   toBuilder
}

// Kind returns the matcher's tag
func (m *Matcher) Kind() Kind {
	return m.kind
}

// Keyword returns the lowercase keyword the matcher is registered under
func (m *Matcher) Keyword() string {
	return m.kind.String()
}

// Arities returns a copy of the accepted argument counts in trial order
func (m *Matcher) Arities() []int {
	out := make([]int, len(m.arities))
	copy(out, m.arities)
	return out
}

// 📝 Directive is a parsed but not yet resolved directive string.
type Directive struct {
	Raw     string
	Keyword string   // lowercased
	Args    []string // whitespace separated argument tokens
}

// 📝 Parse splits a raw directive into its keyword and argument tokens.
func Parse(raw string) (Directive, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return Directive{Raw: raw}, &CompileError{Directive: raw, Err: ErrEmptyDirective}
	}
	return Directive{
		Raw:     raw,
		Keyword: strings.ToLower(fields[0]),
		Args:    fields[1:],
	}, nil
}
