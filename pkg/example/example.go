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

package example

import (
	"strings"

	"github.com/walteh/exampler/pkg/directive"
	"gitlab.com/tozd/go/errors"
)

// 📋 Record is one undecoded example definition as it appears in a config file
type Record struct {
	Usage  string
	From   string
	To     string
	In     string
	Prefix string
	Suffix string
}

// 📦 Example is a compiled record. It is immutable once Compile returns it.
type Example struct {
	id     string
	usage  string
	from   directive.FromFinder
	to     directive.ToFinder
	target string
	prefix string
	suffix string
}

func (e *Example) ID() string     { return e.id }
func (e *Example) Usage() string  { return e.usage }
func (e *Example) Target() string { return e.target }
func (e *Example) Prefix() string { return e.prefix }
func (e *Example) Suffix() string { return e.suffix }

// 🏭 Compile validates a record and compiles its from and to directives.
//
// Usage, from, to and in are required. Either directive failing rejects the
// whole example. Only the basename of in is kept as the target.
func Compile(reg *directive.Registry, id string, rec Record) (*Example, error) {
	required := []struct {
		name  string
		value string
	}{
		{"usage", rec.Usage},
		{"from", rec.From},
		{"to", rec.To},
		{"in", rec.In},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return nil, &MissingFieldError{ExampleID: id, Field: f.name}
		}
	}

	target := Basename(strings.TrimSpace(rec.In))
	if strings.TrimSpace(target) == "" {
		return nil, &MissingFieldError{ExampleID: id, Field: "in"}
	}

	from, err := reg.CompileFrom(rec.From)
	if err != nil {
		return nil, errors.Errorf("example %q: from: %w", id, err)
	}

	to, err := reg.CompileTo(rec.To)
	if err != nil {
		return nil, errors.Errorf("example %q: to: %w", id, err)
	}

	return &Example{
		id:     id,
		usage:  rec.Usage,
		from:   from,
		to:     to,
		target: target,
		prefix: rec.Prefix,
		suffix: rec.Suffix,
	}, nil
}
