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
	"sort"
	"strconv"
	"strings"

	"github.com/walteh/exampler/pkg/scan"
	"gitlab.com/tozd/go/errors"
)

// 🗺️ Registry is the keyword table used to resolve directives. It is built
// once by NewRegistry and never changes afterwards, so it is safe to share
// between goroutines.
type Registry struct {
	matchers map[string]*Matcher
}

// 🏭 NewRegistry returns a registry holding the built-in keywords.
func NewRegistry() *Registry {
	r := &Registry{matchers: map[string]*Matcher{}}
	for _, m := range builtins() {
		r.matchers[m.Keyword()] = m
	}
	return r
}

// 🔍 Lookup resolves a keyword case-insensitively
func (r *Registry) Lookup(keyword string) (*Matcher, bool) {
	m, ok := r.matchers[strings.ToLower(keyword)]
	return m, ok
}

// Keywords returns the registered keywords, sorted
func (r *Registry) Keywords() []string {
	out := make([]string, 0, len(r.matchers))
	for k := range r.matchers {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// 🎯 CompileFrom compiles a directive into a start-of-snippet finder.
func (r *Registry) CompileFrom(raw string) (FromFinder, error) {
	return compile(r, raw, func(m *Matcher, args []string) (FromFinder, error) {
		return m.buildFrom(args)
	})
}

// 🎯 CompileTo compiles a directive into an end-of-snippet finder.
func (r *Registry) CompileTo(raw string) (ToFinder, error) {
	return compile(r, raw, func(m *Matcher, args []string) (ToFinder, error) {
		return m.buildTo(args)
	})
}

func compile[F any](r *Registry, raw string, build func(*Matcher, []string) (F, error)) (F, error) {
	var zero F

	d, err := Parse(raw)
	if err != nil {
		return zero, err
	}

	m, ok := r.Lookup(d.Keyword)
	if !ok {
		return zero, &CompileError{
			Directive: raw,
			Keyword:   d.Keyword,
			Err:       errors.Errorf("%w %q, options: %s", ErrUnknownKeyword, d.Keyword, strings.Join(r.Keywords(), ", ")),
		}
	}

	attempts := make([]Attempt, 0, len(m.arities))
	for _, arity := range m.arities {
		if len(d.Args) < arity {
			attempts = append(attempts, Attempt{
				Arity: arity,
				Err:   errors.Errorf("%w: want %d arguments, got %d", ErrArityMismatch, arity, len(d.Args)),
			})
			continue
		}

		// anything past the declared arity is ignored
		f, err := build(m, d.Args[:arity])
		if err != nil {
			attempts = append(attempts, Attempt{Arity: arity, Err: err})
			continue
		}
		return f, nil
	}

	return zero, &CompileError{
		Directive: raw,
		Keyword:   d.Keyword,
		Err:       summarize(attempts),
		Attempts:  attempts,
	}
}

func builtins() []*Matcher {
	return []*Matcher{
		{
			kind:    KindStart,
			arities: []int{0},
			buildFrom: func([]string) (FromFinder, error) {
				return func(string) int { return 0 }, nil
			},
			buildTo: func([]string) (ToFinder, error) {
				return func(int, string) int { return 0 }, nil
			},
		},
		{
			kind:    KindGroup,
			arities: []int{1},
			buildFrom: func(args []string) (FromFinder, error) {
				name := args[0]
				return func(text string) int {
					idx := strings.Index(text, name)
					if idx < 0 {
						return scan.NotFound
					}
					start := scan.FindBlankLineBefore(idx, text)
					if start == scan.NotFound {
						// name is on the first line, the group opens the text
						return 0
					}
					return start
				}, nil
			},
			buildTo: func(args []string) (ToFinder, error) {
				name := args[0]
				return func(_ int, text string) int {
					return scan.FindBalancedEnd(strings.Index(text, name), "{", "}", text)
				}, nil
			},
		},
		{
			kind:    KindFirst,
			arities: []int{2, 1},
			buildFrom: func(args []string) (FromFinder, error) {
				n, token, err := rankAndToken(args)
				if err != nil {
					return nil, err
				}
				return func(text string) int {
					return scan.FindNthForward(text, token, n, 0)
				}, nil
			},
			buildTo: func(args []string) (ToFinder, error) {
				n, token, err := rankAndToken(args)
				if err != nil {
					return nil, err
				}
				return func(from int, text string) int {
					return scan.FindNthForward(text, token, n, from+1)
				}, nil
			},
		},
		{
			kind:    KindLast,
			arities: []int{2, 1},
			buildFrom: func(args []string) (FromFinder, error) {
				n, token, err := rankAndToken(args)
				if err != nil {
					return nil, err
				}
				return func(text string) int {
					return scan.FindNthBackward(text, token, n)
				}, nil
			},
			buildTo: func(args []string) (ToFinder, error) {
				n, token, err := rankAndToken(args)
				if err != nil {
					return nil, err
				}
				// from is not consulted; a result before the start surfaces
				// later as an empty range
				return func(_ int, text string) int {
					return scan.FindNthBackward(text, token, n)
				}, nil
			},
		},
	}
}

// rankAndToken reads the [n token] or [token] argument shapes.
func rankAndToken(args []string) (int, string, error) {
	switch len(args) {
	case 1:
		return 1, args[0], nil
	case 2:
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return 0, "", errors.Errorf("%w: rank %q is not an integer", ErrInvalidArgument, args[0])
		}
		return n, args[1], nil
	default:
		return 0, "", errors.Errorf("%w: want 1 or 2 arguments, got %d", ErrArityMismatch, len(args))
	}
}
