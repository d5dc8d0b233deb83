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
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/exampler/pkg/directive"
	"gitlab.com/tozd/go/errors"
)

// 🔀 DuplicatePolicy decides what Build does when two examples name the same
// target basename.
type DuplicatePolicy int

const (
	// DuplicateReplace keeps the example registered last.
	DuplicateReplace DuplicatePolicy = iota
	// DuplicateReject keeps the first example and reports the later one as a
	// build error.
	DuplicateReject
)

// 📋 Entry is a record together with its id, in config document order
type Entry struct {
	ID     string
	Record Record
}

// 🗂️ Registry maps a target basename to the single example extracting from it.
// Build populates it once; after that it is only read.
type Registry struct {
	byTarget map[string]*Example
	targets  []string
}

// 🏭 NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{byTarget: map[string]*Example{}}
}

// 📝 Register stores ex under its target basename. An example already stored
// for that basename is replaced and returned; otherwise Register returns nil.
func (r *Registry) Register(ex *Example) *Example {
	prev, ok := r.byTarget[ex.target]
	if !ok {
		r.targets = append(r.targets, ex.target)
	}
	r.byTarget[ex.target] = ex
	return prev
}

// 🔍 Lookup returns the example registered for a basename
func (r *Registry) Lookup(basename string) (*Example, bool) {
	ex, ok := r.byTarget[basename]
	return ex, ok
}

// 🔍 Match returns the example registered for the basename of path
func (r *Registry) Match(path string) (*Example, bool) {
	return r.Lookup(Basename(path))
}

// Len returns the number of registered targets
func (r *Registry) Len() int {
	return len(r.byTarget)
}

// Examples returns the registered examples ordered by when their target was
// first registered
func (r *Registry) Examples() []*Example {
	out := make([]*Example, 0, len(r.targets))
	for _, t := range r.targets {
		out = append(out, r.byTarget[t])
	}
	return out
}

type buildOptions struct {
	duplicates DuplicatePolicy
}

// BuildOption configures Build
type BuildOption func(*buildOptions)

// WithDuplicatePolicy overrides the default DuplicateReplace policy
func WithDuplicatePolicy(p DuplicatePolicy) BuildOption {
	return func(o *buildOptions) {
		o.duplicates = p
	}
}

// 🏗️ Build compiles entries in order and registers every one that compiles.
//
// A failing entry is skipped and reported in the returned slice; it never
// stops the remaining entries from being compiled.
func Build(ctx context.Context, reg *directive.Registry, entries []Entry, opts ...BuildOption) (*Registry, []*BuildError) {
	logger := zerolog.Ctx(ctx)

	o := buildOptions{duplicates: DuplicateReplace}
	for _, opt := range opts {
		opt(&o)
	}

	out := NewRegistry()
	var failures []*BuildError

	for _, entry := range entries {
		ex, err := Compile(reg, entry.ID, entry.Record)
		if err != nil {
			logger.Debug().Err(err).Str("example", entry.ID).Msg("example did not compile")
			failures = append(failures, &BuildError{ExampleID: entry.ID, Err: err})
			continue
		}

		if prev, ok := out.Lookup(ex.target); ok && o.duplicates == DuplicateReject {
			failures = append(failures, &BuildError{
				ExampleID: entry.ID,
				Err:       errors.Errorf("%w %s: already claimed by example %q", ErrDuplicateTarget, ex.target, prev.id),
			})
			continue
		}

		if prev := out.Register(ex); prev != nil {
			logger.Warn().
				Str("target", ex.target).
				Str("replaced", prev.id).
				Str("example", ex.id).
				Msg("target claimed by more than one example, keeping the last")
		}
	}

	logger.Debug().Int("examples", out.Len()).Int("skipped", len(failures)).Msg("built example registry")

	return out, failures
}

// Basename returns the path component after the last '/' or '\'
func Basename(path string) string {
	return path[strings.LastIndexAny(path, `/\`)+1:]
}
