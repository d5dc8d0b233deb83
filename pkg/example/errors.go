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
	"fmt"

	"gitlab.com/tozd/go/errors"
)

var (
	ErrMissingField     = errors.New("missing field")
	ErrBoundaryNotFound = errors.New("boundary not found")
	ErrEmptyRange       = errors.New("empty or inverted range")
	ErrDuplicateTarget  = errors.New("duplicate target")
)

// ❌ MissingFieldError reports a required record field left empty
type MissingFieldError struct {
	ExampleID string
	Field     string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("example %q: %s: %s", e.ExampleID, ErrMissingField.Error(), e.Field)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}

// Side names the boundary an extraction failed on
type Side string

const (
	SideStart Side = "start"
	SideEnd   Side = "end"
)

// ❌ ExtractError reports why an example produced no snippet for a source text.
// From and To hold the offsets computed before the failure, -1 when unknown.
type ExtractError struct {
	ExampleID string
	Target    string
	Side      Side
	From      int
	To        int
	Err       error
}

func (e *ExtractError) Error() string {
	if errors.Is(e.Err, ErrEmptyRange) {
		return fmt.Sprintf("example %q in %s: %s [%d, %d)", e.ExampleID, e.Target, e.Err.Error(), e.From, e.To)
	}
	return fmt.Sprintf("example %q in %s: %s %s", e.ExampleID, e.Target, e.Side, e.Err.Error())
}

func (e *ExtractError) Unwrap() error {
	return e.Err
}

// ❌ BuildError is one record that did not make it into a Registry
type BuildError struct {
	ExampleID string
	Err       error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("skipping example %q: %s", e.ExampleID, e.Err.Error())
}

func (e *BuildError) Unwrap() error {
	return e.Err
}
