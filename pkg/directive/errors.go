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
	"fmt"
	"strings"

	"gitlab.com/tozd/go/errors"
)

var (
	ErrEmptyDirective  = errors.New("empty directive")
	ErrUnknownKeyword  = errors.New("unknown keyword")
	ErrArityMismatch   = errors.New("arity mismatch")
	ErrInvalidArgument = errors.New("invalid argument")
)

// 🧪 Attempt records why one declared arity did not produce a finder.
type Attempt struct {
	Arity int
	Err   error
}

// ❌ CompileError is returned when a directive cannot be compiled.
//
// Err is the summarised reason and is one of the package sentinels. Attempts
// holds one entry per arity that was tried, in trial order.
type CompileError struct {
	Directive string
	Keyword   string
	Err       error
	Attempts  []Attempt
}

func (e *CompileError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "compiling directive %q: %s", e.Directive, e.Err.Error())
	if len(e.Attempts) > 0 {
		parts := make([]string, 0, len(e.Attempts))
		for _, a := range e.Attempts {
			parts = append(parts, fmt.Sprintf("arity %d: %s", a.Arity, a.Err.Error()))
		}
		fmt.Fprintf(&b, " (%s)", strings.Join(parts, "; "))
	}
	return b.String()
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

// summarize picks the reason reported for a failed resolution. A validation
// failure takes precedence over a count mismatch.
func summarize(attempts []Attempt) error {
	for _, a := range attempts {
		if errors.Is(a.Err, ErrInvalidArgument) {
			return ErrInvalidArgument
		}
	}
	return ErrArityMismatch
}
