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

package operation

import (
	"github.com/walteh/exampler/pkg/remote"
)

// Outcome is what happened to a single file
type Outcome string

const (
	OutcomeExtracted Outcome = "extracted"
	OutcomeFailed    Outcome = "failed"
	OutcomeSkipped   Outcome = "skipped"
)

// 📝 Result is the outcome for one changed file
type Result struct {
	File remote.ChangedFile
	// ExampleID is empty when no example targets the file
	ExampleID string
	Usage     string
	Snippet   string
	Err       error
}

// Outcome classifies the result
func (r Result) Outcome() Outcome {
	switch {
	case r.ExampleID == "":
		return OutcomeSkipped
	case r.Err != nil:
		return OutcomeFailed
	default:
		return OutcomeExtracted
	}
}

// 📊 Report summarizes a run
type Report struct {
	Source    string
	Extracted int
	Failed    int
	Skipped   int
	// Results in listing order, one per file that passed the include filter
	Results []Result
}

func newReport(source string, results []Result) *Report {
	r := &Report{Source: source, Results: results}
	for _, res := range results {
		switch res.Outcome() {
		case OutcomeExtracted:
			r.Extracted++
		case OutcomeFailed:
			r.Failed++
		case OutcomeSkipped:
			r.Skipped++
		}
	}
	return r
}

// HasFailures reports whether any file failed
func (r *Report) HasFailures() bool {
	return r.Failed > 0
}
