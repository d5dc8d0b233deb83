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

// Package remote defines where changed source files come from
package remote

import (
	"context"

	"github.com/walteh/exampler/pkg/example"
)

// FileStatus is the kind of change a file went through
type FileStatus string

const (
	StatusAdded    FileStatus = "added"
	StatusModified FileStatus = "modified"
	StatusRenamed  FileStatus = "renamed"
	StatusRemoved  FileStatus = "removed"
	// StatusPresent marks files read from a working tree with no change history
	StatusPresent FileStatus = "present"
)

// ChangedFile is a single file touched by a change
type ChangedFile struct {
	// Path of the file relative to the repository root
	Path string
	// Status of the change
	Status FileStatus
	// SHA of the file's blob, empty when the source has none
	SHA string
}

// Basename returns the final element of Path, which is what examples are keyed by
func (f ChangedFile) Basename() string {
	return example.Basename(f.Path)
}

// ChangeSource lists changed files and reads their contents
type ChangeSource interface {
	// Name describes the source (e.g. "github:owner/repo#12")
	Name() string
	// ChangedFiles returns the files of the change in listing order
	ChangedFiles(ctx context.Context) ([]ChangedFile, error)
	// Content returns the full text of the file after the change
	Content(ctx context.Context, file ChangedFile) (string, error)
}
