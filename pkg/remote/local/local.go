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

// Package local reads changed files from a working tree on disk
package local

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/exampler/pkg/remote"
	"gitlab.com/tozd/go/errors"
)

// DefaultPattern matches every file under the root
const DefaultPattern = "**/*"

var _ remote.ChangeSource = (*Source)(nil)

// Source lists files under Root. Files, when set, are used as is and
// Patterns are ignored.
type Source struct {
	Root     string
	Patterns []string
	Files    []string
}

// New returns a source for root matching patterns, or DefaultPattern when none are given
func New(root string, patterns ...string) *Source {
	if len(patterns) == 0 {
		patterns = []string{DefaultPattern}
	}
	return &Source{Root: root, Patterns: patterns}
}

// NewFromFiles returns a source for an explicit list of paths relative to root
func NewFromFiles(root string, files ...string) *Source {
	return &Source{Root: root, Files: files}
}

func (s *Source) Name() string {
	return "local:" + s.Root
}

// ChangedFiles returns matching files in lexical order, or Files in the order given
func (s *Source) ChangedFiles(ctx context.Context) ([]remote.ChangedFile, error) {
	logger := zerolog.Ctx(ctx)

	if len(s.Files) > 0 {
		out := make([]remote.ChangedFile, 0, len(s.Files))
		for _, f := range s.Files {
			out = append(out, remote.ChangedFile{Path: filepath.ToSlash(f), Status: remote.StatusPresent})
		}
		return out, nil
	}

	fsys := os.DirFS(s.Root)
	seen := map[string]bool{}
	var paths []string
	for _, pattern := range s.Patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("invalid pattern %q", pattern)
		}
		err := doublestar.GlobWalk(fsys, pattern, func(path string, d fs.DirEntry) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if d.IsDir() || seen[path] {
				return nil
			}
			seen[path] = true
			paths = append(paths, path)
			return nil
		})
		if err != nil {
			return nil, errors.Errorf("listing files in %s: %w", s.Root, err)
		}
	}
	sort.Strings(paths)

	logger.Debug().Str("root", s.Root).Int("files", len(paths)).Msg("listed local files")

	out := make([]remote.ChangedFile, 0, len(paths))
	for _, p := range paths {
		out = append(out, remote.ChangedFile{Path: p, Status: remote.StatusPresent})
	}
	return out, nil
}

// Content reads the file from disk
func (s *Source) Content(ctx context.Context, file remote.ChangedFile) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.Errorf("context error: %w", err)
	}

	data, err := os.ReadFile(filepath.Join(s.Root, filepath.FromSlash(file.Path)))
	if err != nil {
		return "", errors.Errorf("reading %s: %w", file.Path, err)
	}
	return string(data), nil
}
