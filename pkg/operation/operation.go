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
	"context"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/exampler/pkg/example"
	"github.com/walteh/exampler/pkg/remote"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is used when Options.Concurrency is not positive
const DefaultConcurrency = 4

// 🔧 Options contains configuration for a run
type Options struct {
	// Examples are the compiled examples, keyed by target basename
	Examples *example.Registry
	// Source lists changed files and reads their content
	Source remote.ChangeSource
	// Concurrency bounds how many files are fetched at once
	Concurrency int
	// Include, when set, keeps only files whose path matches one of the globs
	Include []string
}

// 🏃 Run extracts a snippet from every changed file that has a registered example
func Run(ctx context.Context, opts Options) (*Report, error) {
	logger := zerolog.Ctx(ctx)

	if opts.Examples == nil {
		return nil, errors.Errorf("examples are required")
	}
	if opts.Source == nil {
		return nil, errors.Errorf("source is required")
	}
	for _, pattern := range opts.Include {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("invalid include pattern %q", pattern)
		}
	}

	logger.Debug().Str("source", opts.Source.Name()).Int("examples", opts.Examples.Len()).Msg("starting extraction")

	files, err := opts.Source.ChangedFiles(ctx)
	if err != nil {
		return nil, errors.Errorf("listing changed files: %w", err)
	}
	files = filter(files, opts.Include)

	limit := opts.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	results := make([]Result, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, file := range files {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			results[i] = process(gctx, opts, file)
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Errorf("extraction cancelled: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Errorf("extraction cancelled: %w", err)
	}

	report := newReport(opts.Source.Name(), results)
	logger.Debug().
		Int("extracted", report.Extracted).
		Int("failed", report.Failed).
		Int("skipped", report.Skipped).
		Msg("extraction finished")

	return report, nil
}

func process(ctx context.Context, opts Options, file remote.ChangedFile) Result {
	logger := zerolog.Ctx(ctx).With().Str("path", file.Path).Logger()

	ex, ok := opts.Examples.Lookup(file.Basename())
	if !ok {
		logger.Debug().Msg("no example for file")
		return Result{File: file}
	}

	res := Result{
		File:      file,
		ExampleID: ex.ID(),
		Usage:     ex.Usage(),
	}

	content, err := opts.Source.Content(ctx, file)
	if err != nil {
		res.Err = errors.Errorf("fetching %s: %w", file.Path, err)
		return res
	}

	snippet, err := ex.Extract(content)
	if err != nil {
		res.Err = err
		return res
	}

	logger.Debug().Str("example", ex.ID()).Int("bytes", len(snippet)).Msg("extracted snippet")
	res.Snippet = snippet
	return res
}

func filter(files []remote.ChangedFile, include []string) []remote.ChangedFile {
	if len(include) == 0 {
		return files
	}
	out := make([]remote.ChangedFile, 0, len(files))
	for _, f := range files {
		for _, pattern := range include {
			if doublestar.MatchUnvalidated(pattern, f.Path) {
				out = append(out, f)
				break
			}
		}
	}
	return out
}
