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

// Package watch re-extracts snippets from a working tree as files change
package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/walteh/exampler/pkg/example"
	"github.com/walteh/exampler/pkg/operation"
	"github.com/walteh/exampler/pkg/remote/local"
	"gitlab.com/tozd/go/errors"
)

// DefaultDebounce is how long the watcher waits for writes to settle
const DefaultDebounce = 200 * time.Millisecond

// Options configures a Watcher
type Options struct {
	// Root directory, watched recursively
	Root string
	// Examples decide which files are interesting
	Examples *example.Registry
	// Debounce defaults to DefaultDebounce
	Debounce time.Duration
	// OnResult is called for every re-extracted file, from the watcher goroutine
	OnResult func(operation.Result)
}

// 👀 Watcher re-runs extraction for registered files under a root
type Watcher struct {
	root     string
	examples *example.Registry
	debounce time.Duration
	onResult func(operation.Result)
	ready    chan struct{}
}

func New(opts Options) (*Watcher, error) {
	if opts.Examples == nil {
		return nil, errors.Errorf("examples are required")
	}
	if opts.OnResult == nil {
		return nil, errors.Errorf("result callback is required")
	}
	root := opts.Root
	if root == "" {
		root = "."
	}
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		root:     root,
		examples: opts.Examples,
		debounce: debounce,
		onResult: opts.OnResult,
		ready:    make(chan struct{}),
	}, nil
}

// Ready is closed once every directory under the root is being watched
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Run watches until ctx is cancelled. Cancellation is a normal stop and returns nil.
func (w *Watcher) Run(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := addRecursive(watcher, w.root); err != nil {
		return errors.Errorf("watching %s: %w", w.root, err)
	}
	close(w.ready)
	logger.Info().Str("root", w.root).Dur("debounce", w.debounce).Msg("watching for changes")

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()
	var timerC <-chan time.Time

	pending := map[string]bool{}
	for {
		select {
		case <-ctx.Done():
			logger.Debug().Msg("watcher stopped")
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("watcher error")
		case evt, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if evt.Has(fsnotify.Create) {
				if fi, statErr := os.Stat(evt.Name); statErr == nil && fi.IsDir() {
					if addErr := addRecursive(watcher, evt.Name); addErr != nil {
						logger.Warn().Err(addErr).Str("path", evt.Name).Msg("adding watch failed")
					}
					continue
				}
			}
			if !w.relevant(evt) {
				continue
			}
			rel, relErr := filepath.Rel(w.root, evt.Name)
			if relErr != nil {
				continue
			}
			pending[filepath.ToSlash(rel)] = true
			timer.Reset(w.debounce)
			timerC = timer.C
		case <-timerC:
			timerC = nil
			w.flush(ctx, pending)
			pending = map[string]bool{}
		}
	}
}

func (w *Watcher) relevant(evt fsnotify.Event) bool {
	if !evt.Has(fsnotify.Write) && !evt.Has(fsnotify.Create) && !evt.Has(fsnotify.Rename) {
		return false
	}
	base := filepath.Base(evt.Name)
	if strings.HasPrefix(base, ".") {
		return false
	}
	_, ok := w.examples.Match(evt.Name)
	return ok
}

// flush extracts every pending file that still exists
func (w *Watcher) flush(ctx context.Context, pending map[string]bool) {
	logger := zerolog.Ctx(ctx)

	paths := make([]string, 0, len(pending))
	for p := range pending {
		// renames report the old name, which is gone by now
		if fi, err := os.Stat(filepath.Join(w.root, filepath.FromSlash(p))); err != nil || fi.IsDir() {
			continue
		}
		paths = append(paths, p)
	}
	if len(paths) == 0 {
		return
	}
	sort.Strings(paths)

	report, err := operation.Run(ctx, operation.Options{
		Examples:    w.examples,
		Source:      local.NewFromFiles(w.root, paths...),
		Concurrency: 1,
	})
	if err != nil {
		if ctx.Err() == nil {
			logger.Error().Err(err).Msg("re-extraction failed")
		}
		return
	}

	for _, res := range report.Results {
		if res.Outcome() == operation.OutcomeSkipped {
			continue
		}
		w.onResult(res)
	}
}

func addRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}
