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

package github

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/go-github/v60/github"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
	"github.com/walteh/exampler/pkg/remote"
	"gitlab.com/tozd/go/errors"
)

// ErrNotMerged is returned when the pull request has not been merged
var ErrNotMerged = errors.New("pull request is not merged")

const (
	defaultCacheSize = 256
	listPageSize     = 100
)

var _ remote.ChangeSource = (*PullRequest)(nil)

// PullRequest is a change source for the files of a merged GitHub pull request.
// Contents are read at the merge commit.
type PullRequest struct {
	client GitHubClient
	owner  string
	repo   string
	number int

	// blob contents keyed by blob sha
	blobs *lru.Cache[string, string]

	mu       sync.Mutex
	mergeSHA string
}

// Option configures a PullRequest
type Option func(*PullRequest) error

// WithClient replaces the default API client
func WithClient(client GitHubClient) Option {
	return func(p *PullRequest) error {
		p.client = client
		return nil
	}
}

// WithCacheSize sets how many blobs are kept in memory. The size must be positive.
func WithCacheSize(size int) Option {
	return func(p *PullRequest) error {
		blobs, err := lru.New[string, string](size)
		if err != nil {
			return errors.Errorf("creating blob cache of size %d: %w", size, err)
		}
		p.blobs = blobs
		return nil
	}
}

// NewPullRequest returns a source for pull request number in owner/repo
func NewPullRequest(owner, repo string, number int, opts ...Option) (*PullRequest, error) {
	owner = strings.TrimSpace(owner)
	repo = strings.TrimSpace(repo)
	if owner == "" || repo == "" {
		return nil, errors.Errorf("invalid repository name: %s/%s", owner, repo)
	}
	if number <= 0 {
		return nil, errors.Errorf("invalid pull request number: %d", number)
	}

	p := &PullRequest{
		owner:  owner,
		repo:   repo,
		number: number,
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	if p.client == nil {
		p.client = NewClient()
	}
	if p.blobs == nil {
		blobs, err := lru.New[string, string](defaultCacheSize)
		if err != nil {
			return nil, errors.Errorf("creating blob cache: %w", err)
		}
		p.blobs = blobs
	}

	return p, nil
}

// Name returns the source name, e.g. "github:owner/repo#12"
func (p *PullRequest) Name() string {
	return fmt.Sprintf("github:%s/%s#%d", p.owner, p.repo, p.number)
}

// MergeCommitSHA returns the merge commit once it has been resolved
func (p *PullRequest) MergeCommitSHA() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mergeSHA
}

// ChangedFiles lists the files of the pull request. Removed files are left out
// since there is nothing to extract from them.
func (p *PullRequest) ChangedFiles(ctx context.Context) ([]remote.ChangedFile, error) {
	logger := zerolog.Ctx(ctx)

	sha, err := p.resolveMergeCommit(ctx)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("source", p.Name()).Str("merge_commit", sha).Msg("listing changed files")

	var files []remote.ChangedFile
	opts := &github.ListOptions{PerPage: listPageSize}
	for {
		page, resp, err := p.client.ListFiles(ctx, p.owner, p.repo, p.number, opts)
		if err != nil {
			return nil, wrapAPIError(ctx, "listing pull request files", err)
		}

		for _, f := range page {
			status := remote.FileStatus(f.GetStatus())
			if status == remote.StatusRemoved {
				logger.Debug().Str("path", f.GetFilename()).Msg("skipping removed file")
				continue
			}
			files = append(files, remote.ChangedFile{
				Path:   f.GetFilename(),
				Status: status,
				SHA:    f.GetSHA(),
			})
		}

		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return files, nil
}

// Content returns the file's text at the merge commit
func (p *PullRequest) Content(ctx context.Context, file remote.ChangedFile) (string, error) {
	sha, err := p.resolveMergeCommit(ctx)
	if err != nil {
		return "", err
	}

	key := file.SHA
	if key == "" {
		key = sha + ":" + file.Path
	}
	if content, ok := p.blobs.Get(key); ok {
		zerolog.Ctx(ctx).Debug().Str("path", file.Path).Msg("blob cache hit")
		return content, nil
	}

	fileContent, _, resp, err := p.client.GetContents(ctx, p.owner, p.repo, file.Path, &github.RepositoryContentGetOptions{Ref: sha})
	if err != nil {
		if resp != nil && resp.StatusCode == 404 {
			return "", errors.Errorf("file %s not found at %s: %w", file.Path, sha, err)
		}
		return "", wrapAPIError(ctx, "getting file contents", err)
	}
	if fileContent == nil {
		return "", errors.Errorf("path %s is a directory", file.Path)
	}

	content, err := fileContent.GetContent()
	if err != nil {
		return "", errors.Errorf("decoding %s: %w", file.Path, err)
	}

	p.blobs.Add(key, content)
	return content, nil
}

// resolveMergeCommit checks the pull request is merged and remembers its merge commit
func (p *PullRequest) resolveMergeCommit(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.mergeSHA != "" {
		return p.mergeSHA, nil
	}

	if err := ctx.Err(); err != nil {
		return "", errors.Errorf("context error: %w", err)
	}

	merged, _, err := p.client.IsMerged(ctx, p.owner, p.repo, p.number)
	if err != nil {
		return "", wrapAPIError(ctx, "checking merge status", err)
	}
	if !merged {
		return "", errors.Errorf("%s: %w", p.Name(), ErrNotMerged)
	}

	pr, _, err := p.client.GetPullRequest(ctx, p.owner, p.repo, p.number)
	if err != nil {
		return "", wrapAPIError(ctx, "getting pull request", err)
	}
	if pr.GetMergeCommitSHA() == "" {
		return "", errors.Errorf("%s: merged pull request has no merge commit", p.Name())
	}

	p.mergeSHA = pr.GetMergeCommitSHA()
	return p.mergeSHA, nil
}

func wrapAPIError(ctx context.Context, action string, err error) error {
	if ctx.Err() != nil {
		return errors.Errorf("context error: %w", ctx.Err())
	}

	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return errors.Errorf("rate limit exceeded: %w", err)
	}
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return errors.Errorf("rate limit exceeded: %w", err)
	}

	return errors.Errorf("%s from GitHub: %w", action, err)
}
