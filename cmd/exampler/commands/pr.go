package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/exampler/cmd/exampler/opts"
	"github.com/walteh/exampler/pkg/operation"
	"github.com/walteh/exampler/pkg/remote/github"
	"gitlab.com/tozd/go/errors"
)

// NewPRCmd creates a new pr command
func NewPRCmd(opts *opts.RootOpts) *cobra.Command {
	var (
		owner       string
		repo        string
		number      int
		include     []string
		concurrency int
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "pr",
		Short: "Extract snippets from a merged pull request",
		Long: `PR extracts a snippet from every file of a merged GitHub pull request
that has an example registered for its name.
It will:
1. Check the pull request is merged
2. List the changed files at the merge commit
3. Extract snippets from files with a registered example
4. Print each snippet, or one JSON object per file with --json

GITHUB_TOKEN is read from the environment or a .env file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "pr").Logger().WithContext(cmd.Context())

			compiled, err := opts.LoadExamples(ctx)
			if err != nil {
				return err
			}
			warnBuildErrors(ctx, opts, compiled.Errors, asJSON)

			source, err := github.NewPullRequest(owner, repo, number)
			if err != nil {
				return errors.Errorf("creating pull request source: %w", err)
			}

			report, err := operation.Run(ctx, operation.Options{
				Examples:    compiled.Examples,
				Source:      source,
				Concurrency: concurrency,
				Include:     include,
			})
			if err != nil {
				return errors.Errorf("extracting from %s: %w", source.Name(), err)
			}

			return printReport(ctx, opts, cmd.OutOrStdout(), report, asJSON)
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "repository owner")
	cmd.Flags().StringVar(&repo, "repo", "", "repository name")
	cmd.Flags().IntVar(&number, "number", 0, "pull request number")
	cmd.Flags().StringSliceVar(&include, "include", nil, "only consider files matching these globs")
	cmd.Flags().IntVar(&concurrency, "concurrency", operation.DefaultConcurrency, "files fetched at once")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print one JSON object per file")
	_ = cmd.MarkFlagRequired("owner")
	_ = cmd.MarkFlagRequired("repo")
	_ = cmd.MarkFlagRequired("number")

	return cmd
}
