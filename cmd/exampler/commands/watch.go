package commands

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/exampler/cmd/exampler/opts"
	"github.com/walteh/exampler/pkg/operation"
	"github.com/walteh/exampler/pkg/watch"
	"gitlab.com/tozd/go/errors"
)

// NewWatchCmd creates a new watch command
func NewWatchCmd(opts *opts.RootOpts) *cobra.Command {
	var (
		root     string
		debounce time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-extract snippets as files change",
		Long: `Watch follows a directory and prints a fresh snippet whenever a file
with a registered example is written. It runs until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "watch").Logger().WithContext(cmd.Context())

			compiled, err := opts.LoadExamples(ctx)
			if err != nil {
				return err
			}
			warnBuildErrors(ctx, opts, compiled.Errors, false)

			w, err := watch.New(watch.Options{
				Root:     root,
				Examples: compiled.Examples,
				Debounce: debounce,
				OnResult: func(res operation.Result) {
					printResult(ctx, opts, res)
				},
			})
			if err != nil {
				return errors.Errorf("creating watcher: %w", err)
			}

			opts.UserLogger.Header("watching " + root)
			if err := w.Run(ctx); err != nil {
				return errors.Errorf("watching %s: %w", root, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", ".", "directory to watch")
	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "wait for writes to settle before extracting")

	return cmd
}
