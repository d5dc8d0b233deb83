package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/exampler/cmd/exampler/opts"
	"github.com/walteh/exampler/pkg/operation"
	"github.com/walteh/exampler/pkg/remote/local"
	"gitlab.com/tozd/go/errors"
)

// NewLocalCmd creates a new local command
func NewLocalCmd(opts *opts.RootOpts) *cobra.Command {
	var (
		root    string
		include []string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "local [files...]",
		Short: "Extract snippets from files on disk",
		Long: `Local extracts snippets from files under a directory. With no file
arguments every file under the root is considered; otherwise only the given
paths, relative to the root, are read.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "local").Logger().WithContext(cmd.Context())

			compiled, err := opts.LoadExamples(ctx)
			if err != nil {
				return err
			}
			warnBuildErrors(ctx, opts, compiled.Errors, asJSON)

			var source *local.Source
			if len(args) > 0 {
				source = local.NewFromFiles(root, args...)
			} else {
				source = local.New(root)
			}

			report, err := operation.Run(ctx, operation.Options{
				Examples: compiled.Examples,
				Source:   source,
				Include:  include,
			})
			if err != nil {
				return errors.Errorf("extracting from %s: %w", source.Name(), err)
			}

			return printReport(ctx, opts, cmd.OutOrStdout(), report, asJSON)
		},
	}

	cmd.Flags().StringVar(&root, "root", ".", "directory to read files from")
	cmd.Flags().StringSliceVar(&include, "include", nil, "only consider files matching these globs")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print one JSON object per file")

	return cmd
}
