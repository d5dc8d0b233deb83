package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/exampler/cmd/exampler/opts"
	"gitlab.com/tozd/go/errors"
)

// NewCheckCmd creates a new check command
func NewCheckCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the example configuration",
		Long: `Check loads the example configuration and compiles every example.
It will:
1. Load the config file
2. Compile each example's from and to directives
3. Report every example that failed to compile`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			compiled, err := opts.LoadExamples(ctx)
			if err != nil {
				return err
			}

			opts.UserLogger.Header("checking " + compiled.File.Location())
			for _, ex := range compiled.Examples.Examples() {
				opts.UserLogger.Infof("%s → %s", ex.ID(), ex.Target())
			}
			for _, berr := range compiled.Errors {
				opts.UserLogger.Error(berr.Error())
			}

			if len(compiled.Errors) > 0 {
				return errors.Errorf("%d of %d examples failed to compile", len(compiled.Errors), len(compiled.File.Examples))
			}

			opts.UserLogger.Successf("%d examples compiled", compiled.Examples.Len())
			return nil
		},
	}

	return cmd
}
