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

package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/exampler/cmd/exampler/commands"
	"github.com/walteh/exampler/cmd/exampler/opts"
	"github.com/walteh/exampler/pkg/log"
)

func newRootCmd(o *opts.RootOpts) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "exampler",
		Short: "Extract documentation snippets from source files",
		Long: `exampler pulls code snippets out of source files using small boundary
directives such as "group Example" or "first 2 demoFunction". Each example in
the config names a file and where its snippet starts and ends.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger := setupLogging(o.Debug)

			level := zerolog.Disabled
			if o.Debug {
				level = zerolog.DebugLevel
			}
			o.UserLogger = log.New(cmd.OutOrStdout(), level)

			ctx := logger.WithContext(cmd.Context())
			cmd.SetContext(log.NewContext(ctx, o.UserLogger))
		},
	}

	addRootFlags(rootCmd, o)

	rootCmd.AddCommand(
		commands.NewCheckCmd(o),
		commands.NewPRCmd(o),
		commands.NewLocalCmd(o),
		commands.NewWatchCmd(o),
		newVersionCmd(),
	)

	return rootCmd
}

// run executes the command line and returns the process exit code. The final
// error always goes to stderr so stdout stays machine readable.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(&opts.RootOpts{})
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.New(stderr, zerolog.Disabled).Error(err.Error())
		return 1
	}
	return 0
}

func main() {
	// a missing .env is fine, GITHUB_TOKEN may come from the environment
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	os.Exit(code)
}
