package opts

import (
	"context"

	"github.com/walteh/exampler/pkg/config"
	"github.com/walteh/exampler/pkg/directive"
	"github.com/walteh/exampler/pkg/example"
	"github.com/walteh/exampler/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	// ConfigFile is the example configuration path
	ConfigFile string
	// Debug enables debug logging
	Debug bool
	// StrictDuplicates rejects examples that target an already claimed file
	StrictDuplicates bool

	UserLogger *log.Logger
}

// Compiled is the result of loading and compiling the example configuration
type Compiled struct {
	File     *config.File
	Examples *example.Registry
	Errors   []*example.BuildError
}

// LoadExamples loads ConfigFile and compiles every example in it. Examples that
// fail to compile are reported in Compiled.Errors and left out of the registry.
func (o *RootOpts) LoadExamples(ctx context.Context) (*Compiled, error) {
	file, err := config.LoadConfig(ctx, o.ConfigFile)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	policy := example.DuplicateReplace
	if o.StrictDuplicates {
		policy = example.DuplicateReject
	}

	examples, buildErrs := example.Build(ctx, directive.NewRegistry(), file.Examples, example.WithDuplicatePolicy(policy))

	return &Compiled{
		File:     file,
		Examples: examples,
		Errors:   buildErrs,
	}, nil
}
