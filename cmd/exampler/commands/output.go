package commands

import (
	"context"
	"encoding/json"
	"io"

	"github.com/rs/zerolog"
	"github.com/walteh/exampler/cmd/exampler/opts"
	"github.com/walteh/exampler/pkg/example"
	"github.com/walteh/exampler/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// resultLine is the --json form of a single result
type resultLine struct {
	Path    string `json:"path"`
	Status  string `json:"status,omitempty"`
	Example string `json:"example,omitempty"`
	Usage   string `json:"usage,omitempty"`
	Outcome string `json:"outcome"`
	Snippet string `json:"snippet,omitempty"`
	Error   string `json:"error,omitempty"`
}

func newResultLine(res operation.Result) resultLine {
	line := resultLine{
		Path:    res.File.Path,
		Status:  string(res.File.Status),
		Example: res.ExampleID,
		Usage:   res.Usage,
		Outcome: string(res.Outcome()),
		Snippet: res.Snippet,
	}
	if res.Err != nil {
		line.Error = res.Err.Error()
	}
	return line
}

// writeJSON writes one JSON object per result
func writeJSON(w io.Writer, report *operation.Report) error {
	enc := json.NewEncoder(w)
	for _, res := range report.Results {
		if err := enc.Encode(newResultLine(res)); err != nil {
			return errors.Errorf("encoding result for %s: %w", res.File.Path, err)
		}
	}
	return nil
}

// printResult prints one result to the console, with its snippet when there is one
func printResult(ctx context.Context, o *opts.RootOpts, res operation.Result) {
	o.UserLogger.LogResult(ctx, res)
	switch res.Outcome() {
	case operation.OutcomeExtracted:
		o.UserLogger.Snippet(res)
	case operation.OutcomeFailed:
		o.UserLogger.Error(res.Err.Error())
	}
}

// printReport writes the report in the requested format and fails when any file failed
func printReport(ctx context.Context, o *opts.RootOpts, w io.Writer, report *operation.Report, asJSON bool) error {
	if asJSON {
		if err := writeJSON(w, report); err != nil {
			return err
		}
	} else {
		o.UserLogger.StartSource(ctx, report.Source)
		for _, res := range report.Results {
			printResult(ctx, o, res)
		}
		o.UserLogger.EndSource(ctx, report)
	}

	if report.HasFailures() {
		return errors.Errorf("%d of %d files failed", report.Failed, len(report.Results))
	}
	return nil
}

// warnBuildErrors reports examples that were left out of the registry. JSON
// output keeps stdout clean, so warnings go to the structured log instead.
func warnBuildErrors(ctx context.Context, o *opts.RootOpts, errs []*example.BuildError, asJSON bool) {
	for _, err := range errs {
		if asJSON {
			zerolog.Ctx(ctx).Warn().Str("example", err.ExampleID).Err(err.Err).Msg("skipping example")
			continue
		}
		o.UserLogger.Warning(err.Error())
	}
}
