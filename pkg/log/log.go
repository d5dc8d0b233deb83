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

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/walteh/exampler/pkg/operation"
)

// 🎨 Display configuration
const (
	fileIndent   = 4  // spaces to indent file entries
	pathWidth    = 35 // Base width for file path
	exampleWidth = 20 // Width for example id
	outcomeWidth = 10 // Width for outcome text
)

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
	source  string
	results int
}

// 🏭 New creates a new logger
func New(console io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger().Level(level)
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// 📝 formatResult formats a single file result for display
func (l *Logger) formatResult(res operation.Result) string {
	var symbol rune
	var symbolColor color.Attribute
	switch res.Outcome() {
	case operation.OutcomeExtracted:
		symbol = '✓'
		symbolColor = color.FgGreen
	case operation.OutcomeFailed:
		symbol = '✗'
		symbolColor = color.FgRed
	default:
		symbol = '-'
		symbolColor = color.FgYellow
	}

	exampleID := res.ExampleID
	if exampleID == "" {
		exampleID = "none"
	}

	return fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", pathWidth, res.File.Path),
		color.New(color.FgCyan).Sprint(fmt.Sprintf("%-*s", exampleWidth, exampleID)),
		fmt.Sprintf("%-*s", outcomeWidth, string(res.Outcome())))
}

// 📝 StartSource prints the header for a run against a change source
func (l *Logger) StartSource(ctx context.Context, name string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.source = name
	l.results = 0

	fmt.Fprintf(l.console, "%s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprint(name))

	l.zlog.Info().Str("source", name).Msg("starting extraction")
}

// 📝 LogResult logs the outcome for one file
func (l *Logger) LogResult(ctx context.Context, res operation.Result) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.results++
	fmt.Fprintln(l.console, l.formatResult(res))

	event := l.zlog.Debug()
	if res.Err != nil {
		event = l.zlog.Warn().Err(res.Err)
	}
	event.
		Str("file", res.File.Path).
		Str("status", string(res.File.Status)).
		Str("example", res.ExampleID).
		Str("outcome", string(res.Outcome())).
		Msg("file result")
}

// 📦 Snippet prints an extracted snippet inside a box titled with its example
func (l *Logger) Snippet(res operation.Result) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if res.Usage != "" {
		fmt.Fprintln(l.console, color.New(color.Faint).Sprint(res.Usage))
	}
	box := pterm.DefaultBox.WithTitle(fmt.Sprintf("%s • %s", res.ExampleID, res.File.Path))
	fmt.Fprintln(l.console, box.Sprint(res.Snippet))
}

// 📝 EndSource prints the run summary
func (l *Logger) EndSource(ctx context.Context, report *operation.Report) {
	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.console, "%s %s %s %s\n",
		color.New(color.FgGreen).Sprintf("%d extracted", report.Extracted),
		color.New(color.Faint).Sprint("•"),
		color.New(color.FgRed).Sprintf("%d failed", report.Failed),
		color.New(color.Faint).Sprintf("• %d skipped", report.Skipped))

	l.zlog.Info().
		Str("source", l.source).
		Int("files", l.results).
		Int("extracted", report.Extracted).
		Int("failed", report.Failed).
		Int("skipped", report.Skipped).
		Msg("extraction complete")

	l.source = ""
	l.results = 0
}

// 📝 LogNewline logs a newline
func (l *Logger) LogNewline() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console)
}

// 📝 Header logs a header
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	name := color.New(color.Bold, color.FgCyan).Sprint("exampler")
	fmt.Fprintf(l.console, "\n%s %s\n\n", name, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Success logs a success message
func (l *Logger) Success(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "✅ %s\n", color.New(color.FgGreen).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

// 📝 Warning logs a warning message
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error logs an error message
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Info logs an info message
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "ℹ️  %s\n", color.New(color.FgCyan).Sprint(msg))
	l.zlog.Info().Msg(msg)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

func (l *Logger) Successf(format string, args ...interface{}) {
	l.Success(fmt.Sprintf(format, args...))
}
