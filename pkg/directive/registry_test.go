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

package directive

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

const javaSource = `public class Example {
    public int zero() {
        return 0;
    }
}`

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		wantKeyword string
		wantArgs    []string
		wantErr     error
	}{
		{name: "keyword_only", raw: "start", wantKeyword: "start", wantArgs: []string{}},
		{name: "keyword_and_args", raw: "first 2 demoFunction", wantKeyword: "first", wantArgs: []string{"2", "demoFunction"}},
		{name: "mixed_case_keyword", raw: "GrOuP Example", wantKeyword: "group", wantArgs: []string{"Example"}},
		{name: "extra_whitespace", raw: "  last \t 1   }  ", wantKeyword: "last", wantArgs: []string{"1", "}"}},
		{name: "empty", raw: "", wantErr: ErrEmptyDirective},
		{name: "blank", raw: "   ", wantErr: ErrEmptyDirective},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Parse(tt.raw)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "error should match %v", tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKeyword, d.Keyword)
			assert.Equal(t, tt.wantArgs, d.Args)
			assert.Equal(t, tt.raw, d.Raw)
		})
	}
}

func TestRegistry_Lookup(t *testing.T) {
	reg := NewRegistry()

	assert.Equal(t, []string{"first", "group", "last", "start"}, reg.Keywords())

	tests := []struct {
		keyword string
		kind    Kind
		arities []int
	}{
		{keyword: "start", kind: KindStart, arities: []int{0}},
		{keyword: "GROUP", kind: KindGroup, arities: []int{1}},
		{keyword: "First", kind: KindFirst, arities: []int{2, 1}},
		{keyword: "last", kind: KindLast, arities: []int{2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			m, ok := reg.Lookup(tt.keyword)
			require.True(t, ok, "keyword should resolve")
			assert.Equal(t, tt.kind, m.Kind())
			assert.Equal(t, strings.ToLower(tt.keyword), m.Keyword())
			assert.Equal(t, tt.arities, m.Arities())
		})
	}

	_, ok := reg.Lookup("between")
	assert.False(t, ok, "unregistered keyword should not resolve")
}

func TestMatcher_AritiesIsCopy(t *testing.T) {
	m, ok := NewRegistry().Lookup("first")
	require.True(t, ok)

	a := m.Arities()
	a[0] = 99
	assert.Equal(t, []int{2, 1}, m.Arities(), "matcher definition should not change")
}

func TestCompileFrom(t *testing.T) {
	reg := NewRegistry()
	text := "a demoFunction b demoFunction c }"

	tests := []struct {
		name      string
		directive string
		text      string
		want      int
	}{
		{name: "start", directive: "start", text: text, want: 0},
		{name: "start_ignores_args", directive: "start whatever", text: text, want: 0},
		{name: "first_default_rank", directive: "first demoFunction", text: text, want: 2},
		{name: "first_with_rank", directive: "first 2 demoFunction", text: text, want: 17},
		{name: "first_missing", directive: "first 3 demoFunction", text: text, want: -1},
		{name: "last_default_rank", directive: "last demoFunction", text: text, want: 17},
		{name: "last_with_rank", directive: "LAST 2 demoFunction", text: text, want: 2},
		{name: "non_numeric_rank_falls_back", directive: "first b demoFunction", text: text, want: 15},
		{name: "group_first_line", directive: "group Example", text: javaSource, want: 0},
		{name: "group_nested", directive: "group zero", text: javaSource, want: strings.Index(javaSource, "    public int zero")},
		{name: "group_missing", directive: "group Nope", text: javaSource, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := reg.CompileFrom(tt.directive)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f(tt.text))
		})
	}
}

func TestCompileTo(t *testing.T) {
	reg := NewRegistry()
	text := "x } y } z }"

	tests := []struct {
		name      string
		directive string
		from      int
		text      string
		want      int
	}{
		{name: "start", directive: "start", from: 5, text: text, want: 0},
		{name: "first_after_from", directive: "first }", from: 2, text: text, want: 6},
		{name: "first_skips_token_at_from", directive: "first }", from: 6, text: text, want: 10},
		{name: "first_second_after_from", directive: "first 2 }", from: 0, text: text, want: 6},
		{name: "last_ignores_from", directive: "last }", from: 10, text: text, want: 10},
		{name: "last_second", directive: "last 2 }", from: 10, text: text, want: 6},
		{name: "group_end", directive: "group Example", from: 0, text: javaSource, want: len(javaSource)},
		{name: "group_nested_end", directive: "group zero", from: 0, text: javaSource, want: strings.Index(javaSource, "    }\n}") + len("    }")},
		{name: "group_missing", directive: "group Nope", from: 0, text: javaSource, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := reg.CompileTo(tt.directive)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f(tt.from, tt.text))
		})
	}
}

func TestCompile_Errors(t *testing.T) {
	reg := NewRegistry()

	tests := []struct {
		name         string
		directive    string
		wantErr      error
		wantAttempts int
		errContains  string
	}{
		{
			name:        "unknown_keyword",
			directive:   "between a b",
			wantErr:     ErrUnknownKeyword,
			errContains: "options: first, group, last, start",
		},
		{
			name:      "empty",
			directive: "",
			wantErr:   ErrEmptyDirective,
		},
		{
			name:         "group_without_name",
			directive:    "group",
			wantErr:      ErrArityMismatch,
			wantAttempts: 1,
			errContains:  "want 1 arguments, got 0",
		},
		{
			name:         "first_without_token",
			directive:    "first",
			wantErr:      ErrArityMismatch,
			wantAttempts: 2,
			errContains:  "arity 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, fromErr := reg.CompileFrom(tt.directive)
			_, toErr := reg.CompileTo(tt.directive)

			for _, err := range []error{fromErr, toErr} {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "error should match %v: %v", tt.wantErr, err)

				var cerr *CompileError
				require.True(t, errors.As(err, &cerr), "error should be a *CompileError")
				assert.Equal(t, tt.directive, cerr.Directive)
				assert.Len(t, cerr.Attempts, tt.wantAttempts)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
			}
		})
	}
}

func TestCompile_InvalidArgumentReported(t *testing.T) {
	// a rank-only matcher has no fallback arity, so a bad rank is final
	reg := &Registry{matchers: map[string]*Matcher{
		"nth": {
			kind:    KindFirst,
			arities: []int{2},
			buildFrom: func(args []string) (FromFinder, error) {
				_, _, err := rankAndToken(args)
				return func(string) int { return 0 }, err
			},
		},
	}}

	_, err := reg.CompileFrom("nth x y")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument), "error should report the invalid rank")
	assert.False(t, errors.Is(err, ErrArityMismatch))

	var cerr *CompileError
	require.True(t, errors.As(err, &cerr))
	require.Len(t, cerr.Attempts, 1)
	assert.Equal(t, 2, cerr.Attempts[0].Arity)
	assert.Contains(t, cerr.Attempts[0].Err.Error(), `rank "x" is not an integer`)
}

func TestCompile_LoneNumberIsAToken(t *testing.T) {
	reg := NewRegistry()

	// arity 2 needs two tokens, so arity 1 searches for the literal "1"
	f, err := reg.CompileFrom("first 1")
	require.NoError(t, err)
	assert.Equal(t, 3, f("abc1"))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "start", KindStart.String())
	assert.Equal(t, "group", KindGroup.String())
	assert.Equal(t, "first", KindFirst.String())
	assert.Equal(t, "last", KindLast.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
