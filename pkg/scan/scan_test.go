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

package scan

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindBalancedEnd(t *testing.T) {
	tests := []struct {
		name  string
		start int
		text  string
		want  int
	}{
		{
			name:  "single_pair",
			start: 0,
			text:  "a { b } c",
			want:  7,
		},
		{
			name:  "nested_pairs",
			start: 0,
			text:  "{ { } }",
			want:  7,
		},
		{
			name:  "siblings_inside",
			start: 0,
			text:  "x {a{}b{}c} y {}",
			want:  11,
		},
		{
			name:  "start_skips_earlier_open",
			start: 3,
			text:  "{} {{}} tail",
			want:  7,
		},
		{
			name:  "unbalanced_more_opens",
			start: 0,
			text:  "{ { }",
			want:  NotFound,
		},
		{
			name:  "no_open",
			start: 0,
			text:  "no braces here }",
			want:  NotFound,
		},
		{
			name:  "negative_start",
			start: NotFound,
			text:  "{}",
			want:  NotFound,
		},
		{
			name:  "start_past_text",
			start: 10,
			text:  "{}",
			want:  NotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FindBalancedEnd(tt.start, "{", "}", tt.text))
		})
	}
}

func TestFindBalancedEnd_MultiCharTokens(t *testing.T) {
	text := "begin x begin y end z end tail"
	got := FindBalancedEnd(0, "begin", "end", text)
	assert.Equal(t, strings.LastIndex(text, "end")+len("end"), got)
}

func TestFindBalancedEnd_WithinBounds(t *testing.T) {
	texts := []string{
		"{}",
		"{{}}",
		"pre {a{b{c}d}e} post",
		"class A {\n  void f() {\n    if (x) { y(); }\n  }\n}\n",
	}

	for _, text := range texts {
		t.Run(text, func(t *testing.T) {
			open := strings.Index(text, "{")
			got := FindBalancedEnd(0, "{", "}", text)
			require.NotEqual(t, NotFound, got)
			assert.Greater(t, got, open, "end should be past the first open")
			assert.LessOrEqual(t, got, len(text), "end should stay within the text")
			assert.Equal(t, "}", text[got-1:got], "end should sit just past a close")
		})
	}
}

func TestFindBlankLineBefore(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		anchor string
		want   string // text expected to start at the returned offset
		wantNF bool
	}{
		{
			name:   "stops_at_blank_line",
			text:   "package a\n\n// doc\nfunc F() {}\n",
			anchor: "F()",
			want:   "// doc\nfunc F() {}\n",
		},
		{
			name:   "stops_after_open_brace",
			text:   "class A {\n    @Override\n    void foo() {}\n}\n",
			anchor: "foo",
			want:   "    @Override\n    void foo() {}\n}\n",
		},
		{
			name:   "whitespace_only_line_counts_as_blank",
			text:   "one\n   \t\ntwo\nthree\n",
			anchor: "three",
			want:   "two\nthree\n",
		},
		{
			name:   "brace_with_trailing_space",
			text:   "outer {   \n  inner\n",
			anchor: "inner",
			want:   "  inner\n",
		},
		{
			name:   "reaches_top_of_text",
			text:   "alpha\nbeta\ngamma\n",
			anchor: "gamma",
			want:   "alpha\nbeta\ngamma\n",
		},
		{
			name:   "first_line",
			text:   "only line here",
			anchor: "line",
			wantNF: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := strings.Index(tt.text, tt.anchor)
			require.GreaterOrEqual(t, idx, 0)

			got := FindBlankLineBefore(idx, tt.text)
			if tt.wantNF {
				assert.Equal(t, NotFound, got)
				return
			}
			require.GreaterOrEqual(t, got, 0)
			assert.Equal(t, tt.want, tt.text[got:])
		})
	}
}

func TestFindBlankLineBefore_OutOfRange(t *testing.T) {
	assert.Equal(t, NotFound, FindBlankLineBefore(-1, "a\nb"))
	assert.Equal(t, NotFound, FindBlankLineBefore(10, "a\nb"))
}

func TestFindNthForward(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		token string
		n     int
		start int
		want  int
	}{
		{name: "first", text: "x.y.z", token: ".", n: 1, want: 1},
		{name: "second", text: "x.y.z", token: ".", n: 2, want: 3},
		{name: "too_few", text: "x.y.z", token: ".", n: 3, want: NotFound},
		{name: "zero_rank", text: "x.y.z", token: ".", n: 0, want: NotFound},
		{name: "negative_rank", text: "x.y.z", token: ".", n: -1, want: NotFound},
		{name: "from_offset", text: "ab ab ab", token: "ab", n: 1, start: 1, want: 3},
		{name: "at_offset", text: "ab ab ab", token: "ab", n: 1, start: 3, want: 3},
		{name: "overlapping", text: "aaa", token: "aa", n: 2, want: 1},
		{name: "empty_token", text: "abc", token: "", n: 1, want: NotFound},
		{name: "start_past_text", text: "abc", token: "a", n: 1, start: 4, want: NotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FindNthForward(tt.text, tt.token, tt.n, tt.start))
		})
	}
}

func TestFindNthForward_Increasing(t *testing.T) {
	text := "f(); f(); g(); f();"
	prev := FindNthForward(text, "f(", 1, 0)
	require.NotEqual(t, NotFound, prev)

	for n := 2; ; n++ {
		next := FindNthForward(text, "f(", 1, prev+1)
		if next == NotFound {
			assert.Equal(t, NotFound, FindNthForward(text, "f(", n, 0))
			break
		}
		assert.Greater(t, next, prev)
		assert.Equal(t, FindNthForward(text, "f(", n, 0), next)
		prev = next
	}
}

func TestFindNthBackward(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		token string
		n     int
		want  int
	}{
		{name: "last", text: "} } }", token: "}", n: 1, want: 4},
		{name: "second_last", text: "} } }", token: "}", n: 2, want: 2},
		{name: "too_few", text: "} } }", token: "}", n: 4, want: NotFound},
		{name: "zero_rank", text: "} } }", token: "}", n: 0, want: NotFound},
		{name: "overlapping", text: "aaa", token: "aa", n: 2, want: 0},
		{name: "missing", text: "abc", token: "z", n: 1, want: NotFound},
		{name: "empty_token", text: "abc", token: "", n: 1, want: NotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FindNthBackward(tt.text, tt.token, tt.n))
		})
	}
}

func TestForwardBackwardAgree(t *testing.T) {
	tests := []struct {
		text  string
		token string
	}{
		{text: "a.b.c.d", token: "."},
		{text: "aaaa", token: "aa"},
		{text: "return x; return y;", token: "return"},
		{text: "single", token: "single"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			count := 0
			for FindNthForward(tt.text, tt.token, count+1, 0) != NotFound {
				count++
			}
			require.Positive(t, count)

			assert.Equal(t, FindNthBackward(tt.text, tt.token, 1), FindNthForward(tt.text, tt.token, count, 0),
				"last occurrence should match from both ends")
			assert.Equal(t, FindNthForward(tt.text, tt.token, 1, 0), FindNthBackward(tt.text, tt.token, count),
				"first occurrence should match from both ends")
		})
	}
}
