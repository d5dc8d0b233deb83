package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnindent(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "spaces",
			input: "    func() {\n        return\n    }",
			want:  "func() {\n    return\n}",
		},
		{
			name:  "tabs",
			input: "\tif x {\n\t\ty()\n\t}\n",
			want:  "if x {\n\ty()\n}\n",
		},
		{
			name:  "no_indent",
			input: "class A {\n    int x;\n}",
			want:  "class A {\n    int x;\n}",
		},
		{
			name:  "less_indented_line_untouched",
			input: "    a\n  b\n    c",
			want:  "a\n  b\nc",
		},
		{
			name:  "different_whitespace_mix_untouched",
			input: "    a\n\t\tb\n    c",
			want:  "a\n\t\tb\nc",
		},
		{
			name:  "only_first_occurrence_removed",
			input: "  a\n    b",
			want:  "a\n  b",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace_only_first_line",
			input: "   \n   x",
			want:  "\nx",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Unindent(tt.input))
		})
	}
}

func TestUnindent_Idempotent(t *testing.T) {
	inputs := []string{
		"    a\n      b\n    c\n",
		"\t\tx\n\t\t\ty\n\tz",
		"  \n    deeper\n  ",
		"flat\n  indented\n",
		"",
	}

	for _, in := range inputs {
		once := Unindent(in)
		assert.Equal(t, once, Unindent(once), "unindent should be idempotent for %q", in)
	}
}

func TestWrap(t *testing.T) {
	assert.Equal(t, "```go\nx := 1\n```", Wrap("```go\n", "x := 1\n", "```"))
	assert.Equal(t, "body", Wrap("", "body", ""))
}
