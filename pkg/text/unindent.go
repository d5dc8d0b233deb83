package text

import "strings"

// Unindent removes the first line's leading indentation from every line that
// starts with it.
//
// The reference indent is the run of spaces and tabs that opens the first
// line. Only that exact literal prefix is removed, so a line indented with a
// different whitespace mix, or with less whitespace, is left as it is.
func Unindent(s string) string {
	if s == "" {
		return s
	}

	first := s
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		first = s[:i]
	}
	indent := first[:len(first)-len(strings.TrimLeft(first, " \t"))]
	if indent == "" {
		return s
	}

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, indent)
	}
	return strings.Join(lines, "\n")
}

// Wrap surrounds body with prefix and suffix.
func Wrap(prefix, body, suffix string) string {
	var b strings.Builder
	b.Grow(len(prefix) + len(body) + len(suffix))
	b.WriteString(prefix)
	b.WriteString(body)
	b.WriteString(suffix)
	return b.String()
}
