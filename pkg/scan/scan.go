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

// Package scan holds the offset-level text primitives that boundary finders are
// built from. Every function works on raw bytes of the text and returns -1 when
// it cannot find what it was asked for.
package scan

import "strings"

// NotFound is returned by every primitive when no match exists.
const NotFound = -1

// 🎯 FindBalancedEnd returns the offset just past the close token that balances
// the first open token at or after start.
//
// Opens found between the last counted open and the next candidate close raise
// the depth; every close lowers it by one. Open and close are treated as
// distinct literal strings, so only one delimiter pair is tracked at a time.
func FindBalancedEnd(start int, open, close, text string) int {
	if start < 0 || start > len(text) || open == "" || close == "" {
		return NotFound
	}

	first := strings.Index(text[start:], open)
	if first < 0 {
		return NotFound
	}
	first += start

	depth := 1
	openCursor := first + len(open)
	closeCursor := openCursor

	for {
		next := strings.Index(text[closeCursor:], close)
		if next < 0 {
			return NotFound
		}
		next += closeCursor

		// count nested opens sitting before this close
		for openCursor < next {
			o := strings.Index(text[openCursor:next], open)
			if o < 0 {
				break
			}
			depth++
			openCursor += o + len(open)
		}

		depth--
		closeCursor = next + len(close)
		if depth == 0 {
			return closeCursor
		}
		if openCursor < closeCursor {
			openCursor = closeCursor
		}
	}
}

// 🔍 FindBlankLineBefore walks upward from the line containing index and
// returns the start of the first line after a boundary. A boundary is either a
// whitespace-only line or a line that ends in an opening brace.
//
// It returns 0 when the walk reaches the top of the text without meeting a
// boundary, and NotFound when index already sits on the first line.
func FindBlankLineBefore(index int, text string) int {
	if index < 0 || index > len(text) {
		return NotFound
	}

	lineStart := strings.LastIndexByte(text[:index], '\n') + 1
	if lineStart == 0 {
		return NotFound
	}

	for lineStart > 0 {
		prevEnd := lineStart - 1 // the newline closing the previous line
		prevStart := strings.LastIndexByte(text[:prevEnd], '\n') + 1
		prev := text[prevStart:prevEnd]

		if isBlank(prev) || opensScope(prev) {
			return lineStart
		}
		lineStart = prevStart
	}

	return 0
}

// 🔢 FindNthForward returns the offset of the n-th (1-indexed) occurrence of
// token at or after start.
func FindNthForward(text, token string, n, start int) int {
	if n <= 0 || token == "" || start < 0 || start > len(text) {
		return NotFound
	}

	pos := start
	for {
		i := strings.Index(text[pos:], token)
		if i < 0 {
			return NotFound
		}
		pos += i
		n--
		if n == 0 {
			return pos
		}
		pos++
	}
}

// 🔢 FindNthBackward returns the offset of the n-th (1-indexed) occurrence of
// token counting from the end of text.
func FindNthBackward(text, token string, n int) int {
	if n <= 0 || token == "" {
		return NotFound
	}

	// end bounds the window searched; occurrences may overlap, so shrinking by
	// one byte past the last hit keeps parity with FindNthForward.
	end := len(text)
	for {
		i := strings.LastIndex(text[:end], token)
		if i < 0 {
			return NotFound
		}
		n--
		if n == 0 {
			return i
		}
		end = i + len(token) - 1
	}
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func opensScope(line string) bool {
	return strings.HasSuffix(strings.TrimRight(line, " \t\r"), "{")
}
