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

package example

import (
	"github.com/walteh/exampler/pkg/text"
)

// 📏 Span is the half-open byte range [From, To) a snippet was cut from
type Span struct {
	From int
	To   int
}

// 🔍 Locate runs the from finder and then the to finder against source.
func (e *Example) Locate(source string) (Span, error) {
	from := e.from(source)
	if from < 0 || from > len(source) {
		return Span{}, e.fail(SideStart, -1, -1, ErrBoundaryNotFound)
	}

	to := e.to(from, source)
	if to < 0 || to > len(source) {
		return Span{}, e.fail(SideEnd, from, -1, ErrBoundaryNotFound)
	}

	if to <= from {
		return Span{}, e.fail(SideEnd, from, to, ErrEmptyRange)
	}

	return Span{From: from, To: to}, nil
}

// ✂️ Extract cuts the snippet out of source, unindents it and wraps it with the
// example's prefix and suffix.
func (e *Example) Extract(source string) (string, error) {
	span, err := e.Locate(source)
	if err != nil {
		return "", err
	}
	return text.Wrap(e.prefix, text.Unindent(source[span.From:span.To]), e.suffix), nil
}

func (e *Example) fail(side Side, from, to int, err error) error {
	return &ExtractError{
		ExampleID: e.id,
		Target:    e.target,
		Side:      side,
		From:      from,
		To:        to,
		Err:       err,
	}
}
