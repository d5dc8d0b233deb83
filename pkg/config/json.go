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

package config

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/walteh/exampler/pkg/example"
	"gitlab.com/tozd/go/errors"
)

type jsonRecord struct {
	Usage  string `json:"usage"`
	From   string `json:"from"`
	To     string `json:"to"`
	In     string `json:"in"`
	Prefix string `json:"prefix,omitempty"`
	Suffix string `json:"suffix,omitempty"`
}

// loadJSON decodes an object of example id to record. The object is walked
// token by token so entries keep their document order.
func loadJSON(data []byte) (*File, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	if err := expectDelim(decoder, '{'); err != nil {
		return nil, errors.Errorf("parsing JSON: %w", err)
	}

	f := &File{}
	for decoder.More() {
		tok, err := decoder.Token()
		if err != nil {
			return nil, errors.Errorf("parsing JSON: %w", err)
		}
		id, ok := tok.(string)
		if !ok {
			return nil, errors.Errorf("parsing JSON: unexpected token %v", tok)
		}

		var rec jsonRecord
		if err := decoder.Decode(&rec); err != nil {
			return nil, errors.Errorf("parsing JSON example %q: %w", id, err)
		}
		f.Examples = append(f.Examples, example.Entry{ID: id, Record: example.Record(rec)})
	}

	if err := expectDelim(decoder, '}'); err != nil {
		return nil, errors.Errorf("parsing JSON: %w", err)
	}
	if _, err := decoder.Token(); err != io.EOF {
		return nil, errors.Errorf("parsing JSON: unexpected data after top-level object")
	}

	return f, nil
}

func expectDelim(decoder *json.Decoder, want json.Delim) error {
	tok, err := decoder.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return errors.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}
