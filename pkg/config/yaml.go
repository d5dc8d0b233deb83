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

	"github.com/walteh/exampler/pkg/example"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

type yamlRecord struct {
	Usage  string `yaml:"usage"`
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	In     string `yaml:"in"`
	Prefix string `yaml:"prefix,omitempty"`
	Suffix string `yaml:"suffix,omitempty"`
}

// loadYAML decodes a mapping of example id to record through yaml.Node, which
// keeps mapping keys in document order.
func loadYAML(data []byte) (*File, error) {
	var doc yaml.Node
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&doc); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) != 1 {
		return nil, errors.Errorf("parsing YAML: expected a single document")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errors.Errorf("parsing YAML: line %d: expected a mapping of example ids", root.Line)
	}

	f := &File{}
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if value.Kind != yaml.MappingNode {
			return nil, errors.Errorf("parsing YAML example %q: line %d: expected a mapping", key.Value, value.Line)
		}

		// Node.Decode has no KnownFields switch, so unknown keys are checked here
		for j := 0; j+1 < len(value.Content); j += 2 {
			field := value.Content[j]
			if !knownFields[field.Value] {
				return nil, errors.Errorf("parsing YAML example %q: line %d: field %s not found in type config.yamlRecord", key.Value, field.Line, field.Value)
			}
		}

		var rec yamlRecord
		if err := value.Decode(&rec); err != nil {
			return nil, errors.Errorf("parsing YAML example %q: %w", key.Value, err)
		}
		f.Examples = append(f.Examples, example.Entry{ID: key.Value, Record: example.Record(rec)})
	}

	return f, nil
}
