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
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/exampler/pkg/example"
	"gitlab.com/tozd/go/errors"
)

// 📚 File is a decoded example configuration. Examples keep the order they
// appear in within the document.
type File struct {
	Examples []example.Entry

	location string
}

// Location returns the path the file was loaded from, if any
func (f *File) Location() string {
	return f.location
}

// Format names a supported config syntax
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
)

// record field names, shared by every format
var knownFields = map[string]bool{
	"usage":  true,
	"from":   true,
	"to":     true,
	"in":     true,
	"prefix": true,
	"suffix": true,
}

// LoadConfig loads an example configuration file from the given path.
// The format is determined by the file extension:
// - .json for JSON
// - .yaml or .yml for YAML
// - .hcl for HCL
// - .exampler (or no extension) will try JSON, YAML and HCL in that order
//
// Records are not validated here; missing fields are reported when the
// examples are compiled.
func LoadConfig(ctx context.Context, path string) (*File, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading example configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	var f *File
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		f, err = Parse(FormatJSON, data, path)
	case ".yaml", ".yml":
		f, err = Parse(FormatYAML, data, path)
	case ".hcl":
		f, err = Parse(FormatHCL, data, path)
	case "", ".exampler":
		f, err = parseAny(data, path)
	default:
		return nil, errors.Errorf("unsupported file extension %q", ext)
	}
	if err != nil {
		return nil, err
	}

	f.location = path
	logger.Debug().Str("path", path).Int("examples", len(f.Examples)).Msg("loaded example configuration")

	return f, nil
}

// 📝 Parse decodes config data in the given format. filename is only used in
// diagnostics.
func Parse(format Format, data []byte, filename string) (*File, error) {
	var (
		f   *File
		err error
	)
	switch format {
	case FormatJSON:
		f, err = loadJSON(data)
	case FormatYAML:
		f, err = loadYAML(data)
	case FormatHCL:
		f, err = loadHCL(data, filename)
	default:
		return nil, errors.Errorf("unsupported config format %q", format)
	}
	if err != nil {
		return nil, err
	}

	if err := checkDuplicateIDs(f); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}
	return f, nil
}

func parseAny(data []byte, filename string) (*File, error) {
	var errs []error
	for _, format := range []Format{FormatJSON, FormatYAML, FormatHCL} {
		f, err := Parse(format, data, filename)
		if err == nil {
			return f, nil
		}
		errs = append(errs, err)
	}
	return nil, errors.Errorf("failed to parse %s as JSON, YAML or HCL: %w", filename, errors.Join(errs...))
}

func checkDuplicateIDs(f *File) error {
	seen := map[string]bool{}
	for _, e := range f.Examples {
		if seen[e.ID] {
			return errors.Errorf("example %q is defined more than once", e.ID)
		}
		seen[e.ID] = true
	}
	return nil
}
