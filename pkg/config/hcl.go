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
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/walteh/exampler/pkg/example"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

// every attribute is optional at the HCL level; required fields are enforced
// by the example compiler so every format reports them the same way
type hclExample struct {
	ID     string `hcl:"id,label"`
	Usage  string `hcl:"usage,optional"`
	From   string `hcl:"from,optional"`
	To     string `hcl:"to,optional"`
	In     string `hcl:"in,optional"`
	Prefix string `hcl:"prefix,optional"`
	Suffix string `hcl:"suffix,optional"`
}

type hclConfig struct {
	Examples []hclExample `hcl:"example,block"`
}

// loadHCL loads a configuration made of `example "<id>" { ... }` blocks
func loadHCL(data []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	evalCtx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	var cfg hclConfig
	diags = gohcl.DecodeBody(hclFile.Body, evalCtx, &cfg)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	f := &File{}
	for _, b := range cfg.Examples {
		f.Examples = append(f.Examples, example.Entry{
			ID: b.ID,
			Record: example.Record{
				Usage:  b.Usage,
				From:   b.From,
				To:     b.To,
				In:     b.In,
				Prefix: b.Prefix,
				Suffix: b.Suffix,
			},
		})
	}

	return f, nil
}
