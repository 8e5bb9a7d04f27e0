// Copyright 2023-2026 The Lumen Language Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// enum is a helper for generating boilerplate related to Go enums: the
// names table, String, and an optional spelling-lookup function.
//
// To generate boilerplate for an enum, add
//
//	//go:generate go run github.com/lumenlang/lumencompile/internal/enum foo.yaml
//
// next to the enum's declaration, where foo.yaml contains an array of the
// Enum type defined in this package. The enum's constants themselves stay
// hand-written; only the string plumbing is generated.
package main

import (
	_ "embed"
	"errors"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

type Enum struct {
	Name   string  `yaml:"name"`   // The name of the enum type.
	Type   string  `yaml:"type"`   // The underlying type.
	Output string  `yaml:"output"` // The file to generate.
	Total  string  `yaml:"total"`  // A "total values" constant, if the enum has one.
	Lookup string  `yaml:"lookup"` // Docs for a Lookup function; empty means don't generate one.
	Values []Value `yaml:"values"`
}

// Signed reports whether the enum's underlying type can go negative, which
// String must guard against.
func (e Enum) Signed() bool {
	return !strings.HasPrefix(e.Type, "u") && e.Type != "byte"
}

// First returns the name of the first value.
func (e Enum) First() string {
	return e.Values[0].Name
}

type Value struct {
	Name       string `yaml:"name"`
	String     string `yaml:"string"`
	SkipLookup bool   `yaml:"skip_lookup"` // Leave this value out of the lookup table.
}

//go:embed enum.go.tmpl
var tmplText string

// makeDocs converts prose into doc comments.
func makeDocs(data string) string {
	var out strings.Builder
	for _, line := range strings.Split(strings.TrimSpace(data), "\n") {
		if line == "" {
			out.WriteString("//\n")
			continue
		}
		out.WriteString("// ")
		out.WriteString(line)
		out.WriteString("\n")
	}
	return out.String()
}

func Main(config string) error {
	if filepath.Ext(config) != ".yaml" {
		return errors.New("file argument must end in .yaml")
	}

	var input struct {
		Binary, Package, Config string
		Enums                   []Enum
	}
	input.Binary = "github.com/lumenlang/lumencompile/internal/enum"
	input.Package = os.Getenv("GOPACKAGE")
	input.Config = config

	text, err := os.ReadFile(config)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(text, &input.Enums); err != nil {
		return err
	}

	tmpl, err := template.New("enum.go.tmpl").Funcs(template.FuncMap{
		"makeDocs": makeDocs,
	}).Parse(tmplText)
	if err != nil {
		return err
	}

	// One output file per enum; enums naming the same output append to it.
	outputs := make(map[string]*strings.Builder)
	for _, enum := range input.Enums {
		buf, ok := outputs[enum.Output]
		if !ok {
			buf = new(strings.Builder)
			outputs[enum.Output] = buf
			if err := tmpl.ExecuteTemplate(buf, "header", input); err != nil {
				return err
			}
		}
		data := struct {
			Enum
			Package string
		}{enum, input.Package}
		if err := tmpl.ExecuteTemplate(buf, "enum", data); err != nil {
			return err
		}
	}

	for path, buf := range outputs {
		formatted, err := format.Source([]byte(buf.String()))
		if err != nil {
			return fmt.Errorf("%s: generated invalid Go: %w", path, err)
		}
		if err := os.WriteFile(path, formatted, 0o644); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	var failed bool
	for _, config := range os.Args[1:] {
		if err := Main(config); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", config, err)
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}
