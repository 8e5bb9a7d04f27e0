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

package parser_test

import (
	"testing"

	"github.com/lumenlang/lumencompile/internal/corpora"
	"github.com/lumenlang/lumencompile/legalize"
	"github.com/lumenlang/lumencompile/parser"
	"github.com/lumenlang/lumencompile/report"
)

// TestCorpus runs the end-to-end goldens: each testdata/*.lumen file is
// parsed and legalized, and the rendered diagnostics are compared against
// the .stderr file next to it. Set LUMEN_REFRESH to a glob of test names to
// regenerate goldens in place.
func TestCorpus(t *testing.T) {
	corpora.Corpus{
		Root:      "testdata",
		Refresh:   "LUMEN_REFRESH",
		Extension: "lumen",
		Outputs:   []corpora.Output{{Extension: "stderr"}},
		Test: func(t *testing.T, path, text string) []string {
			var errs report.Report
			file := parser.Parse(report.NewFile(path, text), &errs)
			legalize.Generate(file, &errs)

			stderr := report.Renderer{Style: report.Simple}.RenderString(&errs)
			return []string{stderr}
		},
	}.Run(t)
}
