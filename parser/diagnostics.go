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

package parser

import (
	"github.com/lumenlang/lumencompile/report"
	"github.com/lumenlang/lumencompile/token"
)

// The lexer is the only part of the parser that diagnoses anything itself;
// everything after it expresses problems as tree shapes for the legalizer
// to explain.

// errUnrecognized diagnoses a run of bytes the lexer could not turn into any
// other kind of token.
type errUnrecognized struct {
	Token token.Token
}

// Error implements [error].
func (e errUnrecognized) Error() string {
	return "unrecognized characters"
}

// Diagnose implements [report.Diagnose].
func (e errUnrecognized) Diagnose(d *report.Diagnostic) {
	d.With(report.Snippet(e.Token))
}

// errUnterminatedString diagnoses a string literal that runs into a newline
// or the end of the file before its closing quote.
type errUnterminatedString struct {
	Token token.Token
}

// Error implements [error].
func (e errUnterminatedString) Error() string {
	return "unterminated string literal"
}

// Diagnose implements [report.Diagnose].
func (e errUnterminatedString) Diagnose(d *report.Diagnostic) {
	d.With(
		report.Snippet(e.Token),
		report.Help("string literals do not span multiple lines"),
	)
}
