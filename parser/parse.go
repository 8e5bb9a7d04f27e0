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

// Package parser implements a Lumen lexer and parser.
//
// Parsing is total: any input, including empty or garbage input, produces a
// complete [ast.File]. The parser never fails and, beyond the lexer, never
// diagnoses anything; malformed input is recorded in the tree as missing
// tokens and [ast.Unexpected] buckets, which the legalize package turns
// into diagnostics.
package parser

import (
	"github.com/lumenlang/lumencompile/ast"
	"github.com/lumenlang/lumencompile/internal/taxa"
	"github.com/lumenlang/lumencompile/report"
	"github.com/lumenlang/lumencompile/token"
)

// Parse lexes and parses file, appending any lexer diagnostics to errs.
func Parse(file *report.File, errs *report.Report) *ast.File {
	stream := token.NewStream(file)
	Lex(stream, errs)

	p := &parser{Stream: stream, Report: errs}
	c := stream.Cursor()

	var decls []ast.Decl
	var mark token.CursorMark
	for !c.Done() {
		if !ensureProgress(c, &mark) {
			break
		}
		if decl := parseDecl(p, c, taxa.TopLevel); decl != nil {
			decls = append(decls, decl)
		}
	}

	// Only a tripped progress guard leaves tokens here; drain them so the
	// cursor rests on the EOF token.
	for !c.Done() {
		c.Next()
	}

	return ast.NewFile(ast.FileArgs{
		Stream: stream,
		Decls:  decls,
		EOF:    c.Next(),
	})
}
