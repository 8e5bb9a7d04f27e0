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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenlang/lumencompile/ast"
	"github.com/lumenlang/lumencompile/parser"
	"github.com/lumenlang/lumencompile/report"
	"github.com/lumenlang/lumencompile/token/keyword"
)

func parse(t *testing.T, text string) (*ast.File, *report.Report) {
	t.Helper()

	var errs report.Report
	file := parser.Parse(report.NewFile("test.lumen", text), &errs)
	require.NotNil(t, file)
	return file, &errs
}

// onlyDecl parses text and requires that it produce exactly one top-level
// declaration of type D.
func onlyDecl[D ast.Decl](t *testing.T, text string) D {
	t.Helper()

	file, errs := parse(t, text)
	assert.False(t, errs.HasErrors(), "the parser itself diagnoses nothing")
	require.Len(t, file.Decls(), 1)

	decl, ok := file.Decls()[0].(D)
	require.True(t, ok, "got %v", file.Decls()[0].Kind())
	return decl
}

func TestParseFunc(t *testing.T) {
	t.Parallel()

	fn := onlyDecl[*ast.DeclFunc](t, "static final func f(a: Int, b: Int) throws -> Int {\n\treturn a\n}\n")

	require.Len(t, fn.Modifiers(), 2)
	assert.Equal(t, keyword.Static, fn.Modifiers()[0].Keyword())
	assert.Equal(t, keyword.Final, fn.Modifiers()[1].Keyword())
	assert.Nil(t, fn.Modifiers()[0].Detail())

	assert.Equal(t, "f", fn.Name().Text())
	require.NotNil(t, fn.Params())
	require.Len(t, fn.Params().Params(), 2)
	assert.Equal(t, "a", fn.Params().Params()[0].Name().Text())
	assert.Equal(t, "b", fn.Params().Params()[1].Name().Text())

	assert.Equal(t, keyword.Throws, fn.Effect().Keyword())
	assert.Equal(t, "->", fn.Arrow().Text())
	assert.Nil(t, fn.ReturnPrefix())
	require.NotNil(t, fn.Return())

	require.NotNil(t, fn.Body())
	require.Len(t, fn.Body().Stmts(), 1)
	ret := fn.Body().Stmts()[0].(*ast.StmtReturn)
	assert.Equal(t, "a", ret.Value().(*ast.ExprPath).Components()[0].Text())
}

func TestParseVar(t *testing.T) {
	t.Parallel()

	decl := onlyDecl[*ast.DeclVar](t, "var x: Int = Point.origin()\n")
	assert.Equal(t, keyword.Var, decl.KeywordToken().Keyword())
	assert.Equal(t, "x", decl.Name().Text())
	assert.Equal(t, ":", decl.Colon().Text())
	assert.Equal(t, "Int", decl.Type().(*ast.TypePath).Components()[0].Text())
	assert.Equal(t, "=", decl.Equals().Text())

	call, ok := decl.Value().(*ast.ExprCall)
	require.True(t, ok)
	assert.Equal(t, "Point.origin", call.Callee().Span().Text())
	assert.Empty(t, call.Args())
}

func TestParseModifierDetail(t *testing.T) {
	t.Parallel()

	decl := onlyDecl[*ast.DeclVar](t, "private(set) var x = 0\n")
	require.Len(t, decl.Modifiers(), 1)

	mod := decl.Modifiers()[0]
	assert.Equal(t, keyword.Private, mod.Keyword())
	detail := mod.Detail()
	require.NotNil(t, detail)

	assert.Equal(t, "(", detail.LParen().Text())
	assert.Equal(t, "set", detail.DetailToken().Text())
	assert.False(t, detail.DetailToken().IsMissing())
	assert.Equal(t, ")", detail.RParen().Text())
	assert.True(t, detail.Before().IsEmpty())
	assert.True(t, detail.After().IsEmpty())
}

func TestParseModifierDetailStrays(t *testing.T) {
	t.Parallel()

	// Strays on both sides of the detail word land in the right buckets.
	decl := onlyDecl[*ast.DeclVar](t, "private(a set b) var x = 0\n")
	detail := decl.Modifiers()[0].Detail()
	require.NotNil(t, detail)

	assert.Equal(t, "set", detail.DetailToken().Text())
	assert.Equal(t, "a", detail.Before().Span().Text())
	assert.Equal(t, "b", detail.After().Span().Text())
}

func TestParseModifierDetailMissing(t *testing.T) {
	t.Parallel()

	// When the detail word never shows up, the strays all belong after the
	// missing detail, which is minted just inside the parenthesis.
	decl := onlyDecl[*ast.DeclVar](t, "private( x ) var v = 0\n")
	detail := decl.Modifiers()[0].Detail()
	require.NotNil(t, detail)

	missing := detail.DetailToken()
	assert.True(t, missing.IsMissing())
	assert.Equal(t, "set", missing.ExpectedText())
	assert.Equal(t, 8, missing.Span().Start)
	assert.Equal(t, 8, missing.Span().End)

	assert.True(t, detail.Before().IsEmpty())
	assert.Equal(t, "x", detail.After().Span().Text())
	assert.Equal(t, ")", detail.RParen().Text())
	assert.False(t, detail.RParen().IsMissing())
}

func TestParseUnownedDetail(t *testing.T) {
	t.Parallel()

	// unowned takes a free-form detail word.
	decl := onlyDecl[*ast.DeclVar](t, "unowned(unsafe) var x = 0\n")
	require.Len(t, decl.Modifiers(), 1)
	assert.Equal(t, keyword.Unowned, decl.Modifiers()[0].Keyword())
	assert.Equal(t, "unsafe", decl.Modifiers()[0].Detail().DetailToken().Text())
}

func TestParseClassAmbiguity(t *testing.T) {
	t.Parallel()

	// class introducing a declaration.
	class := onlyDecl[*ast.DeclClass](t, "public class Point { var x: Int = 0 }\n")
	assert.Equal(t, "Point", class.Name().Text())
	require.Len(t, class.Modifiers(), 1)
	assert.Equal(t, keyword.Public, class.Modifiers()[0].Keyword())
	require.NotNil(t, class.Body())
	require.Len(t, class.Body().Decls(), 1)

	// class modifying a following declaration.
	fn := onlyDecl[*ast.DeclFunc](t, "class func f() {}\n")
	require.Len(t, fn.Modifiers(), 1)
	assert.Equal(t, keyword.Class, fn.Modifiers()[0].Keyword())

	decl := onlyDecl[*ast.DeclVar](t, "class var x = 0\n")
	require.Len(t, decl.Modifiers(), 1)
	assert.Equal(t, keyword.Class, decl.Modifiers()[0].Keyword())

	// class override is the one contextual spelling the probe admits.
	decl = onlyDecl[*ast.DeclVar](t, "class override var x = 0\n")
	require.Len(t, decl.Modifiers(), 2)
	assert.Equal(t, keyword.Class, decl.Modifiers()[0].Keyword())
	assert.Equal(t, keyword.Override, decl.Modifiers()[1].Keyword())
}

func TestParseMissingTokens(t *testing.T) {
	t.Parallel()

	fn := onlyDecl[*ast.DeclFunc](t, "func\n")
	assert.True(t, fn.Name().IsMissing())
	assert.Equal(t, "identifier", fn.Name().ExpectedText())
	assert.Nil(t, fn.Params())
	assert.Nil(t, fn.Body())

	fn = onlyDecl[*ast.DeclFunc](t, "func f(a: Int {}\n")
	require.NotNil(t, fn.Params())
	assert.True(t, fn.Params().RParen().IsMissing())
	assert.Equal(t, ")", fn.Params().RParen().ExpectedText())
	require.NotNil(t, fn.Body(), "the body is not lost to the broken list")
}

func TestParseDanglingModifiers(t *testing.T) {
	t.Parallel()

	// Modifiers with nothing to modify hang off a variable declaration
	// whose introducer is missing.
	decl := onlyDecl[*ast.DeclVar](t, "public static\n")
	require.Len(t, decl.Modifiers(), 2)
	assert.True(t, decl.KeywordToken().IsMissing())
	assert.True(t, decl.Name().IsMissing())
}

func TestParseTopLevelJunk(t *testing.T) {
	t.Parallel()

	file, errs := parse(t, "42 ; func f() {}\n")
	assert.False(t, errs.HasErrors())
	require.Len(t, file.Decls(), 2)

	bucket, ok := file.Decls()[0].(*ast.Unexpected)
	require.True(t, ok)
	assert.Equal(t, "42 ;", bucket.Span().Text())

	_, ok = file.Decls()[1].(*ast.DeclFunc)
	assert.True(t, ok)
}

func TestParseForIn(t *testing.T) {
	t.Parallel()

	fn := onlyDecl[*ast.DeclFunc](t, "func f() { for x in xs { } }\n")
	require.Len(t, fn.Body().Stmts(), 1)

	loop := fn.Body().Stmts()[0].(*ast.StmtFor)
	assert.Equal(t, "x", loop.Pattern().(*ast.ExprPath).Components()[0].Text())
	assert.Equal(t, keyword.In, loop.In().Keyword())
	assert.False(t, loop.In().IsMissing())
	assert.Equal(t, "xs", loop.Seq().(*ast.ExprPath).Components()[0].Text())
	assert.Nil(t, loop.Header())
	require.NotNil(t, loop.Body())
}

func TestParseForCStyle(t *testing.T) {
	t.Parallel()

	fn := onlyDecl[*ast.DeclFunc](t, "func f() { for ; ; { } }\n")
	loop := fn.Body().Stmts()[0].(*ast.StmtFor)

	assert.Nil(t, loop.Pattern())
	assert.True(t, loop.In().IsMissing())
	require.NotNil(t, loop.Header())
	assert.Equal(t, "; ;", loop.Header().Span().Text())
	require.NotNil(t, loop.Body())
}

func TestParseStmtDispatch(t *testing.T) {
	t.Parallel()

	fn := onlyDecl[*ast.DeclFunc](t, `func f() {
	lazy var cached = 0
	lazy.init()
	if ready { return }
	{ return }
}
`)
	stmts := fn.Body().Stmts()
	require.Len(t, stmts, 4)

	// A contextual spelling opens a declaration only when one can follow.
	decl := stmts[0].(*ast.DeclVar)
	require.Len(t, decl.Modifiers(), 1)
	assert.Equal(t, keyword.Lazy, decl.Modifiers()[0].Keyword())

	_, ok := stmts[1].(*ast.ExprCall)
	assert.True(t, ok, "lazy.init() is a call, got %v", stmts[1].Kind())

	ifStmt := stmts[2].(*ast.StmtIf)
	assert.Equal(t, "ready", ifStmt.Cond().(*ast.ExprPath).Components()[0].Text())

	_, ok = stmts[3].(*ast.Block)
	assert.True(t, ok)
}

func TestParseWhileJunk(t *testing.T) {
	t.Parallel()

	// while is reserved but has no statement production; it is swept as
	// junk where it stands, and the rest of the block still parses in
	// place rather than leaking to file scope.
	file, errs := parse(t, "func f() { while x { } }\n")
	assert.False(t, errs.HasErrors())
	require.Len(t, file.Decls(), 1)

	fn := file.Decls()[0].(*ast.DeclFunc)
	require.NotNil(t, fn.Body())
	assert.False(t, fn.Body().RBrace().IsMissing())

	stmts := fn.Body().Stmts()
	require.Len(t, stmts, 3)

	bucket := stmts[0].(*ast.Unexpected)
	assert.Equal(t, "while", bucket.Span().Text())
	assert.Equal(t, "x", stmts[1].(*ast.ExprPath).Components()[0].Text())
	_, ok := stmts[2].(*ast.Block)
	assert.True(t, ok)
}

func TestParseThrowsAfterArrow(t *testing.T) {
	t.Parallel()

	fn := onlyDecl[*ast.DeclFunc](t, "func read() -> throws Int {}\n")
	assert.True(t, fn.Effect().IsZero())
	require.NotNil(t, fn.ReturnPrefix())

	children := fn.ReturnPrefix().Children()
	require.Len(t, children, 1)
	assert.Equal(t, keyword.Throws, children[0].Token.Keyword())
	require.NotNil(t, fn.Return())
}

func TestParseTotality(t *testing.T) {
	t.Parallel()

	// The parser terminates and produces a file for anything at all.
	inputs := []string{
		"",
		"}}}}",
		"((((",
		"class class class",
		"func func func",
		"private(private(private(",
		"var = = = 1",
		"for for for { { {",
		"\"unterminated\n@@@",
		"private( x ",
	}
	for _, input := range inputs {
		var errs report.Report
		file := parser.Parse(report.NewFile("test.lumen", input), &errs)
		require.NotNil(t, file, "input %q", input)
		assert.False(t, file.EOF().IsZero(), "input %q", input)
	}
}
