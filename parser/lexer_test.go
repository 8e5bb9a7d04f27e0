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

	"github.com/lumenlang/lumencompile/parser"
	"github.com/lumenlang/lumencompile/report"
	"github.com/lumenlang/lumencompile/token"
)

// lex lexes text and returns the stream.
func lex(t *testing.T, text string) (*token.Stream, *report.Report) {
	t.Helper()

	var errs report.Report
	s := token.NewStream(report.NewFile("test.lumen", text))
	parser.Lex(s, &errs)
	return s, &errs
}

// kindsOf flattens a stream into "kind:text" strings, skipping whitespace,
// comments, and the EOF token. Unrecognized tokens stay visible: they are
// skippable to the parser, but the lexer tests are about them.
func kindsOf(s *token.Stream) []string {
	var out []string
	for tok := range s.All() {
		switch tok.Kind() {
		case token.Space, token.Comment, token.EOF:
			continue
		}
		out = append(out, tok.Kind().String()+":"+tok.Text())
	}
	return out
}

func TestLex(t *testing.T) {
	t.Parallel()

	s, errs := lex(t, `private(set) var x: Int = "hi" // neat`)
	assert.False(t, errs.HasErrors())

	assert.Equal(t, []string{
		"Ident:private",
		"Punct:(",
		"Ident:set",
		"Punct:)",
		"Ident:var",
		"Ident:x",
		"Punct::",
		"Ident:Int",
		"Punct:=",
		`String:"hi"`,
	}, kindsOf(s))
}

func TestLexTotality(t *testing.T) {
	t.Parallel()

	// Every byte of the input is covered by exactly one natural token, in
	// order, with no gaps. The last natural token is the zero-width EOF.
	inputs := []string{
		"",
		"func f() -> throws Int { return 1 }",
		"for ; ; {}",
		"\t\n  // comment only\n",
		`"unterminated`,
		"héllo @@@ wörld",
		"===>->>",
	}
	for _, input := range inputs {
		s, _ := lex(t, input)

		end := 0
		var last token.Token
		for tok := range s.All() {
			span := tok.Span()
			assert.Equal(t, end, span.Start, "gap before %v in %q", tok, input)
			end = span.End
			last = tok
		}
		assert.Equal(t, len(input), end, "input %q not fully covered", input)
		require.False(t, last.IsZero())
		assert.Equal(t, token.EOF, last.Kind())
	}
}

func TestLexArrow(t *testing.T) {
	t.Parallel()

	s, errs := lex(t, "->-> - >")
	assert.False(t, errs.HasErrors())
	assert.Equal(t, []string{
		"Punct:->",
		"Punct:->",
		"Punct:-",
		"Punct:>",
	}, kindsOf(s))
}

func TestLexUnrecognized(t *testing.T) {
	t.Parallel()

	s, errs := lex(t, "@@@ $")
	require.Len(t, errs.Diagnostics, 2)
	assert.Equal(t, "unrecognized characters", errs.Diagnostics[0].Message())

	assert.Equal(t, []string{
		"Unrecognized:@@@",
		"Unrecognized:$",
	}, kindsOf(s))
}

func TestLexUnterminatedString(t *testing.T) {
	t.Parallel()

	_, errs := lex(t, "var s = \"oops\nvar t = 1")
	require.Len(t, errs.Diagnostics, 1)
	assert.Equal(t, "unterminated string literal", errs.Diagnostics[0].Message())
}
