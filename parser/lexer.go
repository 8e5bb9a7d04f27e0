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
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/lumenlang/lumencompile/report"
	"github.com/lumenlang/lumencompile/token"
)

// Lex performs lexical analysis on stream's file, pushing the resulting
// tokens onto stream and any diagnostics onto errs.
//
// Lexing is total: every byte of the input lands in some token, with bytes
// the lexer does not understand collected into Unrecognized tokens. The
// stream is frozen on return, with a zero-width EOF token at the end.
func Lex(stream *token.Stream, errs *report.Report) {
	l := &lexer{
		Stream: stream,
		Report: errs,
	}
	l.Lex()
}

// lexer is a Lumen lexer.
type lexer struct {
	*token.Stream
	*report.Report

	cursor int
}

// Lex lexes the whole file.
func (l *lexer) Lex() {
	var prev int
	for !l.Done() {
		start := l.cursor
		r := l.Pop()

		if start > 0 && start == prev {
			panic(fmt.Sprintf("lumencompile/parser: lexer failed to make progress at offset %d; this is a bug in lumencompile", l.cursor))
		}
		prev = start

		switch {
		case unicode.In(r, unicode.Pattern_White_Space):
			l.TakeWhile(func(r rune) bool {
				return unicode.In(r, unicode.Pattern_White_Space)
			})
			l.Push(l.cursor-start, token.Space)

		case r == '/' && l.Peek() == '/':
			// Single-line comment. Seek to the next '\n' or the EOF.
			if _, ok := l.SeekInclusive("\n"); !ok {
				l.SeekEOF()
			}
			l.Push(l.cursor-start, token.Comment)

		case r == '-':
			// -> is a single token; a bare - is ordinary punctuation.
			if l.Peek() == '>' {
				_ = l.Pop()
			}
			l.Push(l.cursor-start, token.Punct)

		case strings.ContainsRune("(){},:;=.<>!&|*+/", r):
			l.Push(utf8.RuneLen(r), token.Punct)

		case r == '"':
			l.cursor = start // Back up to behind the quote before resuming.
			l.LexString()

		case unicode.IsDigit(r):
			l.cursor = start
			l.LexNumber()

		case r == '_' || unicode.IsLetter(r):
			l.cursor = start
			l.TakeWhile(func(r rune) bool {
				return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
			})
			l.Push(l.cursor-start, token.Ident)

		default:
			l.cursor = start

			// Consume as many unrecognized grapheme clusters as possible and
			// diagnose them as a unit.
			l.TakeGraphemesWhile(func(g string) bool {
				r, _ := utf8.DecodeRuneInString(g)
				return !strings.ContainsRune("(){},:;=.<>!&|*+-\"_/", r) &&
					!unicode.IsLetter(r) && !unicode.IsDigit(r) &&
					!unicode.In(r, unicode.Pattern_White_Space)
			})
			tok := l.Push(l.cursor-start, token.Unrecognized)
			l.Error(errUnrecognized{Token: tok})
		}
	}

	l.Push(0, token.EOF)
	l.Freeze()
}

// LexNumber lexes a number starting at the current cursor.
//
// The lexer accepts a deliberately loose superset of valid numbers, so that
// malformed literals become a single Number token rather than a pile of
// fragments.
func (l *lexer) LexNumber() token.Token {
	start := l.cursor
	l.TakeWhile(func(r rune) bool {
		return r == '.' || r == '_' || unicode.IsDigit(r) || unicode.IsLetter(r)
	})
	return l.Push(l.cursor-start, token.Number)
}

// LexString lexes a string literal starting at the current cursor.
//
// The cursor position should be just before the string's open quote.
// Strings do not span lines; a string still unterminated at a newline or the
// EOF is diagnosed and ends there.
func (l *lexer) LexString() token.Token {
	start := l.cursor
	_ = l.Pop() // The open quote.

	terminated := false
	for !l.Done() {
		r := l.Pop()
		if r == '"' {
			terminated = true
			break
		}
		if r == '\n' {
			l.cursor -= utf8.RuneLen(r)
			break
		}
		if r == '\\' && !l.Done() {
			_ = l.Pop()
		}
	}

	tok := l.Push(l.cursor-start, token.String)
	if !terminated {
		l.Error(errUnterminatedString{Token: tok})
	}
	return tok
}

// Done returns whether or not we're done lexing runes.
func (l *lexer) Done() bool {
	return l.Rest() == ""
}

// Rest returns unlexed text.
func (l *lexer) Rest() string {
	return l.Text()[l.cursor:]
}

// Peek peeks the next character.
//
// Returns -1 if l.Done().
func (l *lexer) Peek() rune {
	return decodeRune(l.Rest())
}

// Pop consumes the next character; returns that character.
//
// Returns -1 if l.Done().
func (l *lexer) Pop() rune {
	r := l.Peek()
	if r != -1 {
		l.cursor += utf8.RuneLen(r)
		return r
	}
	return -1
}

// TakeWhile consumes characters while they match the given function.
// Returns consumed characters.
func (l *lexer) TakeWhile(f func(rune) bool) string {
	start := l.cursor
	for !l.Done() {
		r := l.Peek()
		if r == -1 || !f(r) {
			break
		}
		_ = l.Pop()
	}
	return l.Text()[start:l.cursor]
}

// TakeGraphemesWhile consumes grapheme clusters while they match the given
// function. Returns consumed characters.
func (l *lexer) TakeGraphemesWhile(f func(string) bool) string {
	start := l.cursor
	for gs := uniseg.NewGraphemes(l.Rest()); gs.Next(); {
		g := gs.Str()
		if !f(g) {
			break
		}
		l.cursor += len(g)
	}
	return l.Text()[start:l.cursor]
}

// SeekInclusive seeks until the given needle is found; returns the prefix
// inclusive of that needle, and updates the cursor to point after it.
func (l *lexer) SeekInclusive(needle string) (string, bool) {
	if idx := strings.Index(l.Rest(), needle); idx != -1 {
		prefix := l.Rest()[:idx+len(needle)]
		l.cursor += idx + len(needle)
		return prefix, true
	}
	return "", false
}

// SeekEOF seeks the cursor to the end of the file and returns the remaining
// text.
func (l *lexer) SeekEOF() string {
	rest := l.Rest()
	l.cursor += len(rest)
	return rest
}

// decodeRune is a wrapper around utf8.DecodeRuneInString that makes it
// easier to check for failure. Instead of returning RuneError (which is a
// valid rune!), it returns -1.
func decodeRune(s string) rune {
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && n < 2 {
		return -1
	}
	return r
}
