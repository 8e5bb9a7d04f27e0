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

package token

import "iter"

// Cursor is an iterator-like construct for looping over a token stream.
// Unlike a plain range func, it supports peeking and rewinding, which is
// what the parser's bounded lookahead is built out of: probe with [Cursor.Peek]
// or under a [Cursor.Mark], and commit by calling [Cursor.Next].
type Cursor struct {
	stream *Stream

	// idx is the index of the next natural token to yield.
	idx int
}

// CursorMark is the return value of [Cursor.Mark], which marks a position on
// a Cursor for rewinding to.
type CursorMark struct {
	// This contains exactly the values needed to rewind the cursor.
	owner *Cursor
	idx   int
}

// Mark makes a mark on this cursor to indicate a place that can be rewound
// to.
func (c *Cursor) Mark() CursorMark {
	return CursorMark{owner: c, idx: c.idx}
}

// Rewind moves this cursor back to the position described by mark.
//
// Panics if mark was not created using this cursor's Mark method.
func (c *Cursor) Rewind(mark CursorMark) {
	if c != mark.owner {
		panic("lumencompile/token: rewound cursor using the wrong cursor's mark")
	}
	c.idx = mark.idx
}

// Done returns whether or not there are still tokens left to yield.
//
// The stream's EOF token does not count; a cursor resting on it is done.
func (c *Cursor) Done() bool {
	return c.Peek().Kind() == EOF
}

// PeekSkippable returns the next token in the stream, if there is one.
// This may return a skippable token.
//
// Returns the zero token if this cursor is at the end of the stream.
func (c *Cursor) PeekSkippable() Token {
	if c == nil || c.idx >= len(c.stream.nats) {
		return Zero
	}
	return ID(c.idx + 1).In(c.stream)
}

// NextSkippable returns the next token in the stream, and advances the
// cursor. This may return and consume a skippable token.
func (c *Cursor) NextSkippable() Token {
	tok := c.PeekSkippable()
	if !tok.IsZero() {
		c.idx++
	}
	return tok
}

// Peek returns the next non-skippable token in the stream, if there is one,
// without advancing the cursor.
//
// Returns the zero token if this cursor is at the end of the stream.
func (c *Cursor) Peek() Token {
	if c == nil {
		return Zero
	}
	idx := c.idx
	tok := c.Next()
	c.idx = idx
	return tok
}

// Next returns the next non-skippable token in the stream, and advances the
// cursor.
func (c *Cursor) Next() Token {
	for {
		next := c.NextSkippable()
		if next.IsZero() || !next.Kind().IsSkippable() {
			return next
		}
	}
}

// Offset returns the byte offset just before the next non-skippable token,
// or the end of the file if the cursor is done. Missing tokens are minted
// at this offset.
func (c *Cursor) Offset() int {
	if next := c.Peek(); !next.IsZero() {
		return next.Span().Start
	}
	return len(c.stream.Text())
}

// Rest returns an iterator over the remaining non-skippable tokens in the
// cursor.
//
// Breaking out of a loop over this iterator, and starting a new loop,
// resumes at the token the loop broke at.
func (c *Cursor) Rest() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			tok := c.Peek()
			if tok.IsZero() || !yield(tok) {
				break
			}
			_ = c.Next()
		}
	}
}
