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

package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lumenlang/lumencompile/report"
	"github.com/lumenlang/lumencompile/token"
)

// lexed builds the stream for "var x = 1" by hand, trivia included.
func lexed(t *testing.T) (*token.Stream, []token.Token) {
	t.Helper()

	s := token.NewStream(report.NewFile("test", "var x = 1 // c"))
	toks := []token.Token{
		s.Push(3, token.Ident), // var
		s.Push(1, token.Space),
		s.Push(1, token.Ident), // x
		s.Push(1, token.Space),
		s.Push(1, token.Punct), // =
		s.Push(1, token.Space),
		s.Push(1, token.Number), // 1
		s.Push(1, token.Space),
		s.Push(4, token.Comment), // // c
		s.Push(0, token.EOF),
	}
	s.Freeze()
	return s, toks
}

func TestCursorSkipsTrivia(t *testing.T) {
	t.Parallel()

	s, toks := lexed(t)
	c := s.Cursor()

	assert.Equal(t, toks[0], c.Peek())
	assert.Equal(t, toks[0], c.PeekSkippable())
	assert.Equal(t, toks[0], c.Next())

	// Peek lands on x, skipping the space; PeekSkippable does not.
	assert.Equal(t, toks[1], c.PeekSkippable())
	assert.Equal(t, toks[2], c.Peek())
	assert.Equal(t, toks[2], c.Next())

	assert.Equal(t, toks[4], c.Next()) // =
	assert.Equal(t, toks[6], c.Next()) // 1

	// Only trivia and EOF remain.
	assert.True(t, c.Done())
	assert.Equal(t, token.EOF, c.Peek().Kind())
}

func TestCursorMarkRewind(t *testing.T) {
	t.Parallel()

	s, toks := lexed(t)
	c := s.Cursor()

	mark := c.Mark()
	assert.Equal(t, toks[0], c.Next())
	assert.Equal(t, toks[2], c.Next())

	c.Rewind(mark)
	assert.Equal(t, toks[0], c.Peek())
	assert.Equal(t, toks[0], c.Next())

	other := s.Cursor()
	assert.Panics(t, func() { other.Rewind(mark) }, "mark from another cursor")
}

func TestCursorOffset(t *testing.T) {
	t.Parallel()

	s, _ := lexed(t)
	c := s.Cursor()

	assert.Equal(t, 0, c.Offset())
	_ = c.Next()
	assert.Equal(t, 4, c.Offset(), "offset sits past the space, on x")
	_ = c.Next()
	_ = c.Next()
	_ = c.Next()

	// Done: cursor rests on the EOF token, which starts at the end of the
	// file's text.
	assert.Equal(t, len(s.Text()), c.Offset())
}

func TestCursorRest(t *testing.T) {
	t.Parallel()

	s, _ := lexed(t)
	c := s.Cursor()
	_ = c.Next()

	var texts []string
	for tok := range c.Rest() {
		texts = append(texts, tok.Text())
		break
	}
	// A second loop resumes at the token the first broke at, since breaking
	// never consumes it.
	for tok := range c.Rest() {
		texts = append(texts, tok.Text())
		if tok.Text() == "=" {
			break
		}
	}
	assert.Equal(t, []string{"x", "x", "="}, texts)
}
