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

import (
	"fmt"
	"iter"

	"github.com/lumenlang/lumencompile/report"
	"github.com/lumenlang/lumencompile/token/keyword"
)

// Stream is the token stream for one file.
//
// Internally, Stream uses a compressed representation: a natural token
// stores only its end offset and kind; its start is the end of the previous
// token. Missing tokens live in a separate table and have negative IDs.
//
// Streams may be "frozen", meaning that lexing is complete and new natural
// tokens cannot be pushed. Missing tokens can be minted at any time.
type Stream struct {
	// The file this stream is over.
	*report.File

	nats   []nat
	synths []synth

	frozen bool
}

// nat is the compressed representation of a natural token.
type nat struct {
	// The end offset of the token; the start is given by the end of the
	// previous token.
	end  uint32
	kind Kind
	// The keyword this token spells, memoized at push time.
	kw keyword.Keyword
}

// synth is the representation of a missing token.
type synth struct {
	// The spelling the parser expected, such as "set" or ")".
	text string
	kind Kind
	// The offset the token was minted at; its span is zero-width there.
	at int32
}

// NewStream returns a new, empty stream over the given file.
func NewStream(file *report.File) *Stream {
	return &Stream{File: file}
}

// Len returns the number of natural tokens pushed so far.
func (s *Stream) Len() int {
	return len(s.nats)
}

// Push mints the next natural token, with the given length and kind.
//
// Panics if the stream is frozen, or if length would run the token past the
// end of the file.
func (s *Stream) Push(length int, kind Kind) Token {
	if s.frozen {
		panic("lumencompile/token: Push() on frozen stream")
	}

	var start int
	if len(s.nats) > 0 {
		start = int(s.nats[len(s.nats)-1].end)
	}
	end := start + length
	if end > len(s.Text()) {
		panic(fmt.Sprintf("lumencompile/token: Push(%d) runs off the end of the file", length))
	}

	tok := nat{end: uint32(end), kind: kind}
	if kind == Ident {
		tok.kw = keyword.Lookup(s.Text()[start:end])
	}
	s.nats = append(s.nats, tok)

	return ID(len(s.nats)).In(s)
}

// Freeze marks lexing of this stream as complete.
func (s *Stream) Freeze() {
	s.frozen = true
}

// NewMissing mints a new missing token of the given kind at the given byte
// offset. expected is the spelling the parser was looking for; it is used in
// diagnostics and never appears in the source text.
func (s *Stream) NewMissing(kind Kind, expected string, at int) Token {
	s.synths = append(s.synths, synth{text: expected, kind: kind, at: int32(at)})
	return ID(^(len(s.synths) - 1)).In(s)
}

// Cursor returns a cursor over the natural tokens of this stream.
func (s *Stream) Cursor() *Cursor {
	return &Cursor{stream: s}
}

// All returns an iterator over all tokens in this stream: first the natural
// tokens in order, then the missing tokens in order of creation.
func (s *Stream) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for i := range s.nats {
			if !yield(ID(i + 1).In(s)) {
				return
			}
		}
		for i := range s.synths {
			if !yield(ID(^i).In(s)) {
				return
			}
		}
	}
}

// offsets returns the start and end offsets of the natural token with the
// given ID.
func (s *Stream) offsets(id ID) (start, end int) {
	if id > 1 {
		start = int(s.nats[id-2].end)
	}
	return start, int(s.nats[id-1].end)
}
