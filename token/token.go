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

// Package token defines the lexical elements of a Lumen file and the streams
// that carry them.
//
// A [Token] is a lightweight handle into a [Stream]; two tokens are the same
// token, not merely equal in content, exactly when their handles compare
// equal. This gives every token a stable identity, which the diagnostics
// pass relies on to mark specific tokens as already explained.
//
// Streams hold two classes of tokens. Natural tokens were produced by the
// lexer and correspond to actual source text. Missing tokens are synthesized
// by the parser where the grammar required a token that was not present;
// they have a kind and a zero-width span but no text.
package token

import (
	"fmt"

	"github.com/lumenlang/lumencompile/report"
	"github.com/lumenlang/lumencompile/token/keyword"
)

// Zero is the zero [Token], which represents the absence of a token.
var Zero Token

// ID is the raw identity of a [Token] separated from its [Stream].
//
// The zero value is reserved for the zero token. Positive values are natural
// tokens; negative values are missing tokens.
type ID int32

// In associates this ID with a stream, producing a usable token.
//
// No checks are performed to validate that this ID came from this stream;
// the caller is responsible for ensuring that themselves.
func (id ID) In(s *Stream) Token {
	if id == 0 {
		return Zero
	}
	return Token{stream: s, id: id}
}

// String implements [fmt.Stringer].
func (id ID) String() string {
	switch {
	case id == 0:
		return "Token(<zero>)"
	case id < 0:
		return fmt.Sprintf("Token(^%d)", ^int32(id))
	default:
		return fmt.Sprintf("Token(%d)", int32(id)-1)
	}
}

// Token is a lexical element of a Lumen file.
//
// The zero value is the zero token, which denotes the absence of a token:
// for example, [Cursor.Peek] at the end of the stream returns it.
type Token struct {
	stream *Stream
	id     ID
}

// IsZero returns whether this is the zero token.
func (t Token) IsZero() bool {
	return t.id == 0
}

// ID returns this token's raw ID, disassociated from its stream.
func (t Token) ID() ID {
	return t.id
}

// Stream returns the stream this token belongs to.
//
// Returns nil for the zero token.
func (t Token) Stream() *Stream {
	return t.stream
}

// IsMissing returns whether this is a missing token: a zero-width
// placeholder minted by the parser where the grammar required a token that
// was not present in the input.
func (t Token) IsMissing() bool {
	return t.id < 0
}

// Kind returns this token's kind.
//
// The zero token's kind is [EOF].
func (t Token) Kind() Kind {
	switch {
	case t.IsZero():
		return EOF
	case t.IsMissing():
		return t.stream.synths[^t.id].kind
	default:
		return t.stream.nats[t.id-1].kind
	}
}

// Text returns this token's source spelling.
//
// Missing tokens have no source text, so this returns "" for them; see
// [Token.ExpectedText].
func (t Token) Text() string {
	if t.IsZero() || t.IsMissing() {
		return ""
	}
	span := t.Span()
	return span.Text()
}

// ExpectedText returns the spelling the parser expected when it minted this
// missing token, such as "set" or ")".
//
// For natural tokens this is the same as [Token.Text].
func (t Token) ExpectedText() string {
	if t.IsMissing() {
		return t.stream.synths[^t.id].text
	}
	return t.Text()
}

// Keyword returns the keyword this token spells, whether it lexes as a
// reserved keyword or as an identifier with a contextual-keyword spelling.
//
// Returns [keyword.Unknown] for anything else.
func (t Token) Keyword() keyword.Keyword {
	switch {
	case t.IsZero():
		return keyword.Unknown
	case t.IsMissing():
		return keyword.Lookup(t.stream.synths[^t.id].text)
	default:
		return t.stream.nats[t.id-1].kw
	}
}

// Span implements [report.Spanner].
//
// Missing tokens have a zero-width span at the position they were minted.
func (t Token) Span() report.Span {
	switch {
	case t.IsZero():
		return report.Span{}
	case t.IsMissing():
		at := int(t.stream.synths[^t.id].at)
		return t.stream.File.Span(at, at)
	default:
		return t.stream.File.Span(t.stream.offsets(t.id))
	}
}

// String implements [fmt.Stringer]; this is a debugging representation.
func (t Token) String() string {
	switch {
	case t.IsZero():
		return "Token(<zero>)"
	case t.IsMissing():
		return fmt.Sprintf("%v(missing %q)", t.Kind(), t.ExpectedText())
	default:
		return fmt.Sprintf("%v(%q)", t.Kind(), t.Text())
	}
}
