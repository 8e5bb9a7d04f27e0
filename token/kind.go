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

import "fmt"

const (
	Unrecognized Kind = iota // Unrecognized garbage in the input file.

	Space   // Non-comment contiguous whitespace.
	Comment // A single comment.
	Ident   // An identifier, including reserved and contextual keywords.
	Number  // A run of digits that is some kind of number.
	String  // A string literal.
	Punct   // Some punctuation, such as `(` or `->`.
	EOF     // The end of the input: the stream's final zero-width token, and the zero token.
)

// Kind identifies what kind of token a particular [Token] is.
type Kind byte

// IsSkippable returns whether this is a token that should be skipped during
// syntactic analysis.
func (k Kind) IsSkippable() bool {
	return k == Space || k == Comment || k == Unrecognized
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case Unrecognized:
		return "Unrecognized"
	case Space:
		return "Space"
	case Comment:
		return "Comment"
	case Ident:
		return "Ident"
	case Number:
		return "Number"
	case String:
		return "String"
	case Punct:
		return "Punct"
	case EOF:
		return "EOF"
	default:
		return fmt.Sprintf("token.Kind(%d)", byte(k))
	}
}
