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

package keyword

import "iter"

// Keyword identifies one of Lumen's keywords.
//
// The zero value means "not a keyword".
type Keyword byte

const (
	Unknown Keyword = iota

	// Reserved keywords. These are always keywords, never identifiers.
	Func
	Var
	Let
	Class
	Static
	Public
	Internal
	Fileprivate
	Private
	Throws
	If
	Else
	For
	In
	While
	Return

	// Contextual keywords. These lex as identifiers and are recognized by
	// exact spelling only in modifier position.
	Final
	Override
	Lazy
	Weak
	Unowned
	Mutating
	Nonmutating
	Required
	Convenience
	Dynamic
	Indirect
	Nonisolated

	totalKeywords
)

// All returns an iterator over all distinct keyword values, not including
// [Unknown].
func All() iter.Seq[Keyword] {
	return func(yield func(Keyword) bool) {
		for k := Unknown + 1; k < totalKeywords; k++ {
			if !yield(k) {
				return
			}
		}
	}
}

// IsReserved returns whether this keyword is reserved: it can never be used
// as an identifier.
func (k Keyword) IsReserved() bool {
	return k >= Func && k <= Return
}

// IsContextual returns whether this keyword lexes as an identifier and is
// only promoted to a keyword in positions that consult it by spelling.
func (k Keyword) IsContextual() bool {
	return k >= Final && k < totalKeywords
}

// IsAccessLevel returns whether this is one of the four access-level
// modifier keywords.
func (k Keyword) IsAccessLevel() bool {
	switch k {
	case Public, Internal, Fileprivate, Private:
		return true
	default:
		return false
	}
}

// IsModifier returns whether this keyword can appear in the modifier list
// before a declaration.
//
// [Class] is included: it is a modifier when followed by something that can
// start a declaration, and a declaration introducer otherwise.
func (k Keyword) IsModifier() bool {
	return k.IsAccessLevel() || k == Static || k == Class || k.IsContextual()
}

// HasDetail returns whether this modifier keyword accepts a parenthesized
// detail, like `private(set)` or `unowned(unsafe)`.
func (k Keyword) HasDetail() bool {
	return k.IsAccessLevel() || k == Unowned
}
