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

// Package taxa (plural of taxon, an element of a taxonomy) provides support
// for classifying Lumen syntax productions for use in diagnostics.
//
// Diagnostics name the syntactic context an error occurred in; keeping the
// vocabulary in one enum keeps that phrasing consistent everywhere.
package taxa

//go:generate go run github.com/lumenlang/lumencompile/internal/enum taxa.yaml

// Noun is a syntactic element within the grammar that can be referred to
// within a diagnostic.
type Noun int

const (
	Unknown Noun = iota
	TopLevel
	Decl
	DeclFunc
	DeclVar
	DeclClass
	ClassBody
	ModifierList
	Modifier
	ModifierDetail
	Signature
	FuncParams
	ReturnType
	Block
	StmtFor
	ForHeader
	StmtIf
	StmtReturn
	Pattern
	Expr
	Type

	totalNouns
)

// In returns a prepositional phrase placing something inside this noun,
// for use at the end of a diagnostic message.
func (n Noun) In() string {
	return "in " + n.String()
}
