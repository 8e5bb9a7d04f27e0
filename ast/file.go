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

package ast

import (
	"github.com/lumenlang/lumencompile/report"
	"github.com/lumenlang/lumencompile/token"
)

// File is the root of a Lumen syntax tree: a list of top-level declarations
// followed by the end-of-input token.
type File struct {
	stream *token.Stream
	decls  []Decl
	eof    token.Token
}

// FileArgs is the arguments for [NewFile].
type FileArgs struct {
	Stream *token.Stream
	Decls  []Decl
	EOF    token.Token
}

// NewFile creates a new File node.
func NewFile(args FileArgs) *File {
	if args.Stream == nil {
		panic("lumencompile/ast: NewFile() requires a token stream")
	}
	return &File{
		stream: args.Stream,
		decls:  args.Decls,
		eof:    required(KindFile, "eof", args.EOF),
	}
}

// Stream returns the token stream this tree was parsed from.
func (f *File) Stream() *token.Stream { return f.stream }

// Decls returns this file's top-level declarations, in source order.
func (f *File) Decls() []Decl { return f.decls }

// EOF returns this file's end-of-input token.
func (f *File) EOF() token.Token { return f.eof }

// Kind implements [Node].
func (f *File) Kind() Kind { return KindFile }

// Span implements [report.Spanner].
//
// A file's span is the whole file, even when it is empty; this is the one
// node whose span does not come from its children.
func (f *File) Span() report.Span {
	return f.stream.File.Span(0, len(f.stream.File.Text()))
}

// Children implements [Node].
func (f *File) Children() []Child {
	var children []Child
	for _, decl := range f.decls {
		children = append(children, nodeChild("decls", decl))
	}
	return append(children, tokenChild("eof", f.eof))
}
