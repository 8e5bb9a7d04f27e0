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

package report

import (
	"fmt"
	"reflect"
)

// Level represents the severity of a diagnostic message.
type Level int8

const (
	// Red. Indicates a constraint violation.
	Error Level = 1 + iota
	// Yellow. Indicates something that probably should not be ignored.
	Warning
	// Cyan. This is the diagnostics version of "info".
	Remark
)

// String implements [fmt.Stringer].
func (l Level) String() string {
	switch l {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Remark:
		return "remark"
	default:
		return fmt.Sprintf("report.Level(%d)", int8(l))
	}
}

// Diagnostic is an error that can be rendered as a rich, span-annotated
// message.
//
// Not all Diagnostics are "errors"; some represent warnings or remarks.
//
// To construct a diagnostic, create one using a function like [Report.Error],
// then call [Diagnostic.With] to apply options to it. You should at minimum
// apply [Message] and either [InFile] or at least one [Snippet].
type Diagnostic struct {
	message string
	level   Level

	// The file this diagnostic occurs in, if it has no associated
	// annotations. This is used for errors that cannot be given a snippet.
	inFile string

	// A list of annotated source code spans in the diagnostic.
	annotations []annotation
	notes, help []string
}

// DiagnosticOption is an option that can be applied to a [Diagnostic].
//
// Nil values passed to [Diagnostic.With] are ignored.
type DiagnosticOption interface {
	Apply(*Diagnostic)
}

// Message returns this diagnostic's message.
func (d *Diagnostic) Message() string {
	return d.message
}

// Level returns this diagnostic's level.
func (d *Diagnostic) Level() Level {
	return d.level
}

// Primary returns this diagnostic's primary span, if it has one.
//
// If it doesn't have one, it returns the zero span.
func (d *Diagnostic) Primary() Span {
	for _, annotation := range d.annotations {
		if annotation.primary {
			return annotation.Span
		}
	}
	return Span{}
}

// With applies the given options to this diagnostic.
//
// Nil values are ignored.
func (d *Diagnostic) With(options ...DiagnosticOption) *Diagnostic {
	for _, option := range options {
		if option != nil {
			option.Apply(d)
		}
	}
	return d
}

// Message returns a DiagnosticOption that sets the main diagnostic message.
func Message(format string, args ...any) DiagnosticOption {
	return message(fmt.Sprintf(format, args...))
}

// InFile is a DiagnosticOption that causes a diagnostic without a primary
// span to mention the given file.
type InFile string

// Apply implements [DiagnosticOption].
func (f InFile) Apply(d *Diagnostic) {
	if d.inFile != "" {
		panic("lumencompile/report: set diagnostic path more than once")
	}
	d.inFile = string(f)
}

// Snippet returns a DiagnosticOption that adds a new snippet to a diagnostic.
//
// Any additional arguments to this function are passed to [fmt.Sprintf] to
// produce a message to go with the span. Snippet(span) is equivalent to
// Snippet(span, "").
//
// The first annotation added is the "primary" annotation, and will be
// rendered differently from the others.
//
// If at is nil (be it a nil interface or a nil pointer), or returns a zero
// span, this function returns nil.
func Snippet(at Spanner, args ...any) DiagnosticOption {
	if isNil(at) {
		return nil
	}

	span := at.Span()
	if span.IsZero() {
		return nil
	}

	annotation := annotation{Span: span}
	if len(args) > 0 {
		format, ok := args[0].(string)
		if !ok {
			panic("lumencompile/report: expected string as first Snippet argument")
		}
		annotation.message = fmt.Sprintf(format, args[1:]...)
	}

	return annotation
}

// Note returns a DiagnosticOption that provides the user with context about
// the diagnostic, after the annotations.
func Note(format string, args ...any) DiagnosticOption {
	return note(fmt.Sprintf(format, args...))
}

// Help returns a DiagnosticOption that provides the user with a helpful prose
// suggestion for resolving the diagnostic.
func Help(format string, args ...any) DiagnosticOption {
	return help(fmt.Sprintf(format, args...))
}

// annotation is an annotated source code snippet within a [Diagnostic].
//
// Snippets render as annotated source code spans that show the context
// around the annotated region; literally, the squiggly line under some code.
type annotation struct {
	Span

	// A message to show under this snippet. May be empty, in which case it
	// renders as the squiggly line with no note attached to it.
	message string

	// Whether this is a "primary" snippet. The primary snippet is the
	// diagnostic's anchor; the rest highlight sub-ranges.
	primary bool
}

func (a annotation) Apply(d *Diagnostic) {
	a.primary = len(d.annotations) == 0
	d.annotations = append(d.annotations, a)
}

type message string
type note string
type help string

func (m message) Apply(d *Diagnostic) {
	if d.message != "" {
		panic("lumencompile/report: set diagnostic message more than once")
	}
	d.message = string(m)
}

func (n note) Apply(d *Diagnostic) { d.notes = append(d.notes, string(n)) }
func (n help) Apply(d *Diagnostic) { d.help = append(d.help, string(n)) }

// isNil checks whether s is nil, including the case of a non-nil interface
// wrapping a nil pointer.
func isNil(s Spanner) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
