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

// Package report provides a robust error-reporting mechanism for compilers.
//
// Syntax problems in Lumen are never Go errors: the parser is total and the
// diagnostics pass is pure, so user-visible failure flows entirely through
// [Diagnostic] values collected in a [Report].
package report

import (
	"cmp"
	"fmt"
	"slices"
)

// Diagnose is an error that can be rendered as a diagnostic.
type Diagnose interface {
	error

	// Diagnose writes out this error to the given diagnostic.
	//
	// This function should not set the message or level; those are set by
	// the diagnostics framework from Error() and the Report entry point.
	Diagnose(*Diagnostic)
}

// Report is an ordered collection of diagnostics.
//
// The zero value is ready to use.
type Report struct {
	// Diagnostics in the order they were generated. Call [Report.Canonicalize]
	// to put them in source order.
	Diagnostics []Diagnostic
}

// Error pushes an error diagnostic onto this report.
func (r *Report) Error(err Diagnose) {
	err.Diagnose(r.push(err.Error(), Error))
}

// Warn pushes a warning diagnostic onto this report.
func (r *Report) Warn(err Diagnose) {
	err.Diagnose(r.push(err.Error(), Warning))
}

// Errorf creates a new error diagnostic with the given message; analogous to
// [fmt.Errorf].
func (r *Report) Errorf(format string, args ...any) *Diagnostic {
	return r.push(fmt.Sprintf(format, args...), Error)
}

// Warnf creates a new warning diagnostic with the given message.
func (r *Report) Warnf(format string, args ...any) *Diagnostic {
	return r.push(fmt.Sprintf(format, args...), Warning)
}

// Remarkf creates a new remark diagnostic with the given message.
func (r *Report) Remarkf(format string, args ...any) *Diagnostic {
	return r.push(fmt.Sprintf(format, args...), Remark)
}

// HasErrors returns whether this report contains any error diagnostics.
func (r *Report) HasErrors() bool {
	return slices.ContainsFunc(r.Diagnostics, func(d Diagnostic) bool {
		return d.level == Error
	})
}

// Canonicalize sorts this report's diagnostics into canonical order: by
// file path, then by primary span start and end offsets.
//
// The sort is stable, so diagnostics with identical primary spans keep their
// generation order. Calling Canonicalize twice is a no-op the second time,
// which is what makes diagnostics generation idempotent.
func (r *Report) Canonicalize() {
	path := func(d Diagnostic) string {
		if span := d.Primary(); !span.IsZero() {
			return span.Path()
		}
		return d.inFile
	}
	slices.SortStableFunc(r.Diagnostics, func(a, b Diagnostic) int {
		if n := cmp.Compare(path(a), path(b)); n != 0 {
			return n
		}
		as, bs := a.Primary(), b.Primary()
		if n := cmp.Compare(as.Start, bs.Start); n != 0 {
			return n
		}
		return cmp.Compare(as.End, bs.End)
	})
}

// push is the core "make me a diagnostic" function.
func (r *Report) push(message string, level Level) *Diagnostic {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{message: message, level: level})
	return &r.Diagnostics[len(r.Diagnostics)-1]
}
