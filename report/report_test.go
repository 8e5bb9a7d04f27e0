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

package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenlang/lumencompile/report"
)

func TestLocation(t *testing.T) {
	t.Parallel()

	f := report.NewFile("test", "ab\tc\ndéf\n")

	loc := f.Location(0)
	assert.Equal(t, 1, loc.Line)
	assert.Equal(t, 1, loc.Column)

	// Columns are display columns: the tab advances to the next tabstop.
	loc = f.Location(3)
	assert.Equal(t, 1, loc.Line)
	assert.Equal(t, 5, loc.Column)

	loc = f.Location(5)
	assert.Equal(t, 2, loc.Line)
	assert.Equal(t, 1, loc.Column)

	// é is two bytes but one column.
	loc = f.Location(8)
	assert.Equal(t, 2, loc.Line)
	assert.Equal(t, 3, loc.Column)
}

func TestJoin(t *testing.T) {
	t.Parallel()

	f := report.NewFile("test", "0123456789")
	joined := report.Join(f.Span(2, 4), f.Span(6, 8))
	assert.Equal(t, 2, joined.Start)
	assert.Equal(t, 8, joined.End)

	// Zero spans do not contribute.
	joined = report.Join(report.Span{}, f.Span(3, 5), nil)
	assert.Equal(t, 3, joined.Start)
	assert.Equal(t, 5, joined.End)

	assert.True(t, report.Join().IsZero())

	other := report.NewFile("other", "xyz")
	assert.Panics(t, func() { report.Join(f.Span(0, 1), other.Span(0, 1)) })
}

func TestCanonicalize(t *testing.T) {
	t.Parallel()

	a := report.NewFile("a.lumen", "0123456789")
	b := report.NewFile("b.lumen", "0123456789")

	var r report.Report
	r.Errorf("fourth").With(report.Snippet(b.Span(0, 1)))
	r.Errorf("second").With(report.Snippet(a.Span(5, 6)))
	r.Errorf("first").With(report.Snippet(a.Span(2, 3)))
	r.Errorf("third").With(report.Snippet(a.Span(5, 6)))
	r.Canonicalize()

	var got []string
	for i := range r.Diagnostics {
		got = append(got, r.Diagnostics[i].Message())
	}
	assert.Equal(t, []string{"first", "second", "third", "fourth"}, got)

	// Idempotent: a second pass changes nothing.
	r.Canonicalize()
	for i, want := range got {
		assert.Equal(t, want, r.Diagnostics[i].Message())
	}
}

func TestHasErrors(t *testing.T) {
	t.Parallel()

	var r report.Report
	assert.False(t, r.HasErrors())
	r.Warnf("only a warning")
	assert.False(t, r.HasErrors())
	r.Errorf("now an error")
	assert.True(t, r.HasErrors())
}

func TestRenderSimple(t *testing.T) {
	t.Parallel()

	f := report.NewFile("test.lumen", "func f() -> throws Int {\n}\n")

	var r report.Report
	r.Errorf("`throws` must precede `->`").With(report.Snippet(f.Span(12, 18)))
	r.Warnf("no file attached").With(report.InFile("other.lumen"))
	r.Errorf("no span at all")

	got := report.Renderer{Style: report.Simple}.RenderString(&r)
	want := "error: test.lumen:1:13: `throws` must precede `->`\n" +
		"warning: other.lumen: no file attached\n" +
		"error: <unknown>: no span at all\n"
	assert.Equal(t, want, got)
}

func TestRenderWindowed(t *testing.T) {
	t.Parallel()

	f := report.NewFile("test.lumen", "func f() -> throws Int {\n}\n")

	var r report.Report
	r.Errorf("`throws` must precede `->`").With(
		report.Snippet(f.Span(12, 18)),
		report.Snippet(f.Span(9, 11), "move `throws` before this `->`"),
	)

	got := report.Renderer{Style: report.Windowed}.RenderString(&r)
	want := "error: `throws` must precede `->`\n" +
		"  --> test.lumen:1:13\n" +
		"   |\n" +
		" 1 | func f() -> throws Int {\n" +
		"   |          -- ^^^^^^\n" +
		"   |          move `throws` before this `->`\n" +
		"\n"
	assert.Equal(t, want, got)
}

func TestRenderWindowedFusesUnderlines(t *testing.T) {
	t.Parallel()

	f := report.NewFile("test.lumen", "private( x ) var v = 0\n")

	var r report.Report
	r.Errorf("overlap").With(
		report.Snippet(f.Span(7, 11)),
		report.Snippet(f.Span(9, 12), "to here"),
		report.Help("for example"),
	)

	got := report.Renderer{Style: report.Windowed}.RenderString(&r)
	require.Len(t, r.Diagnostics, 1)

	// Overlapping underlines fuse into one, and the primary caret wins.
	assert.Contains(t, got, " 1 | private( x ) var v = 0\n")
	assert.Contains(t, got, "   |        ^^^^^\n")
	assert.Contains(t, got, "   = help: for example")
}

func TestDiagnose(t *testing.T) {
	t.Parallel()

	var r report.Report
	r.Error(testError{})
	require.Len(t, r.Diagnostics, 1)

	d := &r.Diagnostics[0]
	assert.Equal(t, "boom", d.Message())
	assert.Equal(t, report.Error, d.Level())
}

type testError struct{}

func (testError) Error() string { return "boom" }

func (testError) Diagnose(d *report.Diagnostic) {}
