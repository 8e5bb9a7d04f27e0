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
	"maps"
	"slices"
	"strings"

	"github.com/lumenlang/lumencompile/internal/interval"
)

// Style indicates how a diagnostic should be rendered to show a user.
type Style int

const (
	// Simple imitates the Go compiler: one line per diagnostic.
	Simple Style = 1 + iota
	// Windowed imitates the Rust compiler: annotated source windows.
	Windowed
)

// Renderer renders a [Report] in a format suitable for showing to a user.
type Renderer struct {
	Style Style
}

// RenderString renders every diagnostic in rep.
func (r Renderer) RenderString(rep *Report) string {
	var out strings.Builder
	for i := range rep.Diagnostics {
		out.WriteString(r.renderDiagnostic(&rep.Diagnostics[i]))
		out.WriteByte('\n')
		if r.Style == Windowed {
			out.WriteByte('\n')
		}
	}
	return out.String()
}

func (r Renderer) renderDiagnostic(d *Diagnostic) string {
	if r.Style != Windowed {
		primary := d.Primary()
		path := primary.Path()
		if path == "" {
			path = d.inFile
		}
		if path == "" {
			path = "<unknown>"
		}
		if primary.IsZero() {
			return fmt.Sprintf("%v: %s: %s", d.level, path, d.message)
		}
		start := primary.StartLoc()
		return fmt.Sprintf("%v: %s:%d:%d: %s", d.level, path, start.Line, start.Column, d.message)
	}

	var out strings.Builder
	fmt.Fprint(&out, d.level, ": ", d.message)

	// Figure out how wide the line bar needs to be. This is given by the
	// width of the largest line number among the annotations.
	var greatestLine int
	for _, a := range d.annotations {
		greatestLine = max(greatestLine, a.StartLoc().Line)
	}
	gutter := max(2, len(fmt.Sprint(greatestLine)))

	if len(d.annotations) > 0 {
		primary := d.Primary()
		start := primary.StartLoc()
		fmt.Fprintf(&out, "\n%s--> %s:%d:%d", strings.Repeat(" ", gutter), primary.Path(), start.Line, start.Column)
		fmt.Fprintf(&out, "\n%s |", strings.Repeat(" ", gutter))
		r.renderWindow(d, gutter, &out)
	} else if d.inFile != "" {
		fmt.Fprintf(&out, "\n%s--> %s", strings.Repeat(" ", gutter), d.inFile)
	}

	for _, note := range d.notes {
		fmt.Fprintf(&out, "\n%s = note: %s", strings.Repeat(" ", gutter), note)
	}
	for _, help := range d.help {
		fmt.Fprintf(&out, "\n%s = help: %s", strings.Repeat(" ", gutter), help)
	}

	return out.String()
}

// renderWindow renders the annotated source lines for d.
//
// Multi-line annotations are clamped to their first line; every annotation
// renders as an underline row beneath the source text, with overlapping
// underlines on the same line fused together.
func (r Renderer) renderWindow(d *Diagnostic, gutter int, out *strings.Builder) {
	type lineAnnotation struct {
		startCol, endCol int // 0-indexed display columns
		primary          bool
		message          string
	}

	// Bucket annotations by line.
	byLine := make(map[int][]lineAnnotation)
	file := d.Primary().File
	for _, a := range d.annotations {
		if a.File != file {
			// A window renders one file; annotations into other files are
			// dropped rather than rendered misleadingly.
			continue
		}
		start := a.StartLoc()
		lineStart, lineEnd := file.LineOffsets(start.Line)

		end := min(a.End, lineEnd)
		startCol := stringWidth(0, file.Text()[lineStart:a.Start])
		endCol := stringWidth(startCol, file.Text()[a.Start:end])
		// Zero-width spans (missing tokens) still get one caret.
		endCol = max(endCol, startCol+1)

		byLine[start.Line] = append(byLine[start.Line], lineAnnotation{
			startCol: startCol,
			endCol:   endCol,
			primary:  a.primary,
			message:  a.message,
		})
	}

	for _, line := range slices.Sorted(maps.Keys(byLine)) {
		annotations := byLine[line]
		text := strings.TrimRight(file.Line(line), "\n")
		fmt.Fprintf(out, "\n%*d | %s", gutter, line, expandTabs(text))

		// Fuse overlapping underlines; a primary caret wins over a dash.
		var underlines interval.Map[int, byte]
		for _, a := range annotations {
			mark := byte('-')
			if a.primary {
				mark = '^'
			}
			underlines.Insert(a.startCol, a.endCol, mark, func(old, new byte) byte {
				if old == '^' || new == '^' {
					return '^'
				}
				return '-'
			})
		}

		fmt.Fprintf(out, "\n%s | ", strings.Repeat(" ", gutter))
		col := 0
		for u := range underlines.All() {
			col = padToColumn(out, col, u.Start)
			for ; col < u.End; col++ {
				out.WriteByte(u.Value)
			}
		}

		// Messages each get their own row, aligned under their underline.
		slices.SortStableFunc(annotations, func(a, b lineAnnotation) int {
			return a.startCol - b.startCol
		})
		for _, a := range annotations {
			if a.message == "" {
				continue
			}
			fmt.Fprintf(out, "\n%s | ", strings.Repeat(" ", gutter))
			padToColumn(out, 0, a.startCol)
			out.WriteString(a.message)
		}
	}
}
