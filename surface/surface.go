// seehuhn.de/go/cvmaker - render résumé documents as PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package surface defines the drawing operations used to render a résumé,
// together with a PDF implementation and a recorder for inspection.
package surface

// Point is a position in PDF device units, with the origin in the
// bottom-left corner of the page.
type Point struct {
	X, Y float64
}

// Font selects a registered font face and its size.
type Font struct {
	Face string
	Size float64
}

// Surface is a page-oriented drawing target.
//
// Line width and dash pattern apply to all following stroked primitives.
// Errors from the drawing operations are reported by the implementation,
// for example by a sticky error field.
type Surface interface {
	// SetLineWidth sets the width of stroked lines.
	SetLineWidth(width float64)

	// SetLineDash sets the dash pattern of stroked lines.
	// An empty pattern gives solid lines.
	SetLineDash(pattern []float64)

	// Line strokes a single segment.
	Line(x1, y1, x2, y2 float64)

	// Rect strokes the outline of an axis-aligned rectangle.
	Rect(x, y, width, height float64)

	// Polyline strokes a path through the given points.  If closed is true,
	// the path is closed back to its start before stroking.
	Polyline(points []Point, closed bool)

	// Text draws one line of text with its baseline starting at (x, y).
	Text(x, y float64, F Font, s string)

	// TextBlock draws several lines of text.  The first baseline starts at
	// (x, y), each following line is leading units further down.
	TextBlock(x, y float64, F Font, leading float64, lines []string)

	// ShowPage finishes the current page and starts a new one.
	ShowPage() error
}
