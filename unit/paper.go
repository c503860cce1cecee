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

package unit

import (
	"fmt"
	"strings"

	"seehuhn.de/go/geom/rect"
)

type paperSize struct {
	width, height float64
	unit          Unit
}

// Paper sizes, in portrait orientation.  B5 and B4 are the ISO sizes.
var papers = map[string]paperSize{
	"A3":     {297, 420, MM},
	"A4":     {210, 297, MM},
	"A5":     {148, 210, MM},
	"B4":     {250, 353, MM},
	"B5":     {176, 250, MM},
	"LETTER": {8.5, 11, Inch},
	"LEGAL":  {8.5, 14, Inch},
}

// Paper returns the page rectangle for a named paper size, in portrait
// orientation.  Names are case-insensitive.
func Paper(name string) (*rect.Rect, error) {
	p, ok := papers[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unit: unknown paper size %q", name)
	}
	return &rect.Rect{
		URx: p.unit.Of(p.width).Points(),
		URy: p.unit.Of(p.height).Points(),
	}, nil
}

// Landscape returns the page rectangle with the axes swapped.
func Landscape(paper *rect.Rect) *rect.Rect {
	return &rect.Rect{
		LLx: paper.LLy,
		LLy: paper.LLx,
		URx: paper.URy,
		URy: paper.URx,
	}
}
