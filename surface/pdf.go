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

package surface

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/font"
)

// FontSource gives access to the fonts which can be used for text.
// This is implemented by *fontreg.Registry.
type FontSource interface {
	Face(name string) (font.Layouter, bool)
}

// PDF is a [Surface] which writes a multi-page PDF file.
//
// Errors are sticky: after the first error all further drawing operations
// are ignored, and the error is returned by [PDF.ShowPage] and [PDF.Close].
type PDF struct {
	Err error

	doc   *document.MultiPage
	page  *document.Page
	fonts FontSource

	lineWidth float64
	dash      []float64
}

var _ Surface = (*PDF)(nil)

// CreatePDF creates a new PDF file with all pages of the given size.
func CreatePDF(fileName string, paper *rect.Rect, fonts FontSource) (*PDF, error) {
	doc, err := document.CreateMultiPage(fileName, pageBox(paper), pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}
	return newPDF(doc, fonts), nil
}

// WritePDF writes a PDF document to w, with all pages of the given size.
func WritePDF(w io.Writer, paper *rect.Rect, fonts FontSource) (*PDF, error) {
	doc, err := document.WriteMultiPage(w, pageBox(paper), pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}
	return newPDF(doc, fonts), nil
}

func newPDF(doc *document.MultiPage, fonts FontSource) *PDF {
	return &PDF{
		doc:       doc,
		page:      doc.AddPage(),
		fonts:     fonts,
		lineWidth: -1,
	}
}

func pageBox(paper *rect.Rect) *pdf.Rectangle {
	return &pdf.Rectangle{
		LLx: paper.LLx,
		LLy: paper.LLy,
		URx: paper.URx,
		URy: paper.URy,
	}
}

func (p *PDF) usable() bool {
	if p.Err != nil {
		return false
	}
	if p.page == nil {
		p.Err = errors.New("surface: PDF already closed")
		return false
	}
	return true
}

// SetLineWidth implements the [Surface] interface.
func (p *PDF) SetLineWidth(width float64) {
	if !p.usable() {
		return
	}
	p.lineWidth = width
	p.page.SetLineWidth(width)
}

// SetLineDash implements the [Surface] interface.
func (p *PDF) SetLineDash(pattern []float64) {
	if !p.usable() {
		return
	}
	p.dash = slices.Clone(pattern)
	p.page.SetLineDash(pattern, 0)
}

// Line implements the [Surface] interface.
func (p *PDF) Line(x1, y1, x2, y2 float64) {
	if !p.usable() {
		return
	}
	p.page.MoveTo(x1, y1)
	p.page.LineTo(x2, y2)
	p.page.Stroke()
}

// Rect implements the [Surface] interface.
func (p *PDF) Rect(x, y, width, height float64) {
	if !p.usable() {
		return
	}
	p.page.Rectangle(x, y, width, height)
	p.page.Stroke()
}

// Polyline implements the [Surface] interface.
func (p *PDF) Polyline(points []Point, closed bool) {
	if !p.usable() || len(points) == 0 {
		return
	}
	p.page.MoveTo(points[0].X, points[0].Y)
	for _, pt := range points[1:] {
		p.page.LineTo(pt.X, pt.Y)
	}
	if closed {
		p.page.CloseAndStroke()
	} else {
		p.page.Stroke()
	}
}

// Text implements the [Surface] interface.
func (p *PDF) Text(x, y float64, F Font, s string) {
	p.TextBlock(x, y, F, 0, []string{s})
}

// TextBlock implements the [Surface] interface.
func (p *PDF) TextBlock(x, y float64, F Font, leading float64, lines []string) {
	if !p.usable() || len(lines) == 0 {
		return
	}
	face, ok := p.fonts.Face(F.Face)
	if !ok {
		p.Err = fmt.Errorf("surface: font %q not registered", F.Face)
		return
	}

	p.page.TextBegin()
	p.page.TextSetFont(face, F.Size)
	p.page.TextFirstLine(x, y)
	for i, line := range lines {
		switch i {
		case 0:
			// already positioned
		case 1:
			p.page.TextSecondLine(0, -leading)
		default:
			p.page.TextNextLine()
		}
		p.page.TextShow(line)
	}
	p.page.TextEnd()
}

// ShowPage implements the [Surface] interface.
// Line width and dash pattern carry over to the new page.
func (p *PDF) ShowPage() error {
	if !p.usable() {
		return p.Err
	}
	err := p.page.Close()
	if err != nil {
		p.Err = err
		return err
	}
	p.page = p.doc.AddPage()
	if p.lineWidth >= 0 {
		p.page.SetLineWidth(p.lineWidth)
	}
	if len(p.dash) > 0 {
		p.page.SetLineDash(p.dash, 0)
	}
	return nil
}

// Close finishes the last page and writes the PDF file.
// The file is closed even if an earlier error occurred.
func (p *PDF) Close() error {
	if p.doc == nil {
		return p.Err
	}
	if p.page != nil {
		err := p.page.Close()
		if err != nil && p.Err == nil {
			p.Err = err
		}
		p.page = nil
	}
	err := p.doc.Close()
	if err != nil && p.Err == nil {
		p.Err = err
	}
	p.doc = nil
	return p.Err
}
