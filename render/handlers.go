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

package render

import (
	"cmp"
	"strconv"
	"strings"
	"unicode/utf8"

	"seehuhn.de/go/cvmaker/dataset"
	"seehuhn.de/go/cvmaker/directive"
	"seehuhn.de/go/cvmaker/surface"
)

// Default texts of the education and experience table.
const (
	EducationCaption  = "学歴"
	ExperienceCaption = "職歴"
	Closing           = "以上"
)

// monthShift is the fraction of the font size by which each additional
// character moves a month number to the left.  This approximates right
// alignment without measuring glyphs.
const monthShift = 0.3

// leadingFactor gives the distance between baselines in a text box, in
// multiples of the font size.
const leadingFactor = 1.2

var dashPatterns = map[string][]float64{
	"solid":  nil,
	"dashed": {2, 2},
	"chain":  {2, 2, 10, 2},
}

// lineStyle sets dash pattern and line width for the next stroke.
// Unknown styles give solid lines, a missing or malformed width gives the
// default width.
func (r *Renderer) lineStyle(p directive.LineParams) {
	r.s.SetLineDash(dashPatterns[strings.TrimSpace(p.LineStyle)])

	width := r.lineWidth
	if w, err := strconv.ParseFloat(strings.TrimSpace(p.LineWidth), 64); err == nil {
		width = w
	}
	r.s.SetLineWidth(width)
}

func (r *Renderer) font(p directive.FontParams) (surface.Font, error) {
	sel, err := r.fonts.Select(p.FontFace, p.FontSize)
	if err != nil {
		return surface.Font{}, err
	}
	if sel.Fallback {
		r.metrics.fontFallback()
	}
	return surface.Font{Face: sel.Face, Size: sel.Size}, nil
}

// text draws s, unless s is empty.
func (r *Renderer) text(x, y float64, F surface.Font, s string) {
	if s == "" {
		return
	}
	r.s.Text(x, y, F, s)
}

func (r *Renderer) drawString(d *directive.String) error {
	F, err := r.font(d.FontParams)
	if err != nil {
		return err
	}
	r.text(d.X.Points(), d.Y.Points(), F, r.data.Resolve(d.Value))
	return nil
}

func (r *Renderer) drawBox(d *directive.Box) error {
	r.lineStyle(d.LineParams)
	r.s.Rect(d.X.Points(), d.Y.Points(), d.Width.Points(), d.Height.Points())
	return nil
}

func (r *Renderer) drawLine(d *directive.Line) error {
	r.lineStyle(d.LineParams)
	x, y := d.X.Points(), d.Y.Points()
	r.s.Line(x, y, x+d.DX.Points(), y+d.DY.Points())
	return nil
}

func (r *Renderer) drawLines(d *directive.Lines) error {
	r.lineStyle(d.LineParams)
	path := make([]surface.Point, len(d.Points))
	var cur surface.Point
	for i, p := range d.Points {
		if i == 0 {
			cur = surface.Point{X: p.X.Points(), Y: p.Y.Points()}
		} else {
			cur.X += p.X.Points()
			cur.Y += p.Y.Points()
		}
		path[i] = cur
	}
	r.s.Polyline(path, d.Close)
	return nil
}

func (r *Renderer) drawMultiLines(d *directive.MultiLines) error {
	r.lineStyle(d.LineParams)
	x0, y0 := d.X.Points(), d.Y.Points()
	dx, dy := d.DX.Points(), d.DY.Points()
	sx, sy := d.SX.Points(), d.SY.Points()
	for i := range d.Num + 1 {
		x := x0 + float64(i)*sx
		y := y0 + float64(i)*sy
		r.s.Line(x, y, x+dx, y+dy)
	}
	return nil
}

func (r *Renderer) newPage(*directive.NewPage) error {
	return r.s.ShowPage()
}

// columns are the horizontal positions of a year/month/value table.
type columns struct {
	year, month, value float64
}

func (c columns) monthX(month string, size float64) float64 {
	n := utf8.RuneCountInString(month)
	return c.month - float64(n-1)*size*monthShift
}

// rows draws one table row per entry, starting at y and moving by dy after
// every row.  It returns the position of the next row.
func (r *Renderer) rows(c columns, y, dy float64, F surface.Font, entries []dataset.Entry) float64 {
	for _, e := range entries {
		r.text(c.year, y, F, e.Year)
		r.text(c.monthX(e.Month, F.Size), y, F, e.Month)
		r.text(c.value, y, F, e.Value)
		y += dy
	}
	return y
}

func (r *Renderer) drawEducationExperience(d *directive.EducationExperience) error {
	F, err := r.font(d.FontParams)
	if err != nil {
		return err
	}
	education, err := r.data.History(dataset.Education)
	if err != nil {
		return err
	}
	experience, err := r.data.History(dataset.Experience)
	if err != nil {
		return err
	}

	c := columns{year: d.YearX.Points(), month: d.MonthX.Points(), value: d.ValueX.Points()}
	captionX := d.CaptionX.Points()
	dy := -d.DY.Points()

	y := d.Y.Points()
	r.text(captionX, y, F, cmp.Or(d.EducationCaption, EducationCaption))
	y = r.rows(c, y+dy, dy, F, education)
	r.text(captionX, y, F, cmp.Or(d.ExperienceCaption, ExperienceCaption))
	y = r.rows(c, y+dy, dy, F, experience)
	r.text(d.IjoX.Points(), y, F, cmp.Or(d.Closing, Closing))
	return nil
}

func (r *Renderer) drawLicenseCertification(d *directive.LicenseCertification) error {
	F, err := r.font(d.FontParams)
	if err != nil {
		return err
	}
	entries, err := r.data.Entries(d.Value)
	if err != nil {
		return &skipError{
			reason: ReasonMalformedList,
			msg:    "malformed licence list, directive skipped",
			err:    err,
		}
	}

	c := columns{year: d.YearX.Points(), month: d.MonthX.Points(), value: d.ValueX.Points()}
	r.rows(c, d.Y.Points(), d.DY.Points(), F, entries)
	return nil
}

func (r *Renderer) drawTextbox(d *directive.Textbox) error {
	F, err := r.font(d.FontParams)
	if err != nil {
		return err
	}
	text := strings.TrimSpace(r.data.Resolve(d.Value))
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	r.s.TextBlock(d.X.Points(), d.Y.Points(), F, leadingFactor*F.Size, lines)
	return nil
}
