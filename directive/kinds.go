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

package directive

import "seehuhn.de/go/cvmaker/unit"

// Kind is the type tag of a directive.
type Kind string

// These are the directive types.
const (
	KindString               Kind = "string"
	KindBox                  Kind = "box"
	KindLine                 Kind = "line"
	KindLines                Kind = "lines"
	KindMultiLines           Kind = "multi_lines"
	KindNewPage              Kind = "new_page"
	KindEducationExperience  Kind = "education_experience"
	KindLicenseCertification Kind = "license_certification"
	KindTextbox              Kind = "textbox"
)

// Directive is one decoded drawing instruction.
// The concrete types are the pointer types of the structs in this package.
type Directive interface {
	Kind() Kind
}

// FontParams are the optional font parameters of text directives.
type FontParams struct {
	FontFace string `mapstructure:"font_face"`
	FontSize string `mapstructure:"font_size"`
}

// LineParams are the optional stroke parameters of line directives.
type LineParams struct {
	LineStyle string `mapstructure:"line_style"`
	LineWidth string `mapstructure:"line_width"`
}

// String draws one line of text.
type String struct {
	X     unit.Length `mapstructure:"x"`
	Y     unit.Length `mapstructure:"y"`
	Value string      `mapstructure:"value"`

	FontParams `mapstructure:",squash"`
}

// Box draws the outline of a rectangle.
type Box struct {
	X      unit.Length `mapstructure:"x"`
	Y      unit.Length `mapstructure:"y"`
	Width  unit.Length `mapstructure:"width"`
	Height unit.Length `mapstructure:"height"`

	LineParams `mapstructure:",squash"`
}

// Line draws one segment from (X, Y) to (X+DX, Y+DY).
type Line struct {
	X  unit.Length `mapstructure:"x"`
	Y  unit.Length `mapstructure:"y"`
	DX unit.Length `mapstructure:"dx"`
	DY unit.Length `mapstructure:"dy"`

	LineParams `mapstructure:",squash"`
}

// Delta is a point of a polyline.  The first point of a [Lines] directive
// is absolute, all others are relative to the previous point.
type Delta struct {
	X unit.Length `mapstructure:"x"`
	Y unit.Length `mapstructure:"y"`
}

// Lines draws a polyline.
type Lines struct {
	Points []Delta `mapstructure:"points" validate:"min=1"`
	Close  bool    `mapstructure:"close"`

	LineParams `mapstructure:",squash"`
}

// MultiLines draws Num+1 parallel copies of the segment (DX, DY).
// Each copy starts (SX, SY) away from the start of the previous one.
type MultiLines struct {
	X   unit.Length `mapstructure:"x"`
	Y   unit.Length `mapstructure:"y"`
	DX  unit.Length `mapstructure:"dx"`
	DY  unit.Length `mapstructure:"dy"`
	Num int         `mapstructure:"num" validate:"gte=0"`
	SX  unit.Length `mapstructure:"sx"`
	SY  unit.Length `mapstructure:"sy"`

	LineParams `mapstructure:",squash"`
}

// NewPage starts a new page.
type NewPage struct{}

// EducationExperience draws the education and work history tables.
//
// Rows start at Y and move down by DY.  IjoX is the horizontal position
// of the closing marker after the last row.
type EducationExperience struct {
	Y        unit.Length `mapstructure:"y"`
	YearX    unit.Length `mapstructure:"year_x"`
	MonthX   unit.Length `mapstructure:"month_x"`
	ValueX   unit.Length `mapstructure:"value_x"`
	IjoX     unit.Length `mapstructure:"ijo_x"`
	DY       unit.Length `mapstructure:"dy"`
	CaptionX unit.Length `mapstructure:"caption_x"`

	EducationCaption  string `mapstructure:"education_caption"`
	ExperienceCaption string `mapstructure:"experience_caption"`
	Closing           string `mapstructure:"closing"`

	FontParams `mapstructure:",squash"`
}

// LicenseCertification draws a table of licences and certifications.
// Rows start at Y, and Y is incremented by DY after every row.
type LicenseCertification struct {
	Y      unit.Length `mapstructure:"y"`
	YearX  unit.Length `mapstructure:"year_x"`
	MonthX unit.Length `mapstructure:"month_x"`
	ValueX unit.Length `mapstructure:"value_x"`
	DY     unit.Length `mapstructure:"dy"`
	Value  string      `mapstructure:"value"`

	FontParams `mapstructure:",squash"`
}

// Textbox draws a block of pre-wrapped text.
// Width and Height are kept as written and are not used for line breaking,
// so values like "auto" are fine.
type Textbox struct {
	X      unit.Length `mapstructure:"x"`
	Y      unit.Length `mapstructure:"y"`
	Width  string      `mapstructure:"width"`
	Height string      `mapstructure:"height"`
	Value  string      `mapstructure:"value"`

	FontParams `mapstructure:",squash"`
}

func (*String) Kind() Kind               { return KindString }
func (*Box) Kind() Kind                  { return KindBox }
func (*Line) Kind() Kind                 { return KindLine }
func (*Lines) Kind() Kind                { return KindLines }
func (*MultiLines) Kind() Kind           { return KindMultiLines }
func (*NewPage) Kind() Kind              { return KindNewPage }
func (*EducationExperience) Kind() Kind  { return KindEducationExperience }
func (*LicenseCertification) Kind() Kind { return KindLicenseCertification }
func (*Textbox) Kind() Kind              { return KindTextbox }
