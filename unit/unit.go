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

// Package unit converts human-written dimension strings like "30mm" or
// "1.5inch" into PDF device units (points, 1/72 inch).
package unit

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Length is a length in PDF device units.
type Length float64

// Points returns the length as a plain float64.
func (l Length) Points() float64 {
	return float64(l)
}

// String formats the length in points.
func (l Length) String() string {
	return strconv.FormatFloat(float64(l), 'f', -1, 64) + "pt"
}

// A Unit is a physical unit which can be used in dimension strings.
type Unit struct {
	Suffix string
	scale  decimal.Decimal
}

// The units recognised by [Parse].
var (
	Inch = Unit{Suffix: "inch", scale: decimal.NewFromInt(72)}
	CM   = Unit{Suffix: "cm", scale: decimal.NewFromInt(72).Div(decimal.RequireFromString("2.54"))}
	MM   = Unit{Suffix: "mm", scale: decimal.NewFromInt(72).Div(decimal.RequireFromString("25.4"))}
	Pica = Unit{Suffix: "pica", scale: decimal.NewFromInt(12)}
)

// Units lists all units with a suffix.  The suffixes are mutually exclusive,
// so the order does not matter.
var Units = []Unit{MM, CM, Inch, Pica}

// Scale returns the size of one unit in points.
func (u Unit) Scale() float64 {
	f, _ := u.scale.Float64()
	return f
}

// Of returns the length of n units.
func (u Unit) Of(n float64) Length {
	f, _ := decimal.NewFromFloat(n).Mul(u.scale).Float64()
	return Length(f)
}

// Parse converts a dimension string into device units.
//
// The string consists of a number, optionally followed by one of the
// suffixes "mm", "cm", "inch" or "pica".  Numbers without a suffix are
// taken to be in points.  Surrounding white space is ignored.
func Parse(s string) (Length, error) {
	body := strings.TrimSpace(s)

	scale := decimal.NewFromInt(1)
	for _, u := range Units {
		if num, ok := strings.CutSuffix(body, u.Suffix); ok {
			body = strings.TrimSpace(num)
			scale = u.scale
			break
		}
	}

	n, err := decimal.NewFromString(body)
	if err != nil || body == "" {
		return 0, &SyntaxError{Input: s}
	}
	f, _ := n.Mul(scale).Float64()
	return Length(f), nil
}

// MustParse is like [Parse] but panics if s cannot be parsed.
func MustParse(s string) Length {
	l, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return l
}

// SyntaxError is returned by [Parse] for strings which are neither a number
// nor a number followed by a known unit.
type SyntaxError struct {
	Input string
}

func (err *SyntaxError) Error() string {
	return "unit: invalid dimension " + strconv.Quote(err.Input)
}
