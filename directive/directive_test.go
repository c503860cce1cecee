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

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/cvmaker/unit"
)

const style = `
- {type: string, x: 30mm, y: 238mm, value: $name_kana, font_size: 9}
- type: box
  x: 0.5mm
  y: 17mm
  width: 175.5mm
  height: 119mm
  line_width: 1.5
- {type: line, x: 100mm, y: 214mm, dx: 0mm, dy: -14mm, line_style: dashed}
- type: lines
  close: true
  line_width: 1.5
  points:
    - {x: 0.5mm, y: 238mm}
    - {x: 139mm, y: 0}
    - {x: 0mm, y: -38mm}
- {type: multi_lines, x: 0.5mm, y: 24mm, dx: 175.5mm, dy: 0, num: 16, sx: 0, sy: 7mm}
- {type: new_page}
- {type: education_experience, y: 124mm, year_x: 5mm, month_x: 25mm, value_x: 35mm, dy: 7mm, caption_x: 95mm, ijo_x: 155mm, font_size: 12}
- {type: license_certification, y: 227mm, year_x: 5mm, month_x: 25mm, value_x: 35mm, dy: -7mm, value: $licences}
- {type: textbox, x: 2mm, y: 148mm, width: 173mm, height: 30mm, value: $hobby, font_size: 13}
`

func mm(s string) unit.Length {
	return unit.MustParse(s)
}

func TestReadAndDecode(t *testing.T) {
	recs, err := ReadYAML(strings.NewReader(style))
	require.NoError(t, err)
	require.Len(t, recs, 9)

	want := []Directive{
		&String{X: mm("30mm"), Y: mm("238mm"), Value: "$name_kana",
			FontParams: FontParams{FontSize: "9"}},
		&Box{X: mm("0.5mm"), Y: mm("17mm"), Width: mm("175.5mm"), Height: mm("119mm"),
			LineParams: LineParams{LineWidth: "1.5"}},
		&Line{X: mm("100mm"), Y: mm("214mm"), DX: 0, DY: mm("-14mm"),
			LineParams: LineParams{LineStyle: "dashed"}},
		&Lines{
			Points: []Delta{
				{X: mm("0.5mm"), Y: mm("238mm")},
				{X: mm("139mm"), Y: 0},
				{X: 0, Y: mm("-38mm")},
			},
			Close:      true,
			LineParams: LineParams{LineWidth: "1.5"},
		},
		&MultiLines{X: mm("0.5mm"), Y: mm("24mm"), DX: mm("175.5mm"), Num: 16, SY: mm("7mm")},
		&NewPage{},
		&EducationExperience{Y: mm("124mm"), YearX: mm("5mm"), MonthX: mm("25mm"),
			ValueX: mm("35mm"), DY: mm("7mm"), CaptionX: mm("95mm"), IjoX: mm("155mm"),
			FontParams: FontParams{FontSize: "12"}},
		&LicenseCertification{Y: mm("227mm"), YearX: mm("5mm"), MonthX: mm("25mm"),
			ValueX: mm("35mm"), DY: mm("-7mm"), Value: "$licences"},
		&Textbox{X: mm("2mm"), Y: mm("148mm"), Width: "173mm", Height: "30mm",
			Value: "$hobby", FontParams: FontParams{FontSize: "13"}},
	}

	for i, rec := range recs {
		d, err := Decode(rec)
		require.NoError(t, err, "record %d", i)
		if diff := cmp.Diff(want[i], d); diff != "" {
			t.Errorf("record %d (-want +got):\n%s", i, diff)
		}
	}
}

func TestRecordFromYAML(t *testing.T) {
	recs, err := ReadYAML(strings.NewReader(style))
	require.NoError(t, err)

	assert.Equal(t, Record{
		Type: "box",
		Params: map[string]string{
			"x": "0.5mm", "y": "17mm", "width": "175.5mm", "height": "119mm",
			"line_width": "1.5",
		},
	}, recs[1])
	assert.Equal(t, "true", recs[3].Params["close"])
	assert.Equal(t, []Point{{"0.5mm", "238mm"}, {"139mm", "0"}, {"0mm", "-38mm"}}, recs[3].Points)
}

func TestYAMLRoundTrip(t *testing.T) {
	recs, err := ReadYAML(strings.NewReader(style))
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, WriteYAML(buf, recs))
	assert.True(t, strings.HasPrefix(buf.String(), "- type: string\n"), buf.String())

	again, err := ReadYAML(buf)
	require.NoError(t, err)
	if diff := cmp.Diff(recs, again); diff != "" {
		t.Errorf("round trip changed records (-want +got):\n%s", diff)
	}
}

func TestDecodeUnknown(t *testing.T) {
	for _, typ := range []string{"bogus", "", "String"} {
		_, err := Decode(Record{Type: typ})
		var unknown *UnknownTypeError
		require.True(t, errors.As(err, &unknown), "type %q: got %v", typ, err)
		assert.Equal(t, typ, unknown.Type)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		rec   Record
		field string
		unit  bool
	}{
		{
			name:  "missing width",
			rec:   Record{Type: "box", Params: map[string]string{"x": "0", "y": "0", "height": "1mm"}},
			field: "width",
		},
		{
			name:  "bad unit",
			rec:   Record{Type: "line", Params: map[string]string{"x": "0", "y": "0", "dx": "3px", "dy": "0"}},
			field: "dx",
			unit:  true,
		},
		{
			name:  "bad point",
			rec:   Record{Type: "lines", Points: []Point{{"0", "0"}, {"1cm", "up"}}},
			field: "points[1].y",
			unit:  true,
		},
		{
			name:  "no points",
			rec:   Record{Type: "lines"},
			field: "Points",
		},
		{
			name: "negative num",
			rec: Record{Type: "multi_lines", Params: map[string]string{
				"x": "0", "y": "0", "dx": "1", "dy": "0", "num": "-1", "sx": "0", "sy": "7mm"}},
			field: "Num",
		},
		{
			name: "num not a number",
			rec: Record{Type: "multi_lines", Params: map[string]string{
				"x": "0", "y": "0", "dx": "1", "dy": "0", "num": "many", "sx": "0", "sy": "7mm"}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.rec)
			var fieldErr *FieldError
			require.True(t, errors.As(err, &fieldErr), "got %v", err)
			assert.Equal(t, tc.rec.Type, fieldErr.Type)
			assert.Equal(t, tc.field, fieldErr.Field)

			var syntaxErr *unit.SyntaxError
			assert.Equal(t, tc.unit, errors.As(err, &syntaxErr))
		})
	}
}

func TestDecodeCloseFlag(t *testing.T) {
	for value, want := range map[string]bool{"true": true, "false": false, "1": true, "": false} {
		rec := Record{
			Type:   "lines",
			Params: map[string]string{"close": value},
			Points: []Point{{"0", "0"}, {"10", "0"}},
		}
		d, err := Decode(rec)
		require.NoError(t, err, value)
		assert.Equal(t, want, d.(*Lines).Close, value)
	}
}

func TestDecodeTextboxSize(t *testing.T) {
	rec := Record{Type: "textbox", Params: map[string]string{
		"x": "0", "y": "0", "width": "auto", "height": "wide"}}
	d, err := Decode(rec)
	require.NoError(t, err)
	want := &Textbox{Width: "auto", Height: "wide"}
	if diff := cmp.Diff(want, d); diff != "" {
		t.Errorf("unexpected textbox (-want +got):\n%s", diff)
	}
}

func TestDecodeNumDecimal(t *testing.T) {
	for _, tc := range []struct {
		num  string
		want int
	}{
		{"010", 10},
		{" 3 ", 3},
		{"0", 0},
	} {
		rec := Record{Type: "multi_lines", Params: map[string]string{
			"x": "0", "y": "0", "dx": "1", "dy": "0", "num": tc.num, "sx": "0", "sy": "1"}}
		d, err := Decode(rec)
		require.NoError(t, err, tc.num)
		assert.Equal(t, tc.want, d.(*MultiLines).Num, tc.num)
	}

	for _, num := range []string{"0x3", "1e2", "2.5"} {
		rec := Record{Type: "multi_lines", Params: map[string]string{
			"x": "0", "y": "0", "dx": "1", "dy": "0", "num": num, "sx": "0", "sy": "1"}}
		_, err := Decode(rec)
		var fieldErr *FieldError
		assert.True(t, errors.As(err, &fieldErr), "num %q: got %v", num, err)
	}
}
