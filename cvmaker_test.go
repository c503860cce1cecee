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

package cvmaker

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"seehuhn.de/go/cvmaker/config"
	"seehuhn.de/go/cvmaker/directive"
	"seehuhn.de/go/cvmaker/fontreg"
	"seehuhn.de/go/cvmaker/render"
)

const testData = `
name: Taro Yamada
hobby: |
  Reading
  Cycling
education:
  - {year: 2009, month: 4, value: University of Tokyo}
experience:
  - {year: 2013, month: 4, value: Joined ACME}
licences:
  - {year: 2010, month: 4, value: Driving licence}
`

const testStyleText = `type,param1,param2,param3,param4
box,0mm,120mm,177mm,40mm,line_width=2
string,30mm,238mm,$name,font_size=9
bogus,1,2
lines,3,0mm,0mm,10mm,0mm,0mm,10mm,close=true,line_style=dashed
new_page
education_experience,124mm,5mm,25mm,35mm,7mm,95mm,155mm
license_certification,227mm,5mm,25mm,35mm,-7mm,$licences
textbox,2mm,148mm,173mm,30mm,$hobby
`

const testStyleYAML = `
- {type: box, x: 0mm, y: 120mm, width: 177mm, height: 40mm, line_width: 2}
- {type: string, x: 30mm, y: 238mm, value: $name, font_size: 9}
- type: lines
  points:
    - {x: 0mm, y: 0mm}
    - {x: 10mm, y: 0mm}
    - {x: 0mm, y: 10mm}
  close: true
  line_style: dashed
- {type: new_page}
- {type: education_experience, y: 124mm, year_x: 5mm, month_x: 25mm,
   value_x: 35mm, dy: 7mm, caption_x: 95mm, ijo_x: 155mm}
- {type: license_certification, y: 227mm, year_x: 5mm, month_x: 25mm,
   value_x: 35mm, dy: -7mm, value: $licences}
- {type: textbox, x: 2mm, y: 148mm, width: 173mm, height: 30mm, value: $hobby}
`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func testConfig() *config.Config {
	return &config.Config{
		Page: config.PageConfig{Size: "B5", Orientation: "portrait"},
		Font: config.FontConfig{DefaultFace: "msmincho", DefaultSize: 12},
		Line: config.LineConfig{DefaultWidth: 0.5},
		Log:  config.LogConfig{Level: "info", Format: "auto"},
	}
}

func TestFormatError(t *testing.T) {
	dir := t.TempDir()
	data := writeFile(t, dir, "data.yaml", testData)
	style := writeFile(t, dir, "style.txt", testStyleText)
	out := filepath.Join(dir, "out.pdf")

	tests := []struct {
		role                string
		data, style, output string
	}{
		{"data", filepath.Join(dir, "data.json"), style, out},
		{"style", data, filepath.Join(dir, "style.xml"), out},
		{"output", data, style, filepath.Join(dir, "out.png")},
		{"output", data, style, ""},
	}
	for _, tc := range tests {
		t.Run(tc.role, func(t *testing.T) {
			err := Generate(&Options{
				DataFile:   tc.data,
				StyleFile:  tc.style,
				OutputFile: tc.output,
				Config:     testConfig(),
			})
			var formatErr *FormatError
			require.True(t, errors.As(err, &formatErr), "got %v", err)
			assert.Equal(t, tc.role, formatErr.Role)
		})
	}

	_, err := os.Stat(filepath.Join(dir, "out.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestFrontEndsAgree(t *testing.T) {
	dir := t.TempDir()
	fromText, err := LoadStyle(writeFile(t, dir, "style.csv", testStyleText), nil)
	require.NoError(t, err)
	fromYAML, err := LoadStyle(writeFile(t, dir, "style.yml", testStyleYAML), nil)
	require.NoError(t, err)

	if d := cmp.Diff(fromYAML, fromText, cmpopts.EquateEmpty()); d != "" {
		t.Errorf("text and YAML notation differ (-yaml +text):\n%s", d)
	}
	for _, rec := range fromText {
		_, err := directive.Decode(rec)
		assert.NoError(t, err, rec.Type)
	}
}

func TestGenerateDryRun(t *testing.T) {
	dir := t.TempDir()
	core, logs := observer.New(zapcore.InfoLevel)
	metrics := render.NewMetrics(prometheus.NewRegistry())

	buf := &bytes.Buffer{}
	err := Generate(&Options{
		DataFile:  writeFile(t, dir, "data.yaml", testData),
		StyleFile: writeFile(t, dir, "style.txt", testStyleText),
		Config:    testConfig(),
		Logger:    zap.New(core),
		Metrics:   metrics,
		DryRun:    buf,
	})
	require.NoError(t, err)

	listing := buf.String()
	assert.True(t, strings.HasPrefix(listing, "# page 1\n"))
	assert.Contains(t, listing, "# page 2\n")
	assert.Contains(t, listing, `"Taro Yamada"`)
	assert.Contains(t, listing, "closed")
	assert.Contains(t, listing, `"学歴"`)
	assert.Contains(t, listing, `"Driving licence"`)
	assert.Contains(t, listing, `["Reading" "Cycling"]`)

	assert.Equal(t, 1, logs.FilterMessage("unknown directive type, row skipped").Len())
	fallbacks := logs.FilterMessage("font not available, using fallback").All()
	require.NotEmpty(t, fallbacks)
	assert.Equal(t, "Go-Regular", fallbacks[0].ContextMap()["fallback"])

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Rendered.WithLabelValues("new_page")))
	assert.Equal(t, float64(len(fallbacks)), testutil.ToFloat64(metrics.FontFallbacks))
}

func TestGeneratePDF(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig()
	cfg.Font.DefaultFace = "Go-Regular"
	cfg.Page.Orientation = "landscape"

	out := filepath.Join(dir, "cv.pdf")
	style := `
- {type: box, x: 10mm, y: 10mm, width: 50mm, height: 20mm, line_style: chain}
- {type: string, x: 15mm, y: 15mm, value: $name, font_face: Helvetica}
- {type: new_page}
- {type: textbox, x: 15mm, y: 100mm, value: $hobby}
`
	err := Generate(&Options{
		DataFile:   writeFile(t, dir, "data.yaml", testData),
		StyleFile:  writeFile(t, dir, "style.yaml", style),
		OutputFile: out,
		Config:     cfg,
	})
	require.NoError(t, err)

	body, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF-")))
}

func TestGenerateRemovesOutputOnError(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "cv.pdf")
	style := `
- {type: box, x: 0, y: 0, width: 10mm, height: 10mm}
- {type: line, x: 12furlong, y: 0, dx: 1, dy: 1}
`
	err := Generate(&Options{
		DataFile:   writeFile(t, dir, "data.yaml", testData),
		StyleFile:  writeFile(t, dir, "style.yaml", style),
		OutputFile: out,
		Config:     testConfig(),
	})
	var fieldErr *directive.FieldError
	require.True(t, errors.As(err, &fieldErr), "got %v", err)

	_, err = os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}

func TestGenerateDrawErrorWritesNothing(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "cv.pdf")
	style := `
- {type: box, x: 0, y: 0, width: 10mm, height: 10mm}
- {type: string, x: 0, y: 0, value: $name, font_size: large}
`
	err := Generate(&Options{
		DataFile:   writeFile(t, dir, "data.yaml", testData),
		StyleFile:  writeFile(t, dir, "style.yaml", style),
		OutputFile: out,
		Config:     testConfig(),
	})
	require.Error(t, err)

	_, err = os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}

func TestNewRegistry(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	cfg := testConfig()
	cfg.Font.DefaultSize = 10
	cfg.Font.Dir = t.TempDir()
	cfg.Font.Files = map[string]string{"msmincho": "msmincho.ttc", "meiryo": "meiryo.ttc"}

	extra := []fontreg.File{{Name: "custom", Path: filepath.Join(cfg.Font.Dir, "custom.ttf")}}
	reg := NewRegistry(cfg, extra, zap.New(core))

	assert.Equal(t, fontreg.BuiltinNames(), reg.Names())
	assert.Equal(t, 10.0, reg.DefaultSize)

	failed := logs.FilterMessage("cannot register font").All()
	require.Len(t, failed, 3)
	var faces []string
	for _, entry := range failed {
		faces = append(faces, entry.ContextMap()["face"].(string))
	}
	assert.Equal(t, []string{"meiryo", "msmincho", "custom"}, faces)
}
