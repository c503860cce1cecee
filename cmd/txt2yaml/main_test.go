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

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"seehuhn.de/go/cvmaker"
	"seehuhn.de/go/cvmaker/directive"
)

const layout = "type,param1,param2,param3,param4,param5,param6,param7\n" +
	"line,0mm,10mm,20mm,0mm\n" +
	"new_page\n"

func writeLayout(t *testing.T) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "style.txt")
	err := os.WriteFile(fname, []byte(layout), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	return fname
}

func TestConvert(t *testing.T) {
	in := writeLayout(t)
	for _, name := range []string{"style.yaml", "style.YML"} {
		out := filepath.Join(t.TempDir(), name)
		err := convert(in, out, nil, zap.NewNop())
		if err != nil {
			t.Fatal(err)
		}
		recs, err := directive.ReadYAMLFile(out)
		if err != nil {
			t.Fatal(err)
		}
		var types []string
		for _, rec := range recs {
			types = append(types, rec.Type)
		}
		if d := cmp.Diff([]string{"line", "new_page"}, types); d != "" {
			t.Errorf("%s: wrong directives (-want +got):\n%s", name, d)
		}
	}
}

func TestConvertStdout(t *testing.T) {
	buf := &bytes.Buffer{}
	err := convert(writeLayout(t), "-", buf, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	recs, err := directive.ReadYAML(buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Errorf("got %d directives, want 2", len(recs))
	}
}

func TestConvertOutputExtension(t *testing.T) {
	in := writeLayout(t)
	dir := t.TempDir()
	for _, name := range []string{"style.pdf", "style.txt", "style"} {
		out := filepath.Join(dir, name)
		err := convert(in, out, nil, zap.NewNop())

		var formatErr *cvmaker.FormatError
		if !errors.As(err, &formatErr) {
			t.Fatalf("%s: got %v, want a FormatError", name, err)
		}
		if formatErr.Role != "output" {
			t.Errorf("%s: wrong role %q", name, formatErr.Role)
		}
		if _, err := os.Stat(out); !os.IsNotExist(err) {
			t.Errorf("%s: output file was created", name)
		}
	}
}
