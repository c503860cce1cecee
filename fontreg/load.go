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

package fontreg

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/text/language"
	"seehuhn.de/go/pdf/font"
	"seehuhn.de/go/pdf/font/embed"
	"seehuhn.de/go/pdf/font/gofont"
	"seehuhn.de/go/pdf/font/standard"
	"seehuhn.de/go/sfnt"
)

type builtinFace struct {
	name string
	load func() (font.Layouter, error)
}

func goFace(f gofont.Font) func() (font.Layouter, error) {
	return func() (font.Layouter, error) {
		return f.New(nil)
	}
}

func standardFace(f standard.Font) func() (font.Layouter, error) {
	return func() (font.Layouter, error) {
		return f.New(), nil
	}
}

// builtin lists the faces which are available without any font files.
var builtin = []builtinFace{
	{"Go-Regular", goFace(gofont.Regular)},
	{"Go-Bold", goFace(gofont.Bold)},
	{"Go-Italic", goFace(gofont.Italic)},
	{"Go-Mono", goFace(gofont.Mono)},
	{"Times-Roman", standardFace(standard.TimesRoman)},
	{"Helvetica", standardFace(standard.Helvetica)},
	{"Courier", standardFace(standard.Courier)},
}

// BuiltinNames returns the names of the built-in faces, in the order
// in which [Registry.RegisterBuiltin] registers them.
func BuiltinNames() []string {
	names := make([]string, len(builtin))
	for i, b := range builtin {
		names[i] = b.name
	}
	return names
}

// RegisterBuiltin registers the Go fonts and some of the standard PDF fonts.
// Fonts which fail to load are logged and left out.
func (r *Registry) RegisterBuiltin() {
	for _, b := range builtin {
		F, err := b.load()
		if err != nil {
			r.log.Warn("cannot load built-in font",
				zap.String("face", b.name), zap.Error(err))
			continue
		}
		r.Add(b.name, F)
	}
}

// RegisterFile loads a TrueType or OpenType font file and registers it
// under name.  If the file cannot be loaded, the failure is logged, the
// font is left out and a [*RegistrationError] is returned.  Callers are
// free to ignore the error.
func (r *Registry) RegisterFile(name, path string) error {
	F, err := loadFile(path)
	if err != nil {
		err = &RegistrationError{Name: name, Path: path, Err: err}
		r.log.Warn("cannot register font",
			zap.String("face", name), zap.String("path", path), zap.Error(err))
		return err
	}
	r.Add(name, F)
	r.log.Debug("font registered", zap.String("face", name), zap.String("path", path))
	return nil
}

// RegisterFiles registers every name/file pair in files.  Relative file
// names are taken relative to dir.  Failures are logged and skipped.
func (r *Registry) RegisterFiles(dir string, files []File) {
	for _, f := range files {
		path := f.Path
		if dir != "" && !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		_ = r.RegisterFile(f.Name, path)
	}
}

// File names a font file together with the face name it is registered as.
type File struct {
	Name string
	Path string
}

func loadFile(path string) (font.Layouter, error) {
	info, err := sfnt.ReadFile(path)
	if err != nil {
		return nil, err
	}
	// CJK fonts have far more glyphs than a simple font can address.
	return embed.OpenTypeFont(info, &embed.Options{
		Language:  language.Japanese,
		Composite: true,
	})
}

// RegistrationError is returned when a font file cannot be registered.
type RegistrationError struct {
	Name string
	Path string
	Err  error
}

func (err *RegistrationError) Error() string {
	return fmt.Sprintf("font %q (%s): %v", err.Name, err.Path, err.Err)
}

func (err *RegistrationError) Unwrap() error {
	return err.Err
}
