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
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/zap"

	"seehuhn.de/go/cvmaker/compiler"
	"seehuhn.de/go/cvmaker/config"
	"seehuhn.de/go/cvmaker/dataset"
	"seehuhn.de/go/cvmaker/directive"
	"seehuhn.de/go/cvmaker/fontreg"
	"seehuhn.de/go/cvmaker/render"
	"seehuhn.de/go/cvmaker/surface"
)

// Options describe one run of [Generate].
type Options struct {
	DataFile   string
	StyleFile  string
	OutputFile string

	// Fonts are registered after the built-in and configured fonts.
	Fonts []fontreg.File

	// Config holds the run-level settings.  If nil, the defaults of
	// [config.Load] without a configuration file are used.
	Config *config.Config

	Logger  *zap.Logger
	Metrics *render.Metrics

	// If DryRun is set, no PDF file is written.  Instead, a listing of the
	// drawing operations is written to DryRun and OutputFile may be empty.
	DryRun io.Writer
}

// Generate renders a résumé.
//
// File name extensions are checked first, and a [*FormatError] is returned
// if any of them is wrong.  The whole document is rendered before the
// output file is created, so a run which fails while rendering leaves no
// file behind.  If writing the PDF fails, the partial file is removed.
func Generate(opt *Options) error {
	if err := CheckExt("data", opt.DataFile, DataExtensions); err != nil {
		return err
	}
	if err := CheckExt("style", opt.StyleFile, StyleExtensions); err != nil {
		return err
	}
	if opt.DryRun == nil || opt.OutputFile != "" {
		if err := CheckExt("output", opt.OutputFile, OutputExtensions); err != nil {
			return err
		}
	}

	log := opt.Logger
	if log == nil {
		log = zap.NewNop()
	}
	cfg := opt.Config
	if cfg == nil {
		var err error
		cfg, err = config.Load("")
		if err != nil {
			return err
		}
	}

	data, err := dataset.ReadFile(opt.DataFile)
	if err != nil {
		return err
	}
	recs, err := LoadStyle(opt.StyleFile, log)
	if err != nil {
		return err
	}
	paper, err := cfg.PageRect()
	if err != nil {
		return err
	}
	fonts := NewRegistry(cfg, opt.Fonts, log)

	ropt := &render.Options{
		Logger:           log,
		Metrics:          opt.Metrics,
		DefaultLineWidth: cfg.Line.DefaultWidth,
	}

	rec := &surface.Recorder{}
	err = render.New(rec, data, fonts, ropt).Render(recs)
	if err != nil {
		return err
	}
	if opt.DryRun != nil {
		_, err = rec.WriteTo(opt.DryRun)
		return err
	}

	out, err := surface.CreatePDF(opt.OutputFile, paper, fonts)
	if err != nil {
		return err
	}
	err = errors.Join(rec.ApplyTo(out), out.Close())
	if err != nil {
		os.Remove(opt.OutputFile)
		return err
	}
	log.Info("résumé written", zap.String("path", opt.OutputFile))
	return nil
}

// LoadStyle reads the directives from a YAML style file, or compiles them
// from a ".txt" or ".csv" file.
func LoadStyle(path string, log *zap.Logger) ([]directive.Record, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return directive.ReadYAMLFile(path)
	case ".txt", ".csv":
		return compiler.New(log).CompileFile(path)
	default:
		return nil, &FormatError{Role: "style", Path: path, Want: StyleExtensions}
	}
}

// NewRegistry returns the font registry for one run: first the built-in
// faces, then the configured font files in name order, then extra.
// Fonts which cannot be loaded are logged and left out.
func NewRegistry(cfg *config.Config, extra []fontreg.File, log *zap.Logger) *fontreg.Registry {
	reg := fontreg.New(cfg.Font.DefaultFace, log)
	reg.DefaultSize = cfg.Font.DefaultSize
	reg.RegisterBuiltin()

	names := make([]string, 0, len(cfg.Font.Files))
	for name := range cfg.Font.Files {
		names = append(names, name)
	}
	slices.Sort(names)
	files := make([]fontreg.File, len(names))
	for i, name := range names {
		files[i] = fontreg.File{Name: name, Path: cfg.Font.Files[name]}
	}
	reg.RegisterFiles(cfg.Font.Dir, files)

	reg.RegisterFiles("", extra)
	return reg
}
