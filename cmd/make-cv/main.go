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

// Make-cv renders a résumé as a PDF file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"seehuhn.de/go/cvmaker"
	"seehuhn.de/go/cvmaker/config"
	"seehuhn.de/go/cvmaker/fontreg"
	"seehuhn.de/go/cvmaker/internal/buildinfo"
	"seehuhn.de/go/cvmaker/internal/logger"
	"seehuhn.de/go/cvmaker/internal/profile"
	"seehuhn.de/go/cvmaker/render"
)

var (
	inputArg   = flag.String("i", "data.yaml", "read the résumé data from `file` (.yaml, .yml)")
	styleArg   = flag.String("s", "style.yaml", "read the layout from `file` (.yaml, .yml, .txt, .csv)")
	outputArg  = flag.String("o", "output.pdf", "write the PDF to `file`")
	configArg  = flag.String("config", "", "read settings from `file`")
	dryRunArg  = flag.Bool("n", false, "list the drawing operations instead of writing a PDF")
	metricsArg = flag.String("metrics", "", "write run statistics to `file` in Prometheus text format")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
)

var fontArgs []fontreg.File

func parseFont(s string) error {
	name, path, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	path = strings.TrimSpace(path)
	if !ok || name == "" || path == "" {
		return errors.New("expected name=file")
	}
	fontArgs = append(fontArgs, fontreg.File{Name: name, Path: path})
	return nil
}

func main() {
	flag.Func("f", "register the font `name=file` (may be repeated)", parseFont)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "make-cv - render a résumé as a PDF file\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("make-cv"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  make-cv [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  make-cv -i data.yaml -s style.txt -o cv.pdf\n")
		fmt.Fprintf(os.Stderr, "  make-cv -f msgothic=msgothic.ttc -s style.yaml\n")
	}
	flag.Parse()

	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "make-cv:", err)
		os.Exit(1)
	}
}

func run() (err error) {
	stop, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, stop())
	}()

	cfg, err := config.Load(*configArg)
	if err != nil {
		return err
	}
	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return err
	}
	defer log.Sync()
	log.Debug("starting", zap.String("version", buildinfo.Version()))

	var reg *prometheus.Registry
	var metrics *render.Metrics
	if *metricsArg != "" {
		reg = prometheus.NewRegistry()
		metrics = render.NewMetrics(reg)
	}

	opt := &cvmaker.Options{
		DataFile:   *inputArg,
		StyleFile:  *styleArg,
		OutputFile: *outputArg,
		Fonts:      fontArgs,
		Config:     cfg,
		Logger:     log,
		Metrics:    metrics,
	}
	if *dryRunArg {
		opt.OutputFile = ""
		opt.DryRun = os.Stdout
	}
	err = cvmaker.Generate(opt)
	if err != nil {
		return err
	}

	if reg != nil {
		err = prometheus.WriteToTextfile(*metricsArg, reg)
		if err != nil {
			return err
		}
	}
	return nil
}
