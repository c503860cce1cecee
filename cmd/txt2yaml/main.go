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

// Txt2yaml converts a layout in the comma separated text notation into the
// equivalent YAML directive list.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"seehuhn.de/go/cvmaker"
	"seehuhn.de/go/cvmaker/compiler"
	"seehuhn.de/go/cvmaker/directive"
	"seehuhn.de/go/cvmaker/internal/buildinfo"
	"seehuhn.de/go/cvmaker/internal/logger"
)

var (
	inputArg  = flag.String("i", "style.txt", "read the layout from `file` (.txt, .csv)")
	outputArg = flag.String("o", "style.yaml", "write the YAML layout to `file` (\"-\" for stdout)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "txt2yaml - convert a text layout into YAML\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("txt2yaml"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  txt2yaml [-i style.txt] [-o style.yaml]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "txt2yaml:", err)
		os.Exit(1)
	}
}

func run() error {
	log, err := logger.New(logger.DefaultConfig())
	if err != nil {
		return err
	}
	defer log.Sync()

	return convert(*inputArg, *outputArg, os.Stdout, log)
}

// convert compiles the text layout in input and writes it as YAML to the
// file output, or to stdout if output is "-".
func convert(input, output string, stdout io.Writer, log *zap.Logger) error {
	if output != "-" {
		err := cvmaker.CheckExt("output", output, cvmaker.DataExtensions)
		if err != nil {
			return err
		}
	}

	recs, err := compiler.New(log).CompileFile(input)
	if err != nil {
		return err
	}

	if output == "-" {
		return directive.WriteYAML(stdout, recs)
	}
	out, err := os.Create(output)
	if err != nil {
		return err
	}
	err = directive.WriteYAML(out, recs)
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
