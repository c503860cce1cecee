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

// Package compiler translates the line-oriented style notation into
// directive records.
//
// Each row of the input is a comma-separated list of tokens.  The first row
// is a header and is ignored.  The first token of every other row names
// the directive type, followed by a fixed number of positional parameters
// which depends on the type.  Any remaining tokens of the form key=value
// are added as extra parameters:
//
//	box,0mm,120mm,177mm,40mm,line_width=2
//	lines,3,0mm,0mm,10mm,0mm,0mm,10mm,close=true
//
// Rows starting with "#" are comments.  Blank rows are ignored.
package compiler

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"seehuhn.de/go/cvmaker/directive"
)

// builder converts the tokens of one row, without the leading type token,
// into a record.  It returns the tokens which were not consumed.
type builder func(rec *directive.Record, args []string) ([]string, error)

// positional returns a builder which assigns the leading tokens to the
// given parameter names.
func positional(names ...string) builder {
	return func(rec *directive.Record, args []string) ([]string, error) {
		if len(args) < len(names) {
			return nil, fmt.Errorf("%s needs %d parameters (%s), got %d",
				rec.Type, len(names), strings.Join(names, ","), len(args))
		}
		for i, name := range names {
			rec.Set(name, args[i])
		}
		return args[len(names):], nil
	}
}

// polyline reads a point count followed by that many x,y pairs.
func polyline(rec *directive.Record, args []string) ([]string, error) {
	if len(args) < 1 {
		return nil, errors.New("lines needs a point count")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return nil, fmt.Errorf("lines: invalid point count %q", args[0])
	}
	args = args[1:]
	if len(args) < 2*n {
		return nil, fmt.Errorf("lines: %d points need %d coordinates, got %d",
			n, 2*n, len(args))
	}
	rec.Points = make([]directive.Point, n)
	for i := range n {
		rec.Points[i] = directive.Point{X: args[2*i], Y: args[2*i+1]}
	}
	return args[2*n:], nil
}

var builders = map[directive.Kind]builder{
	directive.KindString:               positional("x", "y", "value"),
	directive.KindBox:                  positional("x", "y", "width", "height"),
	directive.KindLine:                 positional("x", "y", "dx", "dy"),
	directive.KindLines:                polyline,
	directive.KindMultiLines:           positional("x", "y", "dx", "dy", "num", "sx", "sy"),
	directive.KindNewPage:              positional(),
	directive.KindEducationExperience:  positional("y", "year_x", "month_x", "value_x", "dy", "caption_x", "ijo_x"),
	directive.KindLicenseCertification: positional("y", "year_x", "month_x", "value_x", "dy", "value"),
	directive.KindTextbox:              positional("x", "y", "width", "height", "value"),
}

// Compiler translates token rows into directive records.
type Compiler struct {
	log *zap.Logger
}

// New returns a new compiler.  If logger is nil, nothing is logged.
func New(logger *zap.Logger) *Compiler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Compiler{log: logger}
}

// Compile reads all rows from r.
//
// Rows with an unknown directive type are logged and skipped.
// Rows with too few tokens abort compilation with a [*SyntaxError].
func (c *Compiler) Compile(r io.Reader) ([]directive.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	var recs []directive.Record
	header := true
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		if header {
			header = false
			continue
		}

		rec, ok, err := c.compileRow(row, line)
		if err != nil {
			return nil, err
		}
		if ok {
			recs = append(recs, rec)
		}
	}
	return recs, nil
}

func (c *Compiler) compileRow(row []string, line int) (directive.Record, bool, error) {
	tokens := make([]string, len(row))
	for i, tok := range row {
		tokens[i] = strings.TrimSpace(tok)
	}
	if isBlank(tokens) || strings.HasPrefix(tokens[0], "#") {
		return directive.Record{}, false, nil
	}

	rec := directive.Record{Type: tokens[0]}
	build, ok := builders[directive.Kind(rec.Type)]
	if !ok {
		c.log.Warn("unknown directive type, row skipped",
			zap.String("type", rec.Type), zap.Int("row", line))
		return directive.Record{}, false, nil
	}

	rest, err := build(&rec, tokens[1:])
	if err != nil {
		return directive.Record{}, false, &SyntaxError{Line: line, Err: err}
	}
	for _, tok := range rest {
		key, value, found := strings.Cut(tok, "=")
		if !found || key == "" {
			if tok != "" {
				c.log.Warn("ignoring extra token",
					zap.String("token", tok), zap.Int("row", line))
			}
			continue
		}
		rec.Set(strings.TrimSpace(key), strings.TrimSpace(value))
	}
	return rec, true, nil
}

func isBlank(tokens []string) bool {
	for _, tok := range tokens {
		if tok != "" {
			return false
		}
	}
	return true
}

// CompileFile compiles a ".txt" or ".csv" file.
func (c *Compiler) CompileFile(fname string) ([]directive.Record, error) {
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".txt", ".csv":
	default:
		return nil, fmt.Errorf("compiler: %s: expected a .txt or .csv file", fname)
	}

	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	recs, err := c.Compile(fd)
	if err != nil {
		var syntaxErr *SyntaxError
		if errors.As(err, &syntaxErr) {
			syntaxErr.File = fname
		}
		return nil, err
	}
	return recs, nil
}

// SyntaxError indicates a row which cannot be compiled.
type SyntaxError struct {
	File string
	Line int
	Err  error
}

func (err *SyntaxError) Error() string {
	file := err.File
	if file == "" {
		file = "<input>"
	}
	return fmt.Sprintf("%s:%d: %v", file, err.Line, err.Err)
}

func (err *SyntaxError) Unwrap() error {
	return err.Err
}
