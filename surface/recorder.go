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

package surface

import (
	"fmt"
	"io"
	"strings"
)

// OpKind identifies a recorded operation.
type OpKind int

// These are the operations recorded by a [Recorder].
const (
	OpSetLineWidth OpKind = iota
	OpSetLineDash
	OpLine
	OpRect
	OpPolyline
	OpText
	OpTextBlock
	OpShowPage
)

func (k OpKind) String() string {
	switch k {
	case OpSetLineWidth:
		return "SetLineWidth"
	case OpSetLineDash:
		return "SetLineDash"
	case OpLine:
		return "Line"
	case OpRect:
		return "Rect"
	case OpPolyline:
		return "Polyline"
	case OpText:
		return "Text"
	case OpTextBlock:
		return "TextBlock"
	case OpShowPage:
		return "ShowPage"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Op is one recorded drawing operation.
// Only the fields relevant for the given Kind are set.
type Op struct {
	Kind OpKind

	// Points holds the segment end points for OpLine, the corner and the
	// (width, height) pair for OpRect, the path for OpPolyline and the
	// start position for OpText and OpTextBlock.
	Points []Point
	Closed bool

	Value   float64 // line width, or leading for OpTextBlock
	Pattern []float64

	Font  Font
	Text  string
	Lines []string
}

// Segments returns the number of straight segments stroked by a line,
// rectangle or polyline operation.
func (op *Op) Segments() int {
	switch op.Kind {
	case OpLine:
		return 1
	case OpRect:
		return 4
	case OpPolyline:
		n := len(op.Points) - 1
		if op.Closed && len(op.Points) > 1 {
			n++
		}
		return max(n, 0)
	default:
		return 0
	}
}

// IsDrawing reports whether the operation puts marks on the page.
func (op *Op) IsDrawing() bool {
	switch op.Kind {
	case OpLine, OpRect, OpPolyline, OpText, OpTextBlock:
		return true
	default:
		return false
	}
}

func (op *Op) String() string {
	var args []string
	switch op.Kind {
	case OpSetLineWidth:
		args = append(args, fmt.Sprintf("%g", op.Value))
	case OpSetLineDash:
		args = append(args, fmt.Sprint(op.Pattern))
	case OpLine, OpRect, OpPolyline:
		for _, p := range op.Points {
			args = append(args, fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y))
		}
		if op.Closed {
			args = append(args, "closed")
		}
	case OpText:
		args = append(args, fmt.Sprintf("(%.2f, %.2f)", op.Points[0].X, op.Points[0].Y),
			fmt.Sprintf("%s %g", op.Font.Face, op.Font.Size), fmt.Sprintf("%q", op.Text))
	case OpTextBlock:
		args = append(args, fmt.Sprintf("(%.2f, %.2f)", op.Points[0].X, op.Points[0].Y),
			fmt.Sprintf("%s %g/%g", op.Font.Face, op.Font.Size, op.Value),
			fmt.Sprintf("%q", op.Lines))
	}
	return op.Kind.String() + " " + strings.Join(args, " ")
}

// A Recorder is a [Surface] which records all operations.
// The zero value is an empty recorder, ready to use.
type Recorder struct {
	Ops []Op
}

var _ Surface = (*Recorder)(nil)

// SetLineWidth implements the [Surface] interface.
func (r *Recorder) SetLineWidth(width float64) {
	r.Ops = append(r.Ops, Op{Kind: OpSetLineWidth, Value: width})
}

// SetLineDash implements the [Surface] interface.
func (r *Recorder) SetLineDash(pattern []float64) {
	r.Ops = append(r.Ops, Op{Kind: OpSetLineDash, Pattern: append([]float64(nil), pattern...)})
}

// Line implements the [Surface] interface.
func (r *Recorder) Line(x1, y1, x2, y2 float64) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, Points: []Point{{x1, y1}, {x2, y2}}})
}

// Rect implements the [Surface] interface.
func (r *Recorder) Rect(x, y, width, height float64) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, Points: []Point{{x, y}, {width, height}}})
}

// Polyline implements the [Surface] interface.
func (r *Recorder) Polyline(points []Point, closed bool) {
	r.Ops = append(r.Ops, Op{
		Kind:   OpPolyline,
		Points: append([]Point(nil), points...),
		Closed: closed,
	})
}

// Text implements the [Surface] interface.
func (r *Recorder) Text(x, y float64, F Font, s string) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Points: []Point{{x, y}}, Font: F, Text: s})
}

// TextBlock implements the [Surface] interface.
func (r *Recorder) TextBlock(x, y float64, F Font, leading float64, lines []string) {
	r.Ops = append(r.Ops, Op{
		Kind:   OpTextBlock,
		Points: []Point{{x, y}},
		Font:   F,
		Value:  leading,
		Lines:  append([]string(nil), lines...),
	})
}

// ShowPage implements the [Surface] interface.
func (r *Recorder) ShowPage() error {
	r.Ops = append(r.Ops, Op{Kind: OpShowPage})
	return nil
}

// Drawing returns the operations which put marks on the page,
// leaving out state changes and page breaks.
func (r *Recorder) Drawing() []Op {
	var res []Op
	for _, op := range r.Ops {
		if op.IsDrawing() {
			res = append(res, op)
		}
	}
	return res
}

// ApplyTo replays all recorded operations on another surface.
func (r *Recorder) ApplyTo(s Surface) error {
	for _, op := range r.Ops {
		switch op.Kind {
		case OpSetLineWidth:
			s.SetLineWidth(op.Value)
		case OpSetLineDash:
			s.SetLineDash(op.Pattern)
		case OpLine:
			s.Line(op.Points[0].X, op.Points[0].Y, op.Points[1].X, op.Points[1].Y)
		case OpRect:
			s.Rect(op.Points[0].X, op.Points[0].Y, op.Points[1].X, op.Points[1].Y)
		case OpPolyline:
			s.Polyline(op.Points, op.Closed)
		case OpText:
			s.Text(op.Points[0].X, op.Points[0].Y, op.Font, op.Text)
		case OpTextBlock:
			s.TextBlock(op.Points[0].X, op.Points[0].Y, op.Font, op.Value, op.Lines)
		case OpShowPage:
			if err := s.ShowPage(); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteTo writes a listing of the recorded operations, one per line.
func (r *Recorder) WriteTo(w io.Writer) (int64, error) {
	var total int64
	page := 1
	n, err := fmt.Fprintf(w, "# page %d\n", page)
	total += int64(n)
	if err != nil {
		return total, err
	}
	for i := range r.Ops {
		op := &r.Ops[i]
		if op.Kind == OpShowPage {
			page++
			n, err = fmt.Fprintf(w, "# page %d\n", page)
		} else {
			n, err = fmt.Fprintln(w, op.String())
		}
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
