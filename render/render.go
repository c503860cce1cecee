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

// Package render draws directives onto a [surface.Surface].
//
// Rendering happens in two passes.  First all records are decoded into
// typed directives, so that malformed geometry is found before anything is
// drawn.  Then every directive is passed to the handler for its kind.
// Directives of unknown type are logged and skipped in both passes.
package render

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"seehuhn.de/go/cvmaker/dataset"
	"seehuhn.de/go/cvmaker/directive"
	"seehuhn.de/go/cvmaker/fontreg"
	"seehuhn.de/go/cvmaker/surface"
)

// DefaultLineWidth is the line width used when a directive gives none.
const DefaultLineWidth = 0.5

// Options control a [Renderer].
type Options struct {
	// Logger receives one warning per skipped directive and per font
	// fallback.  If nil, nothing is logged.
	Logger *zap.Logger

	// Metrics, if set, counts rendered and skipped directives.
	Metrics *Metrics

	// DefaultLineWidth replaces [DefaultLineWidth] if positive.
	DefaultLineWidth float64
}

// handler draws one directive.
type handler func(r *Renderer, d directive.Directive) error

// handle adapts a handler for one concrete directive type.
func handle[T directive.Directive](fn func(*Renderer, T) error) handler {
	return func(r *Renderer, d directive.Directive) error {
		return fn(r, d.(T))
	}
}

// A Renderer draws directives for one run.
type Renderer struct {
	s     surface.Surface
	data  *dataset.Dataset
	fonts *fontreg.Registry

	log       *zap.Logger
	metrics   *Metrics
	lineWidth float64

	handlers map[directive.Kind]handler
}

// New returns a renderer which draws onto s.  Values of the form "$key"
// are looked up in data, font faces are taken from fonts.
func New(s surface.Surface, data *dataset.Dataset, fonts *fontreg.Registry, opt *Options) *Renderer {
	if opt == nil {
		opt = &Options{}
	}
	if data == nil {
		data = dataset.New(nil)
	}
	r := &Renderer{
		s:         s,
		data:      data,
		fonts:     fonts,
		log:       opt.Logger,
		metrics:   opt.Metrics,
		lineWidth: opt.DefaultLineWidth,
	}
	if r.log == nil {
		r.log = zap.NewNop()
	}
	if r.lineWidth <= 0 {
		r.lineWidth = DefaultLineWidth
	}

	r.handlers = map[directive.Kind]handler{
		directive.KindString:               handle((*Renderer).drawString),
		directive.KindBox:                  handle((*Renderer).drawBox),
		directive.KindLine:                 handle((*Renderer).drawLine),
		directive.KindLines:                handle((*Renderer).drawLines),
		directive.KindMultiLines:           handle((*Renderer).drawMultiLines),
		directive.KindNewPage:              handle((*Renderer).newPage),
		directive.KindEducationExperience:  handle((*Renderer).drawEducationExperience),
		directive.KindLicenseCertification: handle((*Renderer).drawLicenseCertification),
		directive.KindTextbox:              handle((*Renderer).drawTextbox),
	}
	return r
}

// Render draws all records in order.
//
// Records of unknown type are skipped.  Any other decoding error is
// returned before anything is drawn.  Errors from the handlers abort
// rendering and are returned.
func (r *Renderer) Render(recs []directive.Record) error {
	steps, err := r.prepare(recs)
	if err != nil {
		return err
	}
	return r.draw(steps)
}

type step struct {
	index int
	d     directive.Directive
}

func (r *Renderer) prepare(recs []directive.Record) ([]step, error) {
	steps := make([]step, 0, len(recs))
	for i, rec := range recs {
		d, err := directive.Decode(rec)
		var unknown *directive.UnknownTypeError
		if errors.As(err, &unknown) {
			r.log.Warn("unknown directive type, skipped",
				zap.String("type", rec.Type), zap.Int("index", i))
			r.metrics.skipped(ReasonUnknownType)
			continue
		} else if err != nil {
			return nil, fmt.Errorf("directive %d: %w", i, err)
		}
		steps = append(steps, step{index: i, d: d})
	}
	return steps, nil
}

// Draw draws directives which have already been decoded.
func (r *Renderer) Draw(ds []directive.Directive) error {
	steps := make([]step, len(ds))
	for i, d := range ds {
		steps[i] = step{index: i, d: d}
	}
	return r.draw(steps)
}

func (r *Renderer) draw(steps []step) error {
	for _, st := range steps {
		kind := st.d.Kind()
		h, ok := r.handlers[kind]
		if !ok {
			r.log.Warn("no handler for directive, skipped",
				zap.String("type", string(kind)), zap.Int("index", st.index))
			r.metrics.skipped(ReasonUnhandled)
			continue
		}

		err := h(r, st.d)
		var skip *skipError
		if errors.As(err, &skip) {
			r.log.Warn(skip.msg,
				zap.String("type", string(kind)), zap.Int("index", st.index),
				zap.Error(skip.err))
			r.metrics.skipped(skip.reason)
			continue
		} else if err != nil {
			return fmt.Errorf("directive %d (%s): %w", st.index, kind, err)
		}
		r.metrics.rendered(kind)
	}
	return nil
}

// skipError is returned by handlers which give up on a directive without
// aborting the run.
type skipError struct {
	reason string
	msg    string
	err    error
}

func (err *skipError) Error() string {
	return err.msg + ": " + err.err.Error()
}

func (err *skipError) Unwrap() error {
	return err.err
}
