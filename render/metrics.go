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

package render

import (
	"github.com/prometheus/client_golang/prometheus"

	"seehuhn.de/go/cvmaker/directive"
)

// Metric names.
const (
	MetricRenderedTotal      = "cvmaker_directives_rendered_total"
	MetricSkippedTotal       = "cvmaker_directives_skipped_total"
	MetricFontFallbacksTotal = "cvmaker_font_fallbacks_total"
)

// Reasons for skipping a directive, used as the "reason" label.
const (
	ReasonUnknownType   = "unknown_type"
	ReasonUnhandled     = "unhandled"
	ReasonMalformedList = "malformed_list"
)

// Metrics counts what happened during rendering.
// A nil *Metrics is valid and counts nothing.
type Metrics struct {
	Rendered      *prometheus.CounterVec
	Skipped       *prometheus.CounterVec
	FontFallbacks prometheus.Counter
}

// NewMetrics creates the counters and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Rendered: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricRenderedTotal,
				Help: "Number of directives drawn, by directive type.",
			},
			[]string{"type"},
		),
		Skipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricSkippedTotal,
				Help: "Number of directives skipped, by reason.",
			},
			[]string{"reason"},
		),
		FontFallbacks: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: MetricFontFallbacksTotal,
				Help: "Number of times a requested font face was replaced.",
			},
		),
	}
	if reg != nil {
		reg.MustRegister(m.Rendered, m.Skipped, m.FontFallbacks)
	}
	return m
}

func (m *Metrics) rendered(k directive.Kind) {
	if m == nil {
		return
	}
	m.Rendered.WithLabelValues(string(k)).Inc()
}

func (m *Metrics) skipped(reason string) {
	if m == nil {
		return
	}
	m.Skipped.WithLabelValues(reason).Inc()
}

func (m *Metrics) fontFallback() {
	if m == nil {
		return
	}
	m.FontFallbacks.Inc()
}
