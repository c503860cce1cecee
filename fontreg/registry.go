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

// Package fontreg keeps track of the fonts available during one rendering
// run and chooses a replacement when a directive asks for a font which is
// not available.
package fontreg

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"seehuhn.de/go/pdf/font"
)

// DefaultSize is the font size used when a directive does not give one.
const DefaultSize = 12

// ErrNoFonts is returned by [Registry.Select] if no font is registered.
var ErrNoFonts = errors.New("fontreg: no fonts registered")

// Registry is the set of registered font faces.
// The zero value is not usable, use [New] to create a registry.
type Registry struct {
	// DefaultFace is used for directives without a font face, and as the
	// first choice when a requested face is not registered.
	DefaultFace string

	// DefaultSize is used for directives without a font size.
	DefaultSize float64

	log   *zap.Logger
	names []string
	faces map[string]font.Layouter
}

// New returns an empty registry.
// If logger is nil, nothing is logged.
func New(defaultFace string, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		DefaultFace: defaultFace,
		DefaultSize: DefaultSize,
		log:         logger,
		faces:       make(map[string]font.Layouter),
	}
}

// Add registers a font face under the given name.  Registering a name a
// second time replaces the font but keeps the original position.
func (r *Registry) Add(name string, F font.Layouter) {
	if _, seen := r.faces[name]; !seen {
		r.names = append(r.names, name)
	}
	r.faces[name] = F
}

// Has reports whether a face is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.faces[name]
	return ok
}

// Names returns the registered face names in registration order.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

// Face returns the font registered under name.
func (r *Registry) Face(name string) (font.Layouter, bool) {
	F, ok := r.faces[name]
	return F, ok
}

// Selection is the result of [Registry.Select].
type Selection struct {
	Size float64
	Face string

	// Fallback is set if the requested face was replaced.
	Fallback bool
}

// Select validates the font parameters of a directive.
//
// An empty size selects r.DefaultSize.  An empty face selects
// r.DefaultFace.  If the face is not registered, the default face is used
// instead, or the first registered face if the default face is not
// registered either.
func (r *Registry) Select(face, size string) (Selection, error) {
	sel := Selection{Size: r.DefaultSize, Face: face}

	if s := strings.TrimSpace(size); s != "" {
		x, err := strconv.ParseFloat(s, 64)
		if err != nil || x <= 0 {
			return Selection{}, fmt.Errorf("fontreg: invalid font size %q", size)
		}
		sel.Size = x
	}

	if len(r.names) == 0 {
		return Selection{}, ErrNoFonts
	}

	if sel.Face == "" {
		sel.Face = r.DefaultFace
	}
	if r.Has(sel.Face) {
		return sel, nil
	}

	requested := sel.Face
	if r.Has(r.DefaultFace) {
		sel.Face = r.DefaultFace
	} else {
		sel.Face = r.names[0]
	}
	sel.Fallback = true
	r.log.Warn("font not available, using fallback",
		zap.String("face", requested),
		zap.String("fallback", sel.Face))
	return sel, nil
}
