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

// Package directive defines the drawing directives of a résumé style.
//
// A style is an ordered list of directives.  Both style notations, YAML
// records and comma-separated token rows, are read into [Record] values.
// [Decode] turns a record into one of the typed directives of this
// package, checking all parameters on the way.
package directive

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Point is one entry of the point list of a "lines" directive, as written
// in the style file.
type Point struct {
	X string `yaml:"x"`
	Y string `yaml:"y"`
}

// UnmarshalYAML implements the [yaml.Unmarshaler] interface.
func (p *Point) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: point must be a mapping", n.Line)
	}
	*p = Point{}
	for i := 0; i+1 < len(n.Content); i += 2 {
		val := n.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: point coordinates must be scalars", val.Line)
		}
		switch n.Content[i].Value {
		case "x":
			p.X = val.Value
		case "y":
			p.Y = val.Value
		}
	}
	return nil
}

// Record is a directive as read from a style file, before decoding.
// All parameters are kept as the strings written in the file.
type Record struct {
	Type   string
	Params map[string]string
	Points []Point
}

// Set sets a parameter.  Setting "type" changes the record type.
func (rec *Record) Set(key, value string) {
	if key == "type" {
		rec.Type = value
		return
	}
	if rec.Params == nil {
		rec.Params = make(map[string]string)
	}
	rec.Params[key] = value
}

// UnmarshalYAML implements the [yaml.Unmarshaler] interface.
func (rec *Record) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: directive must be a mapping", n.Line)
	}
	*rec = Record{}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i].Value
		val := n.Content[i+1]
		if key == "points" {
			err := val.Decode(&rec.Points)
			if err != nil {
				return fmt.Errorf("line %d: points: %w", val.Line, err)
			}
			continue
		}
		if val.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: %q must be a scalar", val.Line, key)
		}
		if val.Tag == "!!null" {
			continue
		}
		rec.Set(key, val.Value)
	}
	return nil
}

// MarshalYAML implements the [yaml.Marshaler] interface.
// The type is written first, followed by the parameters in sorted order
// and the point list.
func (rec Record) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.MappingNode}
	add := func(k, v string) {
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v})
	}
	add("type", rec.Type)
	keys := make([]string, 0, len(rec.Params))
	for k := range rec.Params {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		add(k, rec.Params[k])
	}
	if rec.Points != nil {
		pts := &yaml.Node{Kind: yaml.SequenceNode}
		for _, p := range rec.Points {
			pn := &yaml.Node{Kind: yaml.MappingNode, Style: yaml.FlowStyle}
			pn.Content = []*yaml.Node{
				{Kind: yaml.ScalarNode, Value: "x"},
				{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.X},
				{Kind: yaml.ScalarNode, Value: "y"},
				{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.Y},
			}
			pts.Content = append(pts.Content, pn)
		}
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: "points"}, pts)
	}
	return n, nil
}

// ReadYAML reads a list of directive records.
func ReadYAML(r io.Reader) ([]Record, error) {
	var recs []Record
	err := yaml.NewDecoder(r).Decode(&recs)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("directive: %w", err)
	}
	return recs, nil
}

// ReadYAMLFile reads a list of directive records from a YAML file.
func ReadYAMLFile(fname string) ([]Record, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	return ReadYAML(bytes.NewReader(data))
}

// WriteYAML writes a list of directive records in YAML format.
func WriteYAML(w io.Writer, recs []Record) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	err := enc.Encode(recs)
	if err != nil {
		return err
	}
	return enc.Close()
}
