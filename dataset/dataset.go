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

// Package dataset holds the personal facts which are filled into a résumé.
//
// A dataset is a YAML mapping.  Scalar fields are referenced from directive
// values as "$key".  The fields "education" and "experience" are sequences
// of {year, month, value} records.
package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Keys of the history sections.
const (
	Education  = "education"
	Experience = "experience"
)

// Dataset maps field names to values.
type Dataset struct {
	fields map[string]*yaml.Node
}

// New returns a dataset containing the given scalar fields.
func New(fields map[string]string) *Dataset {
	d := &Dataset{fields: make(map[string]*yaml.Node, len(fields))}
	for k, v := range fields {
		d.fields[k] = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
	}
	return d
}

// Read decodes a dataset from YAML.  An empty document gives an empty
// dataset.
func Read(r io.Reader) (*Dataset, error) {
	var doc yaml.Node
	err := yaml.NewDecoder(r).Decode(&doc)
	if errors.Is(err, io.EOF) {
		return &Dataset{fields: map[string]*yaml.Node{}}, nil
	} else if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("dataset: line %d: expected a mapping", root.Line)
	}

	d := &Dataset{fields: make(map[string]*yaml.Node, len(root.Content)/2)}
	for i := 0; i+1 < len(root.Content); i += 2 {
		d.fields[root.Content[i].Value] = root.Content[i+1]
	}
	return d, nil
}

// ReadFile reads a dataset from a YAML file.
func ReadFile(fname string) (*Dataset, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	return Read(bytes.NewReader(data))
}

// Lookup returns the text of a scalar field.
// The second return value is false if the field is missing or not a scalar.
func (d *Dataset) Lookup(key string) (string, bool) {
	n, ok := d.fields[key]
	if !ok {
		return "", false
	}
	n = deref(n)
	if n.Kind != yaml.ScalarNode || n.Tag == "!!null" {
		return "", false
	}
	return n.Value, true
}

// Reference returns the key of a "$key" value.
func Reference(value string) (string, bool) {
	v := strings.TrimSpace(value)
	if len(v) < 2 || v[0] != '$' {
		return "", false
	}
	return v[1:], true
}

// Resolve substitutes a "$key" reference by the corresponding field.
// Missing keys give the empty string.  Values which are not a reference
// are returned unchanged.
func (d *Dataset) Resolve(value string) string {
	key, ok := Reference(value)
	if !ok {
		return value
	}
	s, _ := d.Lookup(key)
	return s
}
