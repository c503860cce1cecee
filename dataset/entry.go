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

package dataset

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry is one dated line of a résumé table.
type Entry struct {
	Year  string `yaml:"year"`
	Month string `yaml:"month"`
	Value string `yaml:"value"`
}

// UnmarshalYAML implements the [yaml.Unmarshaler] interface.
// Scalars are kept as written, so that "month: 04" stays "04".
func (e *Entry) UnmarshalYAML(n *yaml.Node) error {
	n = deref(n)
	if n.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping", n.Line)
	}
	*e = Entry{}
	for i := 0; i+1 < len(n.Content); i += 2 {
		val := deref(n.Content[i+1])
		if val.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: field %q must be a scalar",
				val.Line, n.Content[i].Value)
		}
		s := val.Value
		if val.Tag == "!!null" {
			s = ""
		}
		switch n.Content[i].Value {
		case "year":
			e.Year = s
		case "month":
			e.Month = s
		case "value":
			e.Value = s
		}
	}
	return nil
}

// History returns the entries stored under key.
// A missing key gives no entries.
func (d *Dataset) History(key string) ([]Entry, error) {
	n, ok := d.fields[key]
	if !ok || deref(n).Tag == "!!null" {
		return nil, nil
	}
	entries, err := decodeEntries(n)
	if err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", key, err)
	}
	return entries, nil
}

// Entries decodes a list of entries from a directive value.
//
// If value is a "$key" reference, the field may either be a YAML sequence
// of entries, or a string holding a flow-style list such as
// "[{'year': 2010, 'month': 4, 'value': 'Driving licence'}]".
// Any other value is decoded as such a flow-style list.
// An empty value gives no entries.
func (d *Dataset) Entries(value string) ([]Entry, error) {
	text := value
	if key, ok := Reference(value); ok {
		n, ok := d.fields[key]
		if !ok {
			return nil, nil
		}
		n = deref(n)
		if n.Kind != yaml.ScalarNode {
			entries, err := decodeEntries(n)
			if err != nil {
				return nil, &MalformedListError{Value: value, Err: err}
			}
			return entries, nil
		}
		text = n.Value
	}
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	var n yaml.Node
	err := yaml.Unmarshal([]byte(text), &n)
	if err != nil {
		return nil, &MalformedListError{Value: value, Err: err}
	}
	root := &n
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	entries, err := decodeEntries(root)
	if err != nil {
		return nil, &MalformedListError{Value: value, Err: err}
	}
	return entries, nil
}

func decodeEntries(n *yaml.Node) ([]Entry, error) {
	n = deref(n)
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: expected a list of entries", n.Line)
	}
	entries := make([]Entry, 0, len(n.Content))
	for _, item := range n.Content {
		var e Entry
		if err := e.UnmarshalYAML(item); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func deref(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

// MalformedListError is returned by [Dataset.Entries] when a value cannot
// be decoded as a list of entries.
type MalformedListError struct {
	Value string
	Err   error
}

func (err *MalformedListError) Error() string {
	return fmt.Sprintf("dataset: malformed list %q: %v", err.Value, err.Err)
}

func (err *MalformedListError) Unwrap() error {
	return err.Err
}
