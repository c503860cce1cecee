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

package cvmaker

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// FormatError indicates that a file name has the wrong extension.
// It is reported before any file is read or written.
type FormatError struct {
	Role string // "data", "style" or "output"
	Path string
	Want []string
}

func (err *FormatError) Error() string {
	return fmt.Sprintf("%s file %q must have extension %s",
		err.Role, err.Path, strings.Join(err.Want, ", "))
}

// These extensions are accepted for the different files.
var (
	DataExtensions   = []string{".yaml", ".yml"}
	StyleExtensions  = []string{".yaml", ".yml", ".txt", ".csv"}
	OutputExtensions = []string{".pdf"}
)

// CheckExt returns a [*FormatError] if the extension of path, ignoring
// case, is not one of want.
func CheckExt(role, path string, want []string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if slices.Contains(want, ext) {
		return nil
	}
	return &FormatError{Role: role, Path: path, Want: want}
}
