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

// Package cvmaker renders résumé documents as PDF files.
//
// A résumé is described by two files.  The data file is a YAML mapping
// with the personal facts:
//
//	name: 山田 太郎
//	hobby: |
//	  Reading
//	  Cycling
//	education:
//	  - {year: 2009, month: 4, value: University of Tokyo}
//	experience:
//	  - {year: 2013, month: 4, value: Joined ACME}
//	licences:
//	  - {year: 2010, month: 4, value: Driving licence}
//
// The style file is a sequence of drawing directives.  It is either a YAML
// sequence of records,
//
//	- {type: box, x: 0mm, y: 120mm, width: 177mm, height: 40mm}
//	- {type: string, x: 30mm, y: 238mm, value: $name, font_size: "9"}
//
// or a comma separated text file with one directive per row, see package
// [seehuhn.de/go/cvmaker/compiler].  Values of the form "$key" are
// replaced by the corresponding field of the data file.
//
// [Generate] combines both files into a PDF document.
package cvmaker
