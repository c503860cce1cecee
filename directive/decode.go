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

package directive

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"

	"seehuhn.de/go/cvmaker/unit"
)

// kindInfo describes the parameters of one directive type.
type kindInfo struct {
	required []string
	lengths  []string // dimension-valued parameters, required or not
	new      func() Directive
}

var kinds = map[Kind]*kindInfo{
	KindString: {
		required: []string{"x", "y"},
		lengths:  []string{"x", "y"},
		new:      func() Directive { return &String{} },
	},
	KindBox: {
		required: []string{"x", "y", "width", "height"},
		lengths:  []string{"x", "y", "width", "height"},
		new:      func() Directive { return &Box{} },
	},
	KindLine: {
		required: []string{"x", "y", "dx", "dy"},
		lengths:  []string{"x", "y", "dx", "dy"},
		new:      func() Directive { return &Line{} },
	},
	KindLines: {
		new: func() Directive { return &Lines{} },
	},
	KindMultiLines: {
		required: []string{"x", "y", "dx", "dy", "num", "sx", "sy"},
		lengths:  []string{"x", "y", "dx", "dy", "sx", "sy"},
		new:      func() Directive { return &MultiLines{} },
	},
	KindNewPage: {
		new: func() Directive { return &NewPage{} },
	},
	KindEducationExperience: {
		required: []string{"y", "year_x", "month_x", "value_x", "ijo_x", "dy", "caption_x"},
		lengths:  []string{"y", "year_x", "month_x", "value_x", "ijo_x", "dy", "caption_x"},
		new:      func() Directive { return &EducationExperience{} },
	},
	KindLicenseCertification: {
		required: []string{"y", "year_x", "month_x", "value_x", "dy"},
		lengths:  []string{"y", "year_x", "month_x", "value_x", "dy"},
		new:      func() Directive { return &LicenseCertification{} },
	},
	KindTextbox: {
		required: []string{"x", "y"},
		lengths:  []string{"x", "y"},
		new:      func() Directive { return &Textbox{} },
	},
}

var validate = validator.New()

var lengthType = reflect.TypeOf(unit.Length(0))

func lengthHook(from, to reflect.Type, data any) (any, error) {
	if to != lengthType || from.Kind() != reflect.String {
		return data, nil
	}
	return unit.Parse(data.(string))
}

var intType = reflect.TypeOf(0)

// intHook reads integers in decimal, so that "010" is ten.
func intHook(from, to reflect.Type, data any) (any, error) {
	if to != intType || from.Kind() != reflect.String {
		return data, nil
	}
	return strconv.Atoi(strings.TrimSpace(data.(string)))
}

// Decode converts a record into a typed directive.
//
// Records with an unknown type give an [*UnknownTypeError].  Missing or
// malformed parameters give a [*FieldError].
func Decode(rec Record) (Directive, error) {
	info, ok := kinds[Kind(rec.Type)]
	if !ok {
		return nil, &UnknownTypeError{Type: rec.Type}
	}

	for _, key := range info.required {
		if _, ok := rec.Params[key]; !ok {
			return nil, &FieldError{Type: rec.Type, Field: key, Err: ErrMissing}
		}
	}
	for _, key := range info.lengths {
		if s, ok := rec.Params[key]; ok {
			if _, err := unit.Parse(s); err != nil {
				return nil, &FieldError{Type: rec.Type, Field: key, Err: err}
			}
		}
	}

	input := make(map[string]any, len(rec.Params)+1)
	for k, v := range rec.Params {
		input[k] = v
	}
	if rec.Points != nil {
		points := make([]map[string]any, len(rec.Points))
		for i, p := range rec.Points {
			for _, c := range [2]struct{ field, s string }{{"x", p.X}, {"y", p.Y}} {
				if _, err := unit.Parse(c.s); err != nil {
					return nil, &FieldError{
						Type:  rec.Type,
						Field: fmt.Sprintf("points[%d].%s", i, c.field),
						Err:   err,
					}
				}
			}
			points[i] = map[string]any{"x": p.X, "y": p.Y}
		}
		input["points"] = points
	}

	d := info.new()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.DecodeHookFuncType(lengthHook),
			mapstructure.DecodeHookFuncType(intHook),
		),
		WeaklyTypedInput: true,
		Result:           d,
	})
	if err != nil {
		return nil, err
	}
	err = dec.Decode(input)
	if err != nil {
		return nil, &FieldError{Type: rec.Type, Err: err}
	}

	err = validate.Struct(d)
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, &FieldError{Type: rec.Type, Field: verrs[0].Field(), Err: err}
		}
		return nil, &FieldError{Type: rec.Type, Err: err}
	}

	return d, nil
}

// ErrMissing indicates a missing required parameter.
var ErrMissing = errors.New("missing required parameter")

// UnknownTypeError is returned by [Decode] for records whose type does
// not name a directive.
type UnknownTypeError struct {
	Type string
}

func (err *UnknownTypeError) Error() string {
	if err.Type == "" {
		return "directive: missing directive type"
	}
	return fmt.Sprintf("directive: unknown directive type %q", err.Type)
}

// FieldError is returned by [Decode] if a parameter of a directive is
// missing or malformed.
type FieldError struct {
	Type  string
	Field string
	Err   error
}

func (err *FieldError) Error() string {
	if err.Field == "" {
		return fmt.Sprintf("directive %q: %v", err.Type, err.Err)
	}
	return fmt.Sprintf("directive %q: %s: %v", err.Type, err.Field, err.Err)
}

func (err *FieldError) Unwrap() error {
	return err.Err
}
