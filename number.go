// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fracalign

import (
	"math"
	"strconv"
)

// A form value describes which kind of input a Number holds.
type form byte

const (
	text form = iota
	float32Form
	float64Form
)

// A Number is a single input value: decimal text, a float32 or a float64.
// Numbers are created with Text, Float32 or Float64. The zero value is the
// empty text, which is not a valid number.
type Number struct {
	form form
	s    string
	f    float64 // float32 values are stored exactly
}

// Text returns a Number holding the decimal text s. s is not validated
// until the Number is decomposed.
func Text(s string) Number { return Number{form: text, s: s} }

// Float32 returns a Number holding f.
func Float32(f float32) Number { return Number{form: float32Form, f: float64(f)} }

// Float64 returns a Number holding f.
func Float64(f float64) Number { return Number{form: float64Form, f: f} }

// String returns x as text: the text itself, or the shortest decimal
// representation of a float.
func (x Number) String() string {
	switch x.form {
	case text:
		return x.s
	case float32Form:
		return strconv.FormatFloat(x.f, 'f', -1, 32)
	case float64Form:
		return strconv.FormatFloat(x.f, 'f', -1, 64)
	}
	panic("fracalign: invalid Number form")
}

// Decompose returns the normalized decomposition of x.
//
// Text is parsed as is and prec is ignored. Floats are first formatted with
// prec digits after the decimal point, rounding like strconv.FormatFloat
// does for the value's own size. A negative prec selects the smallest
// number of digits that represents the value exactly. NaN and infinities
// fail with a *ParseError wrapping ErrNotFinite.
func (x Number) Decompose(prec int) (Decomposition, error) {
	switch x.form {
	case text:
		return Parse(x.s)
	case float32Form:
		return decomposeFloat(x.f, prec, 32)
	case float64Form:
		return decomposeFloat(x.f, prec, 64)
	}
	panic("fracalign: invalid Number form")
}

func decomposeFloat(f float64, prec, bitSize int) (Decomposition, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Decomposition{}, &ParseError{
			Input: strconv.FormatFloat(f, 'f', -1, bitSize),
			Index: -1,
			Err:   ErrNotFinite,
		}
	}
	if prec < 0 {
		prec = -1
	}
	return Parse(strconv.FormatFloat(f, 'f', prec, bitSize))
}
