// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fracalign

// AlignStrings parses every entry and returns them normalized and aligned,
// in the same order. Valid entries are for example "1", "3.14" and "-42".
//
// If any entry is invalid, AlignStrings returns a nil slice and a
// *ParseError for the first invalid entry.
func AlignStrings(entries []string) ([]string, error) {
	ds := make([]Decomposition, len(entries))
	for i, s := range entries {
		d, err := Parse(s)
		if err != nil {
			return nil, atIndex(err, i)
		}
		ds[i] = d
	}
	return AlignDecompositions(ds), nil
}

// Align is like AlignStrings for a list of Numbers. Floats are formatted with
// prec digits after the decimal point before being normalized, so prec is
// the maximum number of fractional digits they can show. See
// Number.Decompose.
func Align(entries []Number, prec int) ([]string, error) {
	ds := make([]Decomposition, len(entries))
	for i, x := range entries {
		d, err := x.Decompose(prec)
		if err != nil {
			return nil, atIndex(err, i)
		}
		ds[i] = d
	}
	return AlignDecompositions(ds), nil
}

// AlignDecompositions renders every entry of ds against the widths of the
// whole list.
func AlignDecompositions(ds []Decomposition) []string {
	w := Measure(ds)
	buf := make([]byte, 0, w.Len())
	out := make([]string, len(ds))
	for i, d := range ds {
		buf = w.Append(buf[:0], d)
		out[i] = string(buf)
	}
	return out
}
