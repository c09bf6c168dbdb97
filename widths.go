// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fracalign

// Widths holds the column widths shared by every line of a batch.
//
// Int is the widest sign and integer part, Frac the largest number of
// fractional digits.
type Widths struct {
	Int  int
	Frac int
}

// Measure returns the widths needed to align all of ds. The widths of an
// empty batch are zero.
func Measure(ds []Decomposition) Widths {
	var w Widths
	for _, d := range ds {
		w.Int = max(w.Int, d.intWidth())
		w.Frac = max(w.Frac, len(d.Frac))
	}
	return w
}

// HasFrac reports whether any line of the batch has a fractional part, in
// which case every line has a decimal point column.
func (w Widths) HasFrac() bool { return w.Frac > 0 }

// Len returns the length of every rendered line.
func (w Widths) Len() int {
	if w.HasFrac() {
		return w.Int + 1 + w.Frac
	}
	return w.Int
}

// Append appends d rendered against w to buf and returns the extended
// buffer.
//
// The sign and integer part are right-justified in a column of w.Int
// characters. If w has fractional digits, the decimal point column holds
// '.' or, when d has no fractional digits, a space; the fractional digits
// are left-justified in a column of w.Frac characters. d is expected to be
// part of the batch w was measured from, otherwise it may overflow its
// columns.
func (w Widths) Append(buf []byte, d Decomposition) []byte {
	buf = appendSpaces(buf, w.Int-d.intWidth())
	if d.Neg {
		buf = append(buf, '-')
	}
	if d.Int == "" {
		buf = append(buf, '0')
	} else {
		buf = append(buf, d.Int...)
	}
	if !w.HasFrac() {
		return buf
	}
	if d.Frac == "" {
		buf = append(buf, ' ')
	} else {
		buf = append(buf, '.')
		buf = append(buf, d.Frac...)
	}
	return appendSpaces(buf, w.Frac-len(d.Frac))
}

// Render returns d rendered against w. See Append.
func (w Widths) Render(d Decomposition) string {
	return string(w.Append(make([]byte, 0, w.Len()), d))
}

func appendSpaces(b []byte, n int) []byte {
	for i := 0; i < n; i++ {
		b = append(b, ' ')
	}
	return b
}
