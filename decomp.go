// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fracalign

import (
	"fmt"
	"io"
	"strings"
)

// A Decomposition is the canonical form of a number: its sign, its integer
// digits and its fractional digits.
//
// A Decomposition returned by Parse or Number.Decompose is normalized: Int
// is never empty and has no leading zeros except for a lone "0", Frac never
// ends with a '0'. The sign is kept as given, so "-0.00" is negative.
type Decomposition struct {
	Neg  bool
	Int  string
	Frac string
}

// Parse parses s, which must be of the form
//
//	number = [ "-" ] digits [ "." digits ] .
//
// and returns its normalized decomposition. The entire string must be
// consumed. On failure the error is a *ParseError.
func Parse(s string) (Decomposition, error) {
	var d Decomposition
	r := strings.NewReader(s)
	err := d.scan(r)
	if err == nil {
		// entire string must have been consumed
		if ch, err2 := r.ReadByte(); err2 == nil {
			err = fmt.Errorf("%w: expected end of string, found %q", ErrSyntax, ch)
		}
	}
	if err != nil {
		return Decomposition{}, &ParseError{Input: s, Index: -1, Err: err}
	}
	return d, nil
}

// scan reads the longest prefix of r that forms a number and sets z to its
// normalized value. It does not expect EOF at the end.
func (z *Decomposition) scan(r io.ByteScanner) error {
	ch, err := r.ReadByte()
	if err == io.EOF {
		return ErrEmpty
	}

	neg := false
	if err == nil && ch == '-' {
		neg = true
		ch, err = r.ReadByte()
	}

	var mant []byte
	dp := -1 // position of decimal point in mant
loop:
	for err == nil {
		switch {
		case '0' <= ch && ch <= '9':
			mant = append(mant, ch)
		case ch == '.' && dp < 0:
			if len(mant) == 0 {
				return fmt.Errorf("%w: no digits before decimal point", ErrSyntax)
			}
			dp = len(mant)
		default:
			err = r.UnreadByte() // ch does not belong to number anymore
			break loop
		}
		ch, err = r.ReadByte()
	}
	if err == io.EOF {
		err = nil
	}
	if err != nil {
		return err
	}

	switch {
	case len(mant) == 0:
		return fmt.Errorf("%w: no digits", ErrSyntax)
	case dp == len(mant):
		return fmt.Errorf("%w: no digits after decimal point", ErrSyntax)
	case dp < 0:
		dp = len(mant)
	}

	*z = normalize(neg, mant[:dp], mant[dp:])
	return nil
}

// normalize strips the leading zeros of ip and the trailing zeros of fp.
func normalize(neg bool, ip, fp []byte) Decomposition {
	i := 0
	for i < len(ip)-1 && ip[i] == '0' {
		i++
	}
	ip = ip[i:]
	j := len(fp)
	for j > 0 && fp[j-1] == '0' {
		j--
	}
	fp = fp[:j]
	return Decomposition{Neg: neg, Int: string(ip), Frac: string(fp)}
}

// intWidth returns the number of characters used by the sign and integer
// part of d.
func (d Decomposition) intWidth() int {
	n := max(len(d.Int), 1) // empty Int renders as "0"
	if d.Neg {
		n++
	}
	return n
}

// Append appends the canonical text form of d to buf and returns the
// extended buffer.
func (d Decomposition) Append(buf []byte) []byte {
	if d.Neg {
		buf = append(buf, '-')
	}
	if d.Int == "" {
		buf = append(buf, '0')
	} else {
		buf = append(buf, d.Int...)
	}
	if d.Frac != "" {
		buf = append(buf, '.')
		buf = append(buf, d.Frac...)
	}
	return buf
}

// String returns the canonical text form of d, like "-12.5", "7" or "0.25".
func (d Decomposition) String() string {
	return string(d.Append(make([]byte, 0, d.intWidth()+1+len(d.Frac))))
}
