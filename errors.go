// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fracalign

import (
	"errors"
	"strconv"
)

// Causes wrapped by a *ParseError.
var (
	ErrEmpty     = errors.New("empty number")
	ErrSyntax    = errors.New("invalid syntax")
	ErrNotFinite = errors.New("not a finite number")
)

// A ParseError is returned when an entry is not a valid number. Input holds
// the offending text (for float input, its formatted value) and Index its
// position in the batch, or -1 when the error does not come from a batch
// call.
type ParseError struct {
	Input string
	Index int
	Err   error
}

func (e *ParseError) Error() string {
	msg := "fracalign: parsing " + strconv.Quote(e.Input)
	if e.Index >= 0 {
		msg += " (entry " + strconv.Itoa(e.Index) + ")"
	}
	return msg + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// atIndex records the batch position i in err if it is a *ParseError.
func atIndex(err error, i int) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		pe.Index = i
	}
	return err
}
