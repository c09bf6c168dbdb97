// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package fracalign formats a list of fractional numbers so that they line up
when printed one per line in a monospaced font.

Numbers can be given as decimal text or as float32/float64 values. Every
entry is normalized first: trailing zeros of the fractional part are removed,
and so is the decimal point if nothing remains after it. Redundant leading
zeros of the integer part are removed as well. This means that "7.000000"
comes out as "7" and "007.50" as "7.5".

The batch is then measured and every entry is padded with spaces so that,
in every line, the units digits, the decimal points and every fractional
place sit in the same column:

    input          output
    "-42"          "  -42     "
    "0.3214"       "    0.3214"
    "1000"         " 1000     "
    "-1000.2"      "-1000.2   "
    "2.00000"      "    2     "

All lines of a batch have the same length. Entries without a fractional part
get a space in the decimal point column. The trailing padding is not strictly
needed for alignment but makes every line the same width; it can be undone
with strings.TrimRight.

Text input must match the grammar

    number = [ "-" ] digits [ "." digits ] .
    digits = "0" ... "9" { "0" ... "9" } .

There is no '+' sign, no exponent, no thousands separator and no locale
specific decimal mark. Anything else is reported as a *ParseError and no
output is produced for the batch: since column widths depend on every entry,
dropping one would silently change the layout of all the others.

Floating point values are first converted to text with the requested number
of fractional digits, using strconv.FormatFloat, then go through the same
path as text input. NaN and infinities are rejected.

All functions are pure: they hold no state and are safe for concurrent use.
*/
package fracalign
