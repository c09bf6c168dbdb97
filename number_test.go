// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fracalign

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNumber_Decompose(t *testing.T) {
	for _, tt := range [...]struct {
		name string
		x    Number
		prec int
		want Decomposition
	}{
		{"text ignores prec", Text("1.50"), 0, Decomposition{false, "1", "5"}},
		{"float32 whole", Float32(-42), 4, Decomposition{true, "42", ""}},
		{"float64 fraction", Float64(0.3214), 4, Decomposition{false, "0", "3214"}},
		{"float64 trailing zeros", Float64(-1000.2), 4, Decomposition{true, "1000", "2"}},
		{"float64 one", Float64(1), 4, Decomposition{false, "1", ""}},
		{"float32 one", Float32(1), 4, Decomposition{false, "1", ""}},
		{"prec limits digits", Float64(2.71828), 2, Decomposition{false, "2", "72"}},
		{"prec zero", Float64(3.25), 0, Decomposition{false, "3", ""}},
		{"small negative rounds to negative zero", Float64(-0.001), 2, Decomposition{true, "0", ""}},
		{"shortest float64", Float64(0.1), -1, Decomposition{false, "0", "1"}},
		{"shortest float32", Float32(0.1), -1, Decomposition{false, "0", "1"}},
		{"float32 keeps its own precision", Float32(0.3214), 4, Decomposition{false, "0", "3214"}},
		{"large", Float64(1e21), 0, Decomposition{false, "1000000000000000000000", ""}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.x.Decompose(tt.prec)
			if err != nil {
				t.Fatalf("%v.Decompose(%d) failed: %v", tt.x, tt.prec, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("%v.Decompose(%d) mismatch (-want +got):\n%s", tt.x, tt.prec, diff)
			}
		})
	}
}

func TestNumber_Decompose_notFinite(t *testing.T) {
	for _, tt := range [...]struct {
		x     Number
		input string
	}{
		{Float64(math.NaN()), "NaN"},
		{Float64(math.Inf(1)), "+Inf"},
		{Float64(math.Inf(-1)), "-Inf"},
		{Float32(float32(math.NaN())), "NaN"},
		{Float32(float32(math.Inf(-1))), "-Inf"},
	} {
		_, err := tt.x.Decompose(4)
		if !errors.Is(err, ErrNotFinite) {
			t.Errorf("%v.Decompose(4) error = %v, want %v", tt.x, err, ErrNotFinite)
			continue
		}
		var pe *ParseError
		if errors.As(err, &pe) && pe.Input != tt.input {
			t.Errorf("ParseError.Input = %q, want %q", pe.Input, tt.input)
		}
	}
}

func TestNumber_zero(t *testing.T) {
	var x Number
	if _, err := x.Decompose(0); !errors.Is(err, ErrEmpty) {
		t.Errorf("zero Number: got error %v, want %v", err, ErrEmpty)
	}
}

func TestNumber_String(t *testing.T) {
	for _, tt := range [...]struct {
		x    Number
		want string
	}{
		{Text("007.50"), "007.50"},
		{Float32(0.1), "0.1"},
		{Float64(-1000.2), "-1000.2"},
	} {
		if s := tt.x.String(); s != tt.want {
			t.Errorf("String() = %q, want %q", s, tt.want)
		}
	}
}
