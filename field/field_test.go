// SPDX-License-Identifier: MIT

package field_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/eofield/field"
)

const epsTight = 1e-12

// valueAt builds a distinct, recognizable value per element for tests.
func valueAt(r, c, t int) float64 { return float64(r*100 + c*10 + t) }

// mustFilledField returns an R×C×T field with valueAt at every element.
func mustFilledField(t *testing.T, rows, cols, steps int) *field.Field {
	t.Helper()
	f, err := field.NewField(rows, cols, steps)
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			for k := 0; k < steps; k++ {
				if err = f.Set(r, c, k, valueAt(r, c, k)); err != nil {
					t.Fatalf("Set(%d,%d,%d): %v", r, c, k, err)
				}
			}
		}
	}

	return f
}

//----------------------------------------------------------------------------//
// Constructors
//----------------------------------------------------------------------------//

func TestNewField_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name              string
		rows, cols, steps int
	}{
		{"ZeroRows", 0, 2, 3},
		{"NegativeCols", 2, -1, 3},
		{"ZeroSteps", 2, 2, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := field.NewField(tc.rows, tc.cols, tc.steps)
			if !errors.Is(err, field.ErrBadShape) {
				t.Errorf("NewField(%d,%d,%d) error = %v; want ErrBadShape",
					tc.rows, tc.cols, tc.steps, err)
			}
		})
	}
}

func TestNewFieldFrom_Validation(t *testing.T) {
	t.Parallel()

	if _, err := field.NewFieldFrom(2, 2, 2, make([]float64, 7)); !errors.Is(err, field.ErrBadShape) {
		t.Fatalf("short buffer: error = %v; want ErrBadShape", err)
	}

	data := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	f, err := field.NewFieldFrom(2, 2, 2, data)
	if err != nil {
		t.Fatalf("NewFieldFrom: %v", err)
	}
	// data[(r*cols+c)*steps+t]: element (1,0,1) sits at offset 5.
	v, err := f.At(1, 0, 1)
	if err != nil {
		t.Fatalf("At: %v", err)
	}
	if v != 6 {
		t.Fatalf("At(1,0,1) = %v; want 6", v)
	}

	// The constructor must copy, not alias, the caller's buffer.
	data[5] = -1
	if v, _ = f.At(1, 0, 1); v != 6 {
		t.Fatalf("buffer aliased: At(1,0,1) = %v after external write; want 6", v)
	}
}

//----------------------------------------------------------------------------//
// Indexed access
//----------------------------------------------------------------------------//

func TestFieldAtSet_Bounds(t *testing.T) {
	t.Parallel()

	f := mustFilledField(t, 2, 3, 4)

	bad := [][3]int{{-1, 0, 0}, {2, 0, 0}, {0, 3, 0}, {0, 0, 4}, {0, -1, 0}, {0, 0, -1}}
	for _, idx := range bad {
		if _, err := f.At(idx[0], idx[1], idx[2]); !errors.Is(err, field.ErrOutOfRange) {
			t.Errorf("At(%v) error = %v; want ErrOutOfRange", idx, err)
		}
		if err := f.Set(idx[0], idx[1], idx[2], 1); !errors.Is(err, field.ErrOutOfRange) {
			t.Errorf("Set(%v) error = %v; want ErrOutOfRange", idx, err)
		}
	}

	if v, err := f.At(1, 2, 3); err != nil || v != valueAt(1, 2, 3) {
		t.Fatalf("At(1,2,3) = (%v, %v); want (%v, nil)", v, err, valueAt(1, 2, 3))
	}
}

func TestFieldClone_Independent(t *testing.T) {
	t.Parallel()

	f := mustFilledField(t, 2, 2, 2)
	g := f.Clone()

	if err := g.Set(0, 0, 0, 999); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v, _ := f.At(0, 0, 0); v != valueAt(0, 0, 0) {
		t.Fatalf("clone shares storage: original At(0,0,0) = %v", v)
	}
}

//----------------------------------------------------------------------------//
// Plane / TemporalMean / IsFinite
//----------------------------------------------------------------------------//

func TestFieldPlane(t *testing.T) {
	t.Parallel()

	f := mustFilledField(t, 2, 3, 4)

	p, err := f.Plane(2)
	if err != nil {
		t.Fatalf("Plane(2): %v", err)
	}
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			if got := p.At(r, c); got != valueAt(r, c, 2) {
				t.Errorf("Plane(2).At(%d,%d) = %v; want %v", r, c, got, valueAt(r, c, 2))
			}
		}
	}

	if _, err = f.Plane(4); !errors.Is(err, field.ErrOutOfRange) {
		t.Fatalf("Plane(4) error = %v; want ErrOutOfRange", err)
	}
	if _, err = f.Plane(-1); !errors.Is(err, field.ErrOutOfRange) {
		t.Fatalf("Plane(-1) error = %v; want ErrOutOfRange", err)
	}
}

func TestFieldTemporalMean(t *testing.T) {
	t.Parallel()

	f := mustFilledField(t, 2, 2, 4)
	// Poison one sample: its cell's mean must become NaN.
	if err := f.Set(1, 1, 2, math.NaN()); err != nil {
		t.Fatalf("Set: %v", err)
	}

	mean := f.TemporalMean()
	// Cell (0,1): samples {10,11,12,13} → mean 11.5.
	if got := mean.At(0, 1); math.Abs(got-11.5) > epsTight {
		t.Fatalf("mean(0,1) = %v; want 11.5", got)
	}
	if got := mean.At(1, 1); !math.IsNaN(got) {
		t.Fatalf("mean(1,1) = %v; want NaN", got)
	}
}

func TestFieldIsFinite(t *testing.T) {
	t.Parallel()

	f := mustFilledField(t, 2, 2, 2)
	_ = f.Set(0, 1, 0, math.NaN())
	_ = f.Set(1, 0, 1, math.Inf(1))

	if !f.IsFinite(0, 0, 0) {
		t.Error("IsFinite(0,0,0) = false; want true")
	}
	if f.IsFinite(0, 1, 0) {
		t.Error("IsFinite on NaN = true; want false")
	}
	if f.IsFinite(1, 0, 1) {
		t.Error("IsFinite on +Inf = true; want false")
	}
	if f.IsFinite(5, 5, 5) {
		t.Error("IsFinite out of range = true; want false")
	}
}
