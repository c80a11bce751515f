// SPDX-License-Identifier: MIT

package eof_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/eofield/field"
)

const testTol = 1e-10

// mustField builds an R×C×T field from a per-element generator.
func mustField(t *testing.T, rows, cols, steps int, gen func(r, c, k int) float64) *field.Field {
	t.Helper()
	f, err := field.NewField(rows, cols, steps)
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			for k := 0; k < steps; k++ {
				if err = f.Set(r, c, k, gen(r, c, k)); err != nil {
					t.Fatalf("Set(%d,%d,%d): %v", r, c, k, err)
				}
			}
		}
	}

	return f
}

// richGen is a deterministic multi-mode generator with no NaNs: a blend of
// incommensurate spatial/temporal oscillations so several eigenvalues are
// distinct and non-zero.
func richGen(r, c, k int) float64 {
	return math.Sin(0.3*float64(r)+0.7*float64(c)+float64(k)) +
		0.5*math.Cos(float64(r*k)-0.2*float64(c)) +
		0.1*float64(r+c)
}

// rankOneGen builds map0(r,c)·sin(2πk/4): a field that is rank one by
// construction, with a zero temporal mean at every cell.
func rankOneGen(r, c, k int) float64 {
	map0 := 1.0 + float64(r) + 2.0*float64(c)

	return map0 * math.Sin(2*math.Pi*float64(k)/4)
}
