// Package sample generates the fixed input sets that networks are
// evaluated over.
package sample

import (
	"gonum.org/v1/gonum/floats"
)

// Line returns n evenly spaced scalar inputs covering [lo, hi], each as a
// length-1 vector.
//
// Panics if n < 2.
func Line(lo, hi float64, n int) [][]float64 {
	xs := floats.Span(make([]float64, n), lo, hi)

	inputs := make([][]float64, n)
	for i, x := range xs {
		inputs[i] = []float64{x}
	}
	return inputs
}

// Grid returns the n*n points of a square grid over [lo, hi]^2 as
// length-2 vectors. Rows vary x1 fastest: (x0[0], x1[0]), (x0[0], x1[1]), ...
//
// Panics if n < 2.
func Grid(lo, hi float64, n int) [][]float64 {
	axis := floats.Span(make([]float64, n), lo, hi)

	inputs := make([][]float64, 0, n*n)
	for _, x0 := range axis {
		for _, x1 := range axis {
			inputs = append(inputs, []float64{x0, x1})
		}
	}
	return inputs
}

// For returns the default sample set for a network with dim inputs: a Line
// for dim 1 and a Grid otherwise. Inputs beyond the second are held at zero.
func For(dim int, lo, hi float64, n int) [][]float64 {
	switch dim {
	case 1:
		return Line(lo, hi, n)
	case 2:
		return Grid(lo, hi, n)
	}

	grid := Grid(lo, hi, n)
	for i, x := range grid {
		padded := make([]float64, dim)
		copy(padded, x)
		grid[i] = padded
	}
	return grid
}
