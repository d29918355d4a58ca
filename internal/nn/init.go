package nn

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Xavier (Glorot) initialization for weights.
//
// Initializes weights with values drawn from a uniform distribution:
// U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out)))
//
// A nil src draws from the global source.
//
// Returns a [rows, cols] matrix initialized with the Xavier distribution.
func Xavier(fanIn, fanOut, rows, cols int, src rand.Source) *mat.Dense {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
	dist := distuv.Uniform{Min: -bound, Max: bound, Src: src}

	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = dist.Rand()
	}
	return mat.NewDense(rows, cols, data)
}

// Zeros creates a [rows, cols] matrix filled with zeros.
//
// This is commonly used for bias initialization.
func Zeros(rows, cols int) *mat.Dense {
	return mat.NewDense(rows, cols, nil)
}

// Normal returns a draw function sampling N(mean, std) from src.
//
// A nil src draws from the global source.
func Normal(mean, std float64, src rand.Source) func() float64 {
	dist := distuv.Normal{Mu: mean, Sigma: std, Src: src}
	return dist.Rand
}

// InitNormal resamples every parameter of every module under m from
// N(mean, std), in place.
//
// The traversal is structural, so parameters of nested containers are
// reached as well. Each parameter is visited once.
func InitNormal(m Module, mean, std float64, src rand.Source) {
	draw := Normal(mean, std, src)
	Apply(m, func(mod Module) {
		if _, ok := mod.(Container); ok {
			return
		}
		for _, p := range mod.Parameters() {
			p.Fill(draw)
		}
	})
}
