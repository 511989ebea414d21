package nn

import (
	"math"
	"math/rand"
)

// Initializer produces the weight and bias generator functions for one
// layer's dimensions. weight is called as weight(row, col) for every element
// of the (fanOut × fanIn) matrix, bias as bias(i) for every bias element.
//
// Initializers run only during construction; the generators they return are
// free to keep state (an RNG, typically).
type Initializer func(fanIn, fanOut int) (weight func(row, col int) float64, bias func(i int) float64)

// Xavier returns Xavier/Glorot uniform initialization: weights drawn from
// U(−b, b) with b = sqrt(6/(fanIn+fanOut)), biases zero. The seed makes
// initialization reproducible.
func Xavier(seed int64) Initializer {
	rng := rand.New(rand.NewSource(seed))
	return func(fanIn, fanOut int) (func(row, col int) float64, func(i int) float64) {
		bound := math.Sqrt(6.0 / float64(fanIn+fanOut))
		weight := func(_, _ int) float64 {
			return (rng.Float64()*2 - 1) * bound
		}
		bias := func(_ int) float64 { return 0 }
		return weight, bias
	}
}

// Uniform returns initialization with both weights and biases drawn from
// U(lo, hi).
func Uniform(lo, hi float64, seed int64) Initializer {
	rng := rand.New(rand.NewSource(seed))
	return func(_, _ int) (func(row, col int) float64, func(i int) float64) {
		draw := func() float64 { return lo + rng.Float64()*(hi-lo) }
		weight := func(_, _ int) float64 { return draw() }
		bias := func(_ int) float64 { return draw() }
		return weight, bias
	}
}

// Zeros returns all-zero initialization.
func Zeros() Initializer {
	return func(_, _ int) (func(row, col int) float64, func(i int) float64) {
		weight := func(_, _ int) float64 { return 0 }
		bias := func(_ int) float64 { return 0 }
		return weight, bias
	}
}
