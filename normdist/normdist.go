// Package normdist provides the standard normal density and a
// series-based cumulative distribution function used by the pricing
// and sensitivity layers.
package normdist

import "math"

const (
	// seriesTerms is the fixed number of Maclaurin terms summed by CDF.
	// The count balances accuracy and cost and is not configurable;
	// changing it changes the reference outputs.
	seriesTerms = 100

	// saturation is the argument magnitude at which CDF pins to exactly
	// 0 or 1. Beyond it the series terms grow factorially before they
	// converge, so the tails are clamped instead.
	saturation = 8
)

// CDF returns the probability that a standard normal variable is <= x.
// Arguments at or beyond ±8 saturate to exactly 1 and 0.
func CDF(x float64) float64 {
	if x >= saturation {
		return 1
	}
	if x <= -saturation {
		return 0
	}

	// Sum of x^(2i+1) / (2i+1)!! for i = 0..seriesTerms-1, built
	// incrementally: each term is the previous one times x²/(2i+1).
	sum := 0.0
	term := x
	for i := 1; i <= seriesTerms; i++ {
		sum += term
		term *= x * x / float64(2*i+1)
	}

	return 0.5 + sum*math.Exp(-x*x/2)/math.Sqrt(2*math.Pi)
}

// PDF returns the standard normal density at x.
func PDF(x float64) float64 {
	return math.Exp(-x*x/2) / math.Sqrt(2*math.Pi)
}
