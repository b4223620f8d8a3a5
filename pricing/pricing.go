// Package pricing implements the Black-Scholes value of a European
// option and the standardized drift term the sensitivity formulas are
// built on.
package pricing

import (
	"math"

	"github.com/quantora/blackscholes/normdist"
)

// Option variant tags. Dispatch is lenient: Price and the sensitivity
// functions take the call branch only for an exact Call match and treat
// everything else as a put.
const (
	Call = "call"
	Put  = "put"
)

// W returns the standardized drift term, the conventional d1:
//
//	(r·t + v²·t/2 − ln(k/s)) / (v·√t)
//
// No validation is performed. Degenerate inputs (t = 0, v = 0, k/s <= 0)
// yield ±Inf or NaN, which the caller is expected to handle.
func W(s, k, t, v, r float64) float64 {
	return (r*t + v*v*t/2 - math.Log(k/s)) / (v * math.Sqrt(t))
}

// Price returns the Black-Scholes value of a European option on an
// underlying at price s with strike k, t years to expiration, annualized
// volatility v and risk-free rate r. Non-finite intermediate results
// propagate unchecked; callers needing a t = 0 or v = 0 price must
// special-case it themselves.
func Price(s, k, t, v, r float64, optionType string) float64 {
	w := W(s, k, t, v, r)
	vSqrtT := v * math.Sqrt(t)
	if optionType == Call {
		return s*normdist.CDF(w) - k*math.Exp(-r*t)*normdist.CDF(w-vSqrtT)
	}
	return k*math.Exp(-r*t)*normdist.CDF(vSqrtT-w) - s*normdist.CDF(-w)
}

// DaysInYears converts a day count to years, rounded to five decimals.
func DaysInYears(days float64) float64 {
	return math.Round(days/365*100000) / 100000
}
