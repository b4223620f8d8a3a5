// Package greeks computes the Black-Scholes risk sensitivities of a
// European option: delta, rho, vega, theta and gamma.
//
// Every function shares the same degenerate-input policy: when the drift
// term diverges (zero volatility or time remaining, non-positive strike
// ratio) a formula-specific fallback is substituted instead of
// propagating NaN. An expiring option has no remaining rate, volatility
// or curvature sensitivity, and its delta collapses to a step function
// of moneyness.
package greeks

import (
	"math"

	"github.com/quantora/blackscholes/normdist"
	"github.com/quantora/blackscholes/pricing"
)

// Default divisors for rho and theta, so they read as the price change
// per percentage-point rate move and per calendar day.
const (
	DefaultRhoScale   = 100
	DefaultThetaScale = 365
)

// Delta returns the sensitivity of the option price to the underlying
// price. Calls fall in [0,1], puts in [-1,0].
func Delta(s, k, t, v, r float64, optionType string) float64 {
	d := callDelta(s, k, t, v, r)
	if optionType == pricing.Call {
		return d
	}
	d -= 1
	if d == -1 && k == s {
		// exact at-the-money artifact of the step fallback
		return 0
	}
	return d
}

func callDelta(s, k, t, v, r float64) float64 {
	w := pricing.W(s, k, t, v, r)
	if math.IsNaN(w) || math.IsInf(w, 0) {
		if s > k {
			return 1
		}
		return 0
	}
	return normdist.CDF(w)
}

// Rho returns the sensitivity of the option price to the risk-free
// rate, divided by scale (default 100). Unlike the other sensitivities
// rho falls back to 0 only when the drift term is NaN; an infinite
// drift still prices through the saturated CDF.
func Rho(s, k, t, v, r float64, optionType string, scale ...float64) float64 {
	sc := scaleOr(DefaultRhoScale, scale)
	w := pricing.W(s, k, t, v, r)
	if math.IsNaN(w) {
		return 0
	}
	vSqrtT := v * math.Sqrt(t)
	if optionType == pricing.Call {
		return k * t * math.Exp(-r*t) * normdist.CDF(w-vSqrtT) / sc
	}
	return -k * t * math.Exp(-r*t) * normdist.CDF(vSqrtT-w) / sc
}

// Vega returns the sensitivity of the option price to a one-point move
// in volatility. It is identical for calls and puts.
func Vega(s, k, t, v, r float64) float64 {
	w := pricing.W(s, k, t, v, r)
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return 0
	}
	return s * math.Sqrt(t) * normdist.PDF(w) / 100
}

// Theta returns the time decay of the option price, divided by scale
// (default 365, i.e. per calendar day).
func Theta(s, k, t, v, r float64, optionType string, scale ...float64) float64 {
	sc := scaleOr(DefaultThetaScale, scale)
	w := pricing.W(s, k, t, v, r)
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return 0
	}
	vSqrtT := v * math.Sqrt(t)
	decay := -v * s * normdist.PDF(w) / (2 * math.Sqrt(t))
	if optionType == pricing.Call {
		return (decay - k*r*math.Exp(-r*t)*normdist.CDF(w-vSqrtT)) / sc
	}
	return (decay + k*r*math.Exp(-r*t)*normdist.CDF(vSqrtT-w)) / sc
}

// Gamma returns the sensitivity of delta to the underlying price. It is
// identical for calls and puts.
func Gamma(s, k, t, v, r float64) float64 {
	w := pricing.W(s, k, t, v, r)
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return 0
	}
	return normdist.PDF(w) / (s * v * math.Sqrt(t))
}

func scaleOr(def float64, scale []float64) float64 {
	if len(scale) > 0 {
		return scale[0]
	}
	return def
}
