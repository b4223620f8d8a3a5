package greeks

import "github.com/quantora/blackscholes/pricing"

// Result bundles the price and sensitivities of a single option.
type Result struct {
	Price float64
	Delta float64
	Gamma float64
	Theta float64
	Vega  float64
	Rho   float64
}

// All prices an option and computes every sensitivity in one call,
// using the default rho and theta scales.
func All(s, k, t, v, r float64, optionType string) Result {
	return Result{
		Price: pricing.Price(s, k, t, v, r, optionType),
		Delta: Delta(s, k, t, v, r, optionType),
		Gamma: Gamma(s, k, t, v, r),
		Theta: Theta(s, k, t, v, r, optionType),
		Vega:  Vega(s, k, t, v, r),
		Rho:   Rho(s, k, t, v, r, optionType),
	}
}
