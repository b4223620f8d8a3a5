// Package vol estimates annualized realized volatility from OHLC price
// history, producing the volatility input the pricing layer consumes.
// Estimators return 0 when the series is too short to evaluate.
package vol

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// tradingDays is the annualization base for daily bars.
const tradingDays = 252

// Bar is one period of price history, ordered oldest first in a series.
type Bar struct {
	Open  float64
	High  float64
	Low   float64
	Close float64
}

// CloseToClose returns the annualized sample standard deviation of
// close-to-close log returns. Needs at least two bars.
func CloseToClose(bars []Bar) float64 {
	if len(bars) < 2 {
		return 0
	}
	returns := make([]float64, len(bars)-1)
	for i := 1; i < len(bars); i++ {
		returns[i-1] = math.Log(bars[i].Close / bars[i-1].Close)
	}
	return stat.StdDev(returns, nil) * math.Sqrt(tradingDays)
}

// Parkinson returns the annualized Parkinson high-low range estimator.
func Parkinson(bars []Bar) float64 {
	n := len(bars)
	if n == 0 {
		return 0
	}
	sum := 0.0
	for _, b := range bars {
		lr := math.Log(b.High / b.Low)
		sum += lr * lr
	}
	return math.Sqrt(sum/(4*float64(n)*math.Ln2)) * math.Sqrt(tradingDays)
}

// GarmanKlass returns the annualized Garman-Klass estimator, which
// augments the high-low range with the open-to-close move.
func GarmanKlass(bars []Bar) float64 {
	n := len(bars)
	if n == 0 {
		return 0
	}
	sum := 0.0
	for _, b := range bars {
		hl := math.Log(b.High / b.Low)
		co := math.Log(b.Close / b.Open)
		sum += 0.5*hl*hl - (2*math.Ln2-1)*co*co
	}
	return math.Sqrt(sum / float64(n) * tradingDays)
}

// RogersSatchell returns the annualized Rogers-Satchell estimator,
// which is unbiased under nonzero drift.
func RogersSatchell(bars []Bar) float64 {
	if len(bars) == 0 {
		return 0
	}
	return math.Sqrt(rogersSatchellVariance(bars) * tradingDays)
}

func rogersSatchellVariance(bars []Bar) float64 {
	sum := 0.0
	for _, b := range bars {
		sum += math.Log(b.High/b.Close)*math.Log(b.High/b.Open) +
			math.Log(b.Low/b.Close)*math.Log(b.Low/b.Open)
	}
	return sum / float64(len(bars))
}

// YangZhang combines overnight, open-to-close and Rogers-Satchell
// variance into the Yang-Zhang estimator, annualized. Needs at least
// two bars.
func YangZhang(bars []Bar) float64 {
	n := len(bars)
	if n < 2 {
		return 0
	}
	k := 0.34 / (1.34 + float64(n+1)/float64(n-1))

	overnight := make([]float64, n-1)
	for i := 1; i < n; i++ {
		overnight[i-1] = math.Log(bars[i].Open / bars[i-1].Close)
	}
	openClose := make([]float64, n)
	for i, b := range bars {
		openClose[i] = math.Log(b.Close / b.Open)
	}

	overnightVar := stat.PopVariance(overnight, nil) * float64(n) / float64(n-1)
	openCloseVar := stat.PopVariance(openClose, nil) * float64(n) / float64(n-1)

	v := overnightVar + k*openCloseVar + (1-k)*rogersSatchellVariance(bars)
	return math.Sqrt(v) * math.Sqrt(tradingDays)
}
