package vol

import (
	"math"
	"testing"
)

// eleven daily bars of synthetic history
var fixture = []Bar{
	{Open: 100.0, High: 101.5, Low: 99.2, Close: 100.8},
	{Open: 100.8, High: 102.3, Low: 100.1, Close: 101.9},
	{Open: 101.9, High: 102.0, Low: 99.8, Close: 100.2},
	{Open: 100.2, High: 101.1, Low: 99.0, Close: 99.5},
	{Open: 99.5, High: 100.4, Low: 98.7, Close: 100.1},
	{Open: 100.1, High: 101.8, Low: 99.9, Close: 101.6},
	{Open: 101.6, High: 103.0, Low: 101.2, Close: 102.4},
	{Open: 102.4, High: 102.9, Low: 100.6, Close: 101.0},
	{Open: 101.0, High: 101.7, Low: 99.4, Close: 99.8},
	{Open: 99.8, High: 100.9, Low: 99.1, Close: 100.5},
	{Open: 100.5, High: 102.2, Low: 100.3, Close: 101.9},
}

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestEstimatorsOnFixture(t *testing.T) {
	cases := []struct {
		name string
		fn   func([]Bar) float64
		want float64
	}{
		{"CloseToClose", CloseToClose, 0.19295518361127234},
		{"Parkinson", Parkinson, 0.19457363073534736},
		{"GarmanKlass", GarmanKlass, 0.20012504084459712},
		{"RogersSatchell", RogersSatchell, 0.1932613078796871},
		{"YangZhang", YangZhang, 0.19230445355514433},
	}
	for _, c := range cases {
		if got := c.fn(fixture); !approxEqual(got, c.want, 1e-12) {
			t.Errorf("%s = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestFlatSeriesHasZeroVolatility(t *testing.T) {
	flat := make([]Bar, 20)
	for i := range flat {
		flat[i] = Bar{Open: 100, High: 100, Low: 100, Close: 100}
	}
	for name, fn := range map[string]func([]Bar) float64{
		"CloseToClose":   CloseToClose,
		"Parkinson":      Parkinson,
		"GarmanKlass":    GarmanKlass,
		"RogersSatchell": RogersSatchell,
		"YangZhang":      YangZhang,
	} {
		if got := fn(flat); got != 0 {
			t.Errorf("%s(flat) = %v, want 0", name, got)
		}
	}
}

func TestShortSeries(t *testing.T) {
	if got := CloseToClose(fixture[:1]); got != 0 {
		t.Errorf("CloseToClose on one bar = %v, want 0", got)
	}
	if got := YangZhang(fixture[:1]); got != 0 {
		t.Errorf("YangZhang on one bar = %v, want 0", got)
	}
	if got := Parkinson(nil); got != 0 {
		t.Errorf("Parkinson(nil) = %v, want 0", got)
	}
	if got := GarmanKlass(nil); got != 0 {
		t.Errorf("GarmanKlass(nil) = %v, want 0", got)
	}
	if got := RogersSatchell(nil); got != 0 {
		t.Errorf("RogersSatchell(nil) = %v, want 0", got)
	}
}

// A wider trading range must not report less volatility than a narrower
// one over the same closes.
func TestRangeSensitivity(t *testing.T) {
	narrow := make([]Bar, len(fixture))
	copy(narrow, fixture)
	for i := range narrow {
		mid := (narrow[i].High + narrow[i].Low) / 2
		narrow[i].High = mid + (narrow[i].High-mid)/2
		narrow[i].Low = mid - (mid-narrow[i].Low)/2
		if narrow[i].High < narrow[i].Open {
			narrow[i].High = narrow[i].Open
		}
		if narrow[i].High < narrow[i].Close {
			narrow[i].High = narrow[i].Close
		}
		if narrow[i].Low > narrow[i].Open {
			narrow[i].Low = narrow[i].Open
		}
		if narrow[i].Low > narrow[i].Close {
			narrow[i].Low = narrow[i].Close
		}
	}
	if Parkinson(narrow) >= Parkinson(fixture) {
		t.Errorf("Parkinson(narrow) = %v, want < %v", Parkinson(narrow), Parkinson(fixture))
	}
}
