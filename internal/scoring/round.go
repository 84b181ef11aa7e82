package scoring

import (
	"math"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Round2 rounds half-up to two decimals. Rounding happens on the shortest
// decimal representation of x, so 1.005 becomes 1.01. NaN and infinities
// round to zero.
func Round2(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return toFloat(decimal.NewFromFloat(x).Round(2))
}

// percent returns round2(num / den * 100). Callers guard den == 0.
func percent(num, den decimal.Decimal) float64 {
	return toFloat(num.Mul(hundred).Div(den).Round(2))
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

func clampPct(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 100:
		return 100
	}
	return x
}
