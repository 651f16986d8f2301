package metrics

import (
	"marketetl/internal/domain"
)

// CumulativeReturns is the running compounded return:
// cumprod(1 + r) - 1 for each day.
func CumulativeReturns(dailyReturns domain.PercentData) []float64 {
	out := make([]float64, len(dailyReturns))
	acc := 1.0
	for i, r := range dailyReturns {
		acc *= 1 + r.AsFraction()
		out[i] = acc - 1
	}
	return out
}
