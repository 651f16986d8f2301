package metrics

import (
	"fmt"
	"math"

	"marketetl/internal/domain"

	"github.com/montanaflynn/stats"
)

// 252 trading days per year
var annualizationFactor = math.Sqrt(252)

// AnnualizedVolatility is the sample standard deviation of daily returns
// scaled to a yearly horizon.
func AnnualizedVolatility(dailyReturns domain.PercentData) (float64, error) {
	stdev, err := stats.StandardDeviationSample(dailyReturns.ToStatsData())
	if err != nil {
		return 0, fmt.Errorf("failed to calculate stdev: %w", err)
	}
	return stdev * annualizationFactor, nil
}

// SharpeRatio is (annualized mean return - risk free rate) / annualized
// volatility. riskFreeRate is a yearly fraction, e.g. 0.05.
func SharpeRatio(dailyReturns domain.PercentData, riskFreeRate float64) (float64, error) {
	data := dailyReturns.ToStatsData()
	mean, err := stats.Mean(data)
	if err != nil {
		return 0, fmt.Errorf("failed to calculate mean return: %w", err)
	}
	stdev, err := stats.StandardDeviationSample(data)
	if err != nil {
		return 0, fmt.Errorf("failed to calculate stdev: %w", err)
	}
	if stdev == 0 {
		return 0, fmt.Errorf("zero volatility, sharpe ratio undefined")
	}

	return (mean*252 - riskFreeRate) / (stdev * annualizationFactor), nil
}

// RollingVolatility returns the annualized stdev over a moving window.
// Output length is len(dailyReturns) - window + 1.
func RollingVolatility(dailyReturns domain.PercentData, window int) ([]float64, error) {
	if window < 2 {
		return nil, fmt.Errorf("window must be at least 2, got %d", window)
	}
	if len(dailyReturns) < window {
		return nil, fmt.Errorf("need at least %d returns for a %d-day window, got %d", window, window, len(dailyReturns))
	}

	data := dailyReturns.ToStatsData()
	out := make([]float64, 0, len(data)-window+1)
	for i := 0; i+window <= len(data); i++ {
		stdev, err := stats.StandardDeviationSample(data[i : i+window])
		if err != nil {
			return nil, fmt.Errorf("failed to calculate stdev at offset %d: %w", i, err)
		}
		out = append(out, stdev*annualizationFactor)
	}

	return out, nil
}

// making two design decisions here:
// 1. this layer should not have any external deps. all stateful data
// like prices should be provided
// 2. it's insane to use decimal in this layer. these are all calculations
// and approximations. using decimal makes sense when dealing with specific
// amounts that we really care about. shouldn't matter for stats
//
// anyways inputs are daily price changes (fractions)
func Correlation(dailyChangePricesA domain.PercentData, dailyChangePricesB domain.PercentData) (float64, error) {
	if len(dailyChangePricesA) != len(dailyChangePricesB) {
		return 0, fmt.Errorf("datasets must be same length to calculate correlation - received %d and %d", len(dailyChangePricesA), len(dailyChangePricesB))
	}

	corr, err := stats.Correlation(
		dailyChangePricesA.ToStatsData(),
		dailyChangePricesB.ToStatsData(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to calculate correlation: %w", err)
	}

	return corr, nil
}
