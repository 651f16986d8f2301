package metrics

import (
	"fmt"

	"marketetl/internal/domain"

	"github.com/montanaflynn/stats"
)

// Summary holds descriptive statistics of a daily return series, in the
// usual describe() layout.
type Summary struct {
	Count  int
	Mean   float64
	Stdev  float64
	Min    float64
	P25    float64
	Median float64
	P75    float64
	Max    float64
}

func Describe(dailyReturns domain.PercentData) (*Summary, error) {
	if len(dailyReturns) < 2 {
		return nil, fmt.Errorf("cannot describe series with %d data points", len(dailyReturns))
	}
	data := dailyReturns.ToStatsData()

	out := &Summary{Count: len(data)}
	var err error
	if out.Mean, err = stats.Mean(data); err != nil {
		return nil, err
	}
	if out.Stdev, err = stats.StandardDeviationSample(data); err != nil {
		return nil, err
	}
	if out.Min, err = stats.Min(data); err != nil {
		return nil, err
	}
	if out.P25, err = stats.Percentile(data, 25); err != nil {
		return nil, err
	}
	if out.Median, err = stats.Median(data); err != nil {
		return nil, err
	}
	if out.P75, err = stats.Percentile(data, 75); err != nil {
		return nil, err
	}
	if out.Max, err = stats.Max(data); err != nil {
		return nil, err
	}

	return out, nil
}
