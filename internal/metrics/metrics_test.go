package metrics

import (
	"testing"
	"time"

	"marketetl/internal/db/models/postgres/public/model"
	"marketetl/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func priceRow(symbol string, date time.Time, adjClose float64) model.Price {
	d := decimal.NewFromFloat(adjClose)
	return model.Price{
		Symbol:        symbol,
		Date:          date,
		Open:          d,
		High:          d,
		Low:           d,
		Close:         d,
		AdjustedClose: d,
		Volume:        100,
	}
}

func returns(fractions ...float64) domain.PercentData {
	out := domain.PercentData{}
	for _, f := range fractions {
		out = append(out, domain.PercentFromFraction(f))
	}
	return out
}

func TestPercentChange(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2020, 1, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("sorted by date before differencing", func(t *testing.T) {
		prices := []model.Price{
			priceRow("NVDA", day(3), 110),
			priceRow("NVDA", day(2), 100),
			priceRow("NVDA", day(6), 99),
		}
		out, err := PercentChange(prices)
		require.NoError(t, err)
		require.Len(t, out, 2)
		require.InDelta(t, 0.1, out[0].AsFraction(), 1e-12)
		require.InDelta(t, -0.1, out[1].AsFraction(), 1e-12)
	})

	t.Run("needs two data points", func(t *testing.T) {
		_, err := PercentChange([]model.Price{priceRow("NVDA", day(2), 100)})
		require.Error(t, err)
	})
}

func TestCalculateDailyPercentChange(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2020, 1, d, 0, 0, 0, 0, time.UTC)
	}
	prices := []model.Price{
		priceRow("NVDA", day(2), 100),
		priceRow("NVDA", day(3), 110),
		priceRow("QQQ", day(2), 200),
		priceRow("QQQ", day(3), 210),
	}

	out, err := CalculateDailyPercentChange(prices)
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.InDelta(t, 0.1, out["NVDA"][0].AsFraction(), 1e-12)
	require.InDelta(t, 0.05, out["QQQ"][0].AsFraction(), 1e-12)
}

func TestAnnualizedVolatility(t *testing.T) {
	vol, err := AnnualizedVolatility(returns(0.1, -0.1, 0.1, -0.1))
	require.NoError(t, err)
	// sample stdev sqrt(0.04/3), annualized by sqrt(252)
	require.InDelta(t, 1.8330, vol, 1e-4)
}

func TestSharpeRatio(t *testing.T) {
	t.Run("zero mean return gives zero sharpe at rf=0", func(t *testing.T) {
		sharpe, err := SharpeRatio(returns(0.1, -0.1, 0.1, -0.1), 0)
		require.NoError(t, err)
		require.InDelta(t, 0, sharpe, 1e-12)
	})

	t.Run("constant positive return", func(t *testing.T) {
		_, err := SharpeRatio(returns(0.01, 0.01, 0.01), 0)
		require.Error(t, err) // zero volatility
	})

	t.Run("risk free rate lowers sharpe", func(t *testing.T) {
		series := returns(0.01, 0.02, -0.005, 0.015)
		withoutRf, err := SharpeRatio(series, 0)
		require.NoError(t, err)
		withRf, err := SharpeRatio(series, 0.05)
		require.NoError(t, err)
		require.Greater(t, withoutRf, withRf)
	})
}

func TestRollingVolatility(t *testing.T) {
	t.Run("window slides over the series", func(t *testing.T) {
		out, err := RollingVolatility(returns(0.1, -0.1, 0.1), 2)
		require.NoError(t, err)
		require.Len(t, out, 2)
		// stdev of {0.1, -0.1} = sqrt(0.02), annualized
		require.InDelta(t, 2.2450, out[0], 1e-4)
		require.InDelta(t, 2.2450, out[1], 1e-4)
	})

	t.Run("series shorter than window", func(t *testing.T) {
		_, err := RollingVolatility(returns(0.1, -0.1), 30)
		require.Error(t, err)
	})
}

func TestCorrelation(t *testing.T) {
	t.Run("identical series", func(t *testing.T) {
		a := returns(0.01, 0.02, -0.01, 0.005)
		corr, err := Correlation(a, a)
		require.NoError(t, err)
		require.InDelta(t, 1, corr, 1e-9)
	})

	t.Run("inverted series", func(t *testing.T) {
		a := returns(0.01, 0.02, -0.01, 0.005)
		b := returns(-0.01, -0.02, 0.01, -0.005)
		corr, err := Correlation(a, b)
		require.NoError(t, err)
		require.InDelta(t, -1, corr, 1e-9)
	})

	t.Run("mismatched lengths", func(t *testing.T) {
		_, err := Correlation(returns(0.01), returns(0.01, 0.02))
		require.Error(t, err)
	})
}

func TestCumulativeReturns(t *testing.T) {
	out := CumulativeReturns(returns(0.1, -0.1))
	require.Len(t, out, 2)
	require.InDelta(t, 0.1, out[0], 1e-12)
	require.InDelta(t, -0.01, out[1], 1e-12)
}

func TestDescribe(t *testing.T) {
	summary, err := Describe(returns(0.01, 0.02, 0.03, 0.04))
	require.NoError(t, err)
	require.Equal(t, 4, summary.Count)
	require.InDelta(t, 0.025, summary.Mean, 1e-12)
	require.InDelta(t, 0.01, summary.Min, 1e-12)
	require.InDelta(t, 0.04, summary.Max, 1e-12)
	require.InDelta(t, 0.025, summary.Median, 1e-12)
}
