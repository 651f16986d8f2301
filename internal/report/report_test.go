package report

import (
	"bytes"
	"testing"
	"time"

	"marketetl/internal/db/models/postgres/public/model"

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

func testPrices() []model.Price {
	start := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)
	prices := []model.Price{}
	// alternate up and down days so volatility is non-zero
	for i := 0; i < 40; i++ {
		date := start.AddDate(0, 0, i)
		nvda := 100.0 + float64(i%2)*5
		qqq := 200.0 + float64(i%3)
		prices = append(prices, priceRow("NVDA", date, nvda))
		prices = append(prices, priceRow("QQQ", date, qqq))
	}
	return prices
}

func TestBuild(t *testing.T) {
	windowStart := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	windowEnd := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)

	data, err := Build(testPrices(), 0, windowStart, windowEnd)
	require.NoError(t, err)

	require.Len(t, data.Symbols, 2)
	require.Equal(t, "NVDA", data.Symbols[0].Symbol)
	require.Equal(t, "QQQ", data.Symbols[1].Symbol)
	require.Equal(t, 39, data.Symbols[0].Summary.Count)
	require.NotNil(t, data.Symbols[0].RollingVolatility)
	require.Greater(t, data.Symbols[0].AnnualizedVolatility, 0.0)

	require.Len(t, data.Correlations, 1)
	require.Equal(t, "NVDA", data.Correlations[0].SymbolA)
	require.Equal(t, "QQQ", data.Correlations[0].SymbolB)

	// NVDA starts at 100 and ends at 105; the product telescopes
	require.InDelta(t, 0.05, data.Symbols[0].CumulativeReturn, 1e-9)
}

func TestBuild_noRows(t *testing.T) {
	_, err := Build(nil, 0, time.Now(), time.Now())
	require.Error(t, err)
}

func TestRender(t *testing.T) {
	data, err := Build(testPrices(), 0, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, data))

	html := buf.String()
	require.Contains(t, html, "<title>Comparative Performance: NVDA vs QQQ</title>")
	require.Contains(t, html, "Daily Return Statistics")
	require.Contains(t, html, "NVDA / QQQ")
	require.NotContains(t, html, "n/a")
}
