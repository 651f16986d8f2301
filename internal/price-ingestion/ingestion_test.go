package price_ingestion

import (
	"errors"
	"testing"
	"time"

	etl_errors "marketetl/internal"
	"marketetl/internal/db/models/postgres/public/model"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var (
	testStart = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	testEnd   = time.Date(2020, 1, 10, 0, 0, 0, 0, time.UTC)
)

func bar(symbol string, date time.Time, adjClose float64) model.Price {
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

func TestFetchAll(t *testing.T) {
	day1 := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2020, 1, 3, 0, 0, 0, 0, time.UTC)

	t.Run("fetches every symbol", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := NewMockPriceSource(ctrl)

		source.EXPECT().
			GetHistoricalPrices("NVDA", testStart, testEnd).
			Return([]model.Price{bar("NVDA", day1, 100), bar("NVDA", day2, 101)}, nil)
		source.EXPECT().
			GetHistoricalPrices("QQQ", testStart, testEnd).
			Return([]model.Price{bar("QQQ", day1, 200)}, nil)

		out, err := FetchAll(source, []string{"NVDA", "QQQ"}, testStart, testEnd)
		require.NoError(t, err)
		require.Len(t, out["NVDA"], 2)
		require.Len(t, out["QQQ"], 1)
	})

	t.Run("failing symbol aborts the whole run", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := NewMockPriceSource(ctrl)

		source.EXPECT().
			GetHistoricalPrices("NVDA", testStart, testEnd).
			Return([]model.Price{bar("NVDA", day1, 100)}, nil)
		source.EXPECT().
			GetHistoricalPrices("NOPE", testStart, testEnd).
			Return(nil, etl_errors.ErrDataSource{Provider: "yahoo", Symbol: "NOPE", Err: errors.New("no data returned")})

		_, err := FetchAll(source, []string{"NVDA", "NOPE"}, testStart, testEnd)
		require.Error(t, err)

		var dsErr etl_errors.ErrDataSource
		require.True(t, errors.As(err, &dsErr))
		require.Equal(t, "NOPE", dsErr.Symbol)
	})

	t.Run("duplicate bar from provider is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := NewMockPriceSource(ctrl)

		source.EXPECT().
			GetHistoricalPrices("NVDA", testStart, testEnd).
			Return([]model.Price{bar("NVDA", day1, 100), bar("NVDA", day1, 100)}, nil)
		source.EXPECT().Name().Return("mock")

		_, err := FetchAll(source, []string{"NVDA"}, testStart, testEnd)
		require.Error(t, err)
		require.Contains(t, err.Error(), "duplicate bar")
	})

	t.Run("bar outside window is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		source := NewMockPriceSource(ctrl)

		outside := time.Date(2019, 12, 31, 0, 0, 0, 0, time.UTC)
		source.EXPECT().
			GetHistoricalPrices("NVDA", testStart, testEnd).
			Return([]model.Price{bar("NVDA", outside, 100)}, nil)
		source.EXPECT().Name().Return("mock")

		_, err := FetchAll(source, []string{"NVDA"}, testStart, testEnd)
		require.Error(t, err)
		require.Contains(t, err.Error(), "outside requested window")
	})
}
