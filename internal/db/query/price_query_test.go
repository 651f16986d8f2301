package db

import (
	"database/sql"
	"marketetl/internal/db/models/postgres/public/model"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	_ "github.com/lib/pq"
)

func SetupTestDb(t *testing.T) *sql.Tx {
	dbConn, err := NewTest()
	require.NoError(t, err)
	if err := dbConn.Ping(); err != nil {
		t.Skipf("test database unavailable: %v", err)
	}
	tx, err := dbConn.Begin()
	require.NoError(t, err)
	CleanupTest(t, tx)
	require.NoError(t, EnsurePriceTable(tx))

	return tx
}

func dec(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

func testPrice(symbol string, date time.Time, close float64) model.Price {
	return model.Price{
		Symbol:        symbol,
		Date:          date,
		Open:          dec(close - 1),
		High:          dec(close + 2),
		Low:           dec(close - 2),
		Close:         dec(close),
		AdjustedClose: dec(close),
		Volume:        1000,
		UpdatedAt:     time.Now().UTC(),
	}
}

func TestAddPrices(t *testing.T) {
	t.Run("re-run overwrites same (symbol, date)", func(t *testing.T) {
		tx := SetupTestDb(t)

		day := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)
		_, err := AddPrices(tx, []model.Price{testPrice("NVDA", day, 100)})
		require.NoError(t, err)

		_, err = AddPrices(tx, []model.Price{testPrice("NVDA", day, 105)})
		require.NoError(t, err)

		out, err := GetPrices(tx, []string{"NVDA"}, day, day.AddDate(0, 0, 1))
		require.NoError(t, err)

		require.Equal(
			t,
			"",
			cmp.Diff(
				[]model.Price{testPrice("NVDA", day, 105)},
				out,
				cmpopts.IgnoreFields(model.Price{}, "PriceID"),
				cmpopts.IgnoreFields(model.Price{}, "UpdatedAt"),
			),
		)
	})
}

func TestGetPrices(t *testing.T) {
	t.Run("window is half-open and per-symbol", func(t *testing.T) {
		tx := SetupTestDb(t)

		d1 := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)
		d2 := time.Date(2020, 1, 3, 0, 0, 0, 0, time.UTC)
		_, err := AddPrices(tx, []model.Price{
			testPrice("NVDA", d1, 100),
			testPrice("NVDA", d2, 101),
			testPrice("QQQ", d1, 200),
		})
		require.NoError(t, err)

		out, err := GetPrices(tx, []string{"NVDA"}, d1, d2)
		require.NoError(t, err)

		require.Equal(
			t,
			"",
			cmp.Diff(
				[]model.Price{testPrice("NVDA", d1, 100)},
				out,
				cmpopts.IgnoreFields(model.Price{}, "PriceID"),
				cmpopts.IgnoreFields(model.Price{}, "UpdatedAt"),
			),
		)
	})
}

func TestDistinctPriceDays(t *testing.T) {
	tx := SetupTestDb(t)

	d1 := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2020, 1, 3, 0, 0, 0, 0, time.UTC)
	_, err := AddPrices(tx, []model.Price{
		testPrice("NVDA", d1, 100),
		testPrice("QQQ", d1, 200),
		testPrice("QQQ", d2, 201),
	})
	require.NoError(t, err)

	days, err := DistinctPriceDays(tx)
	require.NoError(t, err)
	require.Equal(t, []time.Time{d1, d2}, days)
}
