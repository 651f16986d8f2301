package db

import (
	"database/sql"
	"fmt"
	"marketetl/internal/db/models/postgres/public/model"
	. "marketetl/internal/db/models/postgres/public/table"
	"marketetl/internal/db/models/postgres/public/view"
	"time"

	etl_errors "marketetl/internal"

	. "github.com/go-jet/jet/v2/postgres"
	"github.com/shopspring/decimal"
)

// EnsurePriceTable creates the price table on first run. The downstream
// views (vw_daily_return, vw_latest_price) are owned by the warehouse,
// not by this pipeline.
func EnsurePriceTable(tx *sql.Tx) error {
	ddl := `
	CREATE TABLE IF NOT EXISTS price (
		price_id SERIAL PRIMARY KEY,
		symbol VARCHAR(10) NOT NULL,
		date DATE NOT NULL,
		open NUMERIC NOT NULL,
		high NUMERIC NOT NULL,
		low NUMERIC NOT NULL,
		close NUMERIC NOT NULL,
		adjusted_close NUMERIC NOT NULL,
		volume BIGINT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		UNIQUE (symbol, date)
	);`
	_, err := tx.Exec(ddl)
	if err != nil {
		return etl_errors.ErrPersistence{Op: "ensure price table", Err: err}
	}
	return nil
}

// AddPrices upserts rows keyed on (symbol, date). Re-running a load with
// the same window overwrites prior values, so runs are idempotent.
func AddPrices(tx *sql.Tx, prices []model.Price) ([]model.Price, error) {
	t := Price
	stmt := t.INSERT(t.MutableColumns).
		MODELS(prices).
		ON_CONFLICT(t.Symbol, t.Date).DO_UPDATE(
		SET(
			t.Open.SET(t.EXCLUDED.Open),
			t.High.SET(t.EXCLUDED.High),
			t.Low.SET(t.EXCLUDED.Low),
			t.Close.SET(t.EXCLUDED.Close),
			t.AdjustedClose.SET(t.EXCLUDED.AdjustedClose),
			t.Volume.SET(t.EXCLUDED.Volume),
			t.UpdatedAt.SET(t.EXCLUDED.UpdatedAt),
		),
	).
		RETURNING(t.AllColumns)

	result := []model.Price{}
	err := stmt.Query(tx, &result)
	if err != nil {
		return nil, etl_errors.ErrPersistence{Op: "insert prices", Err: err}
	}

	return result, nil
}

// GetPrices returns rows for the given symbols inside [start, end),
// ordered by symbol then date.
func GetPrices(tx *sql.Tx, symbols []string, start, end time.Time) ([]model.Price, error) {
	whereExp := []BoolExpression{
		Price.Date.GT_EQ(DateT(start)),
		Price.Date.LT(DateT(end)),
	}
	if len(symbols) > 0 {
		whereExp = append(whereExp, Price.Symbol.IN(symbolExpression(symbols)...))
	}

	query := Price.SELECT(Price.AllColumns).
		WHERE(AND(whereExp...)).
		ORDER_BY(Price.Symbol.ASC(), Price.Date.ASC())

	result := []model.Price{}
	err := query.Query(tx, &result)
	if err != nil {
		return nil, etl_errors.ErrPersistence{Op: "fetch prices", Err: err}
	}

	return result, nil
}

func DistinctPriceDays(tx *sql.Tx) ([]time.Time, error) {
	var dates []time.Time
	query := SELECT(Price.Date).
		FROM(Price).
		DISTINCT().
		ORDER_BY(Price.Date.ASC())
	err := query.Query(tx, &dates)
	if err != nil {
		return nil, etl_errors.ErrPersistence{Op: "fetch distinct dates", Err: err}
	}
	return dates, nil
}

// GetLatestPrices reads the warehouse-owned vw_latest_price view. Every
// requested symbol must be present or the read fails.
func GetLatestPrices(tx *sql.Tx, symbols []string) (map[string]decimal.Decimal, error) {
	priceMap := map[string]decimal.Decimal{}
	symbolSet := map[string]bool{}
	for _, s := range symbols {
		symbolSet[s] = false
	}

	t := view.VwLatestPrice
	query := t.SELECT(t.AllColumns).
		WHERE(t.Symbol.IN(symbolExpression(symbols)...))

	results := []model.VwLatestPrice{}
	err := query.Query(tx, &results)
	if err != nil {
		return nil, etl_errors.ErrPersistence{Op: "fetch latest prices", Err: err}
	}

	for _, result := range results {
		priceMap[*result.Symbol] = *result.AdjustedClose
		symbolSet[*result.Symbol] = true
	}

	for _, s := range symbols {
		if !symbolSet[s] {
			return nil, fmt.Errorf("symbol %s does not have latest price updated", s)
		}
	}

	return priceMap, nil
}

// GetDailyReturns reads the warehouse-owned vw_daily_return view,
// keyed by symbol, ordered by date within each symbol.
func GetDailyReturns(tx *sql.Tx, symbols []string) (map[string][]model.VwDailyReturn, error) {
	t := view.VwDailyReturn
	query := t.SELECT(t.AllColumns).
		WHERE(t.Symbol.IN(symbolExpression(symbols)...)).
		ORDER_BY(t.Symbol.ASC(), t.Date.ASC())

	results := []model.VwDailyReturn{}
	err := query.Query(tx, &results)
	if err != nil {
		return nil, etl_errors.ErrPersistence{Op: "fetch daily returns", Err: err}
	}

	out := map[string][]model.VwDailyReturn{}
	for _, r := range results {
		out[*r.Symbol] = append(out[*r.Symbol], r)
	}

	return out, nil
}

func symbolExpression(symbols []string) []Expression {
	symbolExpression := []Expression{}
	for _, s := range symbols {
		symbolExpression = append(symbolExpression, String(s))
	}
	return symbolExpression
}
