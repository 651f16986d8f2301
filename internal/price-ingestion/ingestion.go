package price_ingestion

import (
	"context"
	"fmt"
	"time"

	etl_errors "marketetl/internal"
	"marketetl/internal/db/models/postgres/public/model"
	db "marketetl/internal/db/query"
)

// FetchAll retrieves bars for every symbol before anything is written, so a
// failing symbol aborts the run without leaving a partial load behind.
func FetchAll(source PriceSource, symbols []string, start, end time.Time) (map[string][]model.Price, error) {
	out := map[string][]model.Price{}
	for _, symbol := range symbols {
		prices, err := source.GetHistoricalPrices(symbol, start, end)
		if err != nil {
			return nil, err
		}
		seen := map[string]bool{}
		for _, p := range prices {
			key := p.Date.Format("2006-01-02")
			if seen[key] {
				return nil, etl_errors.ErrDataSource{
					Provider: source.Name(),
					Symbol:   symbol,
					Err:      fmt.Errorf("duplicate bar for %s", key),
				}
			}
			seen[key] = true
			if p.Date.Before(start) || !p.Date.Before(end) {
				return nil, etl_errors.ErrDataSource{
					Provider: source.Name(),
					Symbol:   symbol,
					Err:      fmt.Errorf("bar %s outside requested window", key),
				}
			}
		}
		out[symbol] = prices
	}

	return out, nil
}

// IngestPrices runs the pipeline inside the caller's transaction: fetch all
// symbols, then upsert one symbol batch at a time under a savepoint. Returns
// the number of rows written.
func IngestPrices(ctx context.Context, source PriceSource, symbols []string, start, end time.Time) (int, error) {
	tx, err := db.GetTx(ctx)
	if err != nil {
		return 0, err
	}
	if err := db.EnsurePriceTable(tx); err != nil {
		return 0, err
	}

	bySymbol, err := FetchAll(source, symbols, start, end)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, symbol := range symbols {
		savepoint, err := db.AddSavepoint(tx)
		if err != nil {
			return total, etl_errors.ErrPersistence{Op: "create savepoint", Err: err}
		}
		inserted, err := db.AddPrices(tx, bySymbol[symbol])
		if err != nil {
			return total, db.RollbackWithError(tx, savepoint, err)
		}
		total += len(inserted)
	}

	return total, nil
}
