package price_ingestion

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"marketetl/internal/db/models/postgres/public/model"
	"marketetl/internal/metrics"
)

// WriteDailyReturnsCsv writes one row per (date, ticker) with the daily
// fractional return, ordered by ticker then date. The first trading day of
// each ticker has no prior close and is dropped.
func WriteDailyReturnsCsv(w io.Writer, prices []model.Price) error {
	bySymbol := map[string][]model.Price{}
	symbols := []string{}
	for _, p := range prices {
		if _, ok := bySymbol[p.Symbol]; !ok {
			symbols = append(symbols, p.Symbol)
		}
		bySymbol[p.Symbol] = append(bySymbol[p.Symbol], p)
	}
	sort.Strings(symbols)

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "ticker", "daily_return"}); err != nil {
		return err
	}

	for _, symbol := range symbols {
		rows := bySymbol[symbol]
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Date.Before(rows[j].Date)
		})
		changes, err := metrics.PercentChange(rows)
		if err != nil {
			return fmt.Errorf("daily returns for %s: %w", symbol, err)
		}
		for i, c := range changes {
			record := []string{
				rows[i+1].Date.Format("2006-01-02"),
				symbol,
				strconv.FormatFloat(c.AsFraction(), 'f', -1, 64),
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
