package metrics

import (
	"fmt"
	"marketetl/internal/db/models/postgres/public/model"
	"marketetl/internal/domain"
	"sort"
)

func CalculateDailyPercentChange(prices []model.Price) (map[string]domain.PercentData, error) {
	pricesBySymbol := map[string][]model.Price{}
	// group prices by symbol
	for _, p := range prices {
		if _, ok := pricesBySymbol[p.Symbol]; !ok {
			pricesBySymbol[p.Symbol] = []model.Price{}
		}
		pricesBySymbol[p.Symbol] = append(pricesBySymbol[p.Symbol], p)
	}

	percentChangeBySymbol := map[string]domain.PercentData{}
	for symbol, prices := range pricesBySymbol {
		p, err := PercentChange(prices)
		if err != nil {
			return nil, fmt.Errorf("failed on %s: %w", symbol, err)
		}

		percentChangeBySymbol[symbol] = p
	}

	return percentChangeBySymbol, nil
}

// PercentChange computes day-over-day fractional returns from adjusted
// close, ordered by date. Needs at least two observations.
func PercentChange(prices []model.Price) (domain.PercentData, error) {
	if len(prices) < 2 {
		return nil, fmt.Errorf("cannot compute daily percent change - only %d data points", len(prices))
	}
	sort.SliceStable(prices, func(i, j int) bool {
		return prices[i].Date.Before(prices[j].Date)
	})
	out := domain.PercentData{}
	for i, p := range prices[1:] {
		prevPrice := prices[i].AdjustedClose.InexactFloat64()
		currentPrice := p.AdjustedClose.InexactFloat64()
		percentChange := (currentPrice - prevPrice) / prevPrice
		out = append(out, domain.PercentFromFraction(percentChange))
	}
	return out, nil
}
