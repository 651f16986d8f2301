package price_ingestion

import (
	"marketetl/internal/db/models/postgres/public/model"
	"time"
)

type PriceSource interface {
	GetHistoricalPrices(symbol string, start, end time.Time) ([]model.Price, error)
	Name() string
}
