package main

import (
	"context"
	"flag"
	"log"

	"marketetl/internal/config"
	db "marketetl/internal/db/query"
	prices "marketetl/internal/price-ingestion"
	"marketetl/internal/yahoo"

	_ "github.com/lib/pq"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	tickers := flag.String("tickers", "", "comma-separated tickers, overrides config")
	startDate := flag.String("start", "", "window start (YYYY-MM-DD), overrides config")
	endDate := flag.String("end", "", "window end (YYYY-MM-DD), overrides config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	config.ApplyOverrides(cfg, *tickers, *startDate, *endDate)
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	start, end, err := cfg.Window()
	if err != nil {
		log.Fatal(err)
	}

	dbConn, err := db.New(cfg.ConnectionString())
	if err != nil {
		log.Fatal(err)
	}
	tx, err := dbConn.Begin()
	if err != nil {
		log.Fatal(err)
	}
	defer tx.Rollback()

	ctx := context.WithValue(
		context.Background(),
		"tx",
		tx,
	)

	log.Printf("fetching %v from %s to %s", cfg.Tickers, cfg.StartDate, cfg.EndDate)
	n, err := prices.IngestPrices(ctx, yahoo.NewClient(), cfg.Tickers, start, end)
	if err != nil {
		log.Fatal(err)
	}

	if err := tx.Commit(); err != nil {
		log.Fatal(err)
	}
	log.Printf("loaded %d rows for %d tickers", n, len(cfg.Tickers))
}
