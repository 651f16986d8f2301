package main

import (
	"flag"
	"log"
	"os"

	"marketetl/internal/config"
	"marketetl/internal/db/models/postgres/public/model"
	prices "marketetl/internal/price-ingestion"
	"marketetl/internal/yahoo"
)

// Same extract step as cmd/etl, but writes daily returns to a CSV file
// instead of loading the warehouse. No database required.
func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	tickers := flag.String("tickers", "", "comma-separated tickers, overrides config")
	startDate := flag.String("start", "", "window start (YYYY-MM-DD), overrides config")
	endDate := flag.String("end", "", "window end (YYYY-MM-DD), overrides config")
	outPath := flag.String("out", "", "output CSV path, overrides config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	config.ApplyOverrides(cfg, *tickers, *startDate, *endDate)
	if *outPath != "" {
		cfg.CSV.OutputPath = *outPath
	}
	start, end, err := cfg.Window()
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("fetching %v from %s to %s", cfg.Tickers, cfg.StartDate, cfg.EndDate)
	bySymbol, err := prices.FetchAll(yahoo.NewClient(), cfg.Tickers, start, end)
	if err != nil {
		log.Fatal(err)
	}

	all := []model.Price{}
	for _, rows := range bySymbol {
		all = append(all, rows...)
	}

	f, err := os.Create(cfg.CSV.OutputPath)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	if err := prices.WriteDailyReturnsCsv(f, all); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote daily returns for %d tickers to %s", len(bySymbol), cfg.CSV.OutputPath)
}
