package main

import (
	"flag"
	"log"
	"os"

	"marketetl/internal/config"
	db "marketetl/internal/db/query"
	"marketetl/internal/report"

	_ "github.com/lib/pq"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	tickers := flag.String("tickers", "", "comma-separated tickers, overrides config")
	startDate := flag.String("start", "", "window start (YYYY-MM-DD), overrides config")
	endDate := flag.String("end", "", "window end (YYYY-MM-DD), overrides config")
	outPath := flag.String("out", "", "output HTML path, overrides config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	config.ApplyOverrides(cfg, *tickers, *startDate, *endDate)
	if *outPath != "" {
		cfg.Report.OutputPath = *outPath
	}
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

	prices, err := db.GetPrices(tx, cfg.Tickers, start, end)
	if err != nil {
		log.Fatal(err)
	}

	data, err := report.Build(prices, cfg.RiskFreeRate, start, end)
	if err != nil {
		log.Fatal(err)
	}

	f, err := os.Create(cfg.Report.OutputPath)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	if err := report.Render(f, data); err != nil {
		log.Fatal(err)
	}
	log.Printf("report written to %s", cfg.Report.OutputPath)
}
