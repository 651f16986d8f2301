package main

import (
	"flag"
	"log"

	"marketetl/internal/config"
	db "marketetl/internal/db/query"
	"marketetl/internal/util"

	_ "github.com/lib/pq"
)

// Dumps the warehouse view of the loaded series: latest price per ticker
// (vw_latest_price) and recent daily returns (vw_daily_return).
func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	tickers := flag.String("tickers", "", "comma-separated tickers, overrides config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	config.ApplyOverrides(cfg, *tickers, "", "")
	if err := cfg.Validate(); err != nil {
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

	days, err := db.DistinctPriceDays(tx)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("%d trading days loaded", len(days))

	latest, err := db.GetLatestPrices(tx, cfg.Tickers)
	if err != nil {
		log.Fatal(err)
	}
	util.Pprint(latest)

	returns, err := db.GetDailyReturns(tx, cfg.Tickers)
	if err != nil {
		log.Fatal(err)
	}
	for symbol, rows := range returns {
		n := 5
		if len(rows) < n {
			n = len(rows)
		}
		log.Printf("last %d daily returns for %s:", n, symbol)
		util.Pprint(rows[len(rows)-n:])
	}
}
