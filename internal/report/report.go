package report

import (
	"fmt"
	"html/template"
	"io"
	"sort"
	"time"

	"marketetl/internal/db/models/postgres/public/model"
	"marketetl/internal/domain"
	"marketetl/internal/metrics"
)

const rollingWindow = 30

type SymbolMetrics struct {
	Symbol               string
	Summary              *metrics.Summary
	CumulativeReturn     float64
	AnnualizedVolatility float64
	SharpeRatio          float64
	RollingVolatility    *float64 // latest 30-day value, nil if the series is too short
}

type CorrelationPair struct {
	SymbolA string
	SymbolB string
	Value   float64
}

type Data struct {
	Title        string
	WindowStart  time.Time
	WindowEnd    time.Time
	GeneratedAt  time.Time
	Symbols      []SymbolMetrics
	Correlations []CorrelationPair
}

// Build computes the report metrics from loaded price rows. riskFreeRate is
// a yearly fraction applied to the sharpe ratio.
func Build(prices []model.Price, riskFreeRate float64, windowStart, windowEnd time.Time) (*Data, error) {
	bySymbol := map[string][]model.Price{}
	symbols := []string{}
	for _, p := range prices {
		if _, ok := bySymbol[p.Symbol]; !ok {
			symbols = append(symbols, p.Symbol)
		}
		bySymbol[p.Symbol] = append(bySymbol[p.Symbol], p)
	}
	sort.Strings(symbols)
	if len(symbols) == 0 {
		return nil, fmt.Errorf("no price rows to report on")
	}

	returnsBySymbol := map[string]domain.PercentData{}
	returnDatesBySymbol := map[string][]time.Time{}
	data := &Data{
		Title:       fmt.Sprintf("Comparative Performance: %s", joinSymbols(symbols)),
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
		GeneratedAt: time.Now().UTC(),
	}

	for _, symbol := range symbols {
		rows := bySymbol[symbol]
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].Date.Before(rows[j].Date)
		})

		dailyReturns, err := metrics.PercentChange(rows)
		if err != nil {
			return nil, fmt.Errorf("daily returns for %s: %w", symbol, err)
		}
		returnsBySymbol[symbol] = dailyReturns
		dates := make([]time.Time, 0, len(dailyReturns))
		for _, r := range rows[1:] {
			dates = append(dates, r.Date)
		}
		returnDatesBySymbol[symbol] = dates

		summary, err := metrics.Describe(dailyReturns)
		if err != nil {
			return nil, fmt.Errorf("describe %s: %w", symbol, err)
		}
		vol, err := metrics.AnnualizedVolatility(dailyReturns)
		if err != nil {
			return nil, fmt.Errorf("volatility of %s: %w", symbol, err)
		}
		sharpe, err := metrics.SharpeRatio(dailyReturns, riskFreeRate)
		if err != nil {
			return nil, fmt.Errorf("sharpe ratio of %s: %w", symbol, err)
		}
		cumulative := metrics.CumulativeReturns(dailyReturns)

		sm := SymbolMetrics{
			Symbol:               symbol,
			Summary:              summary,
			CumulativeReturn:     cumulative[len(cumulative)-1],
			AnnualizedVolatility: vol,
			SharpeRatio:          sharpe,
		}
		if rolling, err := metrics.RollingVolatility(dailyReturns, rollingWindow); err == nil {
			latest := rolling[len(rolling)-1]
			sm.RollingVolatility = &latest
		}
		data.Symbols = append(data.Symbols, sm)
	}

	for i := range symbols {
		for j := i + 1; j < len(symbols); j++ {
			a, b := alignReturns(
				returnDatesBySymbol[symbols[i]], returnsBySymbol[symbols[i]],
				returnDatesBySymbol[symbols[j]], returnsBySymbol[symbols[j]],
			)
			corr, err := metrics.Correlation(a, b)
			if err != nil {
				return nil, fmt.Errorf("correlation %s/%s: %w", symbols[i], symbols[j], err)
			}
			data.Correlations = append(data.Correlations, CorrelationPair{
				SymbolA: symbols[i],
				SymbolB: symbols[j],
				Value:   corr,
			})
		}
	}

	return data, nil
}

// alignReturns keeps only observations on dates both series share, so a
// holiday on one exchange does not skew the correlation.
func alignReturns(datesA []time.Time, a domain.PercentData, datesB []time.Time, b domain.PercentData) (domain.PercentData, domain.PercentData) {
	byDateB := map[string]domain.Percent{}
	for i, d := range datesB {
		byDateB[d.Format("2006-01-02")] = b[i]
	}

	outA := domain.PercentData{}
	outB := domain.PercentData{}
	for i, d := range datesA {
		if rb, ok := byDateB[d.Format("2006-01-02")]; ok {
			outA = append(outA, a[i])
			outB = append(outB, rb)
		}
	}
	return outA, outB
}

func joinSymbols(symbols []string) string {
	out := ""
	for i, s := range symbols {
		if i > 0 {
			out += " vs "
		}
		out += s
	}
	return out
}

var templateFuncs = template.FuncMap{
	"pct": func(f float64) string {
		return fmt.Sprintf("%.2f%%", f*100)
	},
	"deref": func(f *float64) float64 {
		return *f
	},
}

var reportTemplate = template.Must(template.New("report").Funcs(templateFuncs).Parse(`<!DOCTYPE html>
<html>
<head>
	<title>{{.Title}}</title>
	<style>
		body { font-family: Arial, sans-serif; margin: 40px; background-color: #f4f4f9; color: #333; }
		h1, h2 { color: #1a1a2e; }
		h1 { text-align: center; }
		.container { background-color: #fff; padding: 30px; border-radius: 8px; }
		table { width: 100%; border-collapse: collapse; margin-bottom: 30px; }
		th, td { padding: 12px 15px; border: 1px solid #ddd; text-align: left; }
		th { background-color: #1a1a2e; color: #fff; }
		tr:nth-child(even) { background-color: #f2f2f2; }
	</style>
</head>
<body>
<div class="container">
	<h1>{{.Title}}</h1>
	<p>Window {{.WindowStart.Format "2006-01-02"}} to {{.WindowEnd.Format "2006-01-02"}}, generated {{.GeneratedAt.Format "2006-01-02 15:04"}} UTC.</p>

	<h2>1. Daily Return Statistics</h2>
	<table>
		<tr><th>Ticker</th><th>Count</th><th>Mean</th><th>Stdev</th><th>Min</th><th>25%</th><th>Median</th><th>75%</th><th>Max</th></tr>
		{{range .Symbols}}
		<tr>
			<td>{{.Symbol}}</td>
			<td>{{.Summary.Count}}</td>
			<td>{{printf "%.6f" .Summary.Mean}}</td>
			<td>{{printf "%.6f" .Summary.Stdev}}</td>
			<td>{{printf "%.6f" .Summary.Min}}</td>
			<td>{{printf "%.6f" .Summary.P25}}</td>
			<td>{{printf "%.6f" .Summary.Median}}</td>
			<td>{{printf "%.6f" .Summary.P75}}</td>
			<td>{{printf "%.6f" .Summary.Max}}</td>
		</tr>
		{{end}}
	</table>

	<h2>2. Risk and Annualized Return Metrics</h2>
	<table>
		<tr><th>Ticker</th><th>Cumulative Return</th><th>Annualized Volatility</th><th>Latest 30-Day Volatility</th><th>Sharpe Ratio</th></tr>
		{{range .Symbols}}
		<tr>
			<td>{{.Symbol}}</td>
			<td>{{pct .CumulativeReturn}}</td>
			<td>{{printf "%.4f" .AnnualizedVolatility}}</td>
			<td>{{if .RollingVolatility}}{{printf "%.4f" (deref .RollingVolatility)}}{{else}}n/a{{end}}</td>
			<td>{{printf "%.4f" .SharpeRatio}}</td>
		</tr>
		{{end}}
	</table>

	<h2>3. Correlation of Daily Returns</h2>
	<table>
		<tr><th>Pair</th><th>Correlation</th></tr>
		{{range .Correlations}}
		<tr><td>{{.SymbolA}} / {{.SymbolB}}</td><td>{{printf "%.4f" .Value}}</td></tr>
		{{end}}
	</table>
</div>
</body>
</html>
`))

func Render(w io.Writer, data *Data) error {
	if err := reportTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}
