package yahoo

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	etl_errors "marketetl/internal"
	"marketetl/internal/db/models/postgres/public/model"

	"github.com/shopspring/decimal"
)

const (
	defaultBaseURL = "https://query1.finance.yahoo.com"
	maxAttempts    = 3
	retryDelay     = 2 * time.Second
)

type Client struct {
	HttpClient *http.Client
	BaseURL    string
}

func NewClient() *Client {
	return &Client{
		HttpClient: &http.Client{Timeout: 30 * time.Second},
		BaseURL:    defaultBaseURL,
	}
}

func (c *Client) Name() string { return "yahoo" }

// chartResponse is the shape of the Yahoo Finance v8 chart API payload.
// Bar arrays use null for market holidays, hence the pointer slices.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*int64   `json:"volume"`
				} `json:"quote"`
				Adjclose []struct {
					Adjclose []*float64 `json:"adjclose"`
				} `json:"adjclose"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// GetHistoricalPrices returns daily bars for symbol covering [start, end),
// ordered by date. Null bars are skipped. Transient network failures are
// retried up to maxAttempts before the run is aborted.
func (c *Client) GetHistoricalPrices(symbol string, start, end time.Time) ([]model.Price, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?period1=%d&period2=%d&interval=1d&events=div%%2Csplit&includeAdjustedClose=true",
		c.BaseURL, url.PathEscape(symbol), start.Unix(), end.Unix())

	body, err := c.getWithRetry(u)
	if err != nil {
		return nil, etl_errors.ErrDataSource{Provider: c.Name(), Symbol: symbol, Err: err}
	}

	var chart chartResponse
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, etl_errors.ErrDataSource{Provider: c.Name(), Symbol: symbol, Err: fmt.Errorf("decode chart response: %w", err)}
	}
	if chart.Chart.Error != nil {
		return nil, etl_errors.ErrDataSource{
			Provider: c.Name(),
			Symbol:   symbol,
			Err:      fmt.Errorf("api error %s: %s", chart.Chart.Error.Code, chart.Chart.Error.Description),
		}
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 {
		return nil, etl_errors.ErrDataSource{Provider: c.Name(), Symbol: symbol, Err: fmt.Errorf("no data returned")}
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, etl_errors.ErrDataSource{Provider: c.Name(), Symbol: symbol, Err: fmt.Errorf("no quote data returned")}
	}
	quote := result.Indicators.Quote[0]
	var adjclose []*float64
	if len(result.Indicators.Adjclose) > 0 {
		adjclose = result.Indicators.Adjclose[0].Adjclose
	}

	now := time.Now().UTC()
	prices := make([]model.Price, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if quote.Open[i] == nil || quote.High[i] == nil || quote.Low[i] == nil || quote.Close[i] == nil {
			continue // holiday / null bar
		}
		day := time.Unix(ts, 0).UTC()
		date := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
		if date.Before(start) || !date.Before(end) {
			continue
		}

		adjusted := *quote.Close[i]
		if i < len(adjclose) && adjclose[i] != nil {
			adjusted = *adjclose[i]
		}
		var volume int64
		if i < len(quote.Volume) && quote.Volume[i] != nil {
			volume = *quote.Volume[i]
		}

		prices = append(prices, model.Price{
			Symbol:        symbol,
			Date:          date,
			Open:          decimal.NewFromFloat(*quote.Open[i]),
			High:          decimal.NewFromFloat(*quote.High[i]),
			Low:           decimal.NewFromFloat(*quote.Low[i]),
			Close:         decimal.NewFromFloat(*quote.Close[i]),
			AdjustedClose: decimal.NewFromFloat(adjusted),
			Volume:        volume,
			UpdatedAt:     now,
		})
	}
	if len(prices) == 0 {
		return nil, etl_errors.ErrDataSource{Provider: c.Name(), Symbol: symbol, Err: fmt.Errorf("no bars inside requested window")}
	}

	sort.Slice(prices, func(i, j int) bool { return prices[i].Date.Before(prices[j].Date) })
	return prices, nil
}

func (c *Client) getWithRetry(u string) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			time.Sleep(retryDelay)
		}

		req, err := http.NewRequest(http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", "Mozilla/5.0")

		response, err := c.HttpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		body, err := io.ReadAll(response.Body)
		response.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		if response.StatusCode >= 500 {
			lastErr = fmt.Errorf("status %d: %s", response.StatusCode, string(body))
			continue
		}
		if response.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("status %d: %s", response.StatusCode, string(body))
		}
		return body, nil
	}

	return nil, fmt.Errorf("giving up after %d attempts: %w", maxAttempts, lastErr)
}
