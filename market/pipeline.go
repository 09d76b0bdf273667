package market

import (
	"errors"
	"log"
	"strings"
	"time"

	"pitchhub/config"

	"github.com/jinzhu/now"
)

var (
	// ErrNoData means the provider had nothing for the ticker.
	ErrNoData = errors.New("no data for ticker")
	// ErrNoValidData means cleaning dropped every row.
	ErrNoValidData = errors.New("no valid data after cleaning")
	// ErrRender means chart generation failed on a cleaned series.
	ErrRender = errors.New("chart render failed")
)

// Pipeline runs the normalize → fetch → clean → render sequence for one
// request. Every stage failure is terminal for the request and never touches
// the data store or the session.
type Pipeline struct {
	client   *Client
	chartDir string
	start    time.Time
	end      time.Time
}

// NewPipeline builds a pipeline from the application configuration.
func NewPipeline() *Pipeline {
	cfg := config.AppConfig

	return &Pipeline{
		client:   NewClient(cfg.MarketDataURL),
		chartDir: cfg.ChartDir,
		start:    parseRangeDate(cfg.ChartStart, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)),
		end:      parseRangeDate(cfg.ChartEnd, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)),
	}
}

func parseRangeDate(value string, fallback time.Time) time.Time {
	parsed, err := now.Parse(value)
	if err != nil {
		log.Printf("Invalid chart range date %q, using %s: %v", value, fallback.Format("2006-01-02"), err)
		return fallback
	}
	return parsed
}

// Run executes the pipeline for a ticker. On success it returns the artifact
// path; otherwise the error is exactly one of ErrNoData, ErrNoValidData or
// ErrRender.
func (p *Pipeline) Run(ticker string) (string, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))

	raw, err := p.client.FetchDailyBars(ticker, p.start, p.end)
	if err != nil {
		log.Printf("Market data fetch failed for %s: %v", ticker, err)
		return "", ErrNoData
	}
	if len(raw.Timestamps) == 0 {
		return "", ErrNoData
	}

	bars := Clean(raw)
	if len(bars) == 0 {
		return "", ErrNoValidData
	}

	path, err := RenderCandlestick(bars, ticker, p.chartDir)
	if err != nil {
		log.Printf("Chart render failed for %s: %v", ticker, err)
		return "", ErrRender
	}

	return path, nil
}
