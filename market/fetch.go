package market

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client fetches historical price series from the market data provider.
type Client struct {
	http *resty.Client
}

// NewClient builds a client against the provider base URL.
func NewClient(baseURL string) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15 * time.Second).
		SetHeader("User-Agent", "Mozilla/5.0 (compatible; pitchhub/1.0)")

	return &Client{http: client}
}

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
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// FetchDailyBars requests the daily OHLCV history for a ticker over [start, end].
// Unknown tickers and provider errors surface as errors, an empty (but
// well-formed) result comes back as an empty series.
func (c *Client) FetchDailyBars(ticker string, start, end time.Time) (RawSeries, error) {
	var payload chartResponse

	resp, err := c.http.R().
		SetResult(&payload).
		SetQueryParams(map[string]string{
			"period1":  strconv.FormatInt(start.Unix(), 10),
			"period2":  strconv.FormatInt(end.Unix(), 10),
			"interval": "1d",
			"events":   "history",
		}).
		Get("/v8/finance/chart/" + url.PathEscape(ticker))
	if err != nil {
		return RawSeries{}, err
	}
	if resp.StatusCode() != 200 {
		return RawSeries{}, fmt.Errorf("provider returned %s", resp.Status())
	}
	if payload.Chart.Error != nil {
		return RawSeries{}, fmt.Errorf("provider error %s: %s", payload.Chart.Error.Code, payload.Chart.Error.Description)
	}
	if len(payload.Chart.Result) == 0 {
		return RawSeries{}, nil
	}

	result := payload.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return RawSeries{Timestamps: result.Timestamp}, nil
	}

	quote := result.Indicators.Quote[0]
	return RawSeries{
		Timestamps: result.Timestamp,
		Open:       quote.Open,
		High:       quote.High,
		Low:        quote.Low,
		Close:      quote.Close,
		Volume:     quote.Volume,
	}, nil
}
