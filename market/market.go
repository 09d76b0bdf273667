package market

import (
	"time"
)

// Bar is one daily OHLCV row of a historical price series.
type Bar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// RawSeries mirrors the provider's column-oriented payload. Any field slice
// may be shorter than Timestamps or hold nils where the provider had no value.
type RawSeries struct {
	Timestamps []int64
	Open       []*float64
	High       []*float64
	Low        []*float64
	Close      []*float64
	Volume     []*float64
}
