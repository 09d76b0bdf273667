package market

import (
	"time"
)

// Clean flattens the column-oriented series into per-day rows and drops every
// row missing one of Open, High, Low, Close or Volume. The result keeps the
// provider's chronological order.
func Clean(raw RawSeries) []Bar {
	bars := make([]Bar, 0, len(raw.Timestamps))

	for i, ts := range raw.Timestamps {
		open := at(raw.Open, i)
		high := at(raw.High, i)
		low := at(raw.Low, i)
		closing := at(raw.Close, i)
		volume := at(raw.Volume, i)

		if open == nil || high == nil || low == nil || closing == nil || volume == nil {
			continue
		}

		bars = append(bars, Bar{
			Date:   time.Unix(ts, 0).UTC(),
			Open:   *open,
			High:   *high,
			Low:    *low,
			Close:  *closing,
			Volume: *volume,
		})
	}

	return bars
}

func at(vals []*float64, i int) *float64 {
	if i >= len(vals) {
		return nil
	}
	return vals[i]
}
