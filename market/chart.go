package market

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pplcc/plotext"
	"github.com/pplcc/plotext/custplotter"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ArtifactName returns the deterministic image file name for a ticker.
func ArtifactName(ticker string) string {
	return fmt.Sprintf("%s_candlestick_chart.png", ticker)
}

// RenderCandlestick draws a candlestick chart with a volume panel below it and
// writes the PNG under dir, overwriting any previous artifact for the ticker.
func RenderCandlestick(bars []Bar, ticker, dir string) (string, error) {
	if len(bars) == 0 {
		return "", fmt.Errorf("empty series for %s", ticker)
	}

	data := make(custplotter.TOHLCVs, len(bars))
	for i, bar := range bars {
		data[i].T = float64(bar.Date.Unix())
		data[i].O = bar.Open
		data[i].H = bar.High
		data[i].L = bar.Low
		data[i].C = bar.Close
		data[i].V = bar.Volume
	}

	pricePlot := plot.New()
	pricePlot.Title.Text = fmt.Sprintf("%s Candlestick Chart", ticker)
	pricePlot.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}
	pricePlot.Y.Label.Text = "Price"

	candles, err := custplotter.NewCandlesticks(data)
	if err != nil {
		return "", err
	}
	pricePlot.Add(candles)

	volumePlot := plot.New()
	volumePlot.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}
	volumePlot.Y.Label.Text = "Volume"

	volumes, err := custplotter.NewVBars(data)
	if err != nil {
		return "", err
	}
	volumePlot.Add(volumes)

	// Keep both panels on the same time axis
	plotext.UniteAxisRanges([]*plot.Axis{&pricePlot.X, &volumePlot.X})

	img := vgimg.New(24*vg.Centimeter, 16*vg.Centimeter)
	canvases := plot.Align(
		[][]*plot.Plot{{pricePlot}, {volumePlot}},
		draw.Tiles{Rows: 2, Cols: 1, PadY: vg.Millimeter},
		draw.New(img),
	)
	pricePlot.Draw(canvases[0][0])
	volumePlot.Draw(canvases[1][0])

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, ArtifactName(ticker))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return "", err
	}

	return path, nil
}
