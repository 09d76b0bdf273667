package market

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testPipeline(t *testing.T, providerBody string, status int) (*Pipeline, string) {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, providerBody)
	}))
	t.Cleanup(srv.Close)

	chartDir := t.TempDir()
	p := &Pipeline{
		client:   NewClient(srv.URL),
		chartDir: chartDir,
		start:    time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		end:      time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
	}
	return p, chartDir
}

const validSeries = `{"chart":{"result":[{"timestamp":[1672617600,1672704000,1672790400],
"indicators":{"quote":[{"open":[130.28,126.89,127.13],"high":[130.9,128.66,127.77],
"low":[124.17,125.08,124.76],"close":[125.07,126.36,125.02],
"volume":[112117500,89113600,80962700]}]}}],"error":null}}`

const emptyResult = `{"chart":{"result":[],"error":null}}`

const unknownTicker = `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`

const missingVolume = `{"chart":{"result":[{"timestamp":[1672617600,1672704000],
"indicators":{"quote":[{"open":[130.28,126.89],"high":[130.9,128.66],
"low":[124.17,125.08],"close":[125.07,126.36]}]}}],"error":null}}`

func TestPipelineNoData(t *testing.T) {
	p, chartDir := testPipeline(t, emptyResult, http.StatusOK)

	path, err := p.Run("zzzz")
	require.ErrorIs(t, err, ErrNoData)
	require.Empty(t, path)

	// A failed request must not leave an artifact behind
	entries, readErr := os.ReadDir(chartDir)
	require.NoError(t, readErr)
	require.Empty(t, entries)
}

func TestPipelineUnknownTicker(t *testing.T) {
	p, _ := testPipeline(t, unknownTicker, http.StatusNotFound)

	_, err := p.Run("NOPE")
	require.ErrorIs(t, err, ErrNoData)
}

func TestPipelineProviderDown(t *testing.T) {
	p, _ := testPipeline(t, "", http.StatusOK)
	p.client = NewClient("http://127.0.0.1:1")

	_, err := p.Run("AAPL")
	require.ErrorIs(t, err, ErrNoData)
}

func TestPipelineNoValidDataAfterCleaning(t *testing.T) {
	p, chartDir := testPipeline(t, missingVolume, http.StatusOK)

	path, err := p.Run("AAPL")
	require.ErrorIs(t, err, ErrNoValidData)
	require.Empty(t, path)

	entries, readErr := os.ReadDir(chartDir)
	require.NoError(t, readErr)
	require.Empty(t, entries)
}

func TestPipelineRendersArtifact(t *testing.T) {
	p, chartDir := testPipeline(t, validSeries, http.StatusOK)

	path, err := p.Run("aapl")
	require.NoError(t, err)

	// Ticker is uppercased and the artifact name is deterministic
	require.Equal(t, filepath.Join(chartDir, "AAPL_candlestick_chart.png"), path)

	info, statErr := os.Stat(path)
	require.NoError(t, statErr)
	require.Greater(t, info.Size(), int64(0))
}

func TestPipelineOverwritesPreviousArtifact(t *testing.T) {
	p, _ := testPipeline(t, validSeries, http.StatusOK)

	first, err := p.Run("AAPL")
	require.NoError(t, err)

	second, err := p.Run("AAPL")
	require.NoError(t, err)

	// Repeat requests for the same ticker reuse the same path
	require.Equal(t, first, second)
}
