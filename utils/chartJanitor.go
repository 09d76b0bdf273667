package utils

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"pitchhub/config"

	"github.com/robfig/cron/v3"
)

// logJanitor logs janitor events with timestamp
func logJanitor(message string) {
	log.Printf("[CHART-JANITOR %s] %s", time.Now().Format(time.RFC3339), message)
}

// SweepChartArtifacts removes chart images older than maxAge from dir and
// returns how many were deleted. Repeat requests for a ticker overwrite its
// artifact in place, so anything older than maxAge has simply gone stale.
func SweepChartArtifacts(dir string, maxAge time.Duration) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		logJanitor("Error reading chart directory: " + err.Error())
		return 0
	}

	removed := 0
	cutoff := time.Now().Add(-maxAge)

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), "_candlestick_chart.png") {
			continue
		}

		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}

		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			logJanitor("Error removing " + entry.Name() + ": " + err.Error())
			continue
		}
		removed++
	}

	return removed
}

// StartChartJanitor schedules a daily sweep of stale chart artifacts. A zero
// or negative CHART_TTL_HOURS disables the janitor.
func StartChartJanitor() *cron.Cron {
	ttlHours := config.AppConfig.ChartTTLHours
	if ttlHours <= 0 {
		logJanitor("Disabled (CHART_TTL_HOURS not set)")
		return nil
	}

	dir := config.AppConfig.ChartDir
	maxAge := time.Duration(ttlHours) * time.Hour

	c := cron.New()
	if _, err := c.AddFunc("@daily", func() {
		removed := SweepChartArtifacts(dir, maxAge)
		if removed > 0 {
			logJanitor("Removed " + strconv.Itoa(removed) + " stale chart artifacts")
		}
	}); err != nil {
		logJanitor("Error scheduling sweep: " + err.Error())
		return nil
	}

	c.Start()
	logJanitor("Scheduled daily sweep of " + dir)
	return c
}
