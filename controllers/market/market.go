package marketController

import (
	"errors"
	"strings"

	"pitchhub/market"
	"pitchhub/middleware"
	marketValidator "pitchhub/validators/market"

	"github.com/gofiber/fiber/v2"
)

var pipeline *market.Pipeline

// SetPipeline overrides the chart pipeline, used by tests
func SetPipeline(p *market.Pipeline) {
	pipeline = p
}

func getPipeline() *market.Pipeline {
	if pipeline == nil {
		pipeline = market.NewPipeline()
	}
	return pipeline
}

// StockMarketPage renders the ticker form
func StockMarketPage(c *fiber.Ctx) error {
	return c.Render("stock_market", fiber.Map{"message": middleware.ConsumeFlash(c)})
}

// StockMarket runs the chart pipeline and responds with exactly one of the
// artifact path or a stage-specific notice.
func StockMarket(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTicker").(*marketValidator.TickerRequest)
	if !ok {
		return c.Render("stock_market", fiber.Map{"error": "Invalid form submission."})
	}

	ticker := strings.ToUpper(strings.TrimSpace(reqData.StockTicker))

	path, err := getPipeline().Run(ticker)
	switch {
	case errors.Is(err, market.ErrNoData):
		return c.Render("stock_market", fiber.Map{"error": "No data found for the ticker provided."})
	case errors.Is(err, market.ErrNoValidData):
		return c.Render("stock_market", fiber.Map{"error": "No valid data available after cleaning."})
	case err != nil:
		return c.Render("stock_market", fiber.Map{"error": "Error generating chart."})
	}

	return c.Render("stock_market", fiber.Map{
		"stockImage": "/charts/" + market.ArtifactName(ticker),
		"chartPath":  path,
	})
}
