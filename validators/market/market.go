package marketValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

type TickerRequest struct {
	StockTicker string `form:"stock_ticker"`
}

// StockMarket validator middleware
func StockMarket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(TickerRequest)
		if err := c.BodyParser(reqData); err != nil {
			return c.Render("stock_market", fiber.Map{"error": "Invalid form submission."})
		}

		reqData.StockTicker = strings.TrimSpace(reqData.StockTicker)
		if reqData.StockTicker == "" {
			return c.Render("stock_market", fiber.Map{"error": "Please enter a ticker symbol."})
		}

		c.Locals("validatedTicker", reqData)
		return c.Next()
	}
}
