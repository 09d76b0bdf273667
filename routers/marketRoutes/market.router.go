package marketRoutes

import (
	marketControllers "pitchhub/controllers/market"
	"pitchhub/middleware"
	marketValidators "pitchhub/validators/market"

	"github.com/gofiber/fiber/v2"
)

func SetupMarketRoutes(app *fiber.App) {
	app.Get("/stock_market", middleware.RequireSession, marketControllers.StockMarketPage)
	app.Post("/stock_market", middleware.RequireSession, marketValidators.StockMarket(), marketControllers.StockMarket)
}
