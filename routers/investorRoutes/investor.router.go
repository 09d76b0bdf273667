package investorRoutes

import (
	investorControllers "pitchhub/controllers/investor"
	"pitchhub/middleware"
	investorValidators "pitchhub/validators/investor"

	"github.com/gofiber/fiber/v2"
)

func SetupInvestorRoutes(app *fiber.App) {
	app.Get("/investor_zone", middleware.RequireSession, investorControllers.InvestorZone)
	app.Post("/investor_zone", middleware.RequireSession, investorValidators.RecordInvestment(), investorControllers.RecordInvestment)
}
