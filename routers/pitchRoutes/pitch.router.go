package pitchRoutes

import (
	pitchControllers "pitchhub/controllers/pitch"
	"pitchhub/middleware"
	pitchValidators "pitchhub/validators/pitch"

	"github.com/gofiber/fiber/v2"
)

func SetupPitchRoutes(app *fiber.App) {
	app.Get("/pitch_zone", middleware.RequireSession, pitchControllers.PitchZone)
	app.Post("/pitch_zone", middleware.RequireSession, pitchValidators.SubmitPitch(), pitchControllers.SubmitPitch)
}
