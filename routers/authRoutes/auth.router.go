package authRoutes

import (
	authControllers "pitchhub/controllers/auth"
	"pitchhub/middleware"
	authValidators "pitchhub/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	app.Get("/", middleware.RequireSession, authControllers.Home)

	app.Get("/login", authControllers.LoginPage)
	app.Post("/login", authValidators.Login(), authControllers.Login)

	app.Get("/register", authControllers.RegisterPage)
	app.Post("/register", authValidators.Register(), authControllers.Register)

	app.Get("/logout", authControllers.Logout)
}
