package authValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

type RegisterRequest struct {
	Username        string `form:"username"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirm_password"`
}

type LoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// Register validator middleware
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterRequest)
		if err := c.BodyParser(reqData); err != nil {
			return c.Render("register", fiber.Map{"message": "Invalid form submission."})
		}

		reqData.Username = strings.TrimSpace(reqData.Username)

		if reqData.Username == "" || reqData.Password == "" {
			return c.Render("register", fiber.Map{"message": "Username and password are required."})
		}

		if reqData.Password != reqData.ConfirmPassword {
			return c.Render("register", fiber.Map{"message": "Passwords do not match."})
		}

		// Pass validated registration to the next handler
		c.Locals("validatedRegister", reqData)
		return c.Next()
	}
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)
		if err := c.BodyParser(reqData); err != nil {
			return c.Render("login", fiber.Map{"message": "Invalid form submission."})
		}

		reqData.Username = strings.TrimSpace(reqData.Username)

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}
