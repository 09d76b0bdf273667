package investorValidator

import (
	"strings"

	"pitchhub/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type InvestmentRequest struct {
	InvestorName     string `form:"investor_name"`
	Email            string `form:"email"`
	PitchID          uint   `form:"pitch_id"`
	InvestmentAmount string `form:"investment_amount"`
}

// RecordInvestment validator middleware
func RecordInvestment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(InvestmentRequest)
		if err := c.BodyParser(reqData); err != nil {
			middleware.SetFlash(c, "Invalid form submission.")
			return c.Redirect("/investor_zone", fiber.StatusFound)
		}

		reqData.InvestorName = strings.TrimSpace(reqData.InvestorName)
		reqData.Email = strings.TrimSpace(reqData.Email)
		reqData.InvestmentAmount = strings.TrimSpace(reqData.InvestmentAmount)

		if reqData.InvestorName == "" || reqData.InvestmentAmount == "" {
			middleware.SetFlash(c, "All investment fields are required.")
			return c.Redirect("/investor_zone", fiber.StatusFound)
		}

		if err := validate.Var(reqData.Email, "required,email"); err != nil {
			middleware.SetFlash(c, "Invalid email address.")
			return c.Redirect("/investor_zone", fiber.StatusFound)
		}

		if reqData.PitchID == 0 {
			middleware.SetFlash(c, "Please select a pitch to invest in.")
			return c.Redirect("/investor_zone", fiber.StatusFound)
		}

		c.Locals("validatedInvestment", reqData)
		return c.Next()
	}
}
