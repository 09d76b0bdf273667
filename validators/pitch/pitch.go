package pitchValidator

import (
	"strings"

	"pitchhub/middleware"

	"github.com/gofiber/fiber/v2"
)

type PitchRequest struct {
	PitchTitle       string `form:"pitch_title"`
	PitchDescription string `form:"pitch_description"`
	InvestmentMoney  string `form:"investment_money"`
}

// SubmitPitch validator middleware
func SubmitPitch() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(PitchRequest)
		if err := c.BodyParser(reqData); err != nil {
			middleware.SetFlash(c, "Invalid form submission.")
			return c.Redirect("/pitch_zone", fiber.StatusFound)
		}

		reqData.PitchTitle = strings.TrimSpace(reqData.PitchTitle)
		reqData.PitchDescription = strings.TrimSpace(reqData.PitchDescription)
		reqData.InvestmentMoney = strings.TrimSpace(reqData.InvestmentMoney)

		// The amount stays free text, only presence is checked
		if reqData.PitchTitle == "" || reqData.PitchDescription == "" || reqData.InvestmentMoney == "" {
			middleware.SetFlash(c, "All pitch fields are required.")
			return c.Redirect("/pitch_zone", fiber.StatusFound)
		}

		c.Locals("validatedPitch", reqData)
		return c.Next()
	}
}
