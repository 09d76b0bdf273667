package pitchController

import (
	"log"

	"pitchhub/database"
	"pitchhub/middleware"
	"pitchhub/models"
	pitchValidator "pitchhub/validators/pitch"

	"github.com/gofiber/fiber/v2"
)

// PitchZone lists all pitches in insertion order
func PitchZone(c *fiber.Ctx) error {
	var pitches []models.Pitch
	if err := database.Database.Db.Order("id ASC").Find(&pitches).Error; err != nil {
		log.Printf("Error listing pitches: %v", err)
		return c.Render("pitch_zone", fiber.Map{"message": "Failed to load pitches!"})
	}

	return c.Render("pitch_zone", fiber.Map{
		"pitches": pitches,
		"message": middleware.ConsumeFlash(c),
	})
}

// SubmitPitch creates a pitch and re-displays the list
func SubmitPitch(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPitch").(*pitchValidator.PitchRequest)
	if !ok {
		middleware.SetFlash(c, "Invalid form submission.")
		return c.Redirect("/pitch_zone", fiber.StatusFound)
	}

	newPitch := models.Pitch{
		Title:            reqData.PitchTitle,
		Description:      reqData.PitchDescription,
		InvestmentNeeded: reqData.InvestmentMoney,
	}

	if err := database.Database.Db.Create(&newPitch).Error; err != nil {
		log.Printf("Error saving pitch to database: %v", err)
		middleware.SetFlash(c, "Failed to submit your pitch!")
		return c.Redirect("/pitch_zone", fiber.StatusFound)
	}

	middleware.SetFlash(c, "Your pitch idea has been submitted successfully!")
	return c.Redirect("/pitch_zone", fiber.StatusFound)
}
