package investorController

import (
	"log"

	"pitchhub/database"
	"pitchhub/middleware"
	"pitchhub/models"
	"pitchhub/utils"
	investorValidator "pitchhub/validators/investor"

	"github.com/gofiber/fiber/v2"
)

// InvestorZone lists pitches and recorded investments
func InvestorZone(c *fiber.Ctx) error {
	db := database.Database.Db

	var pitches []models.Pitch
	if err := db.Order("id ASC").Find(&pitches).Error; err != nil {
		log.Printf("Error listing pitches: %v", err)
		return c.Render("investor_zone", fiber.Map{"message": "Failed to load pitches!"})
	}

	var investments []models.Investment
	if err := db.Order("id ASC").Find(&investments).Error; err != nil {
		log.Printf("Error listing investments: %v", err)
		return c.Render("investor_zone", fiber.Map{"message": "Failed to load investments!"})
	}

	return c.Render("investor_zone", fiber.Map{
		"pitches":     pitches,
		"investments": investments,
		"message":     middleware.ConsumeFlash(c),
	})
}

// RecordInvestment stores an investment against the selected pitch
func RecordInvestment(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedInvestment").(*investorValidator.InvestmentRequest)
	if !ok {
		middleware.SetFlash(c, "Invalid form submission.")
		return c.Redirect("/investor_zone", fiber.StatusFound)
	}

	db := database.Database.Db

	// The investment must reference an existing pitch
	var pitch models.Pitch
	if err := db.First(&pitch, reqData.PitchID).Error; err != nil {
		middleware.SetFlash(c, "Selected pitch was not found.")
		return c.Redirect("/investor_zone", fiber.StatusFound)
	}

	newInvestment := models.Investment{
		InvestorName: reqData.InvestorName,
		Email:        reqData.Email,
		PitchID:      pitch.ID,
		Amount:       reqData.InvestmentAmount,
	}

	if err := db.Create(&newInvestment).Error; err != nil {
		log.Printf("Error saving investment to database: %v", err)
		middleware.SetFlash(c, "Failed to record your investment!")
		return c.Redirect("/investor_zone", fiber.StatusFound)
	}

	// Best effort receipt, never blocks the request
	go func(investment models.Investment, pitchTitle string) {
		if err := utils.SendInvestmentReceipt(investment.InvestorName, investment.Email, pitchTitle, investment.Amount); err != nil {
			log.Printf("Error sending investment receipt to %s: %v", investment.Email, err)
		}
	}(newInvestment, pitch.Title)

	middleware.SetFlash(c, "Your investment has been recorded successfully!")
	return c.Redirect("/investor_zone", fiber.StatusFound)
}
