package models

import (
	"gorm.io/gorm"
)

// Pitch is an investment proposal. The needed amount is kept as free text, the
// form does not constrain its format.
type Pitch struct {
	gorm.Model
	Title            string `gorm:"not null"`
	Description      string `gorm:"not null"`
	InvestmentNeeded string `gorm:"not null"`
}
