package models

import (
	"gorm.io/gorm"
)

// Investment records a committed amount against an existing pitch.
type Investment struct {
	gorm.Model
	InvestorName string `gorm:"not null"`
	Email        string `gorm:"not null"`
	PitchID      uint   `gorm:"not null"`
	Amount       string `gorm:"not null"`
}
