package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `gorm:"unique;not null" form:"username"`
	Password string `gorm:"not null" form:"password"` // bcrypt hash, never the raw secret
}
