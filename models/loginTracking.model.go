package models

import (
	"gorm.io/gorm"
)

type LoginTracking struct {
	gorm.Model
	Username  string `json:"username"`
	IPAddress string `json:"ip_address"`
	Device    string `json:"device"`
	Success   bool   `json:"success" gorm:"default:false"`
}
