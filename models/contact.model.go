package models

import "gorm.io/gorm"

// Contact represents an address-book entry (company contact, partner, tutor)
type Contact struct {
	gorm.Model
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" gorm:"index"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
	Position  string `json:"position"`
	Notes     string `json:"notes" gorm:"type:text"`
	IsDeleted bool   `gorm:"default:false"`
}
