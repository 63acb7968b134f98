package models

import "gorm.io/gorm"

// TrainingService represents a billable service offered by the organization
type TrainingService struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description" gorm:"type:text"`
	PriceCents  int64  `json:"price_cents" gorm:"default:0"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`
	IsDeleted   bool   `gorm:"default:false"`
}
