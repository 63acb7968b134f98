package models

import "gorm.io/gorm"

// Questionnaire represents a survey or quiz attached to a formation
type Questionnaire struct {
	gorm.Model
	Title       string `json:"title"`
	Description string `json:"description"`
	FormationID *uint  `json:"formation_id" gorm:"index"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`
	IsDeleted   bool   `gorm:"default:false"`
}

// Question represents a single question within a questionnaire
type Question struct {
	gorm.Model
	QuestionnaireID uint   `json:"questionnaire_id" gorm:"index;not null"`
	Text            string `json:"text" gorm:"type:text"`
	Kind            string `json:"kind" gorm:"default:'TEXT'"` // TEXT, MCQ, RATING
	OrderIndex      int    `json:"order_index" gorm:"default:0"`
	IsDeleted       bool   `gorm:"default:false"`
}
