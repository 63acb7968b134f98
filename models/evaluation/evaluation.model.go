package evaluation

import (
	"time"

	"gorm.io/gorm"
)

// Evaluation kinds
const (
	KindProgress = "PROGRESS"
	KindSkills   = "SKILLS"
)

// Evaluation statuses
const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// Evaluation represents a work-study (alternance) assessment filed by a
// company tutor for a student over a given period
type Evaluation struct {
	gorm.Model
	StudentID   uint       `json:"student_id" gorm:"index;not null"`
	TutorID     uint       `json:"tutor_id" gorm:"index;not null"`
	FormationID uint       `json:"formation_id" gorm:"index;not null"`
	Kind        string     `json:"kind" gorm:"default:'PROGRESS'"`
	PeriodStart time.Time  `json:"period_start"`
	PeriodEnd   time.Time  `json:"period_end"`
	Score       int        `json:"score" gorm:"default:0"`
	MaxScore    int        `json:"max_score" gorm:"default:100"`
	Comments    string     `json:"comments" gorm:"type:text"`
	Status      string     `json:"status" gorm:"default:'PENDING'"`
	ReviewedBy  uint       `json:"reviewed_by"`
	ReviewedAt  *time.Time `json:"reviewed_at"`
	ReviewNote  string     `json:"review_note"`
	IsDeleted   bool       `gorm:"default:false"`
}
