package models

import (
	"time"

	"gorm.io/gorm"
)

// Prospect statuses
const (
	ProspectNew       = "NEW"
	ProspectContacted = "CONTACTED"
	ProspectQualified = "QUALIFIED"
	ProspectConverted = "CONVERTED"
	ProspectLost      = "LOST"
)

// Prospect represents a CRM lead moving through the sales pipeline
type Prospect struct {
	gorm.Model
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Email      string     `json:"email" gorm:"index"`
	Phone      string     `json:"phone"`
	Company    string     `json:"company"`
	Source     string     `json:"source"` // WEB, PHONE, SALON, REFERRAL
	Status     string     `json:"status" gorm:"default:'NEW'"`
	AssignedTo uint       `json:"assigned_to" gorm:"index"` // staff user id
	FollowUpAt *time.Time `json:"follow_up_at"`
	ContactID  *uint      `json:"contact_id"` // set once converted
	Notes      string     `json:"notes" gorm:"type:text"`
	IsDeleted  bool       `gorm:"default:false"`
}
