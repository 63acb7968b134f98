package models

import (
	"time"

	"gorm.io/gorm"
)

// LegalDocument represents a legal/administrative document (convention,
// reglement interieur, CGV). Files live elsewhere; only the URL is stored.
type LegalDocument struct {
	gorm.Model
	Title       string     `json:"title"`
	Reference   string     `json:"reference" gorm:"uniqueIndex"`
	Category    string     `json:"category"` // CONVENTION, REGLEMENT, CGV, OTHER
	DocumentURL string     `json:"document_url"`
	ValidFrom   *time.Time `json:"valid_from"`
	ValidUntil  *time.Time `json:"valid_until"`
	IsDeleted   bool       `gorm:"default:false"`
}
