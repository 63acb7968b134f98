package models

import (
	"time"

	"gorm.io/gorm"
)

// AuditLog records one admin action with the request context that produced it
type AuditLog struct {
	gorm.Model
	EventID    string    `json:"event_id" gorm:"index"`
	UserID     uint      `json:"user_id" gorm:"index"`
	Action     string    `json:"action"` // e.g. DURATION_SYNC_ALL, PROSPECT_UPDATE
	EntityType string    `json:"entity_type"`
	EntityID   uint      `json:"entity_id"`
	Details    string    `json:"details" gorm:"type:text"`
	IP         string    `json:"ip"`
	UserAgent  string    `json:"user_agent"`
	OccurredAt time.Time `json:"occurred_at"`
}
