package catalog

import "gorm.io/gorm"

// Chapter represents a section within a module
type Chapter struct {
	gorm.Model
	ModuleID        uint   `json:"module_id" gorm:"index;not null"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	OrderIndex      int    `json:"order_index" gorm:"default:0"`
	DurationMinutes int    `json:"duration_minutes" gorm:"default:0"`
	IsActive        bool   `json:"is_active" gorm:"default:true"`
	IsDeleted       bool   `gorm:"default:false"`
}

func (ch *Chapter) NodeID() uint             { return ch.ID }
func (ch *Chapter) NodeTitle() string        { return ch.Title }
func (ch *Chapter) NodeActive() bool         { return ch.IsActive }
func (ch *Chapter) GetDurationMinutes() int  { return ch.DurationMinutes }
func (ch *Chapter) SetDurationMinutes(m int) { ch.DurationMinutes = m }
