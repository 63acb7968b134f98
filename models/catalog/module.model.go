package catalog

import "gorm.io/gorm"

// Module represents a section within a formation
type Module struct {
	gorm.Model
	FormationID     uint   `json:"formation_id" gorm:"index;not null"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	OrderIndex      int    `json:"order_index" gorm:"default:0"` // Module order in formation
	DurationMinutes int    `json:"duration_minutes" gorm:"default:0"`
	IsActive        bool   `json:"is_active" gorm:"default:true"`
	IsDeleted       bool   `gorm:"default:false"`
}

func (m *Module) NodeID() uint              { return m.ID }
func (m *Module) NodeTitle() string         { return m.Title }
func (m *Module) NodeActive() bool          { return m.IsActive }
func (m *Module) GetDurationMinutes() int   { return m.DurationMinutes }
func (m *Module) SetDurationMinutes(mn int) { m.DurationMinutes = mn }
