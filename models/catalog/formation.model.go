package catalog

import "gorm.io/gorm"

// Formation represents a training program, top of the duration hierarchy
type Formation struct {
	gorm.Model
	Title           string `json:"title"`
	Code            string `json:"code" gorm:"index"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"duration_minutes" gorm:"default:0"` // derived from active modules
	IsActive        bool   `json:"is_active" gorm:"default:true"`
	IsDeleted       bool   `gorm:"default:false"`
}

func (f *Formation) NodeID() uint             { return f.ID }
func (f *Formation) NodeTitle() string        { return f.Title }
func (f *Formation) NodeActive() bool         { return f.IsActive }
func (f *Formation) GetDurationMinutes() int  { return f.DurationMinutes }
func (f *Formation) SetDurationMinutes(m int) { f.DurationMinutes = m }
