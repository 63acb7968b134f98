package catalog

import "gorm.io/gorm"

// Course is the leaf of the hierarchy. Its DurationMinutes is set by hand and
// is the only ground-truth duration; everything above it is derived.
type Course struct {
	gorm.Model
	ChapterID       uint   `json:"chapter_id" gorm:"index;not null"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	OrderIndex      int    `json:"order_index" gorm:"default:0"`
	DurationMinutes int    `json:"duration_minutes" gorm:"default:0"`
	ContentURL      string `json:"content_url"`
	IsActive        bool   `json:"is_active" gorm:"default:true"`
	IsDeleted       bool   `gorm:"default:false"`
}

func (co *Course) NodeID() uint             { return co.ID }
func (co *Course) NodeTitle() string        { return co.Title }
func (co *Course) NodeActive() bool         { return co.IsActive }
func (co *Course) GetDurationMinutes() int  { return co.DurationMinutes }
func (co *Course) SetDurationMinutes(m int) { co.DurationMinutes = m }
