package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	ProfileImage string     `gorm:"default:''"`
	Name         string     `gorm:"default:''"`
	Email        string     `gorm:"unique;not null"`
	Mobile       string     `gorm:"default:''"`
	Role         string     `gorm:"default:'STUDENT'"` // STUDENT, TEACHER, STAFF, ADMIN
	LastLogin    *time.Time `json:"last_login"`
	IsActive     bool       `gorm:"default:true"`
	IsDeleted    bool       `gorm:"default:false"`
}
