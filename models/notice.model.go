package models

import (
	"time"

	"gorm.io/gorm"
)

// Notice is a short announcement shown on the top page.
type Notice struct {
	gorm.Model
	Title       string     `json:"title"`
	Body        string     `json:"body" gorm:"type:text"`
	IsPublished bool       `json:"is_published" gorm:"default:false"`
	PublishedAt *time.Time `json:"published_at"`
	IsDeleted   bool       `gorm:"default:false"`
}
