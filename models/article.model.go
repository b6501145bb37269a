package models

import (
	"time"

	"gorm.io/gorm"
)

// Article is locally stored editorial content. Articles can also come from
// the headless CMS (utils/microcms.go); those never touch this table.
type Article struct {
	gorm.Model
	Title       string    `json:"title"`
	Slug        string    `json:"slug" gorm:"unique;not null"`
	Content     string    `json:"content" gorm:"type:text"`
	PublishedAt time.Time `json:"published_at"`
	IsDeleted   bool      `gorm:"default:false"`
}
