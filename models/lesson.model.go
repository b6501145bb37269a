package models

import "gorm.io/gorm"

// Lesson is one learning unit. Lessons with the same Chapter number are
// displayed together as one stage on the top page.
type Lesson struct {
	gorm.Model
	Chapter    int        `json:"chapter" gorm:"index;not null"`
	Title      string     `json:"title"`
	Slug       string     `json:"slug" gorm:"unique;not null"`
	Content    string     `json:"content" gorm:"type:text"`
	VideoID    string     `json:"video_id"`
	VideoTitle string     `json:"video_title"`
	Questions  []Question `json:"questions" gorm:"constraint:OnDelete:CASCADE"`
	IsDeleted  bool       `gorm:"default:false"`
}

// Question belongs to a lesson and is removed together with it.
type Question struct {
	gorm.Model
	LessonID  uint     `json:"lesson_id" gorm:"index;not null"`
	Text      string   `json:"text" gorm:"type:text"`
	Options   []Option `json:"options" gorm:"constraint:OnDelete:CASCADE"`
	IsDeleted bool     `gorm:"default:false"`
}

// Option is one selectable answer. At least one option per question must
// carry IsCorrect = true; admin validators enforce this at write time.
type Option struct {
	gorm.Model
	QuestionID uint   `json:"question_id" gorm:"index;not null"`
	Text       string `json:"text"`
	IsCorrect  bool   `json:"is_correct" gorm:"default:false"`
	IsDeleted  bool   `gorm:"default:false"`
}
