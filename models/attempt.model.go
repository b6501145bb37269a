package models

import (
	"time"

	"gorm.io/gorm"
)

// QuizAttempt records one quiz submission. Rows are append-only: a learner
// may answer the same question any number of times and every submission is
// kept. Exactly one of UserID / SessionID is set per row.
type QuizAttempt struct {
	gorm.Model
	UserID           *uint  `json:"user_id" gorm:"index"`
	SessionID        string `json:"session_id" gorm:"index;default:''"`
	QuestionID       uint   `json:"question_id" gorm:"index;not null"`
	SelectedOptionID uint   `json:"selected_option_id"`
	IsCorrect        bool   `json:"is_correct" gorm:"default:false"`
}

// ClearedQuestion is a materialized projection of "this user has at least
// one correct attempt on this question". It is rebuilt from QuizAttempt
// rows by the scheduler and never hand-edited; the attempt scan stays the
// source of truth.
type ClearedQuestion struct {
	gorm.Model
	UserID     uint      `json:"user_id" gorm:"uniqueIndex:idx_cleared_user_question;not null"`
	QuestionID uint      `json:"question_id" gorm:"uniqueIndex:idx_cleared_user_question;not null"`
	ClearedAt  time.Time `json:"cleared_at"`
}
