package utils

import (
	"fmt"
	"log"
	"time"

	"kabulearn/database"
	"kabulearn/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[PROGRESS-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// RebuildClearedQuestions rebuilds the cleared-question projection from
// the attempt log. The projection covers authenticated users only; guest
// session attempts stay derivable but are never materialized. The rebuild
// is a full replace inside one transaction so readers never see a
// half-built projection.
func RebuildClearedQuestions(db *gorm.DB) (int64, error) {
	var attempts []models.QuizAttempt
	err := db.Where("is_correct = ? AND user_id IS NOT NULL", true).
		Order("created_at asc").
		Find(&attempts).Error
	if err != nil {
		return 0, err
	}

	// First correct attempt per (user, question) wins the cleared-at stamp
	type clearedKey struct {
		userID     uint
		questionID uint
	}
	rows := make([]models.ClearedQuestion, 0, len(attempts))
	seen := make(map[clearedKey]bool)
	for _, attempt := range attempts {
		key := clearedKey{userID: *attempt.UserID, questionID: attempt.QuestionID}
		if seen[key] {
			continue
		}
		seen[key] = true
		rows = append(rows, models.ClearedQuestion{
			UserID:     key.userID,
			QuestionID: key.questionID,
			ClearedAt:  attempt.CreatedAt,
		})
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		// Hard delete: soft-deleted rows would collide with the unique
		// (user_id, question_id) index on re-insert.
		if err := tx.Unscoped().Where("1 = 1").Delete(&models.ClearedQuestion{}).Error; err != nil {
			return err
		}
		for i := range rows {
			if err := tx.Create(&rows[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return int64(len(rows)), nil
}

// StartProgressScheduler rebuilds the cleared-question projection every
// hour. Returns the cron handle so main can stop it on shutdown.
func StartProgressScheduler() *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("@hourly", func() {
		logScheduler("Rebuilding cleared-question projection...")
		rows, err := RebuildClearedQuestions(database.Database.Db)
		if err != nil {
			logScheduler("Rebuild failed: " + err.Error())
			return
		}
		logScheduler(fmt.Sprintf("Rebuild complete, %d rows.", rows))
	})
	if err != nil {
		logScheduler("Failed to register rebuild job: " + err.Error())
	}

	c.Start()
	logScheduler("Scheduler started.")
	return c
}
