package utils

import (
	"fmt"
	"testing"

	"kabulearn/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func rebuildTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.QuizAttempt{}, &models.ClearedQuestion{}))
	return db
}

func userAttempt(userID, questionID uint, correct bool) models.QuizAttempt {
	return models.QuizAttempt{UserID: &userID, QuestionID: questionID, IsCorrect: correct}
}

func TestRebuildClearedQuestions(t *testing.T) {
	db := rebuildTestDB(t)

	attempts := []models.QuizAttempt{
		userAttempt(1, 10, true),
		userAttempt(1, 10, true), // duplicate correct attempt collapses
		userAttempt(1, 11, false),
		userAttempt(2, 10, true),
		{SessionID: "guest-session", QuestionID: 10, IsCorrect: true}, // guests are not materialized
	}
	for i := range attempts {
		require.NoError(t, db.Create(&attempts[i]).Error)
	}

	rows, err := RebuildClearedQuestions(db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), rows)

	var cleared []models.ClearedQuestion
	require.NoError(t, db.Order("user_id asc").Find(&cleared).Error)
	require.Len(t, cleared, 2)
	assert.Equal(t, uint(1), cleared[0].UserID)
	assert.Equal(t, uint(10), cleared[0].QuestionID)
	assert.Equal(t, uint(2), cleared[1].UserID)
}

func TestRebuildClearedQuestions_IsAFullReplace(t *testing.T) {
	db := rebuildTestDB(t)

	// A stale hand-inserted projection row must not survive a rebuild
	stale := models.ClearedQuestion{UserID: 9, QuestionID: 99}
	require.NoError(t, db.Create(&stale).Error)

	attempt := userAttempt(1, 10, true)
	require.NoError(t, db.Create(&attempt).Error)

	rows, err := RebuildClearedQuestions(db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	var cleared []models.ClearedQuestion
	require.NoError(t, db.Find(&cleared).Error)
	require.Len(t, cleared, 1)
	assert.Equal(t, uint(1), cleared[0].UserID)
}

func TestRebuildClearedQuestions_EmptyLog(t *testing.T) {
	db := rebuildTestDB(t)

	rows, err := RebuildClearedQuestions(db)
	require.NoError(t, err)
	assert.Zero(t, rows)
}
