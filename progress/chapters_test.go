package progress

import (
	"testing"

	"kabulearn/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lessonWithQuestions(chapter int, questionIDs ...uint) models.Lesson {
	lesson := models.Lesson{Chapter: chapter}
	for _, id := range questionIDs {
		question := models.Question{}
		question.ID = id
		lesson.Questions = append(lesson.Questions, question)
	}
	return lesson
}

func TestBuildChapterView_OrdersChaptersAscending(t *testing.T) {
	lessons := []models.Lesson{
		lessonWithQuestions(3, 31),
		lessonWithQuestions(1, 11),
		lessonWithQuestions(2, 21),
		lessonWithQuestions(1, 12),
	}

	views := BuildChapterView(lessons, nil)

	require.Len(t, views, 3)
	assert.Equal(t, 1, views[0].Chapter)
	assert.Equal(t, 2, views[1].Chapter)
	assert.Equal(t, 3, views[2].Chapter)

	// Both chapter-1 lessons grouped despite arriving out of order
	assert.Len(t, views[0].Lessons, 2)
	assert.Equal(t, 2, views[0].TotalQuestions)
}

func TestBuildChapterView_ZeroQuestionsIsZeroPercent(t *testing.T) {
	lessons := []models.Lesson{lessonWithQuestions(4)}

	views := BuildChapterView(lessons, map[uint]struct{}{})

	require.Len(t, views, 1)
	assert.Equal(t, 0, views[0].TotalQuestions)
	assert.Equal(t, 0, views[0].ProgressPercentage)
}

func TestBuildChapterView_RoundsToNearestInteger(t *testing.T) {
	lessons := []models.Lesson{lessonWithQuestions(2, 1, 2, 3)}
	cleared := map[uint]struct{}{1: {}, 2: {}}

	views := BuildChapterView(lessons, cleared)

	require.Len(t, views, 1)
	assert.Equal(t, 3, views[0].TotalQuestions)
	assert.Equal(t, 2, views[0].ClearedQuestions)
	assert.Equal(t, 67, views[0].ProgressPercentage)
}

func TestBuildChapterView_DoesNotRenumberBoundaryChapters(t *testing.T) {
	lessons := []models.Lesson{
		lessonWithQuestions(999),
		lessonWithQuestions(0),
		lessonWithQuestions(1, 1),
	}

	views := BuildChapterView(lessons, nil)

	require.Len(t, views, 3)
	assert.Equal(t, 0, views[0].Chapter)
	assert.Equal(t, 1, views[1].Chapter)
	assert.Equal(t, 999, views[2].Chapter)
}

func TestChapterTitle(t *testing.T) {
	assert.Equal(t, "証券口座を開設しよう", ChapterTitle(1))
	assert.Equal(t, "おわりに", ChapterTitle(999))
	assert.Equal(t, "Stage 7", ChapterTitle(7))
}

func TestOverallPercentage(t *testing.T) {
	lessons := []models.Lesson{
		lessonWithQuestions(1, 1, 2),
		lessonWithQuestions(2, 3, 4),
	}

	tests := []struct {
		name     string
		cleared  map[uint]struct{}
		expected int
	}{
		{name: "nothing cleared", cleared: map[uint]struct{}{}, expected: 0},
		{name: "half cleared", cleared: map[uint]struct{}{1: {}, 3: {}}, expected: 50},
		{name: "all cleared", cleared: map[uint]struct{}{1: {}, 2: {}, 3: {}, 4: {}}, expected: 100},
		{name: "stale ids outside the universe are ignored", cleared: map[uint]struct{}{1: {}, 99: {}}, expected: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, OverallPercentage(lessons, tt.cleared))
		})
	}
}

func TestOverallPercentage_NoQuestions(t *testing.T) {
	assert.Equal(t, 0, OverallPercentage(nil, nil))
	assert.Equal(t, 0, OverallPercentage([]models.Lesson{lessonWithQuestions(1)}, nil))
}
