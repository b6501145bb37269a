package quizController

import (
	"errors"
	"log"

	"kabulearn/config"
	"kabulearn/database"
	"kabulearn/middleware"
	"kabulearn/models"
	"kabulearn/progress"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ErrOptionNotFound signals that the submitted option id does not exist.
var ErrOptionNotFound = errors.New("option not found")

// EvalResult is the outcome of checking one submitted answer.
type EvalResult struct {
	QuestionID       uint `json:"question_id"`
	SelectedOptionID uint `json:"selected_option_id"`
	IsCorrect        bool `json:"is_correct"`
	CorrectOptionID  uint `json:"correct_option_id"`
}

// EvaluateAnswer looks up the selected option and reports whether it was
// correct, together with the question's correct option for feedback
// display. No rows are written here.
func EvaluateAnswer(db *gorm.DB, selectedOptionID uint) (*EvalResult, error) {
	var selected models.Option
	err := db.Where("id = ? AND is_deleted = ?", selectedOptionID, false).First(&selected).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrOptionNotFound
		}
		return nil, err
	}

	var correct models.Option
	err = db.Where("question_id = ? AND is_correct = ? AND is_deleted = ?", selected.QuestionID, true, false).
		First(&correct).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}

	return &EvalResult{
		QuestionID:       selected.QuestionID,
		SelectedOptionID: selected.ID,
		IsCorrect:        selected.IsCorrect,
		CorrectOptionID:  correct.ID,
	}, nil
}

// SubmitQuiz evaluates a submission and records it for identities whose
// progress is persisted. The cache entry is invalidated only after the
// attempt row is actually written.
func SubmitQuiz(c *fiber.Ctx) error {
	selectedOptionID, ok := c.Locals("selectedOptionID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid submission!", nil)
	}

	db := database.Database.Db

	result, err := EvaluateAnswer(db, selectedOptionID)
	if err != nil {
		if err == ErrOptionNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Option not found!", nil)
		}
		log.Printf("Error evaluating answer: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to evaluate answer!", nil)
	}

	identity := middleware.ResolveIdentity(c)

	persisted := false
	if !identity.IsGuest() || config.AppConfig.GuestProgressEnabled {
		attempt := models.QuizAttempt{
			QuestionID:       result.QuestionID,
			SelectedOptionID: result.SelectedOptionID,
			IsCorrect:        result.IsCorrect,
		}
		if identity.IsGuest() {
			attempt.SessionID = identity.SessionID
		} else {
			userID := identity.UserID
			attempt.UserID = &userID
		}

		if err := db.Create(&attempt).Error; err != nil {
			log.Printf("Error recording quiz attempt: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record attempt!", nil)
		}

		progress.Cache.Invalidate(identity)
		persisted = true
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Answer submitted!", fiber.Map{
		"is_correct":        result.IsCorrect,
		"correct_option_id": result.CorrectOptionID,
		"question_id":       result.QuestionID,
		"persisted":         persisted,
	})
}

// GetProgress returns per-chapter and overall completion for the caller.
func GetProgress(c *fiber.Ctx) error {
	db := database.Database.Db

	var lessons []models.Lesson
	if err := db.Where("is_deleted = ?", false).
		Preload("Questions", "is_deleted = ?", false).
		Order("id asc").
		Find(&lessons).Error; err != nil {
		log.Printf("Error fetching lessons: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	identity := middleware.ResolveIdentity(c)

	clearedIDs := map[uint]struct{}{}
	if !identity.IsGuest() || config.AppConfig.GuestProgressEnabled {
		var err error
		clearedIDs, err = progress.Cache.ClearedQuestionIDs(identity)
		if err != nil {
			log.Printf("Error fetching cleared questions: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
		}
	}

	type chapterSummary struct {
		Chapter            int    `json:"chapter"`
		Title              string `json:"title"`
		TotalQuestions     int    `json:"total_questions"`
		ClearedQuestions   int    `json:"cleared_questions"`
		ProgressPercentage int    `json:"progress_percentage"`
	}

	chapters := progress.BuildChapterView(lessons, clearedIDs)
	summaries := make([]chapterSummary, len(chapters))
	for i, chapter := range chapters {
		summaries[i] = chapterSummary{
			Chapter:            chapter.Chapter,
			Title:              chapter.Title,
			TotalQuestions:     chapter.TotalQuestions,
			ClearedQuestions:   chapter.ClearedQuestions,
			ProgressPercentage: chapter.ProgressPercentage,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"chapters":         summaries,
		"overall_progress": progress.OverallPercentage(lessons, clearedIDs),
		"is_guest":         identity.IsGuest(),
	})
}
