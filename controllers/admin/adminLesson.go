package adminController

import (
	"log"

	"kabulearn/database"
	"kabulearn/middleware"
	"kabulearn/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// LessonInput is the admin payload for creating a lesson with its nested
// questions and options in one request.
type LessonInput struct {
	Chapter    int    `json:"chapter"`
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	Content    string `json:"content"`
	VideoID    string `json:"video_id"`
	VideoTitle string `json:"video_title"`
	Questions  []struct {
		Text    string `json:"text"`
		Options []struct {
			Text      string `json:"text"`
			IsCorrect bool   `json:"is_correct"`
		} `json:"options"`
	} `json:"questions"`
}

// GetAllLessons lists every lesson for the admin screens, soft-deleted
// rows excluded.
func GetAllLessons(c *fiber.Ctx) error {
	db := database.Database.Db

	var lessons []models.Lesson
	if err := db.Where("is_deleted = ?", false).
		Preload("Questions", "is_deleted = ?", false).
		Preload("Questions.Options", "is_deleted = ?", false).
		Order("id asc").
		Find(&lessons).Error; err != nil {
		log.Printf("Error fetching lessons: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully!", fiber.Map{
		"lessons": lessons,
	})
}

// CreateLesson creates a lesson together with its questions and options.
func CreateLesson(c *fiber.Ctx) error {
	reqData := new(LessonInput)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	// Check slug uniqueness
	if err := db.Where("slug = ? AND is_deleted = ?", reqData.Slug, false).First(&models.Lesson{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Slug is already in use!", nil)
	}

	lesson := models.Lesson{
		Chapter:    reqData.Chapter,
		Title:      reqData.Title,
		Slug:       reqData.Slug,
		Content:    reqData.Content,
		VideoID:    reqData.VideoID,
		VideoTitle: reqData.VideoTitle,
	}
	for _, q := range reqData.Questions {
		question := models.Question{Text: q.Text}
		for _, o := range q.Options {
			question.Options = append(question.Options, models.Option{
				Text:      o.Text,
				IsCorrect: o.IsCorrect,
			})
		}
		lesson.Questions = append(lesson.Questions, question)
	}

	if err := db.Create(&lesson).Error; err != nil {
		log.Printf("Error creating lesson: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", fiber.Map{
		"lesson": lesson,
	})
}

// UpdateLesson updates a lesson's scalar fields. Questions and options are
// managed through recreation: delete the lesson and create a new one.
func UpdateLesson(c *fiber.Ctx) error {
	lessonID, ok := c.Locals("lessonID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson id!", nil)
	}

	reqData := new(LessonInput)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var lesson models.Lesson
	if err := db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
		}
		log.Printf("Error fetching lesson %d: %v", lessonID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lesson!", nil)
	}

	updates := map[string]interface{}{
		"chapter":     reqData.Chapter,
		"title":       reqData.Title,
		"slug":        reqData.Slug,
		"content":     reqData.Content,
		"video_id":    reqData.VideoID,
		"video_title": reqData.VideoTitle,
	}
	if err := db.Model(&lesson).Updates(updates).Error; err != nil {
		log.Printf("Error updating lesson %d: %v", lessonID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully!", fiber.Map{
		"lesson": lesson,
	})
}

// DeleteLesson soft-deletes a lesson and all of its questions and options.
func DeleteLesson(c *fiber.Ctx) error {
	lessonID, ok := c.Locals("lessonID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson id!", nil)
	}

	db := database.Database.Db

	var lesson models.Lesson
	if err := db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
		}
		log.Printf("Error fetching lesson %d: %v", lessonID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lesson!", nil)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var questionIDs []uint
		if err := tx.Model(&models.Question{}).Where("lesson_id = ?", lessonID).
			Pluck("id", &questionIDs).Error; err != nil {
			return err
		}
		if len(questionIDs) > 0 {
			if err := tx.Model(&models.Option{}).Where("question_id IN ?", questionIDs).
				Update("is_deleted", true).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Question{}).Where("lesson_id = ?", lessonID).
				Update("is_deleted", true).Error; err != nil {
				return err
			}
		}
		return tx.Model(&lesson).Update("is_deleted", true).Error
	})
	if err != nil {
		log.Printf("Error deleting lesson %d: %v", lessonID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully!", nil)
}
