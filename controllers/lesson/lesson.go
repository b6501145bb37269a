package lessonController

import (
	"log"

	"kabulearn/config"
	"kabulearn/database"
	"kabulearn/middleware"
	"kabulearn/models"
	"kabulearn/progress"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetLessons returns every lesson grouped into chapters, with the current
// identity's completion per chapter and overall.
func GetLessons(c *fiber.Ctx) error {
	db := database.Database.Db

	var lessons []models.Lesson
	if err := db.Where("is_deleted = ?", false).
		Preload("Questions", "is_deleted = ?", false).
		Order("id asc").
		Find(&lessons).Error; err != nil {
		log.Printf("Error fetching lessons: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
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

	chapters := progress.BuildChapterView(lessons, clearedIDs)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully!", fiber.Map{
		"chapters":         chapters,
		"overall_progress": progress.OverallPercentage(lessons, clearedIDs),
		"is_guest":         identity.IsGuest(),
	})
}

// GetLessonBySlug returns one lesson with its questions and options.
func GetLessonBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	db := database.Database.Db

	var lesson models.Lesson
	err := db.Where("slug = ? AND is_deleted = ?", slug, false).
		Preload("Questions", "is_deleted = ?", false).
		Preload("Questions.Options", "is_deleted = ?", false).
		First(&lesson).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
		}
		log.Printf("Error fetching lesson %s: %v", slug, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson fetched successfully!", fiber.Map{
		"lesson": lesson,
		"phase":  progress.PhaseForLesson(lesson.Slug, lesson.ID),
	})
}
