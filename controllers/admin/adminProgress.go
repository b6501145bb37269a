package adminController

import (
	"log"

	"kabulearn/database"
	"kabulearn/middleware"
	"kabulearn/models"
	"kabulearn/progress"
	"kabulearn/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ResetProgress wipes every quiz attempt and the cleared-question
// projection, then flushes the attempt cache. Used before reseeding.
func ResetProgress(c *fiber.Ctx) error {
	db := database.Database.Db

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.QuizAttempt{}).Error; err != nil {
			return err
		}
		return tx.Where("1 = 1").Delete(&models.ClearedQuestion{}).Error
	})
	if err != nil {
		log.Printf("Error resetting progress: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to reset progress!", nil)
	}

	progress.Cache.Flush()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress reset successfully!", nil)
}

// RebuildProjection rebuilds the cleared-question projection from the
// attempt log on demand, outside the scheduler's cadence.
func RebuildProjection(c *fiber.Ctx) error {
	rebuilt, err := utils.RebuildClearedQuestions(database.Database.Db)
	if err != nil {
		log.Printf("Error rebuilding cleared-question projection: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to rebuild projection!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Projection rebuilt successfully!", fiber.Map{
		"rows": rebuilt,
	})
}
