package noticeController

import (
	"log"

	"kabulearn/database"
	"kabulearn/middleware"
	"kabulearn/models"

	"github.com/gofiber/fiber/v2"
)

// GetNotices lists published notices, newest first.
func GetNotices(c *fiber.Ctx) error {
	db := database.Database.Db

	var notices []models.Notice
	if err := db.Where("is_published = ? AND is_deleted = ?", true, false).
		Order("published_at desc").
		Find(&notices).Error; err != nil {
		log.Printf("Error fetching notices: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch notices!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notices fetched successfully!", fiber.Map{
		"notices": notices,
	})
}
