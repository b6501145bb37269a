package adminController

import (
	"log"
	"time"

	"kabulearn/database"
	"kabulearn/middleware"
	"kabulearn/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type noticeInput struct {
	Title       string `json:"title"`
	Body        string `json:"body"`
	IsPublished bool   `json:"is_published"`
}

// GetAllNotices lists every notice for the admin screens, drafts included.
func GetAllNotices(c *fiber.Ctx) error {
	db := database.Database.Db

	var notices []models.Notice
	if err := db.Where("is_deleted = ?", false).
		Order("created_at desc").
		Find(&notices).Error; err != nil {
		log.Printf("Error fetching notices: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch notices!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notices fetched successfully!", fiber.Map{
		"notices": notices,
	})
}

// CreateNotice creates a notice, stamping PublishedAt when it goes out
// published immediately.
func CreateNotice(c *fiber.Ctx) error {
	reqData := new(noticeInput)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	notice := models.Notice{
		Title:       reqData.Title,
		Body:        reqData.Body,
		IsPublished: reqData.IsPublished,
	}
	if reqData.IsPublished {
		now := time.Now()
		notice.PublishedAt = &now
	}

	if err := database.Database.Db.Create(&notice).Error; err != nil {
		log.Printf("Error creating notice: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create notice!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Notice created successfully!", fiber.Map{
		"notice": notice,
	})
}

// UpdateNotice updates a notice; publishing for the first time stamps
// PublishedAt.
func UpdateNotice(c *fiber.Ctx) error {
	noticeID, ok := c.Locals("noticeID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid notice id!", nil)
	}

	reqData := new(noticeInput)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var notice models.Notice
	if err := db.Where("id = ? AND is_deleted = ?", noticeID, false).First(&notice).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Notice not found!", nil)
		}
		log.Printf("Error fetching notice %d: %v", noticeID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch notice!", nil)
	}

	updates := map[string]interface{}{
		"title":        reqData.Title,
		"body":         reqData.Body,
		"is_published": reqData.IsPublished,
	}
	if reqData.IsPublished && notice.PublishedAt == nil {
		updates["published_at"] = time.Now()
	}

	if err := db.Model(&notice).Updates(updates).Error; err != nil {
		log.Printf("Error updating notice %d: %v", noticeID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update notice!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notice updated successfully!", fiber.Map{
		"notice": notice,
	})
}

// DeleteNotice soft-deletes a notice.
func DeleteNotice(c *fiber.Ctx) error {
	noticeID, ok := c.Locals("noticeID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid notice id!", nil)
	}

	result := database.Database.Db.Model(&models.Notice{}).
		Where("id = ? AND is_deleted = ?", noticeID, false).
		Update("is_deleted", true)
	if result.Error != nil {
		log.Printf("Error deleting notice %d: %v", noticeID, result.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete notice!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Notice not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notice deleted successfully!", nil)
}
