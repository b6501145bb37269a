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

type articleInput struct {
	Title   string `json:"title"`
	Slug    string `json:"slug"`
	Content string `json:"content"`
}

// CreateArticle creates a locally stored article.
func CreateArticle(c *fiber.Ctx) error {
	reqData := new(articleInput)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	if err := db.Where("slug = ? AND is_deleted = ?", reqData.Slug, false).First(&models.Article{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Slug is already in use!", nil)
	}

	article := models.Article{
		Title:       reqData.Title,
		Slug:        reqData.Slug,
		Content:     reqData.Content,
		PublishedAt: time.Now(),
	}

	if err := db.Create(&article).Error; err != nil {
		log.Printf("Error creating article: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create article!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Article created successfully!", fiber.Map{
		"article": article,
	})
}

// UpdateArticle updates an article's title, slug and content.
func UpdateArticle(c *fiber.Ctx) error {
	articleID, ok := c.Locals("articleID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid article id!", nil)
	}

	reqData := new(articleInput)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var article models.Article
	if err := db.Where("id = ? AND is_deleted = ?", articleID, false).First(&article).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Article not found!", nil)
		}
		log.Printf("Error fetching article %d: %v", articleID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch article!", nil)
	}

	updates := map[string]interface{}{
		"title":   reqData.Title,
		"slug":    reqData.Slug,
		"content": reqData.Content,
	}
	if err := db.Model(&article).Updates(updates).Error; err != nil {
		log.Printf("Error updating article %d: %v", articleID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update article!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Article updated successfully!", fiber.Map{
		"article": article,
	})
}

// DeleteArticle soft-deletes an article.
func DeleteArticle(c *fiber.Ctx) error {
	articleID, ok := c.Locals("articleID").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid article id!", nil)
	}

	db := database.Database.Db

	result := db.Model(&models.Article{}).
		Where("id = ? AND is_deleted = ?", articleID, false).
		Update("is_deleted", true)
	if result.Error != nil {
		log.Printf("Error deleting article %d: %v", articleID, result.Error)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete article!", nil)
	}
	if result.RowsAffected == 0 {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Article not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Article deleted successfully!", nil)
}
