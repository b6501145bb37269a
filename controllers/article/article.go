package articleController

import (
	"log"

	"kabulearn/database"
	"kabulearn/middleware"
	"kabulearn/models"
	"kabulearn/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetArticles lists locally stored articles, newest first.
func GetArticles(c *fiber.Ctx) error {
	db := database.Database.Db

	var articles []models.Article
	if err := db.Where("is_deleted = ?", false).
		Order("published_at desc").
		Find(&articles).Error; err != nil {
		log.Printf("Error fetching articles: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch articles!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Articles fetched successfully!", fiber.Map{
		"articles": articles,
	})
}

// GetArticleBySlug returns one locally stored article.
func GetArticleBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")

	db := database.Database.Db

	var article models.Article
	err := db.Where("slug = ? AND is_deleted = ?", slug, false).First(&article).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Article not found!", nil)
		}
		log.Printf("Error fetching article %s: %v", slug, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch article!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Article fetched successfully!", fiber.Map{
		"article": article,
	})
}

// GetCMSArticles lists articles from the headless CMS.
func GetCMSArticles(c *fiber.Ctx) error {
	articles, err := utils.FetchCMSArticles()
	if err != nil {
		log.Printf("Error fetching CMS articles: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to fetch CMS articles!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Articles fetched successfully!", fiber.Map{
		"articles": articles,
	})
}

// GetCMSArticleByID returns one article from the headless CMS.
func GetCMSArticleByID(c *fiber.Ctx) error {
	id := c.Params("id")

	article, err := utils.FetchCMSArticleByID(id)
	if err != nil {
		if err == utils.ErrCMSArticleNotFound {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Article not found!", nil)
		}
		log.Printf("Error fetching CMS article %s: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to fetch CMS article!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Article fetched successfully!", fiber.Map{
		"article": article,
	})
}
