package articleValidator

import (
	"strconv"
	"strings"

	"kabulearn/middleware"

	"github.com/gofiber/fiber/v2"
)

// ArticleID validates the :id path parameter and stores it for the handler.
func ArticleID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid article id!", nil)
		}
		c.Locals("articleID", uint(id))
		return c.Next()
	}
}

// SaveArticle validates create/update payloads.
func SaveArticle() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title   string `json:"title"`
			Slug    string `json:"slug"`
			Content string `json:"content"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.Slug) == "" {
			errors["slug"] = "Slug is required!"
		}
		if strings.TrimSpace(reqData.Content) == "" {
			errors["content"] = "Content is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}
