package noticeValidator

import (
	"strconv"
	"strings"

	"kabulearn/middleware"

	"github.com/gofiber/fiber/v2"
)

// NoticeID validates the :id path parameter and stores it for the handler.
func NoticeID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid notice id!", nil)
		}
		c.Locals("noticeID", uint(id))
		return c.Next()
	}
}

// SaveNotice validates create/update payloads.
func SaveNotice() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title string `json:"title"`
			Body  string `json:"body"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.Body) == "" {
			errors["body"] = "Body is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}
