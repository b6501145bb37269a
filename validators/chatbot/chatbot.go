package chatbotValidator

import (
	"strings"

	"kabulearn/middleware"

	"github.com/gofiber/fiber/v2"
)

// Ask validates the chatbot question payload.
func Ask() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Question string `json:"question"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		question := strings.TrimSpace(reqData.Question)
		if question == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"question": "Question is required!",
			})
		}
		if len(question) > 1000 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"question": "Question must be 1000 characters or fewer!",
			})
		}

		c.Locals("question", question)
		return c.Next()
	}
}
