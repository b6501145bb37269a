package quizValidator

import (
	"kabulearn/middleware"

	"github.com/gofiber/fiber/v2"
)

// SubmitQuiz checks the submission body before any persistence happens.
// Non-numeric or missing ids never reach the database.
func SubmitQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			SelectedOptionID *uint `json:"selected_option_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.SelectedOptionID == nil || *reqData.SelectedOptionID == 0 {
			errors["selected_option_id"] = "Selected option id must be a positive number!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("selectedOptionID", *reqData.SelectedOptionID)
		return c.Next()
	}
}
