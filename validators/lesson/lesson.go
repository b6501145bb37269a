package lessonValidator

import (
	"strconv"
	"strings"

	"kabulearn/middleware"

	"github.com/gofiber/fiber/v2"
)

// GetLessonBySlug validates the slug path parameter.
func GetLessonBySlug() fiber.Handler {
	return func(c *fiber.Ctx) error {
		slug := strings.TrimSpace(c.Params("slug"))
		if slug == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Lesson slug is required!", nil)
		}
		return c.Next()
	}
}

// LessonID validates the :id path parameter and stores it for the handler.
func LessonID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson id!", nil)
		}
		c.Locals("lessonID", uint(id))
		return c.Next()
	}
}

// CreateLesson validates the admin lesson payload, including the rule that
// every question carries at least two options and at least one of them is
// flagged correct.
func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Chapter   *int   `json:"chapter"`
			Title     string `json:"title"`
			Slug      string `json:"slug"`
			Content   string `json:"content"`
			Questions []struct {
				Text    string `json:"text"`
				Options []struct {
					Text      string `json:"text"`
					IsCorrect bool   `json:"is_correct"`
				} `json:"options"`
			} `json:"questions"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Chapter == nil || *reqData.Chapter < 0 {
			errors["chapter"] = "Chapter must be 0 or greater!"
		}
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.Slug) == "" {
			errors["slug"] = "Slug is required!"
		}

		for i, question := range reqData.Questions {
			key := "questions." + strconv.Itoa(i)
			if strings.TrimSpace(question.Text) == "" {
				errors[key+".text"] = "Question text is required!"
				continue
			}
			if len(question.Options) < 2 {
				errors[key+".options"] = "Each question needs at least two options!"
				continue
			}
			hasCorrect := false
			for _, option := range question.Options {
				if option.IsCorrect {
					hasCorrect = true
					break
				}
			}
			if !hasCorrect {
				errors[key+".options"] = "Each question needs at least one correct option!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}
