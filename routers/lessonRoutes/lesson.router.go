package lessonRoutes

import (
	controllers "kabulearn/controllers/lesson"
	"kabulearn/middleware"
	validators "kabulearn/validators/lesson"

	"github.com/gofiber/fiber/v2"
)

// SetupLessonRoutes sets up the learner-facing lesson routes. Both work
// for guests; OptionalJWTMiddleware upgrades the identity when a valid
// token is present.
func SetupLessonRoutes(app *fiber.App) {
	lessonGroup := app.Group("/lessons")

	lessonGroup.Get("/", middleware.OptionalJWTMiddleware, controllers.GetLessons)
	lessonGroup.Get("/:slug", middleware.OptionalJWTMiddleware, validators.GetLessonBySlug(), controllers.GetLessonBySlug)
}
