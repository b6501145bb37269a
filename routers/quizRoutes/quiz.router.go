package quizRoutes

import (
	controllers "kabulearn/controllers/quiz"
	"kabulearn/middleware"
	validators "kabulearn/validators/quiz"

	"github.com/gofiber/fiber/v2"
)

// SetupQuizRoutes sets up quiz submission and progress routes
func SetupQuizRoutes(app *fiber.App) {
	quizGroup := app.Group("/quiz")

	quizGroup.Post("/submit", middleware.OptionalJWTMiddleware, validators.SubmitQuiz(), controllers.SubmitQuiz)
	quizGroup.Get("/progress", middleware.OptionalJWTMiddleware, controllers.GetProgress)
}
