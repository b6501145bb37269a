package chatbotRoutes

import (
	controllers "kabulearn/controllers/chatbot"
	validators "kabulearn/validators/chatbot"

	"github.com/gofiber/fiber/v2"
)

// SetupChatbotRoutes sets up the chatbot proxy route
func SetupChatbotRoutes(app *fiber.App) {
	app.Post("/chatbot/ask", validators.Ask(), controllers.Ask)
}
