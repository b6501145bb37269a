package chatbotController

import (
	"log"

	"kabulearn/config"
	"kabulearn/middleware"

	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2"
)

type chatbotResponse struct {
	Answer string `json:"answer"`
}

// Ask forwards a learner's question to the external chatbot answer API and
// relays the answer. When the API is not configured the route degrades to
// an explicit "unavailable" response instead of failing hard.
func Ask(c *fiber.Ctx) error {
	question, ok := c.Locals("question").(string)
	if !ok || question == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Question is required!", nil)
	}

	if config.AppConfig.ChatbotAPIURL == "" {
		return middleware.JsonResponse(c, fiber.StatusServiceUnavailable, false, "Chatbot is not available right now!", nil)
	}

	client := resty.New()

	var result chatbotResponse
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetAuthToken(config.AppConfig.ChatbotAPIKey).
		SetBody(map[string]string{"question": question}).
		SetResult(&result).
		Post(config.AppConfig.ChatbotAPIURL)
	if err != nil {
		log.Printf("Error calling chatbot API: %v", err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Failed to reach chatbot!", nil)
	}

	if resp.StatusCode() != fiber.StatusOK {
		log.Printf("Chatbot API returned status %d: %s", resp.StatusCode(), resp.String())
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Chatbot returned an error!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Answer fetched successfully!", fiber.Map{
		"answer": result.Answer,
	})
}
