package articleRoutes

import (
	controllers "kabulearn/controllers/article"

	"github.com/gofiber/fiber/v2"
)

// SetupArticleRoutes sets up locally stored and CMS-backed article routes
func SetupArticleRoutes(app *fiber.App) {
	articleGroup := app.Group("/articles")
	articleGroup.Get("/", controllers.GetArticles)
	articleGroup.Get("/:slug", controllers.GetArticleBySlug)

	cmsGroup := app.Group("/cms/articles")
	cmsGroup.Get("/", controllers.GetCMSArticles)
	cmsGroup.Get("/:id", controllers.GetCMSArticleByID)
}
