package noticeRoutes

import (
	controllers "kabulearn/controllers/notice"

	"github.com/gofiber/fiber/v2"
)

// SetupNoticeRoutes sets up the public notice routes
func SetupNoticeRoutes(app *fiber.App) {
	app.Get("/notices", controllers.GetNotices)
}
