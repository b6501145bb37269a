package adminRoutes

import (
	controllers "kabulearn/controllers/admin"
	"kabulearn/middleware"
	articleValidators "kabulearn/validators/article"
	lessonValidators "kabulearn/validators/lesson"
	noticeValidators "kabulearn/validators/notice"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up all admin CRUD routes. Every route requires a
// valid token with the ADMIN role.
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.AdminOnlyMiddleware)

	// Lessons
	adminGroup.Get("/lessons", controllers.GetAllLessons)
	adminGroup.Post("/lessons", lessonValidators.CreateLesson(), controllers.CreateLesson)
	adminGroup.Put("/lessons/:id", lessonValidators.LessonID(), controllers.UpdateLesson)
	adminGroup.Delete("/lessons/:id", lessonValidators.LessonID(), controllers.DeleteLesson)

	// Articles
	adminGroup.Post("/articles", articleValidators.SaveArticle(), controllers.CreateArticle)
	adminGroup.Put("/articles/:id", articleValidators.ArticleID(), articleValidators.SaveArticle(), controllers.UpdateArticle)
	adminGroup.Delete("/articles/:id", articleValidators.ArticleID(), controllers.DeleteArticle)

	// Notices
	adminGroup.Get("/notices", controllers.GetAllNotices)
	adminGroup.Post("/notices", noticeValidators.SaveNotice(), controllers.CreateNotice)
	adminGroup.Put("/notices/:id", noticeValidators.NoticeID(), noticeValidators.SaveNotice(), controllers.UpdateNotice)
	adminGroup.Delete("/notices/:id", noticeValidators.NoticeID(), controllers.DeleteNotice)

	// Progress maintenance
	adminGroup.Post("/progress/reset", controllers.ResetProgress)
	adminGroup.Post("/progress/rebuild", controllers.RebuildProjection)
}
