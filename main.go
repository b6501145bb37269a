package main

import (
	"log"
	"time"

	"kabulearn/config"
	"kabulearn/database"
	"kabulearn/middleware"
	"kabulearn/progress"
	adminRoutes "kabulearn/routers/adminRoutes"
	articleRoutes "kabulearn/routers/articleRoutes"
	authRoutes "kabulearn/routers/authRoutes"
	chatbotRoutes "kabulearn/routers/chatbotRoutes"
	lessonRoutes "kabulearn/routers/lessonRoutes"
	noticeRoutes "kabulearn/routers/noticeRoutes"
	quizRoutes "kabulearn/routers/quizRoutes"
	"kabulearn/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	middleware.InitSessionStore()

	// One attempt cache per process, shared by reference across handlers
	cacheTTL := time.Duration(config.AppConfig.ProgressCacheTTLSeconds) * time.Second
	progress.Cache = progress.NewAttemptCache(cacheTTL, time.Now, progress.GormAttemptSource{
		DB: database.Database.Db,
	})

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	lessonRoutes.SetupLessonRoutes(app)
	quizRoutes.SetupQuizRoutes(app)
	articleRoutes.SetupArticleRoutes(app)
	noticeRoutes.SetupNoticeRoutes(app)
	chatbotRoutes.SetupChatbotRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	scheduler := utils.StartProgressScheduler()
	defer scheduler.Stop()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
