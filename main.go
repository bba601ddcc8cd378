package main

import (
	"log"

	"scholarnest/config"
	"scholarnest/database"
	blogRoutes "scholarnest/routers/blogRoutes"
	courseRoutes "scholarnest/routers/courseRoutes"
	enrollmentRoutes "scholarnest/routers/enrollmentRoutes"
	scholarshipRoutes "scholarnest/routers/scholarshipRoutes"
	tutorialRoutes "scholarnest/routers/tutorialRoutes"
	userRoutes "scholarnest/routers/userRoutes"
	"scholarnest/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded thumbnails and other static assets
	app.Static("/uploads", config.AppConfig.UploadDir)
	app.Static("/", "./public")

	userRoutes.SetupUserRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	enrollmentRoutes.SetupEnrollmentRoutes(app)
	blogRoutes.SetupBlogRoutes(app)
	scholarshipRoutes.SetupScholarshipRoutes(app)
	tutorialRoutes.SetupTutorialRoutes(app)

	utils.StartBlogScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
