package tutorialRoutes

import (
	controllers "scholarnest/controllers/tutorial"
	"scholarnest/middleware"
	"scholarnest/models"
	validators "scholarnest/validators/tutorial"

	"github.com/gofiber/fiber/v2"
)

// SetupTutorialRoutes registers the public tutorial list and the admin
// management routes.
func SetupTutorialRoutes(app *fiber.App) {
	tutorialGroup := app.Group("/tutorials")

	// Public
	tutorialGroup.Get("/", controllers.GetTutorials)
	tutorialGroup.Get("/:id", controllers.GetTutorial)

	// Admin management
	tutorialGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.Tutorial(), controllers.CreateTutorial)
	tutorialGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.Tutorial(), controllers.UpdateTutorial)
	tutorialGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), controllers.DeleteTutorial)
}
