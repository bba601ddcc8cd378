package scholarshipRoutes

import (
	controllers "scholarnest/controllers/scholarship"
	"scholarnest/middleware"
	"scholarnest/models"
	validators "scholarnest/validators/scholarship"

	"github.com/gofiber/fiber/v2"
)

// SetupScholarshipRoutes registers the public scholarship catalog and the
// admin management routes.
func SetupScholarshipRoutes(app *fiber.App) {
	scholarshipGroup := app.Group("/scholarships")

	// Public catalog
	scholarshipGroup.Get("/", controllers.GetScholarships)
	scholarshipGroup.Get("/:id", controllers.GetScholarship)

	// Admin management
	scholarshipGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.CreateScholarship(), controllers.CreateScholarship)
	scholarshipGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.UpdateScholarship(), controllers.UpdateScholarship)
	scholarshipGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), controllers.DeleteScholarship)
}
