package userRoutes

import (
	controllers "scholarnest/controllers/userControllers"
	"scholarnest/middleware"
	"scholarnest/models"
	validators "scholarnest/validators/user"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes registers registration, login and account management.
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/users")

	userGroup.Post("/", validators.Register(), controllers.Register)
	userGroup.Post("/login", validators.Login(), controllers.Login)

	userGroup.Get("/profile", middleware.JWTMiddleware, controllers.GetProfile)

	// Admin account management
	userGroup.Get("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), controllers.GetUsers)
	userGroup.Put("/:id/role", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.UpdateRole(), controllers.UpdateUserRole)
	userGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), controllers.DeleteUser)
}
