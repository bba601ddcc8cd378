package courseRoutes

import (
	controllers "scholarnest/controllers/course"
	"scholarnest/middleware"
	"scholarnest/models"
	validators "scholarnest/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes registers the public catalog routes, the enrollment-gated
// watch route and the admin content management routes.
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/courses")

	// Public catalog
	courseGroup.Get("/", controllers.GetAllCourses)
	courseGroup.Get("/:ref", controllers.GetCourse)

	// Full content, enrollment gated
	courseGroup.Get("/:ref/watch", middleware.JWTMiddleware, controllers.WatchCourse)

	// Admin course CRUD
	courseGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.CreateCourse(), controllers.CreateCourse)
	courseGroup.Put("/:ref", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.UpdateCourse(), controllers.UpdateCourse)
	courseGroup.Delete("/:ref", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), controllers.DeleteCourse)
	courseGroup.Post("/:ref/thumbnail", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), controllers.UploadThumbnail)

	// Section management
	courseGroup.Post("/:ref/sections", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.Section(), controllers.AddSection)
	courseGroup.Put("/:ref/sections/:sectionId", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.Section(), controllers.UpdateSection)
	courseGroup.Delete("/:ref/sections/:sectionId", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), controllers.DeleteSection)

	// Lecture management
	courseGroup.Post("/:ref/sections/:sectionId/lectures", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.CreateLecture(), controllers.AddLecture)
	courseGroup.Put("/:ref/sections/:sectionId/lectures/:lectureId", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.UpdateLecture(), controllers.UpdateLecture)
	courseGroup.Delete("/:ref/sections/:sectionId/lectures/:lectureId", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), controllers.DeleteLecture)
}
