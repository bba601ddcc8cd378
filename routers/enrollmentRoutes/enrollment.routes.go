package enrollmentRoutes

import (
	controllers "scholarnest/controllers/enrollment"
	"scholarnest/middleware"
	"scholarnest/models"
	validators "scholarnest/validators/enrollment"

	"github.com/gofiber/fiber/v2"
)

// SetupEnrollmentRoutes registers the student enrollment routes and the admin
// review routes.
func SetupEnrollmentRoutes(app *fiber.App) {
	enrollmentGroup := app.Group("/enrollments", middleware.JWTMiddleware)

	// Student
	enrollmentGroup.Post("/", validators.Enroll(), controllers.EnrollCourse)
	enrollmentGroup.Get("/my-enrollments", controllers.GetMyEnrollments)
	enrollmentGroup.Get("/check/:ref", controllers.CheckEnrollmentStatus)

	// Admin review
	enrollmentGroup.Get("/", middleware.RequireRole(models.RoleAdmin), controllers.GetEnrollments)
	enrollmentGroup.Put("/:id", middleware.RequireRole(models.RoleAdmin), validators.SetStatus(), controllers.UpdateEnrollmentStatus)
}
