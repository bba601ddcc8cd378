package blogRoutes

import (
	controllers "scholarnest/controllers/blog"
	"scholarnest/middleware"
	"scholarnest/models"
	validators "scholarnest/validators/blog"

	"github.com/gofiber/fiber/v2"
)

// SetupBlogRoutes registers the public blog routes and the admin authoring
// routes.
func SetupBlogRoutes(app *fiber.App) {
	blogGroup := app.Group("/blog")

	// Public. The id lookup lives under /id so slugs keep the top-level slot.
	blogGroup.Get("/", controllers.GetBlogPosts)
	blogGroup.Get("/id/:id", controllers.GetBlogPostByID)
	blogGroup.Get("/:slug", controllers.GetBlogPostBySlug)
	blogGroup.Put("/:id/like", controllers.LikeBlogPost)

	// Admin authoring
	blogGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.CreateBlogPost(), controllers.CreateBlogPost)
	blogGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.UpdateBlogPost(), controllers.UpdateBlogPost)
	blogGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), controllers.DeleteBlogPost)
}
