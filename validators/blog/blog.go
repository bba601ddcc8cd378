package blogValidator

import (
	"strings"
	"time"

	"scholarnest/middleware"
	"scholarnest/models"

	"github.com/gofiber/fiber/v2"
)

// Author mirrors the nested author object of the blog payload.
type Author struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Image string `json:"image"`
}

// CreateBlogPostRequest is the validated payload for blog post creation.
// Incoming JSON uses snake_case content field names.
type CreateBlogPostRequest struct {
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Excerpt         string     `json:"excerpt"`
	ContentHTML     string     `json:"content_html"`
	CoverImageURL   string     `json:"cover_image_url"`
	Author          Author     `json:"author"`
	Categories      []string   `json:"categories"`
	Status          string     `json:"status"`
	PublishedAt     *time.Time `json:"published_at"`
	MetaTitle       string     `json:"meta_title"`
	MetaDescription string     `json:"meta_description"`
}

// UpdateBlogPostRequest carries a partial blog post update.
type UpdateBlogPostRequest struct {
	Title           *string    `json:"title"`
	Slug            *string    `json:"slug"`
	Excerpt         *string    `json:"excerpt"`
	ContentHTML     *string    `json:"content_html"`
	CoverImageURL   *string    `json:"cover_image_url"`
	Author          *Author    `json:"author"`
	Categories      []string   `json:"categories"`
	Status          *string    `json:"status"`
	PublishedAt     *time.Time `json:"published_at"`
	MetaTitle       *string    `json:"meta_title"`
	MetaDescription *string    `json:"meta_description"`
}

func validStatus(status string) bool {
	switch status {
	case models.BlogStatusDraft, models.BlogStatusScheduled, models.BlogStatusPublished, models.BlogStatusArchived:
		return true
	}
	return false
}

func CreateBlogPost() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateBlogPostRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.ContentHTML) == "" {
			errors["content_html"] = "Content is required!"
		}
		if strings.TrimSpace(reqData.Author.Name) == "" {
			errors["author.name"] = "Author name is required!"
		}
		if reqData.Status != "" && !validStatus(reqData.Status) {
			errors["status"] = "Status must be draft, scheduled, published or archived!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBlogPost", reqData)
		return c.Next()
	}
}

func UpdateBlogPost() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateBlogPostRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title != nil && strings.TrimSpace(*reqData.Title) == "" {
			errors["title"] = "Title must not be empty!"
		}
		if reqData.ContentHTML != nil && strings.TrimSpace(*reqData.ContentHTML) == "" {
			errors["content_html"] = "Content must not be empty!"
		}
		if reqData.Status != nil && !validStatus(*reqData.Status) {
			errors["status"] = "Status must be draft, scheduled, published or archived!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBlogPostUpdate", reqData)
		return c.Next()
	}
}
