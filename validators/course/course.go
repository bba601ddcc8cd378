package courseValidator

import (
	"strings"

	"scholarnest/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateCourseRequest is the validated payload for course creation.
type CreateCourseRequest struct {
	Title        string  `json:"title"`
	Slug         string  `json:"slug"`
	Description  string  `json:"description"`
	InstructorID *uint   `json:"instructor_id"`
	Price        float64 `json:"price"`
	ThumbnailURL string  `json:"thumbnail_url"`
	Category     string  `json:"category"`
	IsPublished  bool    `json:"is_published"`
}

// UpdateCourseRequest carries a partial course update; absent fields stay nil.
type UpdateCourseRequest struct {
	Title        *string  `json:"title"`
	Slug         *string  `json:"slug"`
	Description  *string  `json:"description"`
	InstructorID *uint    `json:"instructor_id"`
	Price        *float64 `json:"price"`
	ThumbnailURL *string  `json:"thumbnail_url"`
	Category     *string  `json:"category"`
	IsPublished  *bool    `json:"is_published"`
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		}
		if strings.TrimSpace(reqData.ThumbnailURL) == "" {
			errors["thumbnail_url"] = "Thumbnail URL is required!"
		}
		if strings.TrimSpace(reqData.Category) == "" {
			errors["category"] = "Category is required!"
		}
		if reqData.Price < 0 {
			errors["price"] = "Price must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title != nil && strings.TrimSpace(*reqData.Title) == "" {
			errors["title"] = "Title must not be empty!"
		}
		if reqData.Slug != nil && strings.TrimSpace(*reqData.Slug) == "" {
			errors["slug"] = "Slug must not be empty!"
		}
		if reqData.Price != nil && *reqData.Price < 0 {
			errors["price"] = "Price must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}
