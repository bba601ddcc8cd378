package courseValidator

import (
	"strings"

	"scholarnest/middleware"

	"github.com/gofiber/fiber/v2"
)

// SectionRequest is the validated payload for section create/update.
type SectionRequest struct {
	Title string `json:"title"`
}

// CreateLectureRequest is the validated payload for lecture creation.
// Duration is a pointer so a missing field is distinguishable from zero.
type CreateLectureRequest struct {
	Title         string `json:"title"`
	VideoURL      string `json:"video_url"`
	Duration      *int64 `json:"duration"`
	Description   string `json:"description"`
	IsPreviewable bool   `json:"is_previewable"`
}

// UpdateLectureRequest carries a partial lecture update.
type UpdateLectureRequest struct {
	Title         *string `json:"title"`
	VideoURL      *string `json:"video_url"`
	Duration      *int64  `json:"duration"`
	Description   *string `json:"description"`
	IsPreviewable *bool   `json:"is_previewable"`
}

func Section() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SectionRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Title) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"title": "Section title is required!"})
		}

		c.Locals("validatedSection", reqData)
		return c.Next()
	}
}

func CreateLecture() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateLectureRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Lecture title is required!"
		}
		if strings.TrimSpace(reqData.VideoURL) == "" {
			errors["video_url"] = "Lecture video URL is required!"
		}
		if reqData.Duration == nil {
			errors["duration"] = "Lecture duration is required!"
		} else if *reqData.Duration < 0 {
			errors["duration"] = "Duration must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLecture", reqData)
		return c.Next()
	}
}

func UpdateLecture() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateLectureRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title != nil && strings.TrimSpace(*reqData.Title) == "" {
			errors["title"] = "Lecture title must not be empty!"
		}
		if reqData.VideoURL != nil && strings.TrimSpace(*reqData.VideoURL) == "" {
			errors["video_url"] = "Lecture video URL must not be empty!"
		}
		if reqData.Duration != nil && *reqData.Duration < 0 {
			errors["duration"] = "Duration must not be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLectureUpdate", reqData)
		return c.Next()
	}
}
