package tutorialValidator

import (
	"strings"

	"scholarnest/middleware"

	"github.com/gofiber/fiber/v2"
)

// TutorialRequest is the validated payload for tutorial create/update.
type TutorialRequest struct {
	Title       string `json:"title"`
	VideoURL    string `json:"video_url"`
	Description string `json:"description"`
}

func Tutorial() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(TutorialRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(reqData.VideoURL) == "" {
			errors["video_url"] = "Video URL is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTutorial", reqData)
		return c.Next()
	}
}
