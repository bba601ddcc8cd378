package enrollmentValidator

import (
	"strings"

	"scholarnest/middleware"
	courseModels "scholarnest/models/course"

	"github.com/gofiber/fiber/v2"
)

// EnrollRequest carries the course reference (slug or id) to enroll in.
type EnrollRequest struct {
	CourseID string `json:"course_id"`
}

// StatusRequest carries the target status for an enrollment decision.
type StatusRequest struct {
	Status string `json:"status"`
}

func Enroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EnrollRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.CourseID) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{"course_id": "Course reference is required!"})
		}

		c.Locals("validatedEnroll", reqData)
		return c.Next()
	}
}

func SetStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(StatusRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		// pending is the birth state; an admin can only decide, not undecide.
		if reqData.Status != courseModels.EnrollmentApproved && reqData.Status != courseModels.EnrollmentRejected {
			return middleware.ValidationErrorResponse(c, map[string]string{"status": "Status must be 'approved' or 'rejected'!"})
		}

		c.Locals("validatedStatus", reqData)
		return c.Next()
	}
}
