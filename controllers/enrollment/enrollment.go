package enrollmentController

import (
	"scholarnest/database"
	"scholarnest/middleware"
	"scholarnest/store"
	"scholarnest/utils"
	validators "scholarnest/validators/enrollment"

	"github.com/gofiber/fiber/v2"
	"strconv"
)

// EnrollCourse creates a pending enrollment for the caller.
func EnrollCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedEnroll").(*validators.EnrollRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	enrollment, err := store.NewEnrollmentLedger(database.Database.Db).Enroll(userID, reqData.CourseID)
	if err != nil {
		return middleware.StoreErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrollment requested. Waiting for admin approval.", enrollment)
}

// GetEnrollments lists every enrollment with user and course summaries (admin).
func GetEnrollments(c *fiber.Ctx) error {
	enrollments, err := store.NewEnrollmentLedger(database.Database.Db).ListAll()
	if err != nil {
		return middleware.StoreErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"count":       len(enrollments),
		"enrollments": enrollments,
	})
}

// UpdateEnrollmentStatus approves or rejects an enrollment (admin).
func UpdateEnrollmentStatus(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedStatus").(*validators.StatusRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found", nil)
	}

	enrollment, err := store.NewEnrollmentLedger(database.Database.Db).SetStatus(uint(id), reqData.Status)
	if err != nil {
		return middleware.StoreErrorResponse(c, err)
	}

	// Courtesy mail; the decision stands whether or not it sends.
	go utils.SendEnrollmentDecisionEmail(enrollment.User.Email, enrollment.User.Name, enrollment.Course.Title, enrollment.Status)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment status updated successfully!", enrollment)
}

// CheckEnrollmentStatus reports the caller's status on a course; no record
// yields the synthetic not_enrolled status.
func CheckEnrollmentStatus(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	status, enrollment, err := store.NewEnrollmentLedger(database.Database.Db).CheckStatus(userID, c.Params("ref"))
	if err != nil {
		return middleware.StoreErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment status fetched successfully!", fiber.Map{
		"status":     status,
		"enrollment": enrollment,
	})
}

// GetMyEnrollments lists the caller's enrollments with course summaries.
func GetMyEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollments, err := store.NewEnrollmentLedger(database.Database.Db).ListMine(userID)
	if err != nil {
		return middleware.StoreErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"count":       len(enrollments),
		"enrollments": enrollments,
	})
}
