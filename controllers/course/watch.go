package controllers

import (
	"scholarnest/database"
	"scholarnest/middleware"
	"scholarnest/store"

	"github.com/gofiber/fiber/v2"
)

// WatchCourse returns the full content tree, including protected video
// locations, when the caller holds an approved enrollment. The gate keeps
// deny (403) and unresolved course (404) apart.
func WatchCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	course, err := store.NewAccessGate(database.Database.Db).CanWatch(userID, c.Params("ref"))
	if err != nil {
		return middleware.StoreErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course content fetched successfully!", course)
}
