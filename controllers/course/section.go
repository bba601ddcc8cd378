package controllers

import (
	"strconv"

	"scholarnest/database"
	"scholarnest/middleware"
	"scholarnest/store"
	validators "scholarnest/validators/course"

	"github.com/gofiber/fiber/v2"
)

// paramID parses a numeric path parameter. Malformed input yields 0, which no
// row carries, so lookups fall through to not-found.
func paramID(c *fiber.Ctx, name string) uint {
	id, err := strconv.ParseUint(c.Params(name), 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}

// AddSection appends a section to the course and returns the refreshed
// aggregate.
func AddSection(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSection").(*validators.SectionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := store.NewCourseStore(database.Database.Db).AddSection(c.Params("ref"), reqData.Title)
	if err != nil {
		return middleware.StoreErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Section added successfully!", course)
}

// UpdateSection replaces the section title.
func UpdateSection(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSection").(*validators.SectionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := store.NewCourseStore(database.Database.Db).
		UpdateSection(c.Params("ref"), paramID(c, "sectionId"), reqData.Title)
	if err != nil {
		return middleware.StoreErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section updated successfully!", course)
}

// DeleteSection removes the section and its lectures.
func DeleteSection(c *fiber.Ctx) error {
	course, err := store.NewCourseStore(database.Database.Db).
		DeleteSection(c.Params("ref"), paramID(c, "sectionId"))
	if err != nil {
		return middleware.StoreErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section deleted", course)
}
