package controllers

import (
	"scholarnest/database"
	"scholarnest/middleware"
	"scholarnest/store"
	validators "scholarnest/validators/course"

	"github.com/gofiber/fiber/v2"
)

// AddLecture appends a lecture to the section and returns the refreshed
// aggregate.
func AddLecture(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLecture").(*validators.CreateLectureRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := store.NewCourseStore(database.Database.Db).
		AddLecture(c.Params("ref"), paramID(c, "sectionId"), store.LectureInput{
			Title:         reqData.Title,
			VideoURL:      reqData.VideoURL,
			Duration:      *reqData.Duration,
			Description:   reqData.Description,
			IsPreviewable: reqData.IsPreviewable,
		})
	if err != nil {
		return middleware.StoreErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lecture added successfully!", course)
}

// UpdateLecture merges the supplied fields only; everything else is preserved.
func UpdateLecture(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLectureUpdate").(*validators.UpdateLectureRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := store.NewCourseStore(database.Database.Db).
		UpdateLecture(c.Params("ref"), paramID(c, "sectionId"), paramID(c, "lectureId"), store.LectureUpdate{
			Title:         reqData.Title,
			VideoURL:      reqData.VideoURL,
			Duration:      reqData.Duration,
			Description:   reqData.Description,
			IsPreviewable: reqData.IsPreviewable,
		})
	if err != nil {
		return middleware.StoreErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lecture updated successfully!", course)
}

// DeleteLecture removes the lecture from its section.
func DeleteLecture(c *fiber.Ctx) error {
	course, err := store.NewCourseStore(database.Database.Db).
		DeleteLecture(c.Params("ref"), paramID(c, "sectionId"), paramID(c, "lectureId"))
	if err != nil {
		return middleware.StoreErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lecture deleted", course)
}
