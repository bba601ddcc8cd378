package controllers

import (
	"scholarnest/database"
	"scholarnest/middleware"
	"scholarnest/store"
	validators "scholarnest/validators/course"

	"github.com/gofiber/fiber/v2"
)

// CreateCourse creates a new course. The slug is derived from the title when
// not supplied.
func CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*validators.CreateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	courses := store.NewCourseStore(database.Database.Db)
	course, err := courses.Create(store.CourseInput{
		Title:        reqData.Title,
		Slug:         reqData.Slug,
		Description:  reqData.Description,
		InstructorID: reqData.InstructorID,
		Price:        reqData.Price,
		ThumbnailURL: reqData.ThumbnailURL,
		Category:     reqData.Category,
		IsPublished:  reqData.IsPublished,
	})
	if err != nil {
		return middleware.StoreErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// GetAllCourses returns the lightweight listing without section/lecture trees.
func GetAllCourses(c *fiber.Ctx) error {
	courses, err := store.NewCourseStore(database.Database.Db).List()
	if err != nil {
		return middleware.StoreErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"count":   len(courses),
		"courses": courses,
	})
}

// GetCourse returns the full aggregate; :ref is a slug or an id.
func GetCourse(c *fiber.Ctx) error {
	course, err := store.NewCourseStore(database.Database.Db).Get(c.Params("ref"))
	if err != nil {
		return middleware.StoreErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

// UpdateCourse applies the provided fields only; a title change re-derives
// the slug.
func UpdateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourseUpdate").(*validators.UpdateCourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	courses := store.NewCourseStore(database.Database.Db)
	course, err := courses.Update(c.Params("ref"), store.CourseUpdate{
		Title:        reqData.Title,
		Slug:         reqData.Slug,
		Description:  reqData.Description,
		InstructorID: reqData.InstructorID,
		Price:        reqData.Price,
		ThumbnailURL: reqData.ThumbnailURL,
		Category:     reqData.Category,
		IsPublished:  reqData.IsPublished,
	})
	if err != nil {
		return middleware.StoreErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// DeleteCourse removes the course and all of its content.
func DeleteCourse(c *fiber.Ctx) error {
	if err := store.NewCourseStore(database.Database.Db).Delete(c.Params("ref")); err != nil {
		return middleware.StoreErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}
