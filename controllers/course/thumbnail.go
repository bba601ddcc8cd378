package controllers

import (
	"scholarnest/config"
	"scholarnest/database"
	"scholarnest/middleware"
	"scholarnest/store"
	"scholarnest/utils"

	"github.com/gofiber/fiber/v2"
)

// UploadThumbnail stores an uploaded image and points the course at it.
func UploadThumbnail(c *fiber.Ctx) error {
	file, err := c.FormFile("thumbnail")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Thumbnail file is required!", nil)
	}

	filePath, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store thumbnail!", nil)
	}

	url := utils.GetFileURL(filePath)
	course, err := store.NewCourseStore(database.Database.Db).
		Update(c.Params("ref"), store.CourseUpdate{ThumbnailURL: &url})
	if err != nil {
		return middleware.StoreErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Thumbnail uploaded successfully!", course)
}
