package tutorialController

import (
	"strconv"
	"strings"

	"scholarnest/database"
	"scholarnest/middleware"
	"scholarnest/models"
	validators "scholarnest/validators/tutorial"

	"github.com/gofiber/fiber/v2"
)

// CreateTutorial stores a new tutorial video entry.
func CreateTutorial(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTutorial").(*validators.TutorialRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	tutorial := models.Tutorial{
		Title:       strings.TrimSpace(reqData.Title),
		VideoURL:    reqData.VideoURL,
		Description: reqData.Description,
	}

	if err := database.Database.Db.Create(&tutorial).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create tutorial!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Tutorial created successfully!", tutorial)
}

// GetTutorials lists all tutorials, newest first.
func GetTutorials(c *fiber.Ctx) error {
	var tutorials []models.Tutorial
	if err := database.Database.Db.Order("created_at desc").Find(&tutorials).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tutorials!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tutorials fetched successfully!", tutorials)
}

func findTutorial(c *fiber.Ctx) (*models.Tutorial, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return nil, err
	}
	var tutorial models.Tutorial
	if err := database.Database.Db.First(&tutorial, uint(id)).Error; err != nil {
		return nil, err
	}
	return &tutorial, nil
}

// GetTutorial returns a single tutorial by id.
func GetTutorial(c *fiber.Ctx) error {
	tutorial, err := findTutorial(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Tutorial not found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tutorial fetched successfully!", tutorial)
}

// UpdateTutorial replaces the tutorial's fields.
func UpdateTutorial(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTutorial").(*validators.TutorialRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	tutorial, err := findTutorial(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Tutorial not found", nil)
	}

	tutorial.Title = strings.TrimSpace(reqData.Title)
	tutorial.VideoURL = reqData.VideoURL
	tutorial.Description = reqData.Description

	if err := database.Database.Db.Save(tutorial).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update tutorial!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tutorial updated successfully!", tutorial)
}

// DeleteTutorial removes the tutorial.
func DeleteTutorial(c *fiber.Ctx) error {
	tutorial, err := findTutorial(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Tutorial not found", nil)
	}

	if err := database.Database.Db.Unscoped().Delete(tutorial).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete tutorial!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tutorial deleted successfully!", nil)
}
