package middleware

import (
	"errors"
	"log"

	"scholarnest/store"

	"github.com/gofiber/fiber/v2"
)

// JsonResponse writes the standard response envelope.
func JsonResponse(c *fiber.Ctx, statusCode int, success bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"success": success,
		"message": message,
		"data":    data,
	})
}

// ValidationErrorResponse reports a field→message map from a validator.
func ValidationErrorResponse(c *fiber.Ctx, fields map[string]string) error {
	return JsonResponse(c, fiber.StatusBadRequest, false, "Validation failed!", fields)
}

// StoreErrorResponse maps a store error to its transport status code. This is
// the only place domain error kinds meet HTTP; handlers hand errors straight
// through.
func StoreErrorResponse(c *fiber.Ctx, err error) error {
	var notFound *store.NotFoundError
	if errors.As(err, &notFound) {
		return JsonResponse(c, fiber.StatusNotFound, false, notFound.Error(), nil)
	}

	var conflict *store.ConflictError
	if errors.As(err, &conflict) {
		return JsonResponse(c, fiber.StatusConflict, false, conflict.Error(), nil)
	}

	var invalid *store.ValidationError
	if errors.As(err, &invalid) {
		return JsonResponse(c, fiber.StatusBadRequest, false, "Validation failed!", invalid.Fields)
	}

	var denied *store.AccessDeniedError
	if errors.As(err, &denied) {
		return JsonResponse(c, fiber.StatusForbidden, false, denied.Error(), nil)
	}

	// Unexpected store failure: log the detail, return a generic message.
	log.Printf("store error: %v", err)
	return JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
}
