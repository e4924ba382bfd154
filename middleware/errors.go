package middleware

import (
	"errors"
	"learnvilla/services"
	"log"

	"github.com/gofiber/fiber/v2"
)

// DomainErrorResponse translates a service-layer error into the JSON
// envelope. Unauthenticated and forbidden map to distinct statuses: the
// first means "log in", the second "logged in but not allowed".
func DomainErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	case errors.Is(err, services.ErrUnauthenticated):
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Login required!", nil)
	case errors.Is(err, services.ErrForbidden):
		return JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	case errors.Is(err, services.ErrEmailTaken):
		return JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	case errors.Is(err, services.ErrValidation):
		return JsonResponse(c, fiber.StatusBadRequest, false, "All fields are required!", nil)
	case errors.Is(err, services.ErrCourseNotFound):
		return JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	case errors.Is(err, services.ErrLessonNotFound):
		return JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	default:
		log.Printf("Unexpected error: %v", err)
		return JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}
}
