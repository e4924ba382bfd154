package wishlistController

import (
	"errors"
	"learnvilla/database"
	"learnvilla/middleware"
	"learnvilla/services"

	"github.com/gofiber/fiber/v2"
)

// ToggleWishlist flips wishlist membership for the current user and reports
// the new state.
func ToggleWishlist(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	reqData, ok := c.Locals("validatedToggle").(*struct {
		CourseID uint `json:"course_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	added, err := services.ToggleWishlist(database.Database.Db, sess, reqData.CourseID)
	if err != nil {
		// A lost insert race means the entry already exists, which is the
		// state the caller asked for.
		if errors.Is(err, services.ErrDuplicateMembership) {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "Already in Wishlist", fiber.Map{
				"added": true,
			})
		}
		return middleware.DomainErrorResponse(c, err)
	}

	message := "Removed from Wishlist"
	if added {
		message = "Added to Wishlist"
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, message, fiber.Map{
		"added": added,
	})
}

// GetWishlist returns the courses the current user has bookmarked.
func GetWishlist(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	courses, err := services.ListWishlist(database.Database.Db, sess)
	if err != nil {
		return middleware.DomainErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Wishlist fetched successfully!", fiber.Map{
		"courses": courses,
	})
}
