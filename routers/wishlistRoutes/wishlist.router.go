package wishlistRoutes

import (
	wishlistController "learnvilla/controllers/wishlist"
	"learnvilla/middleware"
	validators "learnvilla/validators/wishlist"

	"github.com/gofiber/fiber/v2"
)

// SetupWishlistRoutes sets up wishlist routes
func SetupWishlistRoutes(app *fiber.App) {
	wishlistGroup := app.Group("/api/wishlist")

	wishlistGroup.Get("/", middleware.JWTMiddleware, wishlistController.GetWishlist)
	wishlistGroup.Post("/toggle", middleware.JWTMiddleware, validators.Toggle(), wishlistController.ToggleWishlist)
}
