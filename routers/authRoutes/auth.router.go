package authRoutes

import (
	authController "learnvilla/controllers/auth"
	"learnvilla/middleware"
	validators "learnvilla/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up signup/login/logout/profile routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/api/auth")

	authGroup.Post("/signup", validators.Signup(), authController.Signup)
	authGroup.Post("/login", validators.Login(), authController.Login)
	authGroup.Get("/logout", authController.Logout)
	authGroup.Get("/me", middleware.JWTMiddleware, authController.Me)
}
