package supportRoutes

import (
	supportController "learnvilla/controllers/support"
	validators "learnvilla/validators/support"

	"github.com/gofiber/fiber/v2"
)

// SetupSupportRoutes sets up the contact form route
func SetupSupportRoutes(app *fiber.App) {
	app.Post("/api/contact", validators.Contact(), supportController.ContactForm)
}
