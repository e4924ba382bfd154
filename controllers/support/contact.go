package supportController

import (
	"learnvilla/middleware"
	"learnvilla/utils"
	"log"

	"github.com/gofiber/fiber/v2"
)

// ContactForm relays a contact form submission to the configured recipient.
func ContactForm(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedContact").(*struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := utils.SendContactEmail(reqData.Name, reqData.Email, reqData.Message); err != nil {
		log.Printf("Error sending contact email: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to send message!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Message sent successfully!", nil)
}
