package authController

import (
	"learnvilla/database"
	"learnvilla/middleware"
	"learnvilla/models"
	"learnvilla/services"
	"learnvilla/utils"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Signup creates a user account. Admin accounts are never created here.
func Signup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSignup").(*struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	sess, err := services.Register(db, reqData.Name, reqData.Email, reqData.Password)
	if err != nil {
		return middleware.DomainErrorResponse(c, err)
	}

	utils.SendWelcomeEmail(reqData.Email, reqData.Name)

	token, err := middleware.GenerateJWT(sess)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", fiber.Map{
		"session": sess,
		"token":   token,
	})
}

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*struct {
		Identifier string `json:"identifier"`
		Password   string `json:"password"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	sess, err := services.Authenticate(db, reqData.Identifier, reqData.Password)
	if err != nil {
		return middleware.DomainErrorResponse(c, err)
	}

	if sess.IsUser() {
		if err := db.Model(&models.User{}).Where("id = ?", sess.SubjectID).
			Update("last_login", time.Now()).Error; err != nil {
			log.Printf("Error saving last login time: %v", err)
		}
	}

	ip := c.IP()
	if forwarded := c.Get("X-Forwarded-For"); forwarded != "" {
		ip = forwarded
	}

	loginTracking := models.LoginTracking{
		UserID:    sess.SubjectID,
		Role:      sess.Role,
		IPAddress: ip,
		Device:    c.Get("User-Agent"),
		Timestamp: time.Now(),
	}
	if err := db.Create(&loginTracking).Error; err != nil {
		log.Printf("Error saving login tracking details: %v", err)
	}

	token, err := middleware.GenerateJWT(sess)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"session": sess,
		"token":   token,
	})
}

// Logout exists for API symmetry: sessions are stateless tokens, so the
// client simply discards its copy.
func Logout(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out.", nil)
}

// Me returns the profile behind the current session.
func Me(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)
	db := database.Database.Db

	if sess.IsAdmin() {
		var admin models.AdminAccount
		if err := db.Where("id = ? AND is_deleted = ?", sess.SubjectID, false).First(&admin).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Account not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", fiber.Map{
			"session": sess,
			"admin":   admin,
		})
	}

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", sess.SubjectID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Account not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", fiber.Map{
		"session": sess,
		"user":    user,
	})
}
