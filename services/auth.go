package services

import (
	"errors"
	"learnvilla/config"
	"learnvilla/models"
	"learnvilla/session"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Authenticate verifies the identifier/password pair against both principal
// tables and returns the resulting session. The admin table is checked first:
// an identifier that matches an admin username wins even if a user email with
// the same string exists. Unknown account and wrong password both come back
// as ErrInvalidCredentials.
func Authenticate(db *gorm.DB, identifier, password string) (session.Session, error) {
	var admin models.AdminAccount
	if err := db.Where("username = ? AND is_deleted = ?", identifier, false).First(&admin).Error; err == nil {
		if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) == nil {
			return session.ForAdmin(admin.ID), nil
		}
		return session.Anonymous(), ErrInvalidCredentials
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return session.Anonymous(), err
	}

	var user models.User
	if err := db.Where("email = ? AND is_deleted = ?", identifier, false).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return session.Anonymous(), ErrInvalidCredentials
		}
		return session.Anonymous(), err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return session.Anonymous(), ErrInvalidCredentials
	}

	return session.ForUser(user.ID), nil
}

// Register creates a user account with a bcrypt-hashed password and returns a
// session for it. Admin accounts are never created here.
func Register(db *gorm.DB, name, email, password string) (session.Session, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return session.Anonymous(), ErrValidation
	}

	if err := db.Where("email = ?", email).First(&models.User{}).Error; err == nil {
		return session.Anonymous(), ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return session.Anonymous(), err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), config.AppConfig.SaltRound)
	if err != nil {
		return session.Anonymous(), err
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
	}
	if err := db.Create(&user).Error; err != nil {
		// Unique email constraint can still fire on a concurrent signup.
		if isUniqueViolation(err) {
			return session.Anonymous(), ErrEmailTaken
		}
		return session.Anonymous(), err
	}

	return session.ForUser(user.ID), nil
}
