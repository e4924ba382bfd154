package database

import (
	"learnvilla/config"
	"learnvilla/models"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAdminAccount creates the bootstrap admin when the admin table is empty.
// Credentials come from ADMIN_USERNAME / ADMIN_PASSWORD; nothing is seeded
// when they are unset.
func SeedAdminAccount(db *gorm.DB) {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		return
	}

	var count int64
	if err := db.Model(&models.AdminAccount{}).Count(&count).Error; err != nil {
		log.Printf("Error checking admin accounts: %v", err)
		return
	}
	if count > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing admin password: %v", err)
		return
	}

	admin := models.AdminAccount{Username: username, Password: string(hashed)}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Error seeding admin account: %v", err)
		return
	}
	log.Printf("Seeded admin account %q", username)
}
