package services_test

import (
	"fmt"
	"learnvilla/config"
	"learnvilla/models"
	"sync/atomic"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	config.AppConfig = &config.Config{
		JWTKey:             "testsecret",
		SaltRound:          bcrypt.MinCost,
		LoginRetentionDays: 90,
	}
}

var dbSeq atomic.Int64

// newTestDB opens a fresh in-memory database with the full schema. Each call
// gets its own named shared-cache database so the connection pool sees one
// store while tests stay isolated from each other.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:svc%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.AdminAccount{},
		&models.Course{},
		&models.Lesson{},
		&models.Enrollment{},
		&models.WishlistEntry{},
		&models.LoginTracking{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	return string(hashed)
}

func createUser(t *testing.T, db *gorm.DB, name, email, password string) models.User {
	t.Helper()
	user := models.User{Name: name, Email: email, Password: hashPassword(t, password)}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func createAdmin(t *testing.T, db *gorm.DB, username, password string) models.AdminAccount {
	t.Helper()
	admin := models.AdminAccount{Username: username, Password: hashPassword(t, password)}
	if err := db.Create(&admin).Error; err != nil {
		t.Fatalf("failed to create admin: %v", err)
	}
	return admin
}

func createCourse(t *testing.T, db *gorm.DB, course models.Course) models.Course {
	t.Helper()
	if err := db.Create(&course).Error; err != nil {
		t.Fatalf("failed to create course: %v", err)
	}
	return course
}

func createLesson(t *testing.T, db *gorm.DB, lesson models.Lesson) models.Lesson {
	t.Helper()
	if err := db.Create(&lesson).Error; err != nil {
		t.Fatalf("failed to create lesson: %v", err)
	}
	return lesson
}
