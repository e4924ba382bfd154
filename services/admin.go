package services

import (
	"errors"
	"learnvilla/models"
	"learnvilla/session"
	"strings"

	"gorm.io/gorm"
)

// CourseInput carries the admin-editable course fields.
type CourseInput struct {
	Title       string
	Description string
	Price       float64
	ListPrice   float64
	PosterURL   string
	Category    string
	Featured    bool
}

// CourseUpdate holds a partial course edit; nil fields are left untouched.
type CourseUpdate struct {
	Title       *string
	Description *string
	Price       *float64
	ListPrice   *float64
	PosterURL   *string
	Category    *string
	Featured    *bool
}

// LessonInput carries the admin-editable lesson fields.
type LessonInput struct {
	Title       string
	ContentType string
	ContentURL  string
	IsPremium   bool
}

// LessonUpdate holds a partial lesson edit; nil fields are left untouched.
type LessonUpdate struct {
	Title       *string
	ContentType *string
	ContentURL  *string
	IsPremium   *bool
}

// AdminStats is the admin dashboard summary.
type AdminStats struct {
	TotalUsers       int64 `json:"total_users"`
	TotalCourses     int64 `json:"total_courses"`
	TotalEnrollments int64 `json:"total_enrollments"`
}

// CreateCourse creates a course. Admin sessions only.
func CreateCourse(db *gorm.DB, sess session.Session, input CourseInput) (*models.Course, error) {
	if err := RequireAdmin(sess); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrValidation
	}

	course := models.Course{
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		ListPrice:   input.ListPrice,
		PosterURL:   input.PosterURL,
		Category:    input.Category,
		Featured:    input.Featured,
	}
	if err := db.Create(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

// UpdateCourse applies a partial edit to an existing course.
func UpdateCourse(db *gorm.DB, sess session.Session, courseID uint, update CourseUpdate) (*models.Course, error) {
	if err := RequireAdmin(sess); err != nil {
		return nil, err
	}

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	if update.Title != nil {
		if strings.TrimSpace(*update.Title) == "" {
			return nil, ErrValidation
		}
		course.Title = *update.Title
	}
	if update.Description != nil {
		course.Description = *update.Description
	}
	if update.Price != nil {
		course.Price = *update.Price
	}
	if update.ListPrice != nil {
		course.ListPrice = *update.ListPrice
	}
	if update.PosterURL != nil {
		course.PosterURL = *update.PosterURL
	}
	if update.Category != nil {
		course.Category = *update.Category
	}
	if update.Featured != nil {
		course.Featured = *update.Featured
	}

	if err := db.Save(&course).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

// DeleteCourse removes a course and every lesson it owns. The cascade is an
// explicit two-step transaction: lessons first, then the course row.
func DeleteCourse(db *gorm.DB, sess session.Session, courseID uint) error {
	if err := RequireAdmin(sess); err != nil {
		return err
	}

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourseNotFound
		}
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Lesson{}).
			Where("course_id = ?", courseID).
			Update("is_deleted", true).Error; err != nil {
			return err
		}
		course.IsDeleted = true
		return tx.Save(&course).Error
	})
}

// AddLesson attaches a lesson to an existing course.
func AddLesson(db *gorm.DB, sess session.Session, courseID uint, input LessonInput) (*models.Lesson, error) {
	if err := RequireAdmin(sess); err != nil {
		return nil, err
	}

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	if strings.TrimSpace(input.Title) == "" || strings.TrimSpace(input.ContentURL) == "" {
		return nil, ErrValidation
	}
	if input.ContentType != models.ContentTypeVideo && input.ContentType != models.ContentTypePDF {
		return nil, ErrValidation
	}

	lesson := models.Lesson{
		CourseID:    courseID,
		Title:       input.Title,
		ContentType: input.ContentType,
		ContentURL:  input.ContentURL,
		IsPremium:   input.IsPremium,
	}
	if err := db.Create(&lesson).Error; err != nil {
		return nil, err
	}
	return &lesson, nil
}

// UpdateLesson applies a partial edit to an existing lesson.
func UpdateLesson(db *gorm.DB, sess session.Session, lessonID uint, update LessonUpdate) (*models.Lesson, error) {
	if err := RequireAdmin(sess); err != nil {
		return nil, err
	}

	var lesson models.Lesson
	if err := db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLessonNotFound
		}
		return nil, err
	}

	if update.Title != nil {
		if strings.TrimSpace(*update.Title) == "" {
			return nil, ErrValidation
		}
		lesson.Title = *update.Title
	}
	if update.ContentType != nil {
		if *update.ContentType != models.ContentTypeVideo && *update.ContentType != models.ContentTypePDF {
			return nil, ErrValidation
		}
		lesson.ContentType = *update.ContentType
	}
	if update.ContentURL != nil {
		if strings.TrimSpace(*update.ContentURL) == "" {
			return nil, ErrValidation
		}
		lesson.ContentURL = *update.ContentURL
	}
	if update.IsPremium != nil {
		lesson.IsPremium = *update.IsPremium
	}

	if err := db.Save(&lesson).Error; err != nil {
		return nil, err
	}
	return &lesson, nil
}

// DeleteLesson removes a single lesson.
func DeleteLesson(db *gorm.DB, sess session.Session, lessonID uint) error {
	if err := RequireAdmin(sess); err != nil {
		return err
	}

	var lesson models.Lesson
	if err := db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLessonNotFound
		}
		return err
	}

	lesson.IsDeleted = true
	return db.Save(&lesson).Error
}

// Stats returns platform totals for the admin dashboard.
func Stats(db *gorm.DB, sess session.Session) (*AdminStats, error) {
	if err := RequireAdmin(sess); err != nil {
		return nil, err
	}

	var stats AdminStats
	if err := db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Course{}).Where("is_deleted = ?", false).Count(&stats.TotalCourses).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Enrollment{}).Count(&stats.TotalEnrollments).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}
