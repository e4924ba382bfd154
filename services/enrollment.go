package services

import (
	"errors"
	"learnvilla/models"
	"learnvilla/session"

	"gorm.io/gorm"
)

// Enroll grants the session user access to a course's premium content.
// Enrolling twice is an idempotent success: a pre-existing row, or losing a
// concurrent-insert race to the unique pair index, both leave exactly one
// enrollment and report alreadyEnrolled=true. Payment checks would happen
// before this call; none are implemented.
func Enroll(db *gorm.DB, sess session.Session, courseID uint) (alreadyEnrolled bool, err error) {
	if !sess.IsUser() {
		return false, ErrUnauthenticated
	}

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrCourseNotFound
		}
		return false, err
	}

	var existing models.Enrollment
	err = db.Where("user_id = ? AND course_id = ?", sess.SubjectID, courseID).First(&existing).Error
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	enrollment := models.Enrollment{UserID: sess.SubjectID, CourseID: courseID}
	if err := db.Create(&enrollment).Error; err != nil {
		if isUniqueViolation(err) {
			return true, nil
		}
		return false, err
	}
	return false, nil
}

// ListEnrolledCourses returns the courses the session user is enrolled in,
// most recent enrollment first.
func ListEnrolledCourses(db *gorm.DB, sess session.Session) ([]models.Course, error) {
	if !sess.IsUser() {
		return nil, ErrUnauthenticated
	}

	var courses []models.Course
	err := db.
		Joins("JOIN enrollments ON enrollments.course_id = courses.id").
		Where("enrollments.user_id = ? AND courses.is_deleted = ?", sess.SubjectID, false).
		Order("enrollments.id desc").
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}
