package services

import (
	"errors"
	"learnvilla/models"
	"learnvilla/session"

	"gorm.io/gorm"
)

// ToggleWishlist flips wishlist membership for (session user, course) and
// reports whether the entry was added. Two toggles in a row return the
// membership to its starting state. A concurrent duplicate insert is stopped
// by the unique pair index and reported as added=true on exactly one caller;
// the loser converges on the existing row.
func ToggleWishlist(db *gorm.DB, sess session.Session, courseID uint) (added bool, err error) {
	if !sess.IsUser() {
		return false, ErrUnauthenticated
	}

	var existing models.WishlistEntry
	err = db.Where("user_id = ? AND course_id = ?", sess.SubjectID, courseID).First(&existing).Error
	if err == nil {
		if err := db.Delete(&existing).Error; err != nil {
			return false, err
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	entry := models.WishlistEntry{UserID: sess.SubjectID, CourseID: courseID}
	if err := db.Create(&entry).Error; err != nil {
		if isUniqueViolation(err) {
			return false, ErrDuplicateMembership
		}
		return false, err
	}
	return true, nil
}

// ListWishlist returns the courses the session user has bookmarked, newest
// bookmark first.
func ListWishlist(db *gorm.DB, sess session.Session) ([]models.Course, error) {
	if !sess.IsUser() {
		return nil, ErrUnauthenticated
	}

	var courses []models.Course
	err := db.
		Joins("JOIN wishlist_entries ON wishlist_entries.course_id = courses.id").
		Where("wishlist_entries.user_id = ? AND courses.is_deleted = ?", sess.SubjectID, false).
		Order("wishlist_entries.id desc").
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}
