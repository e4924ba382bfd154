package services

import (
	"learnvilla/models"
	"strings"

	"gorm.io/gorm"
)

// FeaturedHomeLimit bounds the featured strip on the landing page.
const FeaturedHomeLimit = 4

// CourseFilter narrows a catalog listing. Zero values mean "no restriction".
type CourseFilter struct {
	Query        string // case-insensitive substring match on title
	Category     string // exact match
	FeaturedOnly bool
	Limit        int
}

// ListCourses returns course metadata matching the filter, newest first
// (descending id; ids are monotonically assigned). No entitlement filtering
// happens here — the catalog never carries lesson content urls.
func ListCourses(db *gorm.DB, filter CourseFilter) ([]models.Course, error) {
	q := db.Model(&models.Course{}).Where("is_deleted = ?", false)

	if query := strings.TrimSpace(filter.Query); query != "" {
		q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(query)+"%")
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.FeaturedOnly {
		q = q.Where("featured = ?", true)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var courses []models.Course
	if err := q.Order("id desc").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}
