package services

import (
	"errors"
	"learnvilla/models"
	"learnvilla/session"

	"gorm.io/gorm"
)

// LessonView is the viewer-facing projection of a lesson. ContentURL is nil
// unless the viewer is entitled to the lesson's content.
type LessonView struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	ContentType string  `json:"content_type"`
	IsPremium   bool    `json:"is_premium"`
	ContentURL  *string `json:"content_url"`
}

// CourseView is the course detail page projection for one viewer.
type CourseView struct {
	ID          uint         `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Price       float64      `json:"price"`
	ListPrice   float64      `json:"list_price"`
	PosterURL   string       `json:"poster_url"`
	Category    string       `json:"category"`
	Featured    bool         `json:"featured"`
	IsEnrolled  bool         `json:"is_enrolled"`
	Lessons     []LessonView `json:"lessons"`
}

// ResolveCourseView projects a course and its lessons into what the given
// viewer may see. A lesson's content url is included iff the viewer is
// enrolled or the lesson is not premium; no other code path hands out the
// url. Entitlement is orthogonal to administrative privilege: an admin
// session browsing the public page is an ordinary non-enrolled viewer. Pure
// read, never mutates state.
func ResolveCourseView(db *gorm.DB, sess session.Session, courseID uint) (*CourseView, error) {
	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}

	isEnrolled := false
	if sess.IsUser() {
		var count int64
		if err := db.Model(&models.Enrollment{}).
			Where("user_id = ? AND course_id = ?", sess.SubjectID, courseID).
			Count(&count).Error; err != nil {
			return nil, err
		}
		isEnrolled = count > 0
	}

	var lessons []models.Lesson
	if err := db.Where("course_id = ? AND is_deleted = ?", courseID, false).
		Order("id asc").Find(&lessons).Error; err != nil {
		return nil, err
	}

	view := &CourseView{
		ID:          course.ID,
		Title:       course.Title,
		Description: course.Description,
		Price:       course.Price,
		ListPrice:   course.ListPrice,
		PosterURL:   course.PosterURL,
		Category:    course.Category,
		Featured:    course.Featured,
		IsEnrolled:  isEnrolled,
		Lessons:     make([]LessonView, 0, len(lessons)),
	}

	for _, lesson := range lessons {
		lv := LessonView{
			ID:          lesson.ID,
			Title:       lesson.Title,
			ContentType: lesson.ContentType,
			IsPremium:   lesson.IsPremium,
		}
		if isEnrolled || !lesson.IsPremium {
			url := lesson.ContentURL
			lv.ContentURL = &url
		}
		view.Lessons = append(view.Lessons, lv)
	}

	return view, nil
}
