package models

import "gorm.io/gorm"

// Lesson content types
const (
	ContentTypeVideo = "video"
	ContentTypePDF   = "pdf"
)

// Lesson belongs to exactly one course; its lifetime is bounded by the
// course's lifetime (deleting a course deletes its lessons).
type Lesson struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Title       string `json:"title" gorm:"not null"`
	ContentType string `json:"content_type" gorm:"default:'video'"` // video, pdf
	ContentURL  string `json:"-" gorm:"not null"`
	IsPremium   bool   `json:"is_premium" gorm:"default:true"`
	IsDeleted   bool   `json:"-" gorm:"default:false"`
}
