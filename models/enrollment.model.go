package models

import "time"

// Enrollment grants a user access to a course's premium content. The unique
// pair index makes duplicate enrollment attempts converge on one row.
type Enrollment struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_enrollment_pair"`
	CourseID  uint      `json:"course_id" gorm:"not null;uniqueIndex:idx_enrollment_pair"`
	CreatedAt time.Time `json:"created_at"`
}
