package models

import "time"

// WishlistEntry bookmarks a course for a user. Existence is the only state;
// the unique pair index is the backstop for concurrent toggles. Rows are
// hard-deleted on toggle-off so the index never collides with tombstones.
type WishlistEntry struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_wishlist_pair"`
	CourseID  uint      `json:"course_id" gorm:"not null;uniqueIndex:idx_wishlist_pair"`
	CreatedAt time.Time `json:"created_at"`
}
