package services_test

import (
	"learnvilla/models"
	"learnvilla/services"
	"learnvilla/session"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Toggling twice returns membership to its starting state, reporting
// added=true then added=false.
func TestToggleWishlistIsInvolution(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "Asha", "asha@example.com", "correct-horse-1")
	course := createCourse(t, db, models.Course{Title: "Go Basics"})
	sess := session.ForUser(user.ID)

	added, err := services.ToggleWishlist(db, sess, course.ID)
	assert.NoError(t, err)
	assert.True(t, added)

	added, err = services.ToggleWishlist(db, sess, course.ID)
	assert.NoError(t, err)
	assert.False(t, added)

	var count int64
	db.Model(&models.WishlistEntry{}).
		Where("user_id = ? AND course_id = ?", user.ID, course.ID).
		Count(&count)
	assert.Zero(t, count)
}

func TestToggleWishlistNeverDuplicates(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "Asha", "asha@example.com", "correct-horse-1")
	course := createCourse(t, db, models.Course{Title: "Go Basics"})
	sess := session.ForUser(user.ID)

	for i := 0; i < 5; i++ {
		_, err := services.ToggleWishlist(db, sess, course.ID)
		assert.NoError(t, err)
	}

	// Five toggles: present, absent, present, absent, present.
	var count int64
	db.Model(&models.WishlistEntry{}).
		Where("user_id = ? AND course_id = ?", user.ID, course.ID).
		Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestToggleWishlistRequiresUserSession(t *testing.T) {
	db := newTestDB(t)
	course := createCourse(t, db, models.Course{Title: "Go Basics"})

	_, err := services.ToggleWishlist(db, session.Anonymous(), course.ID)
	assert.ErrorIs(t, err, services.ErrUnauthenticated)
}

func TestToggleWishlistIsPerUser(t *testing.T) {
	db := newTestDB(t)
	alice := createUser(t, db, "Alice", "alice@example.com", "correct-horse-1")
	bob := createUser(t, db, "Bob", "bob@example.com", "correct-horse-2")
	course := createCourse(t, db, models.Course{Title: "Go Basics"})

	added, err := services.ToggleWishlist(db, session.ForUser(alice.ID), course.ID)
	assert.NoError(t, err)
	assert.True(t, added)

	// Bob's toggle is independent of Alice's entry.
	added, err = services.ToggleWishlist(db, session.ForUser(bob.ID), course.ID)
	assert.NoError(t, err)
	assert.True(t, added)
}

func TestListWishlist(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "Asha", "asha@example.com", "correct-horse-1")
	first := createCourse(t, db, models.Course{Title: "First"})
	second := createCourse(t, db, models.Course{Title: "Second"})
	sess := session.ForUser(user.ID)

	_, err := services.ToggleWishlist(db, sess, first.ID)
	assert.NoError(t, err)
	_, err = services.ToggleWishlist(db, sess, second.ID)
	assert.NoError(t, err)

	courses, err := services.ListWishlist(db, sess)
	assert.NoError(t, err)
	if assert.Len(t, courses, 2) {
		// Newest bookmark first.
		assert.Equal(t, second.ID, courses[0].ID)
		assert.Equal(t, first.ID, courses[1].ID)
	}

	// Removing an entry removes it from the listing.
	_, err = services.ToggleWishlist(db, sess, first.ID)
	assert.NoError(t, err)
	courses, err = services.ListWishlist(db, sess)
	assert.NoError(t, err)
	if assert.Len(t, courses, 1) {
		assert.Equal(t, second.ID, courses[0].ID)
	}
}
