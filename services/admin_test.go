package services_test

import (
	"learnvilla/models"
	"learnvilla/services"
	"learnvilla/session"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequireAdmin(t *testing.T) {
	assert.NoError(t, services.RequireAdmin(session.ForAdmin(1)))

	// Anonymous means "log in"; a user session means "not allowed". The two
	// are distinct error kinds.
	assert.ErrorIs(t, services.RequireAdmin(session.Anonymous()), services.ErrUnauthenticated)
	assert.ErrorIs(t, services.RequireAdmin(session.ForUser(1)), services.ErrForbidden)
}

func TestAdminOperationsAreGuarded(t *testing.T) {
	db := newTestDB(t)
	course := createCourse(t, db, models.Course{Title: "Guarded"})
	input := services.CourseInput{Title: "New Course", Description: "desc"}

	for _, sess := range []session.Session{session.Anonymous(), session.ForUser(1)} {
		wantErr := services.ErrUnauthenticated
		if sess.IsUser() {
			wantErr = services.ErrForbidden
		}

		_, err := services.CreateCourse(db, sess, input)
		assert.ErrorIs(t, err, wantErr)

		_, err = services.UpdateCourse(db, sess, course.ID, services.CourseUpdate{})
		assert.ErrorIs(t, err, wantErr)

		assert.ErrorIs(t, services.DeleteCourse(db, sess, course.ID), wantErr)

		_, err = services.AddLesson(db, sess, course.ID, services.LessonInput{})
		assert.ErrorIs(t, err, wantErr)

		_, err = services.UpdateLesson(db, sess, 1, services.LessonUpdate{})
		assert.ErrorIs(t, err, wantErr)

		assert.ErrorIs(t, services.DeleteLesson(db, sess, 1), wantErr)

		_, err = services.Stats(db, sess)
		assert.ErrorIs(t, err, wantErr)
	}
}

func TestCreateAndUpdateCourse(t *testing.T) {
	db := newTestDB(t)
	admin := createAdmin(t, db, "root", "admin-secret-1")
	sess := session.ForAdmin(admin.ID)

	course, err := services.CreateCourse(db, sess, services.CourseInput{
		Title:       "Go Basics",
		Description: "An introduction",
		Price:       499,
		ListPrice:   999,
		Category:    "programming",
	})
	assert.NoError(t, err)
	assert.NotZero(t, course.ID)

	newTitle := "Go Fundamentals"
	featured := true
	updated, err := services.UpdateCourse(db, sess, course.ID, services.CourseUpdate{
		Title:    &newTitle,
		Featured: &featured,
	})
	assert.NoError(t, err)
	assert.Equal(t, "Go Fundamentals", updated.Title)
	assert.True(t, updated.Featured)
	// Untouched fields keep their values.
	assert.Equal(t, "An introduction", updated.Description)
	assert.Equal(t, float64(499), updated.Price)
}

func TestCreateCourseRequiresTitle(t *testing.T) {
	db := newTestDB(t)
	admin := createAdmin(t, db, "root", "admin-secret-1")

	_, err := services.CreateCourse(db, session.ForAdmin(admin.ID), services.CourseInput{Title: "   "})
	assert.ErrorIs(t, err, services.ErrValidation)
}

// Deleting a course removes every lesson it owns.
func TestDeleteCourseCascadesLessons(t *testing.T) {
	db := newTestDB(t)
	admin := createAdmin(t, db, "root", "admin-secret-1")
	sess := session.ForAdmin(admin.ID)

	course, _, _ := seedCourseWithLessons(t, db)
	otherCourse := createCourse(t, db, models.Course{Title: "Untouched"})
	otherLesson := createLesson(t, db, models.Lesson{
		CourseID:    otherCourse.ID,
		Title:       "Still Here",
		ContentType: models.ContentTypeVideo,
		ContentURL:  "https://cdn.example.com/videos/still-here.mp4",
	})

	assert.NoError(t, services.DeleteCourse(db, sess, course.ID))

	_, err := services.ResolveCourseView(db, session.Anonymous(), course.ID)
	assert.ErrorIs(t, err, services.ErrCourseNotFound)

	var liveLessons int64
	db.Model(&models.Lesson{}).
		Where("course_id = ? AND is_deleted = ?", course.ID, false).
		Count(&liveLessons)
	assert.Zero(t, liveLessons)

	// The other course's lesson is untouched.
	var lesson models.Lesson
	assert.NoError(t, db.Where("id = ? AND is_deleted = ?", otherLesson.ID, false).First(&lesson).Error)
}

func TestLessonLifecycle(t *testing.T) {
	db := newTestDB(t)
	admin := createAdmin(t, db, "root", "admin-secret-1")
	sess := session.ForAdmin(admin.ID)
	course := createCourse(t, db, models.Course{Title: "Go Basics"})

	lesson, err := services.AddLesson(db, sess, course.ID, services.LessonInput{
		Title:       "Slices",
		ContentType: models.ContentTypeVideo,
		ContentURL:  "https://cdn.example.com/videos/slices.mp4",
		IsPremium:   true,
	})
	assert.NoError(t, err)
	assert.Equal(t, course.ID, lesson.CourseID)

	free := false
	newType := models.ContentTypePDF
	updated, err := services.UpdateLesson(db, sess, lesson.ID, services.LessonUpdate{
		ContentType: &newType,
		IsPremium:   &free,
	})
	assert.NoError(t, err)
	assert.Equal(t, models.ContentTypePDF, updated.ContentType)
	assert.False(t, updated.IsPremium)

	assert.NoError(t, services.DeleteLesson(db, sess, lesson.ID))
	_, err = services.UpdateLesson(db, sess, lesson.ID, services.LessonUpdate{})
	assert.ErrorIs(t, err, services.ErrLessonNotFound)
}

func TestAddLessonValidation(t *testing.T) {
	db := newTestDB(t)
	admin := createAdmin(t, db, "root", "admin-secret-1")
	sess := session.ForAdmin(admin.ID)
	course := createCourse(t, db, models.Course{Title: "Go Basics"})

	_, err := services.AddLesson(db, sess, course.ID, services.LessonInput{
		Title:       "Bad Type",
		ContentType: "audio",
		ContentURL:  "https://cdn.example.com/audio/x.mp3",
	})
	assert.ErrorIs(t, err, services.ErrValidation)

	_, err = services.AddLesson(db, sess, 9999, services.LessonInput{
		Title:       "Orphan",
		ContentType: models.ContentTypeVideo,
		ContentURL:  "https://cdn.example.com/videos/orphan.mp4",
	})
	assert.ErrorIs(t, err, services.ErrCourseNotFound)
}

func TestStats(t *testing.T) {
	db := newTestDB(t)
	admin := createAdmin(t, db, "root", "admin-secret-1")
	sess := session.ForAdmin(admin.ID)

	user := createUser(t, db, "Asha", "asha@example.com", "correct-horse-1")
	createUser(t, db, "Bob", "bob@example.com", "correct-horse-2")
	course := createCourse(t, db, models.Course{Title: "Go Basics"})
	_, err := services.Enroll(db, session.ForUser(user.ID), course.ID)
	assert.NoError(t, err)

	stats, err := services.Stats(db, sess)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.TotalCourses)
	assert.Equal(t, int64(1), stats.TotalEnrollments)
}
