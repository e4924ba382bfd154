package courseController

import (
	"learnvilla/database"
	"learnvilla/middleware"
	"learnvilla/services"

	"github.com/gofiber/fiber/v2"
)

// AdminAddLesson attaches a lesson to a course
func AdminAddLesson(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)
	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedLesson").(*struct {
		Title       string `json:"title"`
		ContentType string `json:"content_type"`
		ContentURL  string `json:"content_url"`
		IsPremium   *bool  `json:"is_premium"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Lessons default to premium; only an explicit false opens the content.
	isPremium := true
	if reqData.IsPremium != nil {
		isPremium = *reqData.IsPremium
	}

	lesson, err := services.AddLesson(database.Database.Db, sess, uint(courseID), services.LessonInput{
		Title:       reqData.Title,
		ContentType: reqData.ContentType,
		ContentURL:  reqData.ContentURL,
		IsPremium:   isPremium,
	})
	if err != nil {
		return middleware.DomainErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson added successfully!", lesson)
}

// AdminUpdateLesson updates an existing lesson
func AdminUpdateLesson(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)
	lessonID := c.Locals("lessonID").(int)

	reqData, ok := c.Locals("validatedLessonUpdate").(*struct {
		Title       *string `json:"title"`
		ContentType *string `json:"content_type"`
		ContentURL  *string `json:"content_url"`
		IsPremium   *bool   `json:"is_premium"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	lesson, err := services.UpdateLesson(database.Database.Db, sess, uint(lessonID), services.LessonUpdate{
		Title:       reqData.Title,
		ContentType: reqData.ContentType,
		ContentURL:  reqData.ContentURL,
		IsPremium:   reqData.IsPremium,
	})
	if err != nil {
		return middleware.DomainErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully!", lesson)
}

// AdminDeleteLesson deletes a single lesson
func AdminDeleteLesson(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)
	lessonID := c.Locals("lessonID").(int)

	if err := services.DeleteLesson(database.Database.Db, sess, uint(lessonID)); err != nil {
		return middleware.DomainErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully!", nil)
}
