package courseController

import (
	"learnvilla/database"
	"learnvilla/middleware"
	"learnvilla/services"

	"github.com/gofiber/fiber/v2"
)

// AdminStats returns platform totals for the admin dashboard
func AdminStats(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	stats, err := services.Stats(database.Database.Db, sess)
	if err != nil {
		return middleware.DomainErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched successfully!", stats)
}

// AdminCreateCourse creates a new course
func AdminCreateCourse(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	reqData, ok := c.Locals("validatedCourse").(*struct {
		Title       string  `json:"title"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		ListPrice   float64 `json:"list_price"`
		PosterURL   string  `json:"poster_url"`
		Category    string  `json:"category"`
		Featured    bool    `json:"featured"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := services.CreateCourse(database.Database.Db, sess, services.CourseInput{
		Title:       reqData.Title,
		Description: reqData.Description,
		Price:       reqData.Price,
		ListPrice:   reqData.ListPrice,
		PosterURL:   reqData.PosterURL,
		Category:    reqData.Category,
		Featured:    reqData.Featured,
	})
	if err != nil {
		return middleware.DomainErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// AdminUpdateCourse updates an existing course
func AdminUpdateCourse(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)
	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedCourseUpdate").(*struct {
		Title       *string  `json:"title"`
		Description *string  `json:"description"`
		Price       *float64 `json:"price"`
		ListPrice   *float64 `json:"list_price"`
		PosterURL   *string  `json:"poster_url"`
		Category    *string  `json:"category"`
		Featured    *bool    `json:"featured"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := services.UpdateCourse(database.Database.Db, sess, uint(courseID), services.CourseUpdate{
		Title:       reqData.Title,
		Description: reqData.Description,
		Price:       reqData.Price,
		ListPrice:   reqData.ListPrice,
		PosterURL:   reqData.PosterURL,
		Category:    reqData.Category,
		Featured:    reqData.Featured,
	})
	if err != nil {
		return middleware.DomainErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// AdminDeleteCourse deletes a course and all lessons it owns
func AdminDeleteCourse(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)
	courseID := c.Locals("courseID").(int)

	if err := services.DeleteCourse(database.Database.Db, sess, uint(courseID)); err != nil {
		return middleware.DomainErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}
