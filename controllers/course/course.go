package courseController

import (
	"learnvilla/database"
	"learnvilla/middleware"
	"learnvilla/services"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses lists the catalog with optional search filters. The listing
// carries course metadata only, never lesson content.
func GetAllCourses(c *fiber.Ctx) error {
	filter := services.CourseFilter{}

	reqData, ok := c.Locals("validatedCourseQuery").(*struct {
		Query    string `query:"q"`
		Category string `query:"category"`
	})
	if ok {
		filter.Query = reqData.Query
		filter.Category = reqData.Category
	}

	courses, err := services.ListCourses(database.Database.Db, filter)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}

// GetFeaturedCourses returns the short promotional strip for the home page.
func GetFeaturedCourses(c *fiber.Ctx) error {
	courses, err := services.ListCourses(database.Database.Db, services.CourseFilter{
		FeaturedOnly: true,
		Limit:        services.FeaturedHomeLimit,
	})
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Featured courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}

// GetCourseDetails resolves the entitlement-aware course view for the
// current viewer. Works for anonymous visitors and members alike.
func GetCourseDetails(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)
	courseID := c.Locals("courseID").(int)

	view, err := services.ResolveCourseView(database.Database.Db, sess, uint(courseID))
	if err != nil {
		return middleware.DomainErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", view)
}

// EnrollInCourse enrolls the current user. Enrolling twice is a no-op
// success, not an error.
func EnrollInCourse(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)
	courseID := c.Locals("courseID").(int)

	alreadyEnrolled, err := services.Enroll(database.Database.Db, sess, uint(courseID))
	if err != nil {
		return middleware.DomainErrorResponse(c, err)
	}

	message := "Enrolled in course successfully!"
	status := fiber.StatusCreated
	if alreadyEnrolled {
		message = "Already enrolled in this course."
		status = fiber.StatusOK
	}

	return middleware.JsonResponse(c, status, true, message, fiber.Map{
		"course_id":        uint(courseID),
		"already_enrolled": alreadyEnrolled,
	})
}

// GetMyCourses returns the courses the current user is enrolled in.
func GetMyCourses(c *fiber.Ctx) error {
	sess := middleware.SessionFromCtx(c)

	courses, err := services.ListEnrolledCourses(database.Database.Db, sess)
	if err != nil {
		return middleware.DomainErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled courses fetched successfully!", fiber.Map{
		"courses": courses,
	})
}
