package courseRoutes

import (
	courseController "learnvilla/controllers/course"
	"learnvilla/middleware"
	validators "learnvilla/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all user-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/api/courses")

	// Catalog listing and detail. /featured must register before /:id.
	courseGroup.Get("/featured", courseController.GetFeaturedCourses)
	courseGroup.Get("/", validators.CourseList(), courseController.GetAllCourses)
	courseGroup.Get("/:id", middleware.OptionalJWTMiddleware, validators.CourseID(), courseController.GetCourseDetails)

	// Enrollment
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.CourseID(), courseController.EnrollInCourse)

	// User dashboard
	userGroup := app.Group("/api/user")
	userGroup.Get("/dashboard", middleware.JWTMiddleware, courseController.GetMyCourses)
}
