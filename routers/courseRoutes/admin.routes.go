package courseRoutes

import (
	courseController "learnvilla/controllers/course"
	"learnvilla/middleware"
	validators "learnvilla/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up all admin management routes. Each handler
// runs the admin guard before touching the store.
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/api/admin")

	adminGroup.Get("/stats", middleware.JWTMiddleware, courseController.AdminStats)

	// Course CRUD
	adminGroup.Post("/courses", middleware.JWTMiddleware, validators.CreateCourse(), courseController.AdminCreateCourse)
	adminGroup.Put("/courses/:id", middleware.JWTMiddleware, validators.CourseID(), validators.UpdateCourse(), courseController.AdminUpdateCourse)
	adminGroup.Delete("/courses/:id", middleware.JWTMiddleware, validators.CourseID(), courseController.AdminDeleteCourse)

	// Lesson management
	adminGroup.Post("/courses/:id/lessons", middleware.JWTMiddleware, validators.CourseID(), validators.AddLesson(), courseController.AdminAddLesson)
	adminGroup.Put("/lessons/:id", middleware.JWTMiddleware, validators.LessonID(), validators.UpdateLesson(), courseController.AdminUpdateLesson)
	adminGroup.Delete("/lessons/:id", middleware.JWTMiddleware, validators.LessonID(), courseController.AdminDeleteLesson)
}
