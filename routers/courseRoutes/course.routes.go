package courseRoutes

import (
	controllers "lumina/controllers/course"
	"lumina/middleware"
	"lumina/models"
	validators "lumina/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up catalog, enrollment and progress routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Catalog
	courseGroup.Get("/list", middleware.JWTMiddleware, controllers.GetAllCourses)
	courseGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin, models.RoleInstructor), validators.CreateCourse(), controllers.CreateCourse)
	courseGroup.Get("/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseDetails)
	courseGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.CourseID(), validators.UpdateCourse(), controllers.UpdateCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin), validators.CourseID(), controllers.DeleteCourse)
	courseGroup.Get("/:id/videos", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseVideos)

	// Enrollment
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.CourseID(), controllers.EnrollInCourse)

	// Watch progress
	videoGroup := app.Group("/video")
	videoGroup.Post("/:id/progress", middleware.JWTMiddleware, validators.SaveProgress(), controllers.SaveVideoProgress)
	videoGroup.Get("/:id/progress", middleware.JWTMiddleware, validators.VideoID(), controllers.GetVideoProgress)

	userGroup := app.Group("/user")
	userGroup.Get("/enrollments", middleware.JWTMiddleware, controllers.GetEnrollments)
	userGroup.Get("/progress", middleware.JWTMiddleware, controllers.GetUserProgress)
}
