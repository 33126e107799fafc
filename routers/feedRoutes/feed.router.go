package feedRoutes

import (
	feedController "lumina/controllers/feed"
	"lumina/middleware"
	"lumina/models"
	courseValidator "lumina/validators/course"
	feedValidator "lumina/validators/feed"

	"github.com/gofiber/fiber/v2"
)

// SetupFeedRoutes sets up notification, chat, schedule and quiz routes
func SetupFeedRoutes(app *fiber.App) {
	app.Get("/notifications", middleware.JWTMiddleware, feedController.GetNotifications)
	app.Post("/notifications/read", middleware.JWTMiddleware, feedController.MarkNotificationsRead)

	courseGroup := app.Group("/course")
	courseGroup.Get("/:id/chat", middleware.JWTMiddleware, courseValidator.CourseID(), feedController.GetChat)
	courseGroup.Post("/:id/chat", middleware.JWTMiddleware, courseValidator.CourseID(), feedValidator.SendChat(), feedController.SendChat)
	courseGroup.Get("/:id/quiz", middleware.JWTMiddleware, courseValidator.CourseID(), feedController.GetQuiz)

	app.Get("/schedule", middleware.JWTMiddleware, feedController.GetSchedule)
	app.Post("/schedule", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin, models.RoleInstructor), feedValidator.AddLiveClass(), feedController.AddLiveClass)

	quizGroup := app.Group("/quiz")
	quizGroup.Post("/submit", middleware.JWTMiddleware, feedValidator.SubmitQuiz(), feedController.SubmitQuiz)
	quizGroup.Get("/submissions", middleware.JWTMiddleware, middleware.RequireRole(models.RoleAdmin, models.RoleInstructor), feedController.GetQuizSubmissions)

	// Session change stream (server analog of the cross-tab storage event)
	app.Get("/events", feedController.SessionEvents)
}
