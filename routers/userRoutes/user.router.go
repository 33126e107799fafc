package userRoutes

import (
	userController "lumina/controllers/userControllers"
	"lumina/middleware"
	userValidator "lumina/validators/user"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up profile, avatar and theme routes
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Get("/profile", middleware.JWTMiddleware, userController.GetProfile)
	userGroup.Put("/profile", middleware.JWTMiddleware, userValidator.UpdateProfile(), userController.UpdateProfile)
	userGroup.Put("/avatar", middleware.JWTMiddleware, userController.UpdateAvatar)

	userGroup.Get("/theme", middleware.JWTMiddleware, userController.GetTheme)
	userGroup.Put("/theme", middleware.JWTMiddleware, userValidator.SetTheme(), userController.SetTheme)
}
