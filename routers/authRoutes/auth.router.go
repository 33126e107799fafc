package authRoutes

import (
	authController "lumina/controllers/auth"
	"lumina/middleware"
	authValidator "lumina/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up registration, login and password routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/register", authValidator.Register(), authController.Register)
	authGroup.Post("/login", authValidator.Login(), authController.Login)
	authGroup.Post("/logout", middleware.JWTMiddleware, authController.Logout)
	authGroup.Post("/change-password", middleware.JWTMiddleware, authValidator.ChangePassword(), authController.ChangePassword)
}
