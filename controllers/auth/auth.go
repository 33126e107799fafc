package authController

import (
	"errors"
	"log"

	"lumina/middleware"
	"lumina/models"
	"lumina/store"
	"lumina/utils"
	authValidator "lumina/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*authValidator.RegisterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	newUser := models.User{
		Name:     reqData.Name,
		Email:    reqData.Email,
		Role:     reqData.Role,
		Avatar:   utils.AvatarURL(reqData.Name),
		Password: reqData.Password,
	}

	user, err := store.Default.Session.Register(newUser)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
		}
		if errors.Is(err, store.ErrInvalidRole) {
			return middleware.ValidationErrorResponse(c, map[string]string{"role": err.Error()})
		}
		log.Printf("Error registering user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	go utils.VerifyAvatarURL(user.Avatar)
	utils.SendWelcomeEmail(user.Email, user.Name)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", user.Sanitized())
}

func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	user, err := store.Default.Session.Login(reqData.Email, reqData.Password)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
	}

	token, err := middleware.GenerateJWT(user.Email, user.Name, user.Role)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate token", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful.", fiber.Map{
		"user":  user.Sanitized(),
		"token": token,
	})
}

func Logout(c *fiber.Ctx) error {
	store.Default.Session.Logout()
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged out.", nil)
}

func ChangePassword(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedChangePassword").(*authValidator.ChangePasswordRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := store.Default.Session.ChangePassword(email, reqData.CurrentPassword, reqData.NewPassword); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
		}
		if errors.Is(err, store.ErrWrongPassword) {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Current password is incorrect!", nil)
		}
		log.Printf("Error changing password for %s: %v", email, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to change password!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Password changed successfully.", nil)
}
