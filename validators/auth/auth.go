package authValidator

import (
	"strings"

	"lumina/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// fieldErrors converts validator errors to a field->message map
func fieldErrors(err error) map[string]string {
	errors := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["body"] = "Invalid request body!"
		return errors
	}
	for _, fe := range validationErrors {
		field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
		switch fe.Tag() {
		case "required":
			errors[field] = "This field is required!"
		case "email":
			errors[field] = "Must be a valid email address!"
		case "min":
			errors[field] = "Must be at least " + fe.Param() + " characters long!"
		case "oneof":
			errors[field] = "Must be one of: " + fe.Param() + "!"
		case "eqfield":
			errors[field] = "Passwords do not match!"
		default:
			errors[field] = "Invalid value!"
		}
	}
	return errors
}

// RegisterRequest is the expected registration payload. Admin is not a
// registrable role.
type RegisterRequest struct {
	Name            string `json:"name" validate:"required,min=2"`
	Email           string `json:"email" validate:"required,email"`
	Role            string `json:"role" validate:"required,oneof=Instructor Student"`
	Password        string `json:"password" validate:"omitempty,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"eqfield=Password"`
}

func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(RegisterRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Email = strings.TrimSpace(reqData.Email)

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedRegister", reqData)
		return c.Next()
	}
}

// LoginRequest is the expected login payload
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LoginRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Email = strings.TrimSpace(reqData.Email)

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

// ChangePasswordRequest is the expected change-password payload
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"eqfield=NewPassword"`
}

func ChangePassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ChangePasswordRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, fieldErrors(err))
		}

		c.Locals("validatedChangePassword", reqData)
		return c.Next()
	}
}
