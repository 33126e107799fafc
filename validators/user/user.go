package userValidator

import (
	"strings"

	"lumina/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// UpdateProfileRequest is the expected profile-save payload. OriginalEmail
// names the stored record when the email itself is being changed.
type UpdateProfileRequest struct {
	Name          string `json:"name" validate:"required,min=2"`
	Email         string `json:"email" validate:"required,email"`
	Avatar        string `json:"avatar" validate:"omitempty,url"`
	OriginalEmail string `json:"originalEmail" validate:"omitempty,email"`
}

func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateProfileRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.Name = strings.TrimSpace(reqData.Name)
		reqData.Email = strings.TrimSpace(reqData.Email)

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			if validationErrors, ok := err.(validator.ValidationErrors); ok {
				for _, fe := range validationErrors {
					switch fe.Field() {
					case "Name":
						errors["name"] = "Name must be at least 2 characters long!"
					case "Email", "OriginalEmail":
						errors["email"] = "Must be a valid email address!"
					case "Avatar":
						errors["avatar"] = "Avatar must be a valid URL!"
					}
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}

func SetTheme() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Theme string `json:"theme"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.Theme != "light" && reqData.Theme != "dark" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"theme": "Theme must be light or dark!",
			})
		}

		c.Locals("validatedTheme", reqData.Theme)
		return c.Next()
	}
}
