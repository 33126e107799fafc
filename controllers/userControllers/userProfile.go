package userController

import (
	"errors"
	"log"

	"lumina/middleware"
	"lumina/models"
	"lumina/store"
	"lumina/utils"
	userValidator "lumina/validators/user"

	"github.com/gofiber/fiber/v2"
)

func GetProfile(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	user, found := store.Default.Session.FindUser(email)
	if !found {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully.", user.Sanitized())
}

// UpdateProfile saves the profile form. An email change is carried by the
// originalEmail field naming the stored record.
func UpdateProfile(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedProfile").(*userValidator.UpdateProfileRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	targetEmail := reqData.OriginalEmail
	if targetEmail == "" {
		targetEmail = reqData.Email
	}
	if targetEmail != email {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only update your own profile!", nil)
	}

	stored, found := store.Default.Session.FindUser(targetEmail)
	if !found {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	updated := models.User{
		Name:   reqData.Name,
		Email:  reqData.Email,
		Role:   stored.Role,
		Avatar: reqData.Avatar,
	}
	if updated.Avatar == "" {
		updated.Avatar = stored.Avatar
	}

	originalEmail := ""
	if reqData.Email != targetEmail {
		originalEmail = targetEmail
	}

	if err := store.Default.Session.UpdateUser(updated, originalEmail); err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already taken by another user!", nil)
		}
		log.Printf("Error updating profile for %s: %v", email, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully.", updated.Sanitized())
}

// UpdateAvatar regenerates the user's avatar from their display name
func UpdateAvatar(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	user, found := store.Default.Session.FindUser(email)
	if !found {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	user.Avatar = utils.AvatarURL(user.Name)
	if err := store.Default.Session.UpdateUser(user, ""); err != nil {
		log.Printf("Error updating avatar for %s: %v", email, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update avatar!", nil)
	}

	go utils.VerifyAvatarURL(user.Avatar)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Avatar updated successfully.", user.Sanitized())
}

func GetTheme(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Theme fetched successfully.", fiber.Map{
		"theme": store.Default.Catalog.Theme(),
	})
}

func SetTheme(c *fiber.Ctx) error {
	theme, ok := c.Locals("validatedTheme").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	store.Default.Catalog.SetTheme(theme)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Theme updated successfully.", fiber.Map{
		"theme": theme,
	})
}
