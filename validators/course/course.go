package courseValidator

import (
	"strings"

	"lumina/middleware"
	"lumina/models"

	"github.com/gofiber/fiber/v2"
)

// CourseRequest is the expected create/update payload
type CourseRequest struct {
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Category       string  `json:"category"`
	Level          string  `json:"level"`
	Hours          int     `json:"hours"`
	Thumbnail      string  `json:"thumbnail"`
	InstructorName string  `json:"instructorName"`
	Price          float64 `json:"price"`
}

func validLevel(level string) bool {
	return level == models.LevelBeginner || level == models.LevelIntermediate || level == models.LevelAdvanced
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Title
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		} else if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		// Validate Description
		if strings.TrimSpace(reqData.Description) == "" {
			errors["description"] = "Description is required!"
		} else if len(strings.TrimSpace(reqData.Description)) < 5 {
			errors["description"] = "Description must be at least 5 characters long!"
		}

		// Validate Level
		if !validLevel(reqData.Level) {
			errors["level"] = "Level must be Beginner, Intermediate or Advanced!"
		}

		if reqData.Hours < 0 {
			errors["hours"] = "Hours must not be negative!"
		}
		if reqData.Price < 0 {
			errors["price"] = "Price must not be negative!"
		}

		// Respond with validation errors if any exist
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func UpdateCourse() fiber.Handler {
	return CreateCourse()
}

// CourseID validates the :id path parameter
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := strings.TrimSpace(c.Params("id"))
		if id == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course id is required!", nil)
		}

		c.Locals("courseID", id)
		return c.Next()
	}
}
