package courseValidator

import (
	"strings"

	"lumina/middleware"

	"github.com/gofiber/fiber/v2"
)

// ProgressRequest is one watch-time sample for a video
type ProgressRequest struct {
	WatchedSeconds float64 `json:"watchedSeconds"`
}

func SaveProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		videoID := strings.TrimSpace(c.Params("id"))
		if videoID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Video id is required!", nil)
		}

		reqData := new(ProgressRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.WatchedSeconds < 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"watchedSeconds": "Watched seconds must not be negative!",
			})
		}

		c.Locals("videoID", videoID)
		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}

// VideoID validates the :id path parameter
func VideoID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := strings.TrimSpace(c.Params("id"))
		if id == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Video id is required!", nil)
		}

		c.Locals("videoID", id)
		return c.Next()
	}
}
