package controllers

import (
	"time"

	"lumina/middleware"
	"lumina/models"
	"lumina/store"
	"lumina/utils"
	courseValidator "lumina/validators/course"

	"github.com/gofiber/fiber/v2"
)

// watchThrottle limits periodic watch samples to one write per 2 seconds
// per (user, video). A completion transition bypasses it.
var watchThrottle = utils.NewThrottle(2 * time.Second)

// SaveVideoProgress records one watch-time sample: ledger upsert, then a
// synchronous course-percent recompute
func SaveVideoProgress(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	videoID := c.Locals("videoID").(string)
	reqData := c.Locals("validatedProgress").(*courseValidator.ProgressRequest)

	video, found := store.Default.Catalog.Video(videoID)
	if !found {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Video not found!", nil)
	}

	duration := utils.ParseDuration(video.Duration)
	completed := store.IsCompleted(reqData.WatchedSeconds, duration)

	// Only a transition into completed skips the throttle; it is a state
	// edge that must be written immediately
	previous, hasPrevious := store.Default.Ledger.Get(email, videoID)
	completionEdge := completed && (!hasPrevious || !previous.Completed)
	if !completionEdge && !watchThrottle.Allow(email+":"+videoID) {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Sample throttled.", fiber.Map{
			"saved": false,
		})
	}

	saved := store.Default.Ledger.Save(email, models.VideoProgress{
		VideoID:        videoID,
		WatchedSeconds: reqData.WatchedSeconds,
		Completed:      completed,
	})
	percent := store.Default.Aggregator.Recompute(email, video.CourseID)

	if completionEdge && percent == 100 {
		if course, ok := store.Default.Catalog.Course(video.CourseID); ok {
			if user, ok := store.Default.Session.FindUser(email); ok {
				utils.SendCourseCompletionEmail(user.Email, user.Name, course.Title)
				store.Default.Feeds.AddNotification(email, "You completed "+course.Title+"!")
			}
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress saved.", fiber.Map{
		"saved":         true,
		"progress":      saved,
		"coursePercent": percent,
	})
}

// GetVideoProgress returns the stored record plus the resume position to
// seed the player with
func GetVideoProgress(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	videoID := c.Locals("videoID").(string)

	video, found := store.Default.Catalog.Video(videoID)
	if !found {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Video not found!", nil)
	}

	duration := utils.ParseDuration(video.Duration)
	record, hasRecord := store.Default.Ledger.Get(email, videoID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video progress fetched successfully!", fiber.Map{
		"progress":       record,
		"hasRecord":      hasRecord,
		"resumePosition": store.Default.Ledger.ResumePosition(email, videoID, duration),
	})
}

// GetUserProgress returns the caller's authoritative course progress map
func GetUserProgress(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course progress fetched successfully!", fiber.Map{
		"courseProgress": store.Default.Aggregator.CourseProgress(email),
		"videoProgress":  store.Default.Ledger.GetAll(email),
	})
}
