package feedController

import (
	"lumina/middleware"
	"lumina/models"
	"lumina/store"
	feedValidator "lumina/validators/feed"

	"github.com/gofiber/fiber/v2"
)

func GetNotifications(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notifications fetched successfully!", store.Default.Feeds.Notifications(email))
}

func MarkNotificationsRead(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	store.Default.Feeds.MarkNotificationsRead(email)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notifications marked as read.", nil)
}

// GetChat returns a course's discussion feed, oldest first. Clients poll
// this endpoint on a fixed interval; there is no push.
func GetChat(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(string)
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chat fetched successfully!", store.Default.Feeds.Chat(courseID))
}

func SendChat(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(string)
	reqData := c.Locals("validatedChat").(*struct {
		Text string `json:"text"`
	})

	user, found := store.Default.Session.FindUser(email)
	if !found {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	message := store.Default.Feeds.SendChat(models.ChatMessage{
		CourseID:  courseID,
		UserEmail: user.Email,
		UserName:  user.Name,
		Text:      reqData.Text,
	})

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Message sent.", message)
}

func GetSchedule(c *fiber.Ctx) error {
	courseID := c.Query("courseId")
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Schedule fetched successfully!", store.Default.Feeds.Schedule(courseID))
}

func AddLiveClass(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedLiveClass").(*feedValidator.LiveClassRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if _, found := store.Default.Catalog.Course(reqData.CourseID); !found {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	class := store.Default.Feeds.AddLiveClass(models.LiveClass{
		CourseID:        reqData.CourseID,
		Topic:           reqData.Topic,
		StartTime:       reqData.StartTime,
		InstructorEmail: email,
		Link:            reqData.Link,
	})

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Live class scheduled.", class)
}

func GetQuiz(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(string)

	quiz, found := store.Default.Feeds.Quiz(courseID)
	if !found {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No quiz for this course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", quiz)
}

func SubmitQuiz(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedSubmission").(*feedValidator.QuizSubmissionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	submission := store.Default.Feeds.SubmitQuiz(models.QuizSubmission{
		QuizID:         reqData.QuizID,
		UserEmail:      email,
		Score:          reqData.Score,
		TotalQuestions: reqData.TotalQuestions,
		Passed:         reqData.Passed,
	})

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz submitted.", submission)
}

func GetQuizSubmissions(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Submissions fetched successfully!", store.Default.Feeds.Submissions())
}
