package feedValidator

import (
	"strings"
	"time"

	"lumina/middleware"

	"github.com/gofiber/fiber/v2"
)

func SendChat() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Text string `json:"text"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Text) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"text": "Message text is required!",
			})
		}

		c.Locals("validatedChat", reqData)
		return c.Next()
	}
}

// LiveClassRequest is the expected schedule payload
type LiveClassRequest struct {
	CourseID  string    `json:"courseId"`
	Topic     string    `json:"topic"`
	StartTime time.Time `json:"startTime"`
	Link      string    `json:"link"`
}

func AddLiveClass() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(LiveClassRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if strings.TrimSpace(reqData.CourseID) == "" {
			errors["courseId"] = "Course id is required!"
		}
		if strings.TrimSpace(reqData.Topic) == "" {
			errors["topic"] = "Topic is required!"
		}
		if reqData.StartTime.IsZero() {
			errors["startTime"] = "Start time is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLiveClass", reqData)
		return c.Next()
	}
}

// QuizSubmissionRequest is the expected graded-attempt payload
type QuizSubmissionRequest struct {
	QuizID         string `json:"quizId"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"totalQuestions"`
	Passed         bool   `json:"passed"`
}

func SubmitQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(QuizSubmissionRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if strings.TrimSpace(reqData.QuizID) == "" {
			errors["quizId"] = "Quiz id is required!"
		}
		if reqData.TotalQuestions < 1 {
			errors["totalQuestions"] = "Total questions must be greater than 0!"
		}
		if reqData.Score < 0 || reqData.Score > reqData.TotalQuestions {
			errors["score"] = "Score must be between 0 and the total question count!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}
