package store

import (
	"testing"
	"time"

	"lumina/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationsNewestFirst(t *testing.T) {
	s := newTestStore(t)
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	tick := 0
	s.Feeds.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}

	s.Feeds.AddNotification(student, "first")
	s.Feeds.AddNotification(student, "second")
	s.Feeds.AddNotification("other@gmail.com", "not mine")

	notifications := s.Feeds.Notifications(student)
	require.Len(t, notifications, 2)
	assert.Equal(t, "second", notifications[0].Message)
	assert.Equal(t, "first", notifications[1].Message)
	assert.False(t, notifications[0].Read)
}

func TestMarkNotificationsRead(t *testing.T) {
	s := newTestStore(t)

	s.Feeds.AddNotification(student, "hello")
	s.Feeds.AddNotification("other@gmail.com", "untouched")

	s.Feeds.MarkNotificationsRead(student)

	assert.True(t, s.Feeds.Notifications(student)[0].Read)
	assert.False(t, s.Feeds.Notifications("other@gmail.com")[0].Read)
}

func TestChatIsPerCourseOldestFirst(t *testing.T) {
	s := newTestStore(t)
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	tick := 0
	s.Feeds.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Second)
	}

	s.Feeds.SendChat(models.ChatMessage{CourseID: "c1", UserEmail: student, Text: "hi"})
	s.Feeds.SendChat(models.ChatMessage{CourseID: "c2", UserEmail: student, Text: "elsewhere"})
	s.Feeds.SendChat(models.ChatMessage{CourseID: "c1", UserEmail: student, Text: "again"})

	messages := s.Feeds.Chat("c1")
	require.Len(t, messages, 2)
	assert.Equal(t, "hi", messages[0].Text)
	assert.Equal(t, "again", messages[1].Text)
	assert.NotEmpty(t, messages[0].ID)
}

func TestScheduleFilter(t *testing.T) {
	s := newTestStore(t)

	s.Feeds.AddLiveClass(models.LiveClass{CourseID: "c1", Topic: "Hooks"})
	s.Feeds.AddLiveClass(models.LiveClass{CourseID: "c2", Topic: "Figma"})

	assert.Len(t, s.Feeds.Schedule(""), 2)
	require.Len(t, s.Feeds.Schedule("c1"), 1)
	assert.Equal(t, "Hooks", s.Feeds.Schedule("c1")[0].Topic)
}

func TestQuizLookupAndSubmission(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.KV.Set(KeyQuizzes, []models.Quiz{{ID: "q1", CourseID: "c1", Title: "Basics"}}))

	quiz, found := s.Feeds.Quiz("c1")
	require.True(t, found)
	assert.Equal(t, "Basics", quiz.Title)

	_, found = s.Feeds.Quiz("c9")
	assert.False(t, found)

	submission := s.Feeds.SubmitQuiz(models.QuizSubmission{QuizID: "q1", UserEmail: student, Score: 2, TotalQuestions: 2, Passed: true})
	assert.NotEmpty(t, submission.ID)
	assert.False(t, submission.Date.IsZero())
	assert.Len(t, s.Feeds.Submissions(), 1)
}
