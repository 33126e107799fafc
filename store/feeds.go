package store

import (
	"sort"
	"time"

	"lumina/models"

	"github.com/google/uuid"
)

// Feeds covers the flat append-only collections: notifications, course chat,
// the live-class schedule, quizzes and quiz submissions.
type Feeds struct {
	kv  *KV
	now func() time.Time
}

func NewFeeds(kv *KV) *Feeds {
	return &Feeds{kv: kv, now: time.Now}
}

// AddNotification appends an unread notification for the user
func (f *Feeds) AddNotification(email, message string) models.Notification {
	var all []models.Notification
	f.kv.Get(KeyNotifications, &all)

	notification := models.Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Read:      false,
		Date:      f.now(),
		UserEmail: email,
	}
	all = append(all, notification)
	f.kv.Set(KeyNotifications, all)
	return notification
}

// Notifications returns the user's notifications, newest first
func (f *Feeds) Notifications(email string) []models.Notification {
	var all []models.Notification
	f.kv.Get(KeyNotifications, &all)

	mine := make([]models.Notification, 0, len(all))
	for _, n := range all {
		if n.UserEmail == email {
			mine = append(mine, n)
		}
	}
	sort.Slice(mine, func(i, j int) bool { return mine[i].Date.After(mine[j].Date) })
	return mine
}

// MarkNotificationsRead marks every notification of the user as read
func (f *Feeds) MarkNotificationsRead(email string) {
	var all []models.Notification
	f.kv.Get(KeyNotifications, &all)
	for i := range all {
		if all[i].UserEmail == email {
			all[i].Read = true
		}
	}
	f.kv.Set(KeyNotifications, all)
}

// SendChat appends a message to the course discussion feed
func (f *Feeds) SendChat(message models.ChatMessage) models.ChatMessage {
	if message.ID == "" {
		message.ID = uuid.NewString()
	}
	if message.Timestamp.IsZero() {
		message.Timestamp = f.now()
	}

	var all []models.ChatMessage
	f.kv.Get(KeyChat, &all)
	all = append(all, message)
	f.kv.Set(KeyChat, all)
	return message
}

// Chat returns the course's messages, oldest first
func (f *Feeds) Chat(courseID string) []models.ChatMessage {
	var all []models.ChatMessage
	f.kv.Get(KeyChat, &all)

	course := make([]models.ChatMessage, 0, len(all))
	for _, m := range all {
		if m.CourseID == courseID {
			course = append(course, m)
		}
	}
	sort.Slice(course, func(i, j int) bool { return course[i].Timestamp.Before(course[j].Timestamp) })
	return course
}

// AddLiveClass appends a scheduled live class
func (f *Feeds) AddLiveClass(class models.LiveClass) models.LiveClass {
	if class.ID == "" {
		class.ID = uuid.NewString()
	}

	var all []models.LiveClass
	f.kv.Get(KeySchedule, &all)
	all = append(all, class)
	f.kv.Set(KeySchedule, all)
	return class
}

// Schedule returns all live classes, or only those of a course when
// courseID is non-empty
func (f *Feeds) Schedule(courseID string) []models.LiveClass {
	var all []models.LiveClass
	f.kv.Get(KeySchedule, &all)
	if courseID == "" {
		return all
	}

	course := make([]models.LiveClass, 0, len(all))
	for _, c := range all {
		if c.CourseID == courseID {
			course = append(course, c)
		}
	}
	return course
}

// Quiz returns the course's quiz, if one exists
func (f *Feeds) Quiz(courseID string) (models.Quiz, bool) {
	var all []models.Quiz
	f.kv.Get(KeyQuizzes, &all)
	for _, q := range all {
		if q.CourseID == courseID {
			return q, true
		}
	}
	return models.Quiz{}, false
}

// SubmitQuiz records a graded attempt
func (f *Feeds) SubmitQuiz(submission models.QuizSubmission) models.QuizSubmission {
	if submission.ID == "" {
		submission.ID = uuid.NewString()
	}
	if submission.Date.IsZero() {
		submission.Date = f.now()
	}

	var all []models.QuizSubmission
	f.kv.Get(KeySubmissions, &all)
	all = append(all, submission)
	f.kv.Set(KeySubmissions, all)
	return submission
}

// Submissions returns every recorded quiz attempt
func (f *Feeds) Submissions() []models.QuizSubmission {
	var all []models.QuizSubmission
	f.kv.Get(KeySubmissions, &all)
	return all
}
