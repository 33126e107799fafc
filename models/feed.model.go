package models

import "time"

// Notification is a per-user feed entry
type Notification struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	Date      time.Time `json:"date"`
	UserEmail string    `json:"userEmail"`
}

// ChatMessage is one message in a course discussion feed
type ChatMessage struct {
	ID        string    `json:"id"`
	CourseID  string    `json:"courseId"`
	UserEmail string    `json:"userEmail"`
	UserName  string    `json:"userName"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// LiveClass is a scheduled live session for a course
type LiveClass struct {
	ID              string    `json:"id"`
	CourseID        string    `json:"courseId"`
	Topic           string    `json:"topic"`
	StartTime       time.Time `json:"startTime"`
	InstructorEmail string    `json:"instructorEmail"`
	Link            string    `json:"link"`
}
