package models

import "time"

// VideoProgress is one watch record per (user, video). Completed is sticky:
// once true it is never reset by a later partial sample.
type VideoProgress struct {
	VideoID        string  `json:"videoId"`
	WatchedSeconds float64 `json:"watchedSeconds"`
	Completed      bool    `json:"completed"`
}

// Enrollment tracks a user's enrollment in a course. Progress and Completed
// are a denormalized cache of the aggregator's output; the per-user course
// progress map is the authoritative value.
type Enrollment struct {
	CourseID   string    `json:"courseId"`
	UserEmail  string    `json:"userEmail"`
	Progress   int       `json:"progress"`
	EnrollDate time.Time `json:"enrollDate"`
	Completed  bool      `json:"completed"`
}
