package models

import "time"

// Quiz is a per-course multiple choice quiz
type Quiz struct {
	ID        string     `json:"id"`
	CourseID  string     `json:"courseId"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Question is a single MCQ with the index of the correct option
type Question struct {
	ID           string   `json:"id"`
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
}

// QuizSubmission records one graded quiz attempt
type QuizSubmission struct {
	ID             string    `json:"id"`
	QuizID         string    `json:"quizId"`
	UserEmail      string    `json:"userEmail"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"totalQuestions"`
	Passed         bool      `json:"passed"`
	Date           time.Time `json:"date"`
}
