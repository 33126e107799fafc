package models

// Course levels
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// Course represents a learning course in the catalog
type Course struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Category       string  `json:"category"`
	Level          string  `json:"level"`
	Hours          int     `json:"hours"`
	Thumbnail      string  `json:"thumbnail"`
	InstructorName string  `json:"instructorName"`
	Price          float64 `json:"price"`
}

// Video is a single course unit. Duration is formatted "MM:SS" or "HH:MM:SS";
// Order is the display and resume rank within the course.
type Video struct {
	ID       string `json:"id"`
	CourseID string `json:"courseId"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Duration string `json:"duration"`
	Order    int    `json:"order"`
}
