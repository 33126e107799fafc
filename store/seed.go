package store

import (
	"log"
	"time"

	"lumina/models"
)

// Seed fills absent collections with the demo catalog, the default accounts
// and the demo student's data. Keys already present are left untouched, so
// seeding an existing database is a no-op.
func (s *Store) Seed() {
	if !s.KV.Has(KeyCourses) {
		s.KV.Set(KeyCourses, []models.Course{
			{
				ID:             "c1",
				Title:          "Complete React Developer in 2024",
				Description:    "Master React.js, Redux, Hooks, GraphQL, and build real-world apps.",
				Category:       "Development",
				Level:          models.LevelIntermediate,
				Hours:          42,
				InstructorName: "Sarah Jenkins",
				Price:          0,
				Thumbnail:      "https://images.unsplash.com/photo-1633356122544-f134324a6cee?q=80&w=800&auto=format&fit=crop",
			},
			{
				ID:             "c2",
				Title:          "UI/UX Design Masterclass",
				Description:    "Learn to design beautiful interfaces and user experiences from scratch.",
				Category:       "Design",
				Level:          models.LevelBeginner,
				Hours:          28,
				InstructorName: "Mike Chen",
				Price:          0,
				Thumbnail:      "https://images.unsplash.com/photo-1586717791821-3f44a5638d48?q=80&w=800&auto=format&fit=crop",
			},
			{
				ID:             "c3",
				Title:          "Python for Data Science",
				Description:    "Analyze data, create visualizations, and build ML models.",
				Category:       "Data Science",
				Level:          models.LevelAdvanced,
				Hours:          55,
				InstructorName: "Dr. Ali",
				Price:          0,
				Thumbnail:      "https://images.unsplash.com/photo-1526374965328-7f61d4dc18c5?q=80&w=800&auto=format&fit=crop",
			},
			{
				ID:             "c4",
				Title:          "Digital Marketing Strategy",
				Description:    "Master SEO, Social Media, and Content Marketing strategies.",
				Category:       "Marketing",
				Level:          models.LevelBeginner,
				Hours:          15,
				InstructorName: "Emily Rose",
				Price:          49,
				Thumbnail:      "https://images.unsplash.com/photo-1432888498266-38ffec3eaf0a?q=80&w=800&auto=format&fit=crop",
			},
		})
	}

	if !s.KV.Has(KeyVideos) {
		s.KV.Set(KeyVideos, []models.Video{
			{ID: "v1", CourseID: "c1", Title: "Introduction to React", URL: "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4", Duration: "10:00", Order: 1},
			{ID: "v2", CourseID: "c1", Title: "Components & Props", URL: "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ElephantsDream.mp4", Duration: "15:30", Order: 2},
			{ID: "v3", CourseID: "c1", Title: "State & Lifecycle", URL: "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerBlazes.mp4", Duration: "12:45", Order: 3},
			{ID: "v4", CourseID: "c2", Title: "Design Thinking", URL: "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerEscapes.mp4", Duration: "08:20", Order: 1},
		})
	}

	if !s.KV.Has(KeyQuizzes) {
		s.KV.Set(KeyQuizzes, []models.Quiz{
			{
				ID:       "q1",
				CourseID: "c1",
				Title:    "React Basics Quiz",
				Questions: []models.Question{
					{ID: "q1_1", Text: "What is a Component?", Options: []string{"A function or class", "A database", "A server"}, CorrectIndex: 0},
					{ID: "q1_2", Text: "What hook is used for side effects?", Options: []string{"useState", "useEffect", "useReducer"}, CorrectIndex: 1},
				},
			},
		})
	}

	if !s.KV.Has(KeyUsers) {
		s.KV.Set(KeyUsers, []models.User{
			{Name: "Admin User", Email: "admin@gmail.com", Role: models.RoleAdmin, Password: "Admin@123"},
			{Name: "Instructor User", Email: "instructor@gmail.com", Role: models.RoleInstructor, Password: "Instructor@123"},
			{Name: "Student User", Email: "student@gmail.com", Role: models.RoleStudent, Password: "Student@123"},
		})
	}

	// Demo student data so dashboards are not empty on a fresh database
	demoStudent := "student@gmail.com"
	if !s.KV.Has(enrollmentsKey(demoStudent)) {
		now := time.Now()
		s.KV.Set(enrollmentsKey(demoStudent), []models.Enrollment{
			{CourseID: "c1", UserEmail: demoStudent, Progress: 65, EnrollDate: now, Completed: false},
			{CourseID: "c2", UserEmail: demoStudent, Progress: 100, EnrollDate: now.Add(-5 * 24 * time.Hour), Completed: true},
		})
		s.KV.Set(courseProgressKey(demoStudent), map[string]int{"c1": 65, "c2": 100})
	}

	if !s.KV.Has(KeySchedule) {
		now := time.Now()
		s.KV.Set(KeySchedule, []models.LiveClass{
			{ID: "lc1", CourseID: "c1", Topic: "React Hooks Deep Dive", StartTime: now.Add(24 * time.Hour), InstructorEmail: "instructor@gmail.com", Link: "#"},
			{ID: "lc2", CourseID: "c2", Topic: "Figma Auto Layout Workshop", StartTime: now.Add(48 * time.Hour), InstructorEmail: "instructor@gmail.com", Link: "#"},
		})
	}

	log.Println("Seed data verified.")
}
