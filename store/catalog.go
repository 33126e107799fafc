package store

import (
	"sort"

	"lumina/models"
)

// Catalog holds the shared course and video collections plus the UI theme
type Catalog struct {
	kv *KV
}

func NewCatalog(kv *KV) *Catalog {
	return &Catalog{kv: kv}
}

// Courses returns the full course catalog
func (c *Catalog) Courses() []models.Course {
	var courses []models.Course
	c.kv.Get(KeyCourses, &courses)
	return courses
}

// Course looks a course up by id
func (c *Catalog) Course(id string) (models.Course, bool) {
	for _, course := range c.Courses() {
		if course.ID == id {
			return course, true
		}
	}
	return models.Course{}, false
}

// AddCourse appends a course. Ids are caller-generated and must be unique.
func (c *Catalog) AddCourse(course models.Course) {
	courses := c.Courses()
	courses = append(courses, course)
	c.kv.Set(KeyCourses, courses)
}

// UpdateCourse replaces the stored course with the same id; unknown ids are ignored
func (c *Catalog) UpdateCourse(course models.Course) {
	courses := c.Courses()
	for i := range courses {
		if courses[i].ID == course.ID {
			courses[i] = course
			c.kv.Set(KeyCourses, courses)
			return
		}
	}
}

// DeleteCourse removes the course with the given id
func (c *Catalog) DeleteCourse(id string) {
	courses := c.Courses()
	kept := courses[:0]
	for _, course := range courses {
		if course.ID != id {
			kept = append(kept, course)
		}
	}
	c.kv.Set(KeyCourses, kept)
}

// Videos returns the course's videos in display order
func (c *Catalog) Videos(courseID string) []models.Video {
	var videos []models.Video
	c.kv.Get(KeyVideos, &videos)

	course := make([]models.Video, 0, len(videos))
	for _, v := range videos {
		if v.CourseID == courseID {
			course = append(course, v)
		}
	}
	sort.Slice(course, func(i, j int) bool { return course[i].Order < course[j].Order })
	return course
}

// Video looks a video up by id across all courses
func (c *Catalog) Video(id string) (models.Video, bool) {
	var videos []models.Video
	c.kv.Get(KeyVideos, &videos)
	for _, v := range videos {
		if v.ID == id {
			return v, true
		}
	}
	return models.Video{}, false
}

// AddVideo appends a video to the shared collection
func (c *Catalog) AddVideo(video models.Video) {
	var videos []models.Video
	c.kv.Get(KeyVideos, &videos)
	videos = append(videos, video)
	c.kv.Set(KeyVideos, videos)
}

// Theme returns the stored UI theme, defaulting to light
func (c *Catalog) Theme() string {
	var theme string
	if !c.kv.Get(KeyTheme, &theme) || theme == "" {
		return "light"
	}
	return theme
}

// SetTheme stores the UI theme
func (c *Catalog) SetTheme(theme string) {
	c.kv.Set(KeyTheme, theme)
}
