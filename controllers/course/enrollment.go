package controllers

import (
	"lumina/middleware"
	"lumina/store"

	"github.com/gofiber/fiber/v2"
)

func EnrollInCourse(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(string)

	course, found := store.Default.Catalog.Course(courseID)
	if !found {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Idempotent: re-enrolling returns the existing record
	enrollment := store.Default.Enrollments.Enroll(email, courseID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in "+course.Title+"!", enrollment)
}

// GetEnrollments lists the caller's enrollments with the resolved progress
// percent per course (the authoritative map when present, the enrollment
// snapshot otherwise)
func GetEnrollments(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollments := store.Default.Enrollments.List(email)

	type enrollmentView struct {
		CourseID   string `json:"courseId"`
		Progress   int    `json:"progress"`
		Completed  bool   `json:"completed"`
		EnrollDate string `json:"enrollDate"`
	}

	views := make([]enrollmentView, 0, len(enrollments))
	for _, e := range enrollments {
		views = append(views, enrollmentView{
			CourseID:   e.CourseID,
			Progress:   store.Default.Aggregator.CourseProgressFor(email, e.CourseID),
			Completed:  e.Completed,
			EnrollDate: e.EnrollDate.Format("2006-01-02"),
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": views,
		"total":       len(views),
	})
}
