package controllers

import (
	"lumina/middleware"
	"lumina/models"
	"lumina/store"
	"lumina/utils"
	courseValidator "lumina/validators/course"

	"github.com/gofiber/fiber/v2"
)

func GetAllCourses(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", store.Default.Catalog.Courses())
}

// GetCourseDetails returns a course with its ordered videos, the caller's
// enrollment state and the resolved progress percent
func GetCourseDetails(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(string)

	course, found := store.Default.Catalog.Course(courseID)
	if !found {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":     course,
		"videos":     store.Default.Catalog.Videos(courseID),
		"isEnrolled": store.Default.Enrollments.IsEnrolled(email, courseID),
		"progress":   store.Default.Aggregator.CourseProgressFor(email, courseID),
	})
}

func GetCourseVideos(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(string)

	if _, found := store.Default.Catalog.Course(courseID); !found {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Videos fetched successfully!", store.Default.Catalog.Videos(courseID))
}

func CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	instructorName := reqData.InstructorName
	if instructorName == "" {
		if name, ok := c.Locals("name").(string); ok {
			instructorName = name
		}
	}

	course := models.Course{
		ID:             utils.TimeID("c"),
		Title:          reqData.Title,
		Description:    reqData.Description,
		Category:       reqData.Category,
		Level:          reqData.Level,
		Hours:          reqData.Hours,
		Thumbnail:      reqData.Thumbnail,
		InstructorName: instructorName,
		Price:          reqData.Price,
	}
	store.Default.Catalog.AddCourse(course)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

func UpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(string)

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	existing, found := store.Default.Catalog.Course(courseID)
	if !found {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	existing.Title = reqData.Title
	existing.Description = reqData.Description
	existing.Category = reqData.Category
	existing.Level = reqData.Level
	existing.Hours = reqData.Hours
	existing.Thumbnail = reqData.Thumbnail
	if reqData.InstructorName != "" {
		existing.InstructorName = reqData.InstructorName
	}
	existing.Price = reqData.Price

	store.Default.Catalog.UpdateCourse(existing)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", existing)
}

func DeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(string)

	if _, found := store.Default.Catalog.Course(courseID); !found {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	store.Default.Catalog.DeleteCourse(courseID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}
