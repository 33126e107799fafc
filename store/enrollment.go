package store

import (
	"time"

	"lumina/models"
)

// EnrollmentRegistry keeps the per-user list of course enrollments. Each
// record carries a redundant progress/completed snapshot maintained by the
// aggregator; the registry itself only appends.
type EnrollmentRegistry struct {
	kv  *KV
	now func() time.Time
}

func NewEnrollmentRegistry(kv *KV) *EnrollmentRegistry {
	return &EnrollmentRegistry{kv: kv, now: time.Now}
}

// Enroll appends a fresh enrollment for (email, courseId). Idempotent: a
// second call for the same pair is a no-op.
func (r *EnrollmentRegistry) Enroll(email, courseID string) models.Enrollment {
	key := enrollmentsKey(email)

	var enrollments []models.Enrollment
	r.kv.Get(key, &enrollments)

	for _, e := range enrollments {
		if e.CourseID == courseID {
			return e
		}
	}

	enrollment := models.Enrollment{
		CourseID:   courseID,
		UserEmail:  email,
		Progress:   0,
		EnrollDate: r.now(),
		Completed:  false,
	}
	enrollments = append(enrollments, enrollment)
	r.kv.Set(key, enrollments)
	return enrollment
}

// List returns the user's enrollments
func (r *EnrollmentRegistry) List(email string) []models.Enrollment {
	var enrollments []models.Enrollment
	r.kv.Get(enrollmentsKey(email), &enrollments)
	return enrollments
}

// IsEnrolled reports whether the user has an enrollment for the course
func (r *EnrollmentRegistry) IsEnrolled(email, courseID string) bool {
	for _, e := range r.List(email) {
		if e.CourseID == courseID {
			return true
		}
	}
	return false
}
