package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollCreatesRecord(t *testing.T) {
	s := newTestStore(t)
	enrolledAt := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	s.Enrollments.now = func() time.Time { return enrolledAt }

	enrollment := s.Enrollments.Enroll(student, "c1")

	assert.Equal(t, "c1", enrollment.CourseID)
	assert.Equal(t, student, enrollment.UserEmail)
	assert.Equal(t, 0, enrollment.Progress)
	assert.False(t, enrollment.Completed)
	assert.True(t, enrollment.EnrollDate.Equal(enrolledAt))
}

func TestEnrollIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	first := s.Enrollments.Enroll(student, "c1")
	second := s.Enrollments.Enroll(student, "c1")

	require.Len(t, s.Enrollments.List(student), 1)
	assert.True(t, first.EnrollDate.Equal(second.EnrollDate))
}

func TestEnrollmentsArePerUser(t *testing.T) {
	s := newTestStore(t)

	s.Enrollments.Enroll(student, "c1")
	s.Enrollments.Enroll("other@gmail.com", "c2")

	assert.Len(t, s.Enrollments.List(student), 1)
	assert.Len(t, s.Enrollments.List("other@gmail.com"), 1)
	assert.True(t, s.Enrollments.IsEnrolled(student, "c1"))
	assert.False(t, s.Enrollments.IsEnrolled(student, "c2"))
}
