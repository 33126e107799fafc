package store

import (
	"testing"

	"lumina/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const student = "student@gmail.com"

func completeVideos(s *Store, email string, ids ...string) {
	for _, id := range ids {
		s.Ledger.Save(email, models.VideoProgress{VideoID: id, WatchedSeconds: 595, Completed: true})
	}
}

func TestRecomputePercentIsCountBased(t *testing.T) {
	s := newTestStore(t)
	ids := seedCourseVideos(t, s, "c1", 4)
	s.Enrollments.Enroll(student, "c1")

	assert.Equal(t, 0, s.Aggregator.Recompute(student, "c1"))

	completeVideos(s, student, ids[0], ids[1])
	assert.Equal(t, 50, s.Aggregator.Recompute(student, "c1"))
	assert.Equal(t, 50, s.Aggregator.CourseProgress(student)["c1"])

	// Each video weighs the same regardless of duration
	completeVideos(s, student, ids[2])
	assert.Equal(t, 75, s.Aggregator.Recompute(student, "c1"))
}

func TestRecomputeFullCompletionFlipsEnrollment(t *testing.T) {
	s := newTestStore(t)
	ids := seedCourseVideos(t, s, "c1", 4)
	s.Enrollments.Enroll(student, "c1")

	completeVideos(s, student, ids...)
	assert.Equal(t, 100, s.Aggregator.Recompute(student, "c1"))

	enrollments := s.Enrollments.List(student)
	require.Len(t, enrollments, 1)
	assert.Equal(t, 100, enrollments[0].Progress)
	assert.True(t, enrollments[0].Completed)
}

func TestRecomputeWritesEnrollmentSnapshot(t *testing.T) {
	s := newTestStore(t)
	ids := seedCourseVideos(t, s, "c1", 4)
	s.Enrollments.Enroll(student, "c1")

	completeVideos(s, student, ids[0])
	s.Aggregator.Recompute(student, "c1")

	enrollments := s.Enrollments.List(student)
	require.Len(t, enrollments, 1)
	assert.Equal(t, 25, enrollments[0].Progress)
	assert.False(t, enrollments[0].Completed)
}

func TestRecomputeWithoutEnrollmentSkipsSilently(t *testing.T) {
	s := newTestStore(t)
	ids := seedCourseVideos(t, s, "c1", 2)

	completeVideos(s, student, ids[0])
	assert.Equal(t, 50, s.Aggregator.Recompute(student, "c1"))

	// The authoritative map is written even though no enrollment exists
	assert.Equal(t, 50, s.Aggregator.CourseProgress(student)["c1"])
	assert.Empty(t, s.Enrollments.List(student))
}

func TestRecomputeEmptyCourse(t *testing.T) {
	s := newTestStore(t)

	assert.Equal(t, 0, s.Aggregator.Recompute(student, "empty"))
	assert.Equal(t, 0, s.Aggregator.CourseProgress(student)["empty"])
}

func TestRecomputeIdempotent(t *testing.T) {
	s := newTestStore(t)
	ids := seedCourseVideos(t, s, "c1", 4)
	s.Enrollments.Enroll(student, "c1")
	completeVideos(s, student, ids[0], ids[1])

	first := s.Aggregator.Recompute(student, "c1")
	mapAfterFirst := s.Aggregator.CourseProgress(student)
	enrollmentsAfterFirst := s.Enrollments.List(student)

	second := s.Aggregator.Recompute(student, "c1")
	assert.Equal(t, first, second)
	assert.Equal(t, mapAfterFirst, s.Aggregator.CourseProgress(student))
	assert.Equal(t, enrollmentsAfterFirst, s.Enrollments.List(student))
}

func TestLaterPartialSampleNeverDecreasesPercent(t *testing.T) {
	s := newTestStore(t)
	ids := seedCourseVideos(t, s, "c1", 4)
	s.Enrollments.Enroll(student, "c1")

	completeVideos(s, student, ids[0])
	assert.Equal(t, 25, s.Aggregator.Recompute(student, "c1"))

	// A non-completed sample after completion must not shrink completedCount
	s.Ledger.Save(student, models.VideoProgress{VideoID: ids[0], WatchedSeconds: 3, Completed: false})
	assert.Equal(t, 25, s.Aggregator.Recompute(student, "c1"))
}

func TestCourseProgressForPrefersAuthoritativeMap(t *testing.T) {
	s := newTestStore(t)
	seedCourseVideos(t, s, "c1", 4)

	// Enrollment snapshot lags behind the map: the map wins
	s.Enrollments.Enroll(student, "c1")
	require.NoError(t, s.KV.Set(courseProgressKey(student), map[string]int{"c1": 65}))
	assert.Equal(t, 65, s.Aggregator.CourseProgressFor(student, "c1"))
}

func TestCourseProgressForFallsBackToEnrollment(t *testing.T) {
	s := newTestStore(t)

	// Enrolled before any video was watched: no map entry yet
	s.Enrollments.Enroll(student, "c2")
	assert.Equal(t, 0, s.Aggregator.CourseProgressFor(student, "c2"))

	var enrollments []models.Enrollment
	s.KV.Get(enrollmentsKey(student), &enrollments)
	enrollments[0].Progress = 40
	require.NoError(t, s.KV.Set(enrollmentsKey(student), enrollments))
	assert.Equal(t, 40, s.Aggregator.CourseProgressFor(student, "c2"))

	// Neither sink has data
	assert.Equal(t, 0, s.Aggregator.CourseProgressFor(student, "c9"))
}
