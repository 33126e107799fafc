package store

import (
	"math"

	"lumina/models"
)

// Aggregator derives per-course completion percentages from the progress
// ledger and writes them to two sinks: the authoritative per-user course
// progress map, and the matching enrollment's denormalized progress snapshot.
type Aggregator struct {
	kv       *KV
	ledger   *ProgressLedger
	registry *EnrollmentRegistry
}

func NewAggregator(kv *KV, ledger *ProgressLedger, registry *EnrollmentRegistry) *Aggregator {
	return &Aggregator{kv: kv, ledger: ledger, registry: registry}
}

// Recompute recalculates the completion percent for (email, courseId) and
// writes both sinks. Completion is count-based: each video weighs the same
// regardless of length, and a partially watched video earns no credit.
// Called synchronously after every ledger save; safe to call repeatedly.
func (a *Aggregator) Recompute(email, courseID string) int {
	var videos []models.Video
	a.kv.Get(KeyVideos, &videos)

	total := 0
	completed := 0
	records := a.ledger.GetAll(email)
	for _, v := range videos {
		if v.CourseID != courseID {
			continue
		}
		total++
		for _, r := range records {
			if r.VideoID == v.ID && r.Completed {
				completed++
				break
			}
		}
	}

	percent := 0
	if total > 0 {
		percent = int(math.Round(float64(completed) / float64(total) * 100))
	}

	// Authoritative sink: the per-user course progress map
	progressMap := a.CourseProgress(email)
	progressMap[courseID] = percent
	a.kv.Set(courseProgressKey(email), progressMap)

	// Denormalized sink: the legacy enrollment snapshot, skipped silently
	// when no enrollment exists for the course
	key := enrollmentsKey(email)
	var enrollments []models.Enrollment
	a.kv.Get(key, &enrollments)
	for i := range enrollments {
		if enrollments[i].CourseID == courseID {
			enrollments[i].Progress = percent
			enrollments[i].Completed = percent == 100
			a.kv.Set(key, enrollments)
			break
		}
	}

	return percent
}

// CourseProgress returns the authoritative courseId→percent map for the user
func (a *Aggregator) CourseProgress(email string) map[string]int {
	progressMap := make(map[string]int)
	a.kv.Get(courseProgressKey(email), &progressMap)
	if progressMap == nil {
		progressMap = make(map[string]int)
	}
	return progressMap
}

// CourseProgressFor resolves the display percent for one course: the map
// entry when present, otherwise the enrollment snapshot (for courses
// enrolled before any video was watched), otherwise 0.
func (a *Aggregator) CourseProgressFor(email, courseID string) int {
	if percent, ok := a.CourseProgress(email)[courseID]; ok {
		return percent
	}
	for _, e := range a.registry.List(email) {
		if e.CourseID == courseID {
			return e.Progress
		}
	}
	return 0
}
