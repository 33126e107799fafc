package store

import (
	"testing"

	"lumina/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCompleted(t *testing.T) {
	tests := []struct {
		name     string
		watched  float64
		duration float64
		want     bool
	}{
		{"over 90 percent", 91, 100, true},
		{"exactly 90 percent", 90, 100, false},
		{"under 90 percent", 50, 100, false},
		{"last two seconds", 98.5, 100, true},
		{"exactly two seconds left", 98, 100, false},
		{"short video near end", 8.5, 10, true},
		{"short video two seconds left", 8, 10, false},
		{"nothing watched", 0, 600, false},
		{"fully watched", 600, 600, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsCompleted(tt.watched, tt.duration))
		})
	}
}

func TestLedgerSaveAndGet(t *testing.T) {
	s := newTestStore(t)

	s.Ledger.Save("student@gmail.com", models.VideoProgress{VideoID: "v1", WatchedSeconds: 42})

	record, ok := s.Ledger.Get("student@gmail.com", "v1")
	require.True(t, ok)
	assert.Equal(t, 42.0, record.WatchedSeconds)
	assert.False(t, record.Completed)

	_, ok = s.Ledger.Get("student@gmail.com", "v2")
	assert.False(t, ok)

	// Records are per user
	_, ok = s.Ledger.Get("other@gmail.com", "v1")
	assert.False(t, ok)
}

func TestLedgerSaveReplacesRecord(t *testing.T) {
	s := newTestStore(t)

	s.Ledger.Save("student@gmail.com", models.VideoProgress{VideoID: "v1", WatchedSeconds: 42})
	s.Ledger.Save("student@gmail.com", models.VideoProgress{VideoID: "v1", WatchedSeconds: 120})

	record, ok := s.Ledger.Get("student@gmail.com", "v1")
	require.True(t, ok)
	assert.Equal(t, 120.0, record.WatchedSeconds)
	assert.Len(t, s.Ledger.GetAll("student@gmail.com"), 1)
}

func TestLedgerCompletedIsSticky(t *testing.T) {
	s := newTestStore(t)

	s.Ledger.Save("student@gmail.com", models.VideoProgress{VideoID: "v1", WatchedSeconds: 595, Completed: true})

	// A later partial sample must not uncomplete the record
	saved := s.Ledger.Save("student@gmail.com", models.VideoProgress{VideoID: "v1", WatchedSeconds: 5, Completed: false})
	assert.True(t, saved.Completed)

	record, ok := s.Ledger.Get("student@gmail.com", "v1")
	require.True(t, ok)
	assert.True(t, record.Completed)
	assert.Equal(t, 5.0, record.WatchedSeconds)
}

func TestResumePosition(t *testing.T) {
	s := newTestStore(t)

	// No record: start at 0
	assert.Equal(t, 0.0, s.Ledger.ResumePosition("student@gmail.com", "v1", 100))

	// Uncompleted record: resume at the stored position
	s.Ledger.Save("student@gmail.com", models.VideoProgress{VideoID: "v1", WatchedSeconds: 42})
	assert.Equal(t, 42.0, s.Ledger.ResumePosition("student@gmail.com", "v1", 100))

	// Completed record: start over
	s.Ledger.Save("student@gmail.com", models.VideoProgress{VideoID: "v1", WatchedSeconds: 99, Completed: true})
	assert.Equal(t, 0.0, s.Ledger.ResumePosition("student@gmail.com", "v1", 100))
}

func TestResumePositionClampedBelowDuration(t *testing.T) {
	s := newTestStore(t)

	s.Ledger.Save("student@gmail.com", models.VideoProgress{VideoID: "v1", WatchedSeconds: 150})
	assert.Equal(t, 99.0, s.Ledger.ResumePosition("student@gmail.com", "v1", 100))
}
