package store

import "lumina/models"

// ProgressLedger keeps per-user, per-video watch records. It is the source
// of truth for whether a video has been consumed.
type ProgressLedger struct {
	kv *KV
}

func NewProgressLedger(kv *KV) *ProgressLedger {
	return &ProgressLedger{kv: kv}
}

// IsCompleted applies the completion rule to a watch sample: a video counts
// as completed when more than 90% has been watched or fewer than 2 seconds
// remain. The second condition guards very short videos where the two
// thresholds diverge.
func IsCompleted(watchedSeconds, durationSeconds float64) bool {
	if durationSeconds > 0 && watchedSeconds/durationSeconds > 0.9 {
		return true
	}
	return durationSeconds-watchedSeconds < 2
}

// Save upserts the watch record for (email, videoId). The record is replaced
// wholesale except for the completed flag, which is sticky: a later partial
// sample never downgrades a record that already reached completed.
func (l *ProgressLedger) Save(email string, progress models.VideoProgress) models.VideoProgress {
	key := videoProgressKey(email)

	var records []models.VideoProgress
	l.kv.Get(key, &records)

	found := false
	for i := range records {
		if records[i].VideoID == progress.VideoID {
			if records[i].Completed {
				progress.Completed = true
			}
			records[i] = progress
			found = true
			break
		}
	}
	if !found {
		records = append(records, progress)
	}

	l.kv.Set(key, records)
	return progress
}

// Get returns the watch record for (email, videoId), if any
func (l *ProgressLedger) Get(email, videoID string) (models.VideoProgress, bool) {
	var records []models.VideoProgress
	l.kv.Get(videoProgressKey(email), &records)

	for _, r := range records {
		if r.VideoID == videoID {
			return r, true
		}
	}
	return models.VideoProgress{}, false
}

// GetAll returns every watch record for the user, unordered
func (l *ProgressLedger) GetAll(email string) []models.VideoProgress {
	var records []models.VideoProgress
	l.kv.Get(videoProgressKey(email), &records)
	return records
}

// ResumePosition returns the playback position to seed when loading a video:
// the stored watched time for an uncompleted record (clamped below the media
// duration), 0 for completed or absent records.
func (l *ProgressLedger) ResumePosition(email, videoID string, durationSeconds float64) float64 {
	record, ok := l.Get(email, videoID)
	if !ok || record.Completed {
		return 0
	}
	if record.WatchedSeconds >= durationSeconds {
		pos := durationSeconds - 1
		if pos < 0 {
			pos = 0
		}
		return pos
	}
	return record.WatchedSeconds
}
