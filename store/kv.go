package store

import (
	"encoding/json"
	"log"

	"lumina/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Namespaced storage keys. Per-user collections append "_<email>".
const (
	KeyUsers         = "users"
	KeyCurrentUser   = "currentUser"
	KeyCourses       = "courses"
	KeyVideos        = "videos"
	KeyQuizzes       = "quizzes"
	KeyNotifications = "notifications"
	KeyChat          = "chat"
	KeySchedule      = "schedule"
	KeySubmissions   = "submissions"
	KeyTheme         = "theme"
)

func videoProgressKey(email string) string { return "videoProgress_" + email }

func courseProgressKey(email string) string { return "courseProgress_" + email }

func enrollmentsKey(email string) string { return "enrollments_" + email }

// KV is the JSON key-value store backing all collections. Values are whole
// JSON documents keyed by the namespaced keys above.
type KV struct {
	db *gorm.DB
}

func NewKV(db *gorm.DB) *KV {
	return &KV{db: db}
}

// Get decodes the value stored under key into out. A missing key or a value
// that fails to decode leaves out at its zero value and returns false; read
// failures are never surfaced as errors.
func (kv *KV) Get(key string, out interface{}) bool {
	var entry models.KVEntry
	if err := kv.db.Where("key = ?", key).First(&entry).Error; err != nil {
		return false
	}
	if err := json.Unmarshal(entry.Value, out); err != nil {
		log.Printf("Corrupt value under key %q, treating as empty: %v", key, err)
		return false
	}
	return true
}

// Set encodes value as JSON and upserts it under key
func (kv *KV) Set(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	entry := models.KVEntry{Key: key, Value: raw}
	return kv.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry).Error
}

// Delete removes key. Deleting an absent key is a no-op.
func (kv *KV) Delete(key string) error {
	return kv.db.Where("key = ?", key).Delete(&models.KVEntry{}).Error
}

// Has reports whether key is present
func (kv *KV) Has(key string) bool {
	var count int64
	kv.db.Model(&models.KVEntry{}).Where("key = ?", key).Count(&count)
	return count > 0
}
