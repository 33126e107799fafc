package store

import (
	"fmt"
	"strings"
	"testing"

	"lumina/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestStore builds a store on a private in-memory database
func newTestStore(t *testing.T) *Store {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.KVEntry{}))

	return New(db)
}

// seedCourseVideos stores count videos for courseID, ids "<courseID>-v1"...
func seedCourseVideos(t *testing.T, s *Store, courseID string, count int) []string {
	t.Helper()

	var videos []models.Video
	s.KV.Get(KeyVideos, &videos)

	ids := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		id := fmt.Sprintf("%s-v%d", courseID, i)
		videos = append(videos, models.Video{
			ID:       id,
			CourseID: courseID,
			Title:    fmt.Sprintf("Lesson %d", i),
			Duration: "10:00",
			Order:    i,
		})
		ids = append(ids, id)
	}
	require.NoError(t, s.KV.Set(KeyVideos, videos))
	return ids
}
