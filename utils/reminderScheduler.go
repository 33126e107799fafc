package utils

import (
	"fmt"
	"log"
	"sync"
	"time"

	"lumina/config"
	"lumina/store"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[REMINDER-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

var (
	remindedMu sync.Mutex
	reminded   = make(map[string]bool)
)

// processUpcomingClasses notifies enrolled students of live classes starting
// within the next hour. Each class is announced once per process lifetime.
func processUpcomingClasses(s *store.Store) {
	now := time.Now()

	for _, class := range s.Feeds.Schedule("") {
		if class.StartTime.Before(now) || class.StartTime.After(now.Add(time.Hour)) {
			continue
		}

		remindedMu.Lock()
		seen := reminded[class.ID]
		reminded[class.ID] = true
		remindedMu.Unlock()
		if seen {
			continue
		}

		course, ok := s.Catalog.Course(class.CourseID)
		if !ok {
			continue
		}

		count := 0
		for _, user := range s.Session.Users() {
			if !s.Enrollments.IsEnrolled(user.Email, class.CourseID) {
				continue
			}
			message := fmt.Sprintf("Live class %q for %s starts at %s", class.Topic, course.Title, class.StartTime.Format(time.Kitchen))
			s.Feeds.AddNotification(user.Email, message)
			count++
		}
		logScheduler(fmt.Sprintf("Announced %q to %d enrolled students", class.Topic, count))
	}
}

// StartReminderScheduler runs the live-class reminder job on the configured
// cron schedule
func StartReminderScheduler(s *store.Store) *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc(config.AppConfig.ReminderCron, func() { processUpcomingClasses(s) }); err != nil {
		log.Printf("Failed to register reminder job: %v", err)
		return c
	}

	c.Start()
	logScheduler("Reminder scheduler started (" + config.AppConfig.ReminderCron + ")")
	return c
}
