package utils

import (
	"log"
	"sync"
	"time"
)

// Reminder is a scheduled one-shot notification. The ledger core holds no
// reminder state; this scheduler is the only owner.
type Reminder struct {
	UserID    string
	ChannelID string
	Message   string
	Deadline  time.Time
}

// ReminderScheduler fires reminders when their deadline elapses. Reminders
// are not cancellable once accepted; pending timers are lost on shutdown.
type ReminderScheduler struct {
	notify func(Reminder)

	mu      sync.Mutex
	pending int
}

// NewReminderScheduler creates a scheduler that calls notify from a timer
// goroutine for each fired reminder.
func NewReminderScheduler(notify func(Reminder)) *ReminderScheduler {
	return &ReminderScheduler{notify: notify}
}

// Schedule accepts a reminder and arms its timer.
func (rs *ReminderScheduler) Schedule(r Reminder) {
	rs.mu.Lock()
	rs.pending++
	rs.mu.Unlock()

	time.AfterFunc(time.Until(r.Deadline), func() {
		rs.mu.Lock()
		rs.pending--
		rs.mu.Unlock()
		rs.notify(r)
	})
	log.Printf("Scheduled reminder for user %s at %s", r.UserID, r.Deadline.Format(time.RFC3339))
}

// Pending returns the number of armed reminders.
func (rs *ReminderScheduler) Pending() int {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.pending
}
