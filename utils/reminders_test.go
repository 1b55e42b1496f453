package utils

import (
	"testing"
	"time"
)

func TestSchedulerFiresAfterDeadline(t *testing.T) {
	fired := make(chan Reminder, 1)
	rs := NewReminderScheduler(func(r Reminder) { fired <- r })

	want := Reminder{
		UserID:    "u1",
		ChannelID: "c1",
		Message:   "stretch",
		Deadline:  time.Now().Add(20 * time.Millisecond),
	}
	rs.Schedule(want)

	if rs.Pending() != 1 {
		t.Errorf("Expected 1 pending reminder, got %d", rs.Pending())
	}

	select {
	case got := <-fired:
		if got.Message != want.Message || got.UserID != want.UserID {
			t.Errorf("Fired reminder %+v, want %+v", got, want)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Reminder did not fire")
	}

	// Pending count drains once fired
	deadline := time.Now().Add(time.Second)
	for rs.Pending() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("Pending count stuck at %d", rs.Pending())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestSchedulerPastDeadlineFiresImmediately(t *testing.T) {
	fired := make(chan Reminder, 1)
	rs := NewReminderScheduler(func(r Reminder) { fired <- r })

	rs.Schedule(Reminder{UserID: "u1", Deadline: time.Now().Add(-time.Second)})

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("Past-deadline reminder did not fire")
	}
}
