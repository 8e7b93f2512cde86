package models

import "time"

type Reminder struct {
	ID             int        `json:"id"`
	HomeID         int        `json:"home_id"`
	UserID         int        `json:"user_id"`
	Title          string     `json:"title"`
	Notes          string     `json:"notes,omitempty"`
	DueDate        time.Time  `json:"due_date"`
	Frequency      string     `json:"frequency"` // once, monthly, quarterly, yearly
	Status         string     `json:"status"`    // active, done, dismissed
	LastNotifiedAt *time.Time `json:"last_notified_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

const (
	ReminderActive    = "active"
	ReminderDone      = "done"
	ReminderDismissed = "dismissed"

	FrequencyOnce      = "once"
	FrequencyMonthly   = "monthly"
	FrequencyQuarterly = "quarterly"
	FrequencyYearly    = "yearly"
)

// NextDueDate advances a recurring reminder past the given due date.
// One-shot reminders return the zero time.
func NextDueDate(due time.Time, frequency string) time.Time {
	switch frequency {
	case FrequencyMonthly:
		return due.AddDate(0, 1, 0)
	case FrequencyQuarterly:
		return due.AddDate(0, 3, 0)
	case FrequencyYearly:
		return due.AddDate(1, 0, 0)
	}
	return time.Time{}
}
