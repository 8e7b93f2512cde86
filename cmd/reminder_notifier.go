package main

import (
	"context"
	"fmt"
	"time"
)

const (
	notifierTimeout        = 1 * time.Minute
	warrantyExpiryWindow   = 30 * 24 * time.Hour
	notifierTickerInterval = 24 * time.Hour
)

// startReminderNotifier pushes due maintenance reminders and soon-to-expire
// warranties once a day.
func startReminderNotifier(app *application) {
	go func() {
		ticker := time.NewTicker(notifierTickerInterval)
		defer ticker.Stop()

		runOnce := func() {
			ctx, cancel := context.WithTimeout(context.Background(), notifierTimeout)
			defer cancel()
			now := time.Now()

			due, err := app.reminderRepo.GetDueReminders(ctx, now)
			if err != nil {
				app.errorLog.Printf("reminder notifier: load due reminders: %v", err)
			}
			for _, rem := range due {
				app.notifier.Notify(ctx, rem.UserID, "Maintenance due", rem.Title,
					fmt.Sprintf("/reminder/home/%d", rem.HomeID))
				if err := app.reminderRepo.MarkNotified(ctx, rem, now); err != nil {
					app.errorLog.Printf("reminder notifier: mark notified id=%d: %v", rem.ID, err)
				}
			}

			expiring, err := app.warrantyRepo.GetExpiringWithin(ctx, now, warrantyExpiryWindow)
			if err != nil {
				app.errorLog.Printf("reminder notifier: load expiring warranties: %v", err)
			}
			for _, wt := range expiring {
				home, err := app.homeRepo.GetHomeByID(ctx, wt.HomeID)
				if err != nil {
					app.errorLog.Printf("reminder notifier: load home %d: %v", wt.HomeID, err)
					continue
				}
				app.notifier.Notify(ctx, home.OwnerID, "Warranty expiring soon", wt.Item,
					fmt.Sprintf("/warranty/home/%d", wt.HomeID))
			}

			if len(due) > 0 || len(expiring) > 0 {
				app.infoLog.Printf("reminder notifier: %d reminders due, %d warranties expiring", len(due), len(expiring))
			}
		}

		runOnce()

		for range ticker.C {
			runOnce()
		}
	}()
}

// startSessionCleaner drops refresh sessions past their expiry.
func startSessionCleaner(app *application) {
	go func() {
		ticker := time.NewTicker(notifierTickerInterval)
		defer ticker.Stop()

		runOnce := func() {
			ctx, cancel := context.WithTimeout(context.Background(), notifierTimeout)
			defer cancel()
			deleted, err := app.userRepo.DeleteExpiredSessions(ctx, time.Now())
			if err != nil {
				app.errorLog.Printf("session cleaner: %v", err)
			} else if deleted > 0 {
				app.infoLog.Printf("session cleaner: removed %d expired sessions", deleted)
			}
		}

		runOnce()

		for range ticker.C {
			runOnce()
		}
	}()
}
