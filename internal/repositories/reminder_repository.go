package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"dwelloBack/internal/models"
)

type ReminderRepository struct {
	DB *sql.DB
}

func (r *ReminderRepository) CreateReminder(ctx context.Context, rem models.Reminder) (models.Reminder, error) {
	query := `
		INSERT INTO reminders (home_id, user_id, title, notes, due_date, frequency, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		rem.HomeID, rem.UserID, rem.Title, rem.Notes, rem.DueDate, rem.Frequency, models.ReminderActive,
	).Scan(&rem.ID, &rem.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return models.Reminder{}, models.ErrHomeNotFound
		}
		return models.Reminder{}, err
	}
	rem.Status = models.ReminderActive
	return rem, nil
}

func (r *ReminderRepository) GetReminderByID(ctx context.Context, id int) (models.Reminder, error) {
	query := `
		SELECT id, home_id, user_id, title, notes, due_date, frequency, status, last_notified_at, created_at
		FROM reminders
		WHERE id = $1
	`
	var rem models.Reminder
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&rem.ID, &rem.HomeID, &rem.UserID, &rem.Title, &rem.Notes, &rem.DueDate,
		&rem.Frequency, &rem.Status, &rem.LastNotifiedAt, &rem.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Reminder{}, models.ErrReminderNotFound
	}
	if err != nil {
		return models.Reminder{}, err
	}
	return rem, nil
}

func (r *ReminderRepository) GetRemindersByHome(ctx context.Context, homeID int) ([]models.Reminder, error) {
	return r.list(ctx, `
		SELECT id, home_id, user_id, title, notes, due_date, frequency, status, last_notified_at, created_at
		FROM reminders
		WHERE home_id = $1
		ORDER BY due_date
	`, homeID)
}

// GetDueReminders returns active reminders whose due date has arrived and
// which have not been notified since falling due.
func (r *ReminderRepository) GetDueReminders(ctx context.Context, now time.Time) ([]models.Reminder, error) {
	return r.list(ctx, `
		SELECT id, home_id, user_id, title, notes, due_date, frequency, status, last_notified_at, created_at
		FROM reminders
		WHERE status = 'active' AND due_date <= $1 AND (last_notified_at IS NULL OR last_notified_at < due_date)
		ORDER BY due_date
	`, now)
}

func (r *ReminderRepository) list(ctx context.Context, query string, args ...any) ([]models.Reminder, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Reminder
	for rows.Next() {
		var rem models.Reminder
		if err := rows.Scan(
			&rem.ID, &rem.HomeID, &rem.UserID, &rem.Title, &rem.Notes, &rem.DueDate,
			&rem.Frequency, &rem.Status, &rem.LastNotifiedAt, &rem.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rem)
	}
	return out, rows.Err()
}

// MarkNotified stamps the notification time and rolls a recurring reminder
// forward to its next due date.
func (r *ReminderRepository) MarkNotified(ctx context.Context, rem models.Reminder, now time.Time) error {
	next := models.NextDueDate(rem.DueDate, rem.Frequency)
	if next.IsZero() {
		_, err := r.DB.ExecContext(ctx,
			`UPDATE reminders SET last_notified_at = $1 WHERE id = $2`, now, rem.ID)
		return err
	}
	_, err := r.DB.ExecContext(ctx,
		`UPDATE reminders SET last_notified_at = $1, due_date = $2 WHERE id = $3`, now, next, rem.ID)
	return err
}

func (r *ReminderRepository) SetStatus(ctx context.Context, id, userID int, status string) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE reminders SET status = $1 WHERE id = $2 AND user_id = $3`, status, id, userID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrReminderNotFound
	}
	return nil
}

func (r *ReminderRepository) DeleteReminder(ctx context.Context, id, userID int) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM reminders WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrReminderNotFound
	}
	return nil
}
