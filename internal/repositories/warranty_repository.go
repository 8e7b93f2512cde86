package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"dwelloBack/internal/models"
)

type WarrantyRepository struct {
	DB *sql.DB
}

func (r *WarrantyRepository) CreateWarranty(ctx context.Context, w models.Warranty) (models.Warranty, error) {
	query := `
		INSERT INTO warranties (home_id, record_id, item, provider, starts_at, expires_at, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		w.HomeID, w.RecordID, w.Item, w.Provider, w.StartsAt, w.ExpiresAt, w.Notes,
	).Scan(&w.ID, &w.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return models.Warranty{}, models.ErrHomeNotFound
		}
		return models.Warranty{}, err
	}
	return w, nil
}

func (r *WarrantyRepository) GetWarrantyByID(ctx context.Context, id int) (models.Warranty, error) {
	query := `
		SELECT id, home_id, record_id, item, provider, starts_at, expires_at, notes, created_at, updated_at
		FROM warranties
		WHERE id = $1
	`
	var w models.Warranty
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&w.ID, &w.HomeID, &w.RecordID, &w.Item, &w.Provider, &w.StartsAt, &w.ExpiresAt, &w.Notes, &w.CreatedAt, &w.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Warranty{}, models.ErrWarrantyNotFound
	}
	if err != nil {
		return models.Warranty{}, err
	}
	return w, nil
}

func (r *WarrantyRepository) GetWarrantiesByHome(ctx context.Context, homeID int) ([]models.Warranty, error) {
	return r.list(ctx, `
		SELECT id, home_id, record_id, item, provider, starts_at, expires_at, notes, created_at, updated_at
		FROM warranties
		WHERE home_id = $1
		ORDER BY expires_at
	`, homeID)
}

// GetExpiringWithin returns warranties still valid now but expiring inside
// the window, across all homes; the reminder notifier uses it.
func (r *WarrantyRepository) GetExpiringWithin(ctx context.Context, now time.Time, window time.Duration) ([]models.Warranty, error) {
	return r.list(ctx, `
		SELECT id, home_id, record_id, item, provider, starts_at, expires_at, notes, created_at, updated_at
		FROM warranties
		WHERE expires_at > $1 AND expires_at <= $2
		ORDER BY expires_at
	`, now, now.Add(window))
}

func (r *WarrantyRepository) list(ctx context.Context, query string, args ...any) ([]models.Warranty, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Warranty
	for rows.Next() {
		var w models.Warranty
		if err := rows.Scan(&w.ID, &w.HomeID, &w.RecordID, &w.Item, &w.Provider, &w.StartsAt, &w.ExpiresAt, &w.Notes, &w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (r *WarrantyRepository) UpdateWarranty(ctx context.Context, w models.Warranty) (models.Warranty, error) {
	query := `
		UPDATE warranties
		SET item = $1, provider = $2, starts_at = $3, expires_at = $4, notes = $5, updated_at = NOW()
		WHERE id = $6 AND home_id = $7
	`
	res, err := r.DB.ExecContext(ctx, query, w.Item, w.Provider, w.StartsAt, w.ExpiresAt, w.Notes, w.ID, w.HomeID)
	if err != nil {
		return models.Warranty{}, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return models.Warranty{}, err
	}
	if rows == 0 {
		return models.Warranty{}, models.ErrWarrantyNotFound
	}
	return r.GetWarrantyByID(ctx, w.ID)
}

func (r *WarrantyRepository) DeleteWarranty(ctx context.Context, id, homeID int) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM warranties WHERE id = $1 AND home_id = $2`, id, homeID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrWarrantyNotFound
	}
	return nil
}
