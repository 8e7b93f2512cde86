package repositories

import (
	"context"
	"database/sql"
	"errors"

	"dwelloBack/internal/lifecycle"
	"dwelloBack/internal/models"
)

type ConnectionRepository struct {
	DB *sql.DB
}

func (r *ConnectionRepository) CreateConnection(ctx context.Context, c models.Connection) (models.Connection, error) {
	query := `
		INSERT INTO connections (home_id, pro_id, status, verified_work_count, total_spent, created_at)
		VALUES ($1, $2, $3, 0, 0, NOW())
		RETURNING id, created_at
	`
	err := r.DB.QueryRowContext(ctx, query, c.HomeID, c.ProID, models.ConnectionActive).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return models.Connection{}, models.ErrHomeNotFound
		}
		return models.Connection{}, err
	}
	c.Status = models.ConnectionActive
	return c, nil
}

const connectionSelect = `
	SELECT c.id, c.home_id, c.pro_id, c.status, c.verified_work_count, c.total_spent, c.last_service_date, c.created_at,
	       u.id, u.name, u.surname, u.company_name, u.trade, u.review_rating, u.avatar_path
	FROM connections c
	JOIN users u ON c.pro_id = u.id
`

func scanConnection(row interface{ Scan(...any) error }) (models.Connection, error) {
	var c models.Connection
	err := row.Scan(
		&c.ID, &c.HomeID, &c.ProID, &c.Status, &c.VerifiedWorkCount, &c.TotalSpent, &c.LastServiceDate, &c.CreatedAt,
		&c.Pro.ID, &c.Pro.Name, &c.Pro.Surname, &c.Pro.CompanyName, &c.Pro.Trade, &c.Pro.ReviewRating, &c.Pro.AvatarPath,
	)
	return c, err
}

func (r *ConnectionRepository) GetConnectionByID(ctx context.Context, id int) (models.Connection, error) {
	c, err := scanConnection(r.DB.QueryRowContext(ctx, connectionSelect+` WHERE c.id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Connection{}, models.ErrConnectionNotFound
	}
	if err != nil {
		return models.Connection{}, err
	}
	return c, nil
}

func (r *ConnectionRepository) GetConnectionsByHome(ctx context.Context, homeID int) ([]models.Connection, error) {
	return r.list(ctx, connectionSelect+` WHERE c.home_id = $1 ORDER BY c.created_at`, homeID)
}

func (r *ConnectionRepository) GetConnectionsByPro(ctx context.Context, proID int) ([]models.Connection, error) {
	return r.list(ctx, connectionSelect+` WHERE c.pro_id = $1 ORDER BY c.created_at`, proID)
}

func (r *ConnectionRepository) list(ctx context.Context, query string, arg any) ([]models.Connection, error) {
	rows, err := r.DB.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Connection
	for rows.Next() {
		c, err := scanConnection(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// RevokeConnection flips an active connection to revoked. Revoking twice is
// a precondition failure, not a silent no-op.
func (r *ConnectionRepository) RevokeConnection(ctx context.Context, id int) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE connections SET status = $1 WHERE id = $2 AND status = $3`,
		models.ConnectionRevoked, id, models.ConnectionActive,
	)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrConnectionRevoked
	}
	return nil
}

// UpdateAggregatesTx rewrites the derived counters inside the caller's
// transaction.
func (r *ConnectionRepository) UpdateAggregatesTx(ctx context.Context, tx *sql.Tx, connectionID int, agg lifecycle.ConnectionAggregates) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE connections SET verified_work_count = $1, total_spent = $2, last_service_date = $3 WHERE id = $4`,
		agg.VerifiedWorkCount, agg.TotalSpent, agg.LastServiceDate, connectionID,
	)
	return err
}
