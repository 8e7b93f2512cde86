package repositories

import (
	"context"
	"database/sql"
	"errors"

	"dwelloBack/internal/models"
)

type HomeRepository struct {
	DB *sql.DB
}

func (r *HomeRepository) CreateHome(ctx context.Context, h models.Home) (models.Home, error) {
	query := `
		INSERT INTO homes (owner_id, title, address, city, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`
	err := r.DB.QueryRowContext(ctx, query, h.OwnerID, h.Title, h.Address, h.City).Scan(&h.ID, &h.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return models.Home{}, models.ErrUserNotFound
		}
		return models.Home{}, err
	}
	return h, nil
}

func (r *HomeRepository) GetHomeByID(ctx context.Context, id int) (models.Home, error) {
	query := `
		SELECT id, owner_id, title, address, city, created_at, updated_at
		FROM homes
		WHERE id = $1
	`
	var h models.Home
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&h.ID, &h.OwnerID, &h.Title, &h.Address, &h.City, &h.CreatedAt, &h.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Home{}, models.ErrHomeNotFound
	}
	if err != nil {
		return models.Home{}, err
	}
	return h, nil
}

func (r *HomeRepository) GetHomesByOwner(ctx context.Context, ownerID int) ([]models.Home, error) {
	query := `
		SELECT id, owner_id, title, address, city, created_at, updated_at
		FROM homes
		WHERE owner_id = $1
		ORDER BY created_at
	`
	rows, err := r.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var homes []models.Home
	for rows.Next() {
		var h models.Home
		if err := rows.Scan(&h.ID, &h.OwnerID, &h.Title, &h.Address, &h.City, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, err
		}
		homes = append(homes, h)
	}
	return homes, rows.Err()
}

func (r *HomeRepository) UpdateHome(ctx context.Context, h models.Home) (models.Home, error) {
	query := `
		UPDATE homes
		SET title = $1, address = $2, city = $3, updated_at = NOW()
		WHERE id = $4 AND owner_id = $5
	`
	res, err := r.DB.ExecContext(ctx, query, h.Title, h.Address, h.City, h.ID, h.OwnerID)
	if err != nil {
		return models.Home{}, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return models.Home{}, err
	}
	if rows == 0 {
		return models.Home{}, models.ErrHomeNotFound
	}
	return r.GetHomeByID(ctx, h.ID)
}

func (r *HomeRepository) DeleteHome(ctx context.Context, id, ownerID int) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM homes WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrHomeNotFound
	}
	return nil
}
