package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"dwelloBack/internal/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r *UserRepository) CreateUser(ctx context.Context, u models.User) (models.User, error) {
	query := `
		INSERT INTO users (name, surname, email, phone, password_hash, role, company_name, trade, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		u.Name, u.Surname, u.Email, u.Phone, u.Password, u.Role, u.CompanyName, u.Trade,
	).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err, "users_email_key") {
			return models.User{}, models.ErrDuplicateEmail
		}
		if isUniqueViolation(err, "users_phone_key") {
			return models.User{}, models.ErrDuplicatePhone
		}
		return models.User{}, err
	}
	u.Password = ""
	return u, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (models.User, error) {
	query := `
		SELECT id, name, surname, email, phone, role, avatar_path, company_name, trade, review_rating, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	var u models.User
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&u.ID, &u.Name, &u.Surname, &u.Email, &u.Phone, &u.Role,
		&u.AvatarPath, &u.CompanyName, &u.Trade, &u.ReviewRating,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

// GetUserByEmail returns the user with the password hash populated, for
// credential checks only.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	query := `
		SELECT id, name, surname, email, phone, password_hash, role, avatar_path, company_name, trade, review_rating, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	var u models.User
	err := r.DB.QueryRowContext(ctx, query, email).Scan(
		&u.ID, &u.Name, &u.Surname, &u.Email, &u.Phone, &u.Password, &u.Role,
		&u.AvatarPath, &u.CompanyName, &u.Trade, &u.ReviewRating,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, models.ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, u models.User) (models.User, error) {
	query := `
		UPDATE users
		SET name = $1, surname = $2, phone = $3, avatar_path = $4, company_name = $5, trade = $6, updated_at = NOW()
		WHERE id = $7
	`
	res, err := r.DB.ExecContext(ctx, query, u.Name, u.Surname, u.Phone, u.AvatarPath, u.CompanyName, u.Trade, u.ID)
	if err != nil {
		return models.User{}, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return models.User{}, err
	}
	if rows == 0 {
		return models.User{}, models.ErrUserNotFound
	}
	return r.GetUserByID(ctx, u.ID)
}

func (r *UserRepository) CreateSession(ctx context.Context, s models.Session) (models.Session, error) {
	// One refresh session per user; signing in again replaces the old one.
	if _, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE user_id = $1`, s.UserID); err != nil {
		return models.Session{}, err
	}
	query := `
		INSERT INTO sessions (user_id, role, refresh_token, expires_at, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`
	err := r.DB.QueryRowContext(ctx, query, s.UserID, s.Role, s.RefreshToken, s.ExpiresAt).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return models.Session{}, err
	}
	return s, nil
}

func (r *UserRepository) GetSessionByToken(ctx context.Context, refreshToken string) (models.Session, error) {
	query := `
		SELECT id, user_id, role, refresh_token, expires_at, created_at
		FROM sessions
		WHERE refresh_token = $1
	`
	var s models.Session
	err := r.DB.QueryRowContext(ctx, query, refreshToken).Scan(
		&s.ID, &s.UserID, &s.Role, &s.RefreshToken, &s.ExpiresAt, &s.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, nil
	}
	if err != nil {
		return models.Session{}, err
	}
	return s, nil
}

func (r *UserRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at < $1`, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
