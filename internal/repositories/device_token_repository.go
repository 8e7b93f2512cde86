package repositories

import (
	"context"
	"database/sql"
)

type DeviceTokenRepository struct {
	DB *sql.DB
}

// SaveToken upserts the FCM registration token for a user.
func (r *DeviceTokenRepository) SaveToken(ctx context.Context, userID int, token string) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO device_tokens (user_id, token, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE SET token = EXCLUDED.token, created_at = NOW()
	`, userID, token)
	return err
}

func (r *DeviceTokenRepository) GetToken(ctx context.Context, userID int) (string, error) {
	var token string
	err := r.DB.QueryRowContext(ctx, `SELECT token FROM device_tokens WHERE user_id = $1`, userID).Scan(&token)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return token, nil
}
