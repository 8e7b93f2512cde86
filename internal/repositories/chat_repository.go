package repositories

import (
	"context"
	"database/sql"
	"errors"

	"dwelloBack/internal/models"
)

type ChatRepository struct {
	DB *sql.DB
}

// GetOrCreateChat returns the 1:1 chat between two users, creating it on
// first contact.
func (r *ChatRepository) GetOrCreateChat(ctx context.Context, user1ID, user2ID int) (models.Chat, error) {
	var c models.Chat
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, user1_id, user2_id, created_at
		FROM chats
		WHERE (user1_id = $1 AND user2_id = $2) OR (user1_id = $2 AND user2_id = $1)
	`, user1ID, user2ID).Scan(&c.ID, &c.User1ID, &c.User2ID, &c.CreatedAt)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return models.Chat{}, err
	}

	c.User1ID = user1ID
	c.User2ID = user2ID
	err = r.DB.QueryRowContext(ctx,
		`INSERT INTO chats (user1_id, user2_id, created_at) VALUES ($1, $2, NOW()) RETURNING id, created_at`,
		user1ID, user2ID,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return models.Chat{}, models.ErrUserNotFound
		}
		return models.Chat{}, err
	}
	return c, nil
}

func (r *ChatRepository) GetChatByID(ctx context.Context, id int) (models.Chat, error) {
	var c models.Chat
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, user1_id, user2_id, created_at FROM chats WHERE id = $1`, id,
	).Scan(&c.ID, &c.User1ID, &c.User2ID, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Chat{}, models.ErrChatNotFound
	}
	if err != nil {
		return models.Chat{}, err
	}
	return c, nil
}

func (r *ChatRepository) GetChatsByUser(ctx context.Context, userID int) ([]models.Chat, error) {
	query := `
		SELECT c.id, c.user1_id, c.user2_id, c.created_at,
		       (SELECT COUNT(*) FROM messages m WHERE m.chat_id = c.id AND m.receiver_id = $1 AND m.read_at IS NULL)
		FROM chats c
		WHERE c.user1_id = $1 OR c.user2_id = $1
		ORDER BY c.created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Chat
	for rows.Next() {
		var c models.Chat
		if err := rows.Scan(&c.ID, &c.User1ID, &c.User2ID, &c.CreatedAt, &c.Unread); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *ChatRepository) DeleteChat(ctx context.Context, id int) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM chats WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrChatNotFound
	}
	return nil
}
