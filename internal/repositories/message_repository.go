package repositories

import (
	"context"
	"database/sql"
	"time"

	"dwelloBack/internal/models"
)

type MessageRepository struct {
	DB *sql.DB
}

func (r *MessageRepository) CreateMessage(ctx context.Context, m models.Message) (models.Message, error) {
	query := `
		INSERT INTO messages (chat_id, sender_id, receiver_id, text, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	err := r.DB.QueryRowContext(ctx, query, m.ChatID, m.SenderID, m.ReceiverID, m.Text, m.CreatedAt).Scan(&m.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return models.Message{}, models.ErrChatNotFound
		}
		return models.Message{}, err
	}
	return m, nil
}

func (r *MessageRepository) GetMessagesByChat(ctx context.Context, chatID int) ([]models.Message, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, chat_id, sender_id, receiver_id, text, created_at, read_at
		FROM messages
		WHERE chat_id = $1
		ORDER BY created_at
	`, chatID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.ChatID, &m.SenderID, &m.ReceiverID, &m.Text, &m.CreatedAt, &m.ReadAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *MessageRepository) MarkRead(ctx context.Context, chatID, readerID int, now time.Time) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE messages SET read_at = $1 WHERE chat_id = $2 AND receiver_id = $3 AND read_at IS NULL`,
		now, chatID, readerID,
	)
	return err
}

func (r *MessageRepository) DeleteMessage(ctx context.Context, id, senderID int) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM messages WHERE id = $1 AND sender_id = $2`, id, senderID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrMessageNotFound
	}
	return nil
}
