package repositories

import (
	"context"
	"database/sql"

	"dwelloBack/internal/models"
)

type AttachmentRepository struct {
	DB *sql.DB
}

func (r *AttachmentRepository) CreateAttachment(ctx context.Context, a models.Attachment) (models.Attachment, error) {
	query := `
		INSERT INTO attachments (owner_type, owner_id, file_name, storage_key, mime_type, size_bytes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		a.OwnerType, a.OwnerID, a.FileName, a.StorageKey, a.MimeType, a.SizeBytes,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return models.Attachment{}, err
	}
	return a, nil
}

func getAttachments(ctx context.Context, db *sql.DB, ownerType string, ownerID int) ([]models.Attachment, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, owner_type, owner_id, file_name, storage_key, mime_type, size_bytes, created_at
		 FROM attachments WHERE owner_type = $1 AND owner_id = $2 ORDER BY id`,
		ownerType, ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Attachment
	for rows.Next() {
		var a models.Attachment
		if err := rows.Scan(&a.ID, &a.OwnerType, &a.OwnerID, &a.FileName, &a.StorageKey, &a.MimeType, &a.SizeBytes, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AttachmentRepository) GetAttachments(ctx context.Context, ownerType string, ownerID int) ([]models.Attachment, error) {
	return getAttachments(ctx, r.DB, ownerType, ownerID)
}
