package repositories

import (
	"context"
	"database/sql"
	"errors"

	"dwelloBack/internal/lifecycle"
	"dwelloBack/internal/models"
)

type ServiceRecordRepository struct {
	DB *sql.DB
}

// CreateDocumented stores a pro's record of work done outside the request
// flow. It stays unverified until the homeowner approves it.
func (r *ServiceRecordRepository) CreateDocumented(ctx context.Context, rec models.ServiceRecord) (models.ServiceRecord, error) {
	query := `
		INSERT INTO service_records
			(connection_id, home_id, pro_id, request_id, service_type, description, service_date, cost, is_verified, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, false, $9, NOW())
		RETURNING id, created_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		rec.ConnectionID, rec.HomeID, rec.ProID, rec.RequestID,
		rec.ServiceType, rec.Description, rec.ServiceDate, rec.Cost,
		string(lifecycle.RecordDocumentedUnverified),
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return models.ServiceRecord{}, models.ErrConnectionNotFound
		}
		return models.ServiceRecord{}, err
	}
	rec.IsVerified = false
	rec.Status = string(lifecycle.RecordDocumentedUnverified)
	return rec, nil
}

// CreateVerifiedTx inserts the verified record an approval promotes a
// submission into, inside the approval transaction.
func (r *ServiceRecordRepository) CreateVerifiedTx(ctx context.Context, tx *sql.Tx, sub models.ServiceSubmission) (int, error) {
	var id int
	query := `
		INSERT INTO service_records
			(connection_id, home_id, pro_id, request_id, service_type, description, service_date, cost, is_verified, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, true, $9, NOW())
		RETURNING id
	`
	err := tx.QueryRowContext(ctx, query,
		sub.ConnectionID, sub.HomeID, sub.ProID, sub.RequestID,
		sub.ServiceType, sub.Description, sub.ServiceDate, sub.Cost,
		string(lifecycle.RecordApproved),
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	_, err = tx.ExecContext(ctx,
		`UPDATE attachments SET owner_type = $1, owner_id = $2 WHERE owner_type = $3 AND owner_id = $4`,
		models.AttachmentOwnerRecord, id, models.AttachmentOwnerSubmission, sub.ID,
	)
	return id, err
}

func (r *ServiceRecordRepository) GetRecordByID(ctx context.Context, id int) (models.ServiceRecord, error) {
	query := `
		SELECT id, connection_id, home_id, pro_id, request_id, service_type, description,
		       service_date, cost, is_verified, status, created_at, updated_at
		FROM service_records
		WHERE id = $1
	`
	var rec models.ServiceRecord
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&rec.ID, &rec.ConnectionID, &rec.HomeID, &rec.ProID, &rec.RequestID,
		&rec.ServiceType, &rec.Description, &rec.ServiceDate, &rec.Cost,
		&rec.IsVerified, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ServiceRecord{}, models.ErrRecordNotFound
	}
	if err != nil {
		return models.ServiceRecord{}, err
	}

	attachments, err := getAttachments(ctx, r.DB, models.AttachmentOwnerRecord, rec.ID)
	if err != nil {
		return models.ServiceRecord{}, err
	}
	rec.Attachments = attachments
	return rec, nil
}

func (r *ServiceRecordRepository) GetRecordsByHome(ctx context.Context, homeID int, verifiedOnly bool) ([]models.ServiceRecord, error) {
	query := `
		SELECT id, connection_id, home_id, pro_id, request_id, service_type, description,
		       service_date, cost, is_verified, status, created_at, updated_at
		FROM service_records
		WHERE home_id = $1
	`
	if verifiedOnly {
		query += ` AND is_verified = true`
	}
	query += ` ORDER BY service_date DESC`

	rows, err := r.DB.QueryContext(ctx, query, homeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.ServiceRecord
	for rows.Next() {
		var rec models.ServiceRecord
		if err := rows.Scan(
			&rec.ID, &rec.ConnectionID, &rec.HomeID, &rec.ProID, &rec.RequestID,
			&rec.ServiceType, &rec.Description, &rec.ServiceDate, &rec.Cost,
			&rec.IsVerified, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// VerifiedWorksTx loads the full verified set for a connection inside the
// approval transaction; the aggregates are recomputed from it rather than
// incremented.
func (r *ServiceRecordRepository) VerifiedWorksTx(ctx context.Context, tx *sql.Tx, connectionID int) ([]lifecycle.VerifiedWork, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT cost, service_date FROM service_records WHERE connection_id = $1 AND is_verified = true`,
		connectionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var works []lifecycle.VerifiedWork
	for rows.Next() {
		var w lifecycle.VerifiedWork
		if err := rows.Scan(&w.Cost, &w.ServiceDate); err != nil {
			return nil, err
		}
		works = append(works, w)
	}
	return works, rows.Err()
}
