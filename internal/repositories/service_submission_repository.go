package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"dwelloBack/internal/lifecycle"
	"dwelloBack/internal/models"
)

type ServiceSubmissionRepository struct {
	DB             *sql.DB
	RecordRepo     *ServiceRecordRepository
	RequestRepo    *ServiceRequestRepository
	ConnectionRepo *ConnectionRepository
}

func (r *ServiceSubmissionRepository) CreateSubmission(ctx context.Context, sub models.ServiceSubmission) (models.ServiceSubmission, error) {
	query := `
		INSERT INTO service_submissions
			(connection_id, home_id, pro_id, request_id, service_type, description, service_date, cost, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING id, created_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		sub.ConnectionID, sub.HomeID, sub.ProID, sub.RequestID,
		sub.ServiceType, sub.Description, sub.ServiceDate, sub.Cost,
		string(lifecycle.SubmissionPendingReview),
	).Scan(&sub.ID, &sub.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return models.ServiceSubmission{}, models.ErrConnectionNotFound
		}
		return models.ServiceSubmission{}, err
	}
	sub.Status = string(lifecycle.SubmissionPendingReview)
	return sub, nil
}

func (r *ServiceSubmissionRepository) GetSubmissionByID(ctx context.Context, id int) (models.ServiceSubmission, error) {
	query := `
		SELECT id, connection_id, home_id, pro_id, request_id, service_type, description,
		       service_date, cost, status, record_id, decided_at, created_at
		FROM service_submissions
		WHERE id = $1
	`
	var sub models.ServiceSubmission
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&sub.ID, &sub.ConnectionID, &sub.HomeID, &sub.ProID, &sub.RequestID,
		&sub.ServiceType, &sub.Description, &sub.ServiceDate, &sub.Cost,
		&sub.Status, &sub.RecordID, &sub.DecidedAt, &sub.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ServiceSubmission{}, models.ErrSubmissionNotFound
	}
	if err != nil {
		return models.ServiceSubmission{}, err
	}

	attachments, err := getAttachments(ctx, r.DB, models.AttachmentOwnerSubmission, sub.ID)
	if err != nil {
		return models.ServiceSubmission{}, err
	}
	sub.Attachments = attachments
	return sub, nil
}

func (r *ServiceSubmissionRepository) GetPendingByHome(ctx context.Context, homeID int) ([]models.ServiceSubmission, error) {
	query := `
		SELECT id, connection_id, home_id, pro_id, request_id, service_type, description,
		       service_date, cost, status, record_id, decided_at, created_at
		FROM service_submissions
		WHERE home_id = $1 AND status = $2
		ORDER BY created_at
	`
	rows, err := r.DB.QueryContext(ctx, query, homeID, string(lifecycle.SubmissionPendingReview))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.ServiceSubmission
	for rows.Next() {
		var sub models.ServiceSubmission
		if err := rows.Scan(
			&sub.ID, &sub.ConnectionID, &sub.HomeID, &sub.ProID, &sub.RequestID,
			&sub.ServiceType, &sub.Description, &sub.ServiceDate, &sub.Cost,
			&sub.Status, &sub.RecordID, &sub.DecidedAt, &sub.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	return out, rows.Err()
}

// decideTx flips the submission out of pending_review using the current
// status as a precondition. Two racing decisions on the same row serialize
// here: the loser updates zero rows and gets ErrAlreadyDecided.
func (r *ServiceSubmissionRepository) decideTx(ctx context.Context, tx *sql.Tx, id int, to lifecycle.SubmissionStatus, decidedAt time.Time) error {
	res, err := tx.ExecContext(ctx,
		`UPDATE service_submissions SET status = $1, decided_at = $2 WHERE id = $3 AND status = $4`,
		string(to), decidedAt, id, string(lifecycle.SubmissionPendingReview),
	)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrAlreadyDecided
	}
	return nil
}

// ApproveSubmission promotes a pending submission into a verified record and
// rewrites the connection aggregates, all in one transaction. Returns the
// created record id and the fresh aggregates.
func (r *ServiceSubmissionRepository) ApproveSubmission(ctx context.Context, sub models.ServiceSubmission, decidedAt time.Time) (int, lifecycle.ConnectionAggregates, error) {
	var agg lifecycle.ConnectionAggregates

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, agg, err
	}
	defer tx.Rollback()

	if err := r.decideTx(ctx, tx, sub.ID, lifecycle.SubmissionApproved, decidedAt); err != nil {
		return 0, agg, err
	}

	recordID, err := r.RecordRepo.CreateVerifiedTx(ctx, tx, sub)
	if err != nil {
		return 0, agg, err
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE service_submissions SET record_id = $1 WHERE id = $2`, recordID, sub.ID,
	); err != nil {
		return 0, agg, err
	}

	if sub.RequestID != nil {
		if err := r.RequestRepo.LinkRecordTx(ctx, tx, *sub.RequestID, recordID); err != nil {
			return 0, agg, err
		}
		if err := lifecycle.ApplyRequestTx(ctx, tx, *sub.RequestID, lifecycle.RequestInProgress, lifecycle.RequestCompleted); err != nil {
			// The request may have been completed through its own
			// transition already; only a real DB error aborts.
			if !errors.Is(err, models.ErrPreconditionFailed) {
				return 0, agg, err
			}
		}
	}

	works, err := r.RecordRepo.VerifiedWorksTx(ctx, tx, sub.ConnectionID)
	if err != nil {
		return 0, agg, err
	}
	agg = lifecycle.ComputeAggregates(works)
	if err := r.ConnectionRepo.UpdateAggregatesTx(ctx, tx, sub.ConnectionID, agg); err != nil {
		return 0, agg, err
	}

	if err := tx.Commit(); err != nil {
		return 0, agg, err
	}
	return recordID, agg, nil
}

// ResolveSubmission records a reject or dispute decision. Connection
// aggregates are untouched.
func (r *ServiceSubmissionRepository) ResolveSubmission(ctx context.Context, id int, to lifecycle.SubmissionStatus, decidedAt time.Time) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := r.decideTx(ctx, tx, id, to, decidedAt); err != nil {
		return err
	}
	return tx.Commit()
}
