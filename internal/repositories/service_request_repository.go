package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"dwelloBack/internal/lifecycle"
	"dwelloBack/internal/models"
)

type ServiceRequestRepository struct {
	DB *sql.DB
}

func (r *ServiceRequestRepository) CreateRequest(ctx context.Context, req models.ServiceRequest) (models.ServiceRequest, error) {
	query := `
		INSERT INTO service_requests
			(home_id, connection_id, pro_id, title, description, category, urgency, budget_min, budget_max, desired_date, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		RETURNING id, created_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		req.HomeID, req.ConnectionID, req.ProID, req.Title, req.Description,
		req.Category, req.Urgency, req.BudgetMin, req.BudgetMax, req.DesiredDate,
		string(lifecycle.RequestPending),
	).Scan(&req.ID, &req.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return models.ServiceRequest{}, models.ErrConnectionNotFound
		}
		return models.ServiceRequest{}, err
	}
	req.Status = string(lifecycle.RequestPending)
	return req, nil
}

func (r *ServiceRequestRepository) GetRequestByID(ctx context.Context, id int) (models.ServiceRequest, error) {
	query := `
		SELECT id, home_id, connection_id, pro_id, title, description, category, urgency,
		       budget_min, budget_max, desired_date, status, quote_id, record_id, created_at, updated_at
		FROM service_requests
		WHERE id = $1
	`
	var req models.ServiceRequest
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&req.ID, &req.HomeID, &req.ConnectionID, &req.ProID, &req.Title, &req.Description,
		&req.Category, &req.Urgency, &req.BudgetMin, &req.BudgetMax, &req.DesiredDate,
		&req.Status, &req.QuoteID, &req.RecordID, &req.CreatedAt, &req.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ServiceRequest{}, models.ErrRequestNotFound
	}
	if err != nil {
		return models.ServiceRequest{}, err
	}
	return req, nil
}

func (r *ServiceRequestRepository) GetRequests(ctx context.Context, f models.ServiceRequestFilter) ([]models.ServiceRequest, error) {
	var (
		conds []string
		args  []any
	)
	if f.HomeID != 0 {
		args = append(args, f.HomeID)
		conds = append(conds, fmt.Sprintf("home_id = $%d", len(args)))
	}
	if f.ProID != 0 {
		args = append(args, f.ProID)
		conds = append(conds, fmt.Sprintf("pro_id = $%d", len(args)))
	}
	if len(f.Statuses) > 0 {
		ph := make([]string, 0, len(f.Statuses))
		for _, s := range f.Statuses {
			args = append(args, s)
			ph = append(ph, fmt.Sprintf("$%d", len(args)))
		}
		conds = append(conds, "status IN ("+strings.Join(ph, ", ")+")")
	}

	query := `
		SELECT id, home_id, connection_id, pro_id, title, description, category, urgency,
		       budget_min, budget_max, desired_date, status, quote_id, record_id, created_at, updated_at
		FROM service_requests
	`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		if f.Page > 1 {
			args = append(args, (f.Page-1)*f.Limit)
			query += fmt.Sprintf(" OFFSET $%d", len(args))
		}
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.ServiceRequest
	for rows.Next() {
		var req models.ServiceRequest
		if err := rows.Scan(
			&req.ID, &req.HomeID, &req.ConnectionID, &req.ProID, &req.Title, &req.Description,
			&req.Category, &req.Urgency, &req.BudgetMin, &req.BudgetMax, &req.DesiredDate,
			&req.Status, &req.QuoteID, &req.RecordID, &req.CreatedAt, &req.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

// UpdateStatus applies a guarded status write outside any larger workflow.
func (r *ServiceRequestRepository) UpdateStatus(ctx context.Context, id int, from, to lifecycle.RequestStatus) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := lifecycle.ApplyRequestTx(ctx, tx, id, from, to); err != nil {
		return err
	}
	return tx.Commit()
}

// LinkQuoteTx sets the quote and moves pending -> quoted inside the quote
// creation transaction.
func (r *ServiceRequestRepository) LinkQuoteTx(ctx context.Context, tx *sql.Tx, requestID, quoteID int) error {
	res, err := tx.ExecContext(ctx,
		`UPDATE service_requests SET quote_id = $1, status = $2, updated_at = NOW() WHERE id = $3 AND status = $4`,
		quoteID, string(lifecycle.RequestQuoted), requestID, string(lifecycle.RequestPending),
	)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s from non-pending request", models.ErrInvalidTransition, lifecycle.ActionAttachQuote)
	}
	return nil
}

// LinkRecordTx points a request at the verified record created on approval
// and completes it when the work was tracked in_progress.
func (r *ServiceRequestRepository) LinkRecordTx(ctx context.Context, tx *sql.Tx, requestID, recordID int) error {
	_, err := tx.ExecContext(ctx,
		`UPDATE service_requests SET record_id = $1, updated_at = NOW() WHERE id = $2`,
		recordID, requestID,
	)
	return err
}
