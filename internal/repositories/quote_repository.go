package repositories

import (
	"context"
	"database/sql"
	"errors"

	"dwelloBack/internal/models"
)

type QuoteRepository struct {
	DB          *sql.DB
	RequestRepo *ServiceRequestRepository
}

// CreateQuote inserts the quote with its line items and fires the
// pending -> quoted transition on the request, all in one transaction.
func (r *QuoteRepository) CreateQuote(ctx context.Context, q models.Quote) (models.Quote, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Quote{}, err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO quotes (request_id, pro_id, total_amount, status, notes, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`
	err = tx.QueryRowContext(ctx, query,
		q.RequestID, q.ProID, q.TotalAmount, models.QuoteOffered, q.Notes, q.ExpiresAt,
	).Scan(&q.ID, &q.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return models.Quote{}, models.ErrRequestNotFound
		}
		return models.Quote{}, err
	}
	q.Status = models.QuoteOffered

	for i := range q.Items {
		item := &q.Items[i]
		item.QuoteID = q.ID
		item.Total = item.Quantity * item.UnitPrice
		err = tx.QueryRowContext(ctx,
			`INSERT INTO quote_items (quote_id, description, quantity, unit_price, total) VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			item.QuoteID, item.Description, item.Quantity, item.UnitPrice, item.Total,
		).Scan(&item.ID)
		if err != nil {
			return models.Quote{}, err
		}
	}

	if err := r.RequestRepo.LinkQuoteTx(ctx, tx, q.RequestID, q.ID); err != nil {
		return models.Quote{}, err
	}
	if err := tx.Commit(); err != nil {
		return models.Quote{}, err
	}
	return q, nil
}

func (r *QuoteRepository) GetQuoteByID(ctx context.Context, id int) (models.Quote, error) {
	query := `
		SELECT id, request_id, pro_id, total_amount, status, notes, expires_at, created_at
		FROM quotes
		WHERE id = $1
	`
	var q models.Quote
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&q.ID, &q.RequestID, &q.ProID, &q.TotalAmount, &q.Status, &q.Notes, &q.ExpiresAt, &q.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Quote{}, models.ErrQuoteNotFound
	}
	if err != nil {
		return models.Quote{}, err
	}

	items, err := r.getItems(ctx, q.ID)
	if err != nil {
		return models.Quote{}, err
	}
	q.Items = items
	return q, nil
}

func (r *QuoteRepository) getItems(ctx context.Context, quoteID int) ([]models.QuoteItem, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, quote_id, description, quantity, unit_price, total FROM quote_items WHERE quote_id = $1 ORDER BY id`,
		quoteID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.QuoteItem
	for rows.Next() {
		var it models.QuoteItem
		if err := rows.Scan(&it.ID, &it.QuoteID, &it.Description, &it.Quantity, &it.UnitPrice, &it.Total); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// SetStatusTx records quote acceptance or decline alongside the request
// transition.
func (r *QuoteRepository) SetStatusTx(ctx context.Context, tx *sql.Tx, quoteID int, status string) error {
	_, err := tx.ExecContext(ctx, `UPDATE quotes SET status = $1 WHERE id = $2`, status, quoteID)
	return err
}
