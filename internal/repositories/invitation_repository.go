package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"dwelloBack/internal/models"
)

type InvitationRepository struct {
	DB             *sql.DB
	ConnectionRepo *ConnectionRepository
}

func (r *InvitationRepository) CreateInvitation(ctx context.Context, inv models.Invitation) (models.Invitation, error) {
	query := `
		INSERT INTO invitations (inviter_id, home_id, invitee_email, token, status, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`
	err := r.DB.QueryRowContext(ctx, query,
		inv.InviterID, inv.HomeID, inv.InviteeEmail, inv.Token, models.InvitationPending, inv.ExpiresAt,
	).Scan(&inv.ID, &inv.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return models.Invitation{}, models.ErrHomeNotFound
		}
		return models.Invitation{}, err
	}
	inv.Status = models.InvitationPending
	return inv, nil
}

func (r *InvitationRepository) GetInvitationByToken(ctx context.Context, token string) (models.Invitation, error) {
	query := `
		SELECT id, inviter_id, home_id, invitee_email, token, status, expires_at, accepted_by, connection_id, created_at, decided_at
		FROM invitations
		WHERE token = $1
	`
	var inv models.Invitation
	err := r.DB.QueryRowContext(ctx, query, token).Scan(
		&inv.ID, &inv.InviterID, &inv.HomeID, &inv.InviteeEmail, &inv.Token,
		&inv.Status, &inv.ExpiresAt, &inv.AcceptedBy, &inv.ConnectionID, &inv.CreatedAt, &inv.DecidedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Invitation{}, models.ErrInvitationNotFound
	}
	if err != nil {
		return models.Invitation{}, err
	}
	return inv, nil
}

func (r *InvitationRepository) GetInvitationsByHome(ctx context.Context, homeID int) ([]models.Invitation, error) {
	query := `
		SELECT id, inviter_id, home_id, invitee_email, token, status, expires_at, accepted_by, connection_id, created_at, decided_at
		FROM invitations
		WHERE home_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, homeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Invitation
	for rows.Next() {
		var inv models.Invitation
		if err := rows.Scan(
			&inv.ID, &inv.InviterID, &inv.HomeID, &inv.InviteeEmail, &inv.Token,
			&inv.Status, &inv.ExpiresAt, &inv.AcceptedBy, &inv.ConnectionID, &inv.CreatedAt, &inv.DecidedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

// AcceptInvitation consumes a pending invitation and creates the connection
// in one transaction. The status guard makes a token single-use even under
// concurrent accept attempts.
func (r *InvitationRepository) AcceptInvitation(ctx context.Context, inv models.Invitation, proID int, now time.Time) (models.Connection, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.Connection{}, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE invitations SET status = $1, accepted_by = $2, decided_at = $3 WHERE id = $4 AND status = $5`,
		models.InvitationAccepted, proID, now, inv.ID, models.InvitationPending,
	)
	if err != nil {
		return models.Connection{}, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return models.Connection{}, err
	}
	if rows == 0 {
		return models.Connection{}, models.ErrPreconditionFailed
	}

	var conn models.Connection
	conn.HomeID = inv.HomeID
	conn.ProID = proID
	conn.Status = models.ConnectionActive
	err = tx.QueryRowContext(ctx,
		`INSERT INTO connections (home_id, pro_id, status, verified_work_count, total_spent, created_at)
		 VALUES ($1, $2, $3, 0, 0, NOW()) RETURNING id, created_at`,
		conn.HomeID, conn.ProID, conn.Status,
	).Scan(&conn.ID, &conn.CreatedAt)
	if err != nil {
		return models.Connection{}, err
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE invitations SET connection_id = $1 WHERE id = $2`, conn.ID, inv.ID,
	); err != nil {
		return models.Connection{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Connection{}, err
	}
	return conn, nil
}

func (r *InvitationRepository) DeclineInvitation(ctx context.Context, id int, now time.Time) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE invitations SET status = $1, decided_at = $2 WHERE id = $3 AND status = $4`,
		models.InvitationDeclined, now, id, models.InvitationPending,
	)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrPreconditionFailed
	}
	return nil
}
