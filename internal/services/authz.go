package services

import (
	"context"

	"dwelloBack/internal/models"
	"dwelloBack/internal/repositories"
)

// ensureHomeOwner verifies the actor owns the home. Admins pass.
func ensureHomeOwner(ctx context.Context, repo *repositories.HomeRepository, actor models.Actor, homeID int) error {
	if actor.Role == "admin" {
		return nil
	}
	home, err := repo.GetHomeByID(ctx, homeID)
	if err != nil {
		return err
	}
	if home.OwnerID != actor.UserID {
		return models.ErrPermissionDenied
	}
	return nil
}

// ensureActiveConnection verifies the connection exists, is active, and ties
// the given home to the given pro.
func ensureActiveConnection(ctx context.Context, repo *repositories.ConnectionRepository, connectionID, homeID, proID int) (models.Connection, error) {
	conn, err := repo.GetConnectionByID(ctx, connectionID)
	if err != nil {
		return models.Connection{}, err
	}
	if conn.Status != models.ConnectionActive {
		return models.Connection{}, models.ErrConnectionRevoked
	}
	if (homeID != 0 && conn.HomeID != homeID) || (proID != 0 && conn.ProID != proID) {
		return models.Connection{}, models.ErrPermissionDenied
	}
	return conn, nil
}
