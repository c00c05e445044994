package services

import (
	"context"
	"errors"
	"fmt"

	appAuth "github.com/hackathon-manager/hackathon/internal/app/auth"
	"github.com/hackathon-manager/hackathon/internal/app/models"
	"github.com/hackathon-manager/hackathon/internal/app/repositories"
	"github.com/hackathon-manager/hackathon/internal/db"
	"github.com/hackathon-manager/hackathon/internal/pkg/apperrors"
	"github.com/hackathon-manager/hackathon/internal/pkg/auth"
	"github.com/hackathon-manager/hackathon/internal/pkg/events"
)

// Transactor runs a function inside a database transaction
type Transactor interface {
	WithTransaction(ctx context.Context, fn db.TransactionFn) error
}

// Deps bundles what every service needs
type Deps struct {
	Repos     *repositories.Repositories
	Tx        Transactor
	Publisher events.Publisher
}

func (d Deps) publisher() events.Publisher {
	if d.Publisher == nil {
		return events.Discard{}
	}
	return d.Publisher
}

// requireSelfOrManager fails with 403 unless actor is userID or Manager+
func requireSelfOrManager(actor *auth.Claims, userID int64) error {
	if !appAuth.CanActOn(actor, userID, models.RoleManager) {
		return apperrors.NewForbiddenError(apperrors.MsgNoPermission)
	}
	return nil
}

// isManager reports whether actor holds Manager rank or above
func isManager(actor *auth.Claims) bool {
	return actor != nil && appAuth.CheckPermissions(actor.Role, models.RoleManager)
}

// notFound maps repositories.ErrNotFound to a 404 carrying msg; other errors are wrapped.
func notFound(err error, msg, op string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return apperrors.NewResourceNotFoundError(msg)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// conflict maps repositories.ErrAlreadyExists to a 409; other errors are wrapped.
func conflict(err error, op string) error {
	if errors.Is(err, repositories.ErrAlreadyExists) {
		return apperrors.NewConflictError(apperrors.MsgAlreadyExists)
	}
	return fmt.Errorf("%s: %w", op, err)
}
