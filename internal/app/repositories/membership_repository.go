package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/hackathon-manager/hackathon/internal/app/models"
	"github.com/hackathon-manager/hackathon/internal/pkg/logger"
)

// MembershipRepository handles one of the two project join tables,
// participants or initiators. Both share the same shape.
type MembershipRepository struct {
	db   DBTX
	kind models.MembershipKind
}

// NewParticipantRepository creates a repository over the participants table
func NewParticipantRepository(db DBTX) *MembershipRepository {
	return &MembershipRepository{db: db, kind: models.KindParticipant}
}

// NewInitiatorRepository creates a repository over the initiators table
func NewInitiatorRepository(db DBTX) *MembershipRepository {
	return &MembershipRepository{db: db, kind: models.KindInitiator}
}

// WithTx returns a copy of the repository bound to tx
func (r *MembershipRepository) WithTx(tx DBTX) *MembershipRepository {
	return &MembershipRepository{db: tx, kind: r.kind}
}

// Kind reports which join table the repository writes
func (r *MembershipRepository) Kind() models.MembershipKind {
	return r.kind
}

// AddMember inserts a (project, user) row
func (r *MembershipRepository) AddMember(ctx context.Context, projectID, userID int64) (*models.Membership, error) {
	query, args, err := builder.Insert(r.kind.Table()).
		Columns("project_id", "user_id").
		Values(projectID, userID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build add %s query: %w", r.kind, err)
	}

	m := &models.Membership{ProjectID: projectID, UserID: userID}
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&m.ID); err != nil {
		switch translateWriteError(err) {
		case ErrAlreadyExists:
			return nil, ErrAlreadyExists
		case ErrInvalidReference:
			return nil, ErrInvalidReference
		}
		logger.Error().Err(err).Int64("projectID", projectID).Int64("userID", userID).
			Str("kind", string(r.kind)).Msg("Error adding project member")
		return nil, fmt.Errorf("error adding %s: %w", r.kind, err)
	}
	return m, nil
}

// RemoveMember deletes the (project, user) row, ErrNotFound if absent
func (r *MembershipRepository) RemoveMember(ctx context.Context, projectID, userID int64) error {
	query, args, err := builder.Delete(r.kind.Table()).
		Where(squirrel.Eq{"project_id": projectID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build remove %s query: %w", r.kind, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("projectID", projectID).Int64("userID", userID).
			Str("kind", string(r.kind)).Msg("Error removing project member")
		return fmt.Errorf("error removing %s: %w", r.kind, err)
	}
	return requireAffected(res)
}

// ListMemberships returns rows, restricted to one project when projectID > 0
func (r *MembershipRepository) ListMemberships(ctx context.Context, projectID int64) ([]models.Membership, error) {
	qb := builder.Select("id", "project_id", "user_id").From(r.kind.Table()).OrderBy("id ASC")
	if projectID > 0 {
		qb = qb.Where(squirrel.Eq{"project_id": projectID})
	}
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list %s query: %w", r.kind, err)
	}

	rows := []models.Membership{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		logger.Error().Err(err).Int64("projectID", projectID).Str("kind", string(r.kind)).Msg("Error listing memberships")
		return nil, fmt.Errorf("error listing %s: %w", r.kind, err)
	}
	return rows, nil
}

// ListMemberUsers returns the users joined to a project through this table
func (r *MembershipRepository) ListMemberUsers(ctx context.Context, projectID int64) ([]models.User, error) {
	cols := make([]string, len(userColumns))
	for i, c := range userColumns {
		cols[i] = "u." + c
	}
	query, args, err := builder.Select(cols...).
		From(r.kind.Table() + " m").
		Join("users u ON u.id = m.user_id").
		Where(squirrel.Eq{"m.project_id": projectID}).
		OrderBy("m.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list %s users query: %w", r.kind, err)
	}

	users := []models.User{}
	if err := r.db.SelectContext(ctx, &users, query, args...); err != nil {
		logger.Error().Err(err).Int64("projectID", projectID).Str("kind", string(r.kind)).Msg("Error listing member users")
		return nil, fmt.Errorf("error listing %s users: %w", r.kind, err)
	}
	return users, nil
}

// UserInEvent reports whether userID is a participant or an initiator of any
// project of eventID. Both tables are checked whatever the repository kind.
func (r *MembershipRepository) UserInEvent(ctx context.Context, eventID, userID int64) (bool, error) {
	const query = `SELECT EXISTS (
		SELECT 1 FROM participants m JOIN projects p ON p.id = m.project_id
		WHERE p.event_id = ? AND m.user_id = ?
		UNION ALL
		SELECT 1 FROM initiators m JOIN projects p ON p.id = m.project_id
		WHERE p.event_id = ? AND m.user_id = ?
	)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, eventID, userID, eventID, userID); err != nil {
		logger.Error().Err(err).Int64("eventID", eventID).Int64("userID", userID).Msg("Error checking event membership")
		return false, fmt.Errorf("error checking event membership: %w", err)
	}
	return exists, nil
}
