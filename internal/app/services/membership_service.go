package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/hackathon-manager/hackathon/internal/app/models"
	"github.com/hackathon-manager/hackathon/internal/app/repositories"
	"github.com/hackathon-manager/hackathon/internal/pkg/apperrors"
	"github.com/hackathon-manager/hackathon/internal/pkg/auth"
	"github.com/hackathon-manager/hackathon/internal/pkg/events"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
)

// MembershipService manages one kind of project membership: participants or initiators
type MembershipService interface {
	Kind() models.MembershipKind
	ListMemberships(ctx context.Context, projectID int64) ([]models.Membership, error)
	AddMember(ctx context.Context, actor *auth.Claims, projectID, userID int64) (*models.Membership, error)
	RemoveMember(ctx context.Context, actor *auth.Claims, projectID, userID int64) error
}

type membershipServiceImpl struct {
	repos     *repositories.Repositories
	members   *repositories.MembershipRepository
	tx        Transactor
	publisher events.Publisher
	notFound  string
	logger    zerolog.Logger
}

// NewParticipantService creates the MembershipService for participants
func NewParticipantService(deps Deps, logger zerolog.Logger) MembershipService {
	return newMembershipService(deps, deps.Repos.ParticipantRepository, apperrors.MsgNoParticipant, logger)
}

// NewInitiatorService creates the MembershipService for initiators
func NewInitiatorService(deps Deps, logger zerolog.Logger) MembershipService {
	return newMembershipService(deps, deps.Repos.InitiatorRepository, apperrors.MsgNoInitiator, logger)
}

func newMembershipService(deps Deps, members *repositories.MembershipRepository, notFoundMsg string, logger zerolog.Logger) *membershipServiceImpl {
	return &membershipServiceImpl{
		repos:     deps.Repos,
		members:   members,
		tx:        deps.Tx,
		publisher: deps.publisher(),
		notFound:  notFoundMsg,
		logger:    logger,
	}
}

func (s *membershipServiceImpl) Kind() models.MembershipKind {
	return s.members.Kind()
}

// ListMemberships returns rows of this kind, optionally for one project
func (s *membershipServiceImpl) ListMemberships(ctx context.Context, projectID int64) ([]models.Membership, error) {
	rows, err := s.members.ListMemberships(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.Kind(), err)
	}
	return rows, nil
}

// AddMember joins userID to the project. A user may hold at most one
// participation or initiation per event; the check and the insert share one
// write transaction.
func (s *membershipServiceImpl) AddMember(ctx context.Context, actor *auth.Claims, projectID, userID int64) (*models.Membership, error) {
	if err := requireSelfOrManager(actor, userID); err != nil {
		return nil, err
	}

	var membership *models.Membership
	err := s.tx.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		project, err := s.repos.ProjectRepository.WithTx(tx).GetProjectByID(ctx, projectID)
		if err != nil {
			return notFound(err, apperrors.MsgNoProject, "add member")
		}
		membership, err = addMemberTx(ctx, s.repos.UserRepository.WithTx(tx), s.members.WithTx(tx), project.EventID, projectID, userID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(events.Event{
		Topic:    events.TopicParticipationChanged,
		Action:   "added",
		EntityID: projectID,
		Data:     map[string]interface{}{"kind": s.Kind(), "project_id": projectID, "user_id": userID},
	})
	s.logger.Info().Int64("projectID", projectID).Int64("userID", userID).Str("kind", string(s.Kind())).Msg("Project member added")
	return membership, nil
}

// addMemberTx enforces the one-project-per-event rule and inserts the row.
// All repositories must be bound to the same transaction.
func addMemberTx(ctx context.Context, users *repositories.UserRepository, members *repositories.MembershipRepository, eventID, projectID, userID int64) (*models.Membership, error) {
	if _, err := users.GetUserByID(ctx, userID); err != nil {
		return nil, notFound(err, apperrors.MsgNoUser, "add member")
	}

	taken, err := members.UserInEvent(ctx, eventID, userID)
	if err != nil {
		return nil, fmt.Errorf("add member: %w", err)
	}
	if taken {
		return nil, apperrors.NewConflictError(apperrors.MsgAlreadyExists)
	}

	m, err := members.AddMember(ctx, projectID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrInvalidReference) {
			return nil, apperrors.NewResourceNotFoundError(apperrors.MsgNoProject)
		}
		return nil, conflict(err, "add member")
	}
	return m, nil
}

// RemoveMember deletes the (project, user) row of this kind
func (s *membershipServiceImpl) RemoveMember(ctx context.Context, actor *auth.Claims, projectID, userID int64) error {
	if err := requireSelfOrManager(actor, userID); err != nil {
		return err
	}

	if err := s.members.RemoveMember(ctx, projectID, userID); err != nil {
		return notFound(err, s.notFound, "remove member")
	}

	s.publisher.Publish(events.Event{
		Topic:    events.TopicParticipationChanged,
		Action:   "removed",
		EntityID: projectID,
		Data:     map[string]interface{}{"kind": s.Kind(), "project_id": projectID, "user_id": userID},
	})
	return nil
}
