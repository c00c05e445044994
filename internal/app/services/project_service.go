package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	appAuth "github.com/hackathon-manager/hackathon/internal/app/auth"
	"github.com/hackathon-manager/hackathon/internal/app/models"
	"github.com/hackathon-manager/hackathon/internal/app/models/dto"
	"github.com/hackathon-manager/hackathon/internal/app/repositories"
	"github.com/hackathon-manager/hackathon/internal/pkg/apperrors"
	"github.com/hackathon-manager/hackathon/internal/pkg/auth"
	"github.com/hackathon-manager/hackathon/internal/pkg/events"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
)

// ProjectService manages projects and their member lists
type ProjectService interface {
	ListProjects(ctx context.Context, eventID int64) ([]models.Project, error)
	ListEventProjects(ctx context.Context, eventID int64) ([]models.Project, error)
	GetProject(ctx context.Context, actor *auth.Claims, id int64) (*models.Project, error)
	CreateProject(ctx context.Context, actor *auth.Claims, req *dto.CreateProjectRequest) (*models.Project, error)
	UpdateProject(ctx context.Context, id int64, req *dto.UpdateProjectRequest) (*models.Project, error)
	DeleteProject(ctx context.Context, id int64) error
}

type projectServiceImpl struct {
	repos     *repositories.Repositories
	tx        Transactor
	publisher events.Publisher
	logger    zerolog.Logger
}

// NewProjectService creates a new ProjectService
func NewProjectService(deps Deps, logger zerolog.Logger) ProjectService {
	return &projectServiceImpl{
		repos:     deps.Repos,
		tx:        deps.Tx,
		publisher: deps.publisher(),
		logger:    logger,
	}
}

// ListProjects returns projects, all of them or those of one event
func (s *projectServiceImpl) ListProjects(ctx context.Context, eventID int64) ([]models.Project, error) {
	projects, err := s.repos.ProjectRepository.ListProjects(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// ListEventProjects is ListProjects for an event that must exist
func (s *projectServiceImpl) ListEventProjects(ctx context.Context, eventID int64) ([]models.Project, error) {
	if _, err := s.repos.EventRepository.GetEventByID(ctx, eventID); err != nil {
		return nil, notFound(err, apperrors.MsgNoEvent, "list event projects")
	}
	return s.ListProjects(ctx, eventID)
}

// GetProject returns a project with initiators and participants; member contact
// details follow the privacy rules for the caller.
func (s *projectServiceImpl) GetProject(ctx context.Context, actor *auth.Claims, id int64) (*models.Project, error) {
	project, err := s.repos.ProjectRepository.GetProjectByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.MsgNoProject, "get project")
	}
	if err := s.loadMembers(ctx, actor, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *projectServiceImpl) loadMembers(ctx context.Context, actor *auth.Claims, project *models.Project) error {
	initiators, err := s.repos.InitiatorRepository.ListMemberUsers(ctx, project.ID)
	if err != nil {
		return fmt.Errorf("load initiators: %w", err)
	}
	participants, err := s.repos.ParticipantRepository.ListMemberUsers(ctx, project.ID)
	if err != nil {
		return fmt.Errorf("load participants: %w", err)
	}
	project.Initiators = summaries(initiators, actor)
	project.Participants = summaries(participants, actor)
	return nil
}

func summaries(users []models.User, actor *auth.Claims) []models.UserSummary {
	out := make([]models.UserSummary, 0, len(users))
	for _, u := range users {
		if actor == nil || u.ID != actor.ID {
			var role models.Role
			if actor != nil {
				role = actor.Role
			}
			u = appAuth.FilterUser(u, role)
		}
		out = append(out, u.Summary())
	}
	return out
}

// CreateProject inserts the project and its initiators in one transaction.
// Any initiator already taking part in the event rolls the whole creation back.
// Callers below Manager must list themselves among the initiators.
func (s *projectServiceImpl) CreateProject(ctx context.Context, actor *auth.Claims, req *dto.CreateProjectRequest) (*models.Project, error) {
	initiators := dedupe(req.Initiators)
	if len(initiators) == 0 {
		return nil, apperrors.NewBadRequestError(apperrors.MsgMissingFields)
	}
	if !isManager(actor) && !containsID(initiators, actor.ID) {
		return nil, apperrors.NewForbiddenError(apperrors.MsgNoPermission)
	}

	project := &models.Project{
		EventID:         req.EventID,
		StatusID:        req.StatusID,
		Idea:            strings.TrimSpace(req.Idea),
		Description:     req.Description,
		TeamName:        req.TeamName,
		TeamDescription: req.TeamDescription,
		MaxTeamSize:     req.MaxTeamSize,
		TeamsChannelID:  req.TeamsChannelID,
		Location:        req.Location,
	}
	if project.Idea == "" {
		return nil, apperrors.NewBadRequestError(apperrors.MsgMissingFields)
	}
	if project.StatusID == 0 {
		project.StatusID = models.ProjectStatusPitching
	}
	if !project.StatusID.Valid() {
		return nil, apperrors.NewBadRequestError(apperrors.MsgInvalidStatus)
	}

	err := s.tx.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if _, err := s.repos.EventRepository.WithTx(tx).GetEventByID(ctx, project.EventID); err != nil {
			return notFound(err, apperrors.MsgNoEvent, "create project")
		}
		if err := s.repos.ProjectRepository.WithTx(tx).CreateProject(ctx, project); err != nil {
			if errors.Is(err, repositories.ErrInvalidReference) {
				return apperrors.NewResourceNotFoundError(apperrors.MsgNoEvent)
			}
			return conflict(err, "create project")
		}

		users := s.repos.UserRepository.WithTx(tx)
		members := s.repos.InitiatorRepository.WithTx(tx)
		for _, userID := range initiators {
			if _, err := addMemberTx(ctx, users, members, project.EventID, project.ID, userID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.loadMembers(ctx, actor, project); err != nil {
		return nil, err
	}

	s.publisher.Publish(events.Event{Topic: events.TopicProjectChanged, Action: "created", EntityID: project.ID})
	s.publisher.Publish(events.Event{Topic: events.TopicParticipationChanged, Action: "added", EntityID: project.ID, Recipients: initiators})
	s.logger.Info().Int64("projectID", project.ID).Int64("eventID", project.EventID).Msg("Project created")
	return project, nil
}

// UpdateProject applies a partial update. Any known status may be set.
func (s *projectServiceImpl) UpdateProject(ctx context.Context, id int64, req *dto.UpdateProjectRequest) (*models.Project, error) {
	project, err := s.repos.ProjectRepository.GetProjectByID(ctx, id)
	if err != nil {
		return nil, notFound(err, apperrors.MsgNoProject, "update project")
	}

	if req.StatusID != nil {
		if !req.StatusID.Valid() {
			return nil, apperrors.NewBadRequestError(apperrors.MsgInvalidStatus)
		}
		project.StatusID = *req.StatusID
	}
	if req.Idea != nil {
		if project.Idea = strings.TrimSpace(*req.Idea); project.Idea == "" {
			return nil, apperrors.NewBadRequestError(apperrors.MsgMissingFields)
		}
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.TeamName != nil {
		project.TeamName = *req.TeamName
	}
	if req.TeamDescription != nil {
		project.TeamDescription = *req.TeamDescription
	}
	if req.MaxTeamSize != nil {
		project.MaxTeamSize = *req.MaxTeamSize
	}
	if req.TeamsChannelID != nil {
		project.TeamsChannelID = *req.TeamsChannelID
	}
	if req.Location != nil {
		project.Location = *req.Location
	}

	if err := s.repos.ProjectRepository.UpdateProject(ctx, project); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewResourceNotFoundError(apperrors.MsgNoProject)
		}
		return nil, conflict(err, "update project")
	}

	s.publisher.Publish(events.Event{Topic: events.TopicProjectChanged, Action: "updated", EntityID: id})
	return project, nil
}

// DeleteProject removes a project and its memberships
func (s *projectServiceImpl) DeleteProject(ctx context.Context, id int64) error {
	if err := s.repos.ProjectRepository.DeleteProject(ctx, id); err != nil {
		return notFound(err, apperrors.MsgNoProject, "delete project")
	}
	s.publisher.Publish(events.Event{Topic: events.TopicProjectChanged, Action: "deleted", EntityID: id})
	s.logger.Info().Int64("projectID", id).Msg("Project deleted")
	return nil
}

func dedupe(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id > 0 && !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
