package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/hackathon-manager/hackathon/internal/app/models"
	"github.com/hackathon-manager/hackathon/internal/pkg/logger"
)

var projectColumns = []string{
	"id", "event_id", "status_id", "idea", "description", "team_name",
	"team_description", "max_team_size", "teams_channel_id", "location",
}

// ProjectRepository handles project database operations
type ProjectRepository struct {
	db DBTX
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db DBTX) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// WithTx returns a copy of the repository bound to tx
func (r *ProjectRepository) WithTx(tx DBTX) *ProjectRepository {
	return &ProjectRepository{db: tx}
}

// CreateProject inserts a project and stores the generated id on it
func (r *ProjectRepository) CreateProject(ctx context.Context, p *models.Project) error {
	query, args, err := builder.Insert("projects").
		Columns("event_id", "status_id", "idea", "description", "team_name",
			"team_description", "max_team_size", "teams_channel_id", "location").
		Values(p.EventID, p.StatusID, p.Idea, p.Description, p.TeamName,
			p.TeamDescription, p.MaxTeamSize, p.TeamsChannelID, p.Location).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create project query: %w", err)
	}

	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&p.ID); err != nil {
		switch translateWriteError(err) {
		case ErrAlreadyExists:
			return ErrAlreadyExists
		case ErrInvalidReference:
			return ErrInvalidReference
		}
		logger.Error().Err(err).Int64("eventID", p.EventID).Msg("Error creating project")
		return fmt.Errorf("error creating project: %w", err)
	}
	return nil
}

// GetProjectByID retrieves a project without its members
func (r *ProjectRepository) GetProjectByID(ctx context.Context, id int64) (*models.Project, error) {
	query, args, err := builder.Select(projectColumns...).
		From("projects").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get project query: %w", err)
	}

	var p models.Project
	if err := r.db.GetContext(ctx, &p, query, args...); err != nil {
		if noRows(err) {
			return nil, ErrNotFound
		}
		logger.Error().Err(err).Int64("projectID", id).Msg("Error fetching project")
		return nil, fmt.Errorf("error getting project: %w", err)
	}
	return &p, nil
}

// ListProjects returns projects, restricted to one event when eventID > 0
func (r *ProjectRepository) ListProjects(ctx context.Context, eventID int64) ([]models.Project, error) {
	qb := builder.Select(projectColumns...).From("projects").OrderBy("id ASC")
	if eventID > 0 {
		qb = qb.Where(squirrel.Eq{"event_id": eventID})
	}
	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list projects query: %w", err)
	}

	projects := []models.Project{}
	if err := r.db.SelectContext(ctx, &projects, query, args...); err != nil {
		logger.Error().Err(err).Int64("eventID", eventID).Msg("Error listing projects")
		return nil, fmt.Errorf("error listing projects: %w", err)
	}
	return projects, nil
}

// UpdateProject overwrites the editable project columns. event_id is fixed after creation.
func (r *ProjectRepository) UpdateProject(ctx context.Context, p *models.Project) error {
	query, args, err := builder.Update("projects").
		SetMap(map[string]interface{}{
			"status_id":        p.StatusID,
			"idea":             p.Idea,
			"description":      p.Description,
			"team_name":        p.TeamName,
			"team_description": p.TeamDescription,
			"max_team_size":    p.MaxTeamSize,
			"teams_channel_id": p.TeamsChannelID,
			"location":         p.Location,
		}).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update project query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if translateWriteError(err) == ErrAlreadyExists {
			return ErrAlreadyExists
		}
		logger.Error().Err(err).Int64("projectID", p.ID).Msg("Error updating project")
		return fmt.Errorf("error updating project: %w", err)
	}
	return requireAffected(res)
}

// DeleteProject removes a project and, by cascade, its memberships
func (r *ProjectRepository) DeleteProject(ctx context.Context, id int64) error {
	query, args, err := builder.Delete("projects").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete project query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Int64("projectID", id).Msg("Error deleting project")
		return fmt.Errorf("error deleting project: %w", err)
	}
	return requireAffected(res)
}
