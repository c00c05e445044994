package dto

import "github.com/hackathon-manager/hackathon/internal/app/models"

// CreateProjectRequest creates a project together with its initiators
type CreateProjectRequest struct {
	EventID         int64                `json:"event_id" binding:"required,gt=0"`
	StatusID        models.ProjectStatus `json:"status_id" binding:"omitempty,project_status"`
	Idea            string               `json:"idea" binding:"required,max=200"`
	Description     string               `json:"description"`
	TeamName        string               `json:"team_name" binding:"max=100"`
	TeamDescription string               `json:"team_description"`
	MaxTeamSize     int                  `json:"max_team_size" binding:"min=0"`
	TeamsChannelID  string               `json:"teams_channel_id"`
	Location        string               `json:"location"`
	Initiators      []int64              `json:"initiators" binding:"required,min=1,dive,gt=0"`
}

// UpdateProjectRequest is a partial update; nil fields are left unchanged
type UpdateProjectRequest struct {
	StatusID        *models.ProjectStatus `json:"status_id" binding:"omitempty,project_status"`
	Idea            *string               `json:"idea" binding:"omitempty,min=1,max=200"`
	Description     *string               `json:"description"`
	TeamName        *string               `json:"team_name" binding:"omitempty,max=100"`
	TeamDescription *string               `json:"team_description"`
	MaxTeamSize     *int                  `json:"max_team_size" binding:"omitempty,min=0"`
	TeamsChannelID  *string               `json:"teams_channel_id"`
	Location        *string               `json:"location"`
}

// MembershipRequest names a (project, user) pair for participants and initiators
type MembershipRequest struct {
	ProjectID int64 `json:"project_id" binding:"required,gt=0"`
	UserID    int64 `json:"user_id" binding:"required,gt=0"`
}
