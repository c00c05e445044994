package models

// Project is a team idea pitched at an event.
type Project struct {
	ID              int64         `json:"id" db:"id"`
	EventID         int64         `json:"event_id" db:"event_id"`
	StatusID        ProjectStatus `json:"status_id" db:"status_id"`
	Idea            string        `json:"idea" db:"idea"`
	Description     string        `json:"description" db:"description"`
	TeamName        string        `json:"team_name" db:"team_name"`
	TeamDescription string        `json:"team_description" db:"team_description"`
	MaxTeamSize     int           `json:"max_team_size" db:"max_team_size"`
	TeamsChannelID  string        `json:"teams_channel_id" db:"teams_channel_id"`
	Location        string        `json:"location" db:"location"`

	// Related entities
	Initiators   []UserSummary `json:"initiators,omitempty" db:"-"`
	Participants []UserSummary `json:"participants,omitempty" db:"-"`
}

// MembershipKind selects between the two project join tables.
type MembershipKind string

const (
	KindParticipant MembershipKind = "participant"
	KindInitiator   MembershipKind = "initiator"
)

// Table returns the join table backing the membership kind.
func (k MembershipKind) Table() string {
	if k == KindInitiator {
		return "initiators"
	}
	return "participants"
}

// Membership is a row of the participants or initiators table.
type Membership struct {
	ID        int64 `json:"id" db:"id"`
	ProjectID int64 `json:"project_id" db:"project_id"`
	UserID    int64 `json:"user_id" db:"user_id"`
}
