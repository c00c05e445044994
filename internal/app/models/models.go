package models

// Role is the numeric role id persisted in users.role_id and embedded in tokens.
type Role int64

const (
	RoleAdmin   Role = 1
	RoleManager Role = 2
	RoleUser    Role = 3
	RoleGuest   Role = 4
	RoleNew     Role = 5
	RoleDummy   Role = 6
)

var roleNames = map[Role]string{
	RoleAdmin:   "ADMIN",
	RoleManager: "MANAGER",
	RoleUser:    "USER",
	RoleGuest:   "GUEST",
	RoleNew:     "NEW",
	RoleDummy:   "DUMMY",
}

// String returns the role name, or "UNKNOWN" for ids outside the role table.
func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "UNKNOWN"
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

// ProjectStatus tracks a project through pitching → active → ended|cancelled → archived.
type ProjectStatus int64

const (
	ProjectStatusPitching  ProjectStatus = 1
	ProjectStatusActive    ProjectStatus = 2
	ProjectStatusEnded     ProjectStatus = 3
	ProjectStatusCancelled ProjectStatus = 4
	ProjectStatusArchived  ProjectStatus = 5
)

// Valid reports whether s is a known status id. Transitions are not restricted.
func (s ProjectStatus) Valid() bool {
	return s >= ProjectStatusPitching && s <= ProjectStatusArchived
}

func (s ProjectStatus) String() string {
	switch s {
	case ProjectStatusPitching:
		return "pitching"
	case ProjectStatusActive:
		return "active"
	case ProjectStatusEnded:
		return "ended"
	case ProjectStatusCancelled:
		return "cancelled"
	case ProjectStatusArchived:
		return "archived"
	}
	return "unknown"
}

// AllProjectStatuses lists every status id in progression order.
var AllProjectStatuses = []ProjectStatus{
	ProjectStatusPitching,
	ProjectStatusActive,
	ProjectStatusEnded,
	ProjectStatusCancelled,
	ProjectStatusArchived,
}
