package auth

import "github.com/hackathon-manager/hackathon/internal/app/models"

// FilterUser returns a shallow copy of u with private contact fields blanked
// unless requesterRole is Manager or above. Self-view bypass is the caller's call.
func FilterUser(u models.User, requesterRole models.Role) models.User {
	if CheckPermissions(requesterRole, models.RoleManager) {
		return u
	}
	if u.IsPrivateEmail {
		u.Email = ""
	}
	if u.IsPrivateTelephone {
		u.Telephone = ""
	}
	return u
}

// FilterUsers applies FilterUser to every element.
func FilterUsers(users []models.User, requesterRole models.Role) []models.User {
	out := make([]models.User, len(users))
	for i, u := range users {
		out[i] = FilterUser(u, requesterRole)
	}
	return out
}
