// Package auth holds the role hierarchy and the authorization predicates built on it.
package auth

import (
	"github.com/hackathon-manager/hackathon/internal/app/models"
	pkgAuth "github.com/hackathon-manager/hackathon/internal/pkg/auth"
)

// roleOrder lists roles from most to least privileged. The position is the rank.
var roleOrder = [...]models.Role{
	models.RoleAdmin,
	models.RoleManager,
	models.RoleUser,
	models.RoleGuest,
	models.RoleNew,
	models.RoleDummy,
}

// Rank returns the position of role in the hierarchy; lower is more privileged.
func Rank(role models.Role) (int, bool) {
	for i, r := range roleOrder {
		if r == role {
			return i, true
		}
	}
	return 0, false
}

// Roles returns the hierarchy, most privileged first.
func Roles() []models.Role {
	out := make([]models.Role, len(roleOrder))
	copy(out, roleOrder[:])
	return out
}

// CheckPermissions reports whether userRole is at least as privileged as requiredRole.
// Unknown or unset roles never pass.
func CheckPermissions(userRole, requiredRole models.Role) bool {
	userRank, ok := Rank(userRole)
	if !ok {
		return false
	}
	requiredRank, ok := Rank(requiredRole)
	if !ok {
		return false
	}
	return userRank <= requiredRank
}

// CanActOn reports whether the caller may act on a resource owned by ownerID:
// either the caller is the owner, or holds at least minRoleForOthers.
func CanActOn(claims *pkgAuth.Claims, ownerID int64, minRoleForOthers models.Role) bool {
	if claims == nil {
		return false
	}
	if claims.ID == ownerID {
		return true
	}
	return CheckPermissions(claims.Role, minRoleForOthers)
}

// CanAssignRole reports whether a caller holding callerRole may set target on a user.
// Role changes need Manager rank and can never grant more than the caller holds.
func CanAssignRole(callerRole, target models.Role) bool {
	if !target.Valid() {
		return false
	}
	return CheckPermissions(callerRole, models.RoleManager) && CheckPermissions(callerRole, target)
}
