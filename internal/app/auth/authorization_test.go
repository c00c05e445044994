package auth

import (
	"testing"

	"github.com/hackathon-manager/hackathon/internal/app/models"
	pkgAuth "github.com/hackathon-manager/hackathon/internal/pkg/auth"
	"github.com/stretchr/testify/assert"
)

func TestCheckPermissions(t *testing.T) {
	tests := []struct {
		name     string
		user     models.Role
		required models.Role
		want     bool
	}{
		{"admin passes everything", models.RoleAdmin, models.RoleDummy, true},
		{"admin passes admin", models.RoleAdmin, models.RoleAdmin, true},
		{"manager below admin", models.RoleManager, models.RoleAdmin, false},
		{"user passes user", models.RoleUser, models.RoleUser, true},
		{"guest fails user", models.RoleGuest, models.RoleUser, false},
		{"guest passes guest", models.RoleGuest, models.RoleGuest, true},
		{"new fails guest", models.RoleNew, models.RoleGuest, false},
		{"dummy fails new", models.RoleDummy, models.RoleNew, false},
		{"unset role never passes", models.Role(0), models.RoleDummy, false},
		{"unknown required role", models.RoleAdmin, models.Role(42), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckPermissions(tt.user, tt.required))
		})
	}
}

func TestRolesOrder(t *testing.T) {
	roles := Roles()
	assert.Equal(t, []models.Role{
		models.RoleAdmin, models.RoleManager, models.RoleUser,
		models.RoleGuest, models.RoleNew, models.RoleDummy,
	}, roles)

	// Mutating the copy leaves the hierarchy intact
	roles[0] = models.RoleDummy
	rank, ok := Rank(models.RoleAdmin)
	assert.True(t, ok)
	assert.Equal(t, 0, rank)
}

func TestCanActOn(t *testing.T) {
	user := &pkgAuth.Claims{ID: 7, Role: models.RoleUser}
	manager := &pkgAuth.Claims{ID: 1, Role: models.RoleManager}

	assert.True(t, CanActOn(user, 7, models.RoleManager))
	assert.False(t, CanActOn(user, 8, models.RoleManager))
	assert.True(t, CanActOn(manager, 8, models.RoleManager))
	assert.False(t, CanActOn(nil, 7, models.RoleDummy))
}

func TestCanAssignRole(t *testing.T) {
	assert.True(t, CanAssignRole(models.RoleAdmin, models.RoleAdmin))
	assert.True(t, CanAssignRole(models.RoleManager, models.RoleManager))
	assert.True(t, CanAssignRole(models.RoleManager, models.RoleGuest))
	assert.False(t, CanAssignRole(models.RoleManager, models.RoleAdmin))
	assert.False(t, CanAssignRole(models.RoleUser, models.RoleGuest))
	assert.False(t, CanAssignRole(models.RoleAdmin, models.Role(9)))
}
