package auth

import (
	"testing"

	"github.com/hackathon-manager/hackathon/internal/app/models"
	"github.com/stretchr/testify/assert"
)

func privateUser() models.User {
	return models.User{
		ID:                 3,
		Name:               "Ada",
		Email:              "ada@example.com",
		Telephone:          "+49 123",
		IsPrivateEmail:     true,
		IsPrivateTelephone: true,
	}
}

func TestFilterUserHidesPrivateFields(t *testing.T) {
	for _, role := range []models.Role{models.RoleUser, models.RoleGuest, models.RoleNew, models.RoleDummy} {
		got := FilterUser(privateUser(), role)
		assert.Empty(t, got.Email, role.String())
		assert.Empty(t, got.Telephone, role.String())
		assert.Equal(t, "Ada", got.Name)
	}
}

func TestFilterUserManagerSeesEverything(t *testing.T) {
	for _, role := range []models.Role{models.RoleAdmin, models.RoleManager} {
		got := FilterUser(privateUser(), role)
		assert.Equal(t, "ada@example.com", got.Email)
		assert.Equal(t, "+49 123", got.Telephone)
	}
}

func TestFilterUserKeepsPublicFields(t *testing.T) {
	u := privateUser()
	u.IsPrivateEmail = false

	got := FilterUser(u, models.RoleGuest)
	assert.Equal(t, "ada@example.com", got.Email)
	assert.Empty(t, got.Telephone)
}

func TestFilterUsersLeavesInputUntouched(t *testing.T) {
	in := []models.User{privateUser(), privateUser()}
	out := FilterUsers(in, models.RoleUser)

	assert.Len(t, out, 2)
	assert.Empty(t, out[0].Email)
	assert.Equal(t, "ada@example.com", in[0].Email)
}
