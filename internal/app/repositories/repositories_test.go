package repositories

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/hackathon-manager/hackathon/internal/app/models"
	"github.com/hackathon-manager/hackathon/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepos(t *testing.T) *Repositories {
	t.Helper()
	database, err := db.NewSQLiteDB(context.Background(), filepath.Join(t.TempDir(), "repo.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return NewRepositories(database.DB)
}

func createUser(t *testing.T, repos *Repositories, email string) *models.User {
	t.Helper()
	u := &models.User{Name: "User " + email, Email: email, RoleID: models.RoleUser, AvatarURL: models.DefaultAvatarURL, CreatedAt: 1}
	require.NoError(t, repos.UserRepository.CreateUser(context.Background(), u))
	return u
}

func createEvent(t *testing.T, repos *Repositories, name string) *models.Event {
	t.Helper()
	e := &models.Event{Name: name, StartTime: 100, EndTime: 200}
	require.NoError(t, repos.EventRepository.CreateEvent(context.Background(), e))
	return e
}

func createProject(t *testing.T, repos *Repositories, eventID int64, idea string) *models.Project {
	t.Helper()
	p := &models.Project{EventID: eventID, StatusID: models.ProjectStatusPitching, Idea: idea}
	require.NoError(t, repos.ProjectRepository.CreateProject(context.Background(), p))
	return p
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)

	u := createUser(t, repos, "Ada@Example.com")
	assert.NotZero(t, u.ID)

	got, err := repos.UserRepository.GetUserByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	dup := &models.User{Name: "Dup", Email: "ADA@example.com", RoleID: models.RoleNew}
	assert.ErrorIs(t, repos.UserRepository.CreateUser(ctx, dup), ErrAlreadyExists)

	exists, err := repos.UserRepository.EmailExists(ctx, "ada@example.com", u.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	got.Telephone = "123"
	require.NoError(t, repos.UserRepository.UpdateUser(ctx, got))
	got, err = repos.UserRepository.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "123", got.Telephone)

	require.NoError(t, repos.UserRepository.DeleteUser(ctx, u.ID))
	_, err = repos.UserRepository.GetUserByID(ctx, u.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repos.UserRepository.DeleteUser(ctx, u.ID), ErrNotFound)
}

func TestEventRepositoryUniqueName(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)

	e := createEvent(t, repos, "Spring Hack")
	err := repos.EventRepository.CreateEvent(ctx, &models.Event{Name: "spring hack", StartTime: 1, EndTime: 2})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	e.Name = "Autumn Hack"
	require.NoError(t, repos.EventRepository.UpdateEvent(ctx, e))

	events, err := repos.EventRepository.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Autumn Hack", events[0].Name)

	assert.ErrorIs(t, repos.EventRepository.UpdateEvent(ctx, &models.Event{ID: 999, Name: "x"}), ErrNotFound)
}

func TestProjectRepositoryIdeaUniquePerEvent(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)

	first := createEvent(t, repos, "First")
	second := createEvent(t, repos, "Second")
	createProject(t, repos, first.ID, "Robot")

	err := repos.ProjectRepository.CreateProject(ctx, &models.Project{EventID: first.ID, StatusID: models.ProjectStatusPitching, Idea: "robot"})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	createProject(t, repos, second.ID, "Robot")

	err = repos.ProjectRepository.CreateProject(ctx, &models.Project{EventID: 999, StatusID: models.ProjectStatusPitching, Idea: "Ghost"})
	assert.ErrorIs(t, err, ErrInvalidReference)

	projects, err := repos.ProjectRepository.ListProjects(ctx, first.ID)
	require.NoError(t, err)
	assert.Len(t, projects, 1)

	projects, err = repos.ProjectRepository.ListProjects(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, projects, 2)
}

func TestMembershipRepository(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)

	u := createUser(t, repos, "member@example.com")
	e := createEvent(t, repos, "Event")
	p1 := createProject(t, repos, e.ID, "One")
	p2 := createProject(t, repos, e.ID, "Two")

	in, err := repos.ParticipantRepository.UserInEvent(ctx, e.ID, u.ID)
	require.NoError(t, err)
	assert.False(t, in)

	_, err = repos.InitiatorRepository.AddMember(ctx, p1.ID, u.ID)
	require.NoError(t, err)

	// Either table counts
	in, err = repos.ParticipantRepository.UserInEvent(ctx, e.ID, u.ID)
	require.NoError(t, err)
	assert.True(t, in)

	_, err = repos.InitiatorRepository.AddMember(ctx, p1.ID, u.ID)
	assert.ErrorIs(t, err, ErrAlreadyExists)

	_, err = repos.ParticipantRepository.AddMember(ctx, p2.ID, 999)
	assert.ErrorIs(t, err, ErrInvalidReference)

	users, err := repos.InitiatorRepository.ListMemberUsers(ctx, p1.ID)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, u.ID, users[0].ID)

	assert.ErrorIs(t, repos.ParticipantRepository.RemoveMember(ctx, p1.ID, u.ID), ErrNotFound)
	require.NoError(t, repos.InitiatorRepository.RemoveMember(ctx, p1.ID, u.ID))

	rows, err := repos.InitiatorRepository.ListMemberships(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestDeleteEventCascades(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)

	u := createUser(t, repos, "cascade@example.com")
	e := createEvent(t, repos, "Cascade")
	p := createProject(t, repos, e.ID, "Idea")
	_, err := repos.ParticipantRepository.AddMember(ctx, p.ID, u.ID)
	require.NoError(t, err)
	_, err = repos.OwnerRepository.AddOwner(ctx, e.ID, u.ID)
	require.NoError(t, err)

	require.NoError(t, repos.EventRepository.DeleteEvent(ctx, e.ID))

	_, err = repos.ProjectRepository.GetProjectByID(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	rows, err := repos.ParticipantRepository.ListMemberships(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, rows)
	owners, err := repos.OwnerRepository.ListOwners(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, owners)
}

func TestOwnerRepository(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)

	u := createUser(t, repos, "owner@example.com")
	e := createEvent(t, repos, "Owned")

	_, err := repos.OwnerRepository.AddOwner(ctx, e.ID, u.ID)
	require.NoError(t, err)
	_, err = repos.OwnerRepository.AddOwner(ctx, e.ID, u.ID)
	assert.ErrorIs(t, err, ErrAlreadyExists)

	owners, err := repos.OwnerRepository.ListOwners(ctx, e.ID)
	require.NoError(t, err)
	assert.Len(t, owners, 1)

	require.NoError(t, repos.OwnerRepository.RemoveOwner(ctx, e.ID, u.ID))
	assert.ErrorIs(t, repos.OwnerRepository.RemoveOwner(ctx, e.ID, u.ID), ErrNotFound)
}

func TestParkingAndBookingRepositories(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)

	u := createUser(t, repos, "driver@example.com")
	lot := &models.ParkingLot{Name: "North"}
	require.NoError(t, repos.ParkingRepository.CreateLot(ctx, lot))
	slot := &models.ParkingSlot{LotID: lot.ID, Name: "1", StatusID: models.SlotStatusFree}
	require.NoError(t, repos.ParkingRepository.CreateSlot(ctx, slot))

	lots, err := repos.ParkingRepository.ListLots(ctx)
	require.NoError(t, err)
	require.Len(t, lots, 1)
	assert.Len(t, lots[0].Slots, 1)

	b := &models.Booking{SlotID: slot.ID, UserID: u.ID, TypeID: models.BookingTypeParking, StatusID: models.BookingStatusActive, StartTime: 10}
	require.NoError(t, repos.BookingRepository.CreateBooking(ctx, b))

	held, err := repos.BookingRepository.SlotHasOpenBooking(ctx, slot.ID)
	require.NoError(t, err)
	assert.True(t, held)

	require.NoError(t, repos.BookingRepository.CloseBooking(ctx, b.ID, models.BookingStatusCompleted, 20))
	got, err := repos.BookingRepository.GetBookingByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCompleted, got.StatusID)
	require.NotNil(t, got.EndTime)
	assert.Equal(t, int64(20), *got.EndTime)

	held, err = repos.BookingRepository.SlotHasOpenBooking(ctx, slot.ID)
	require.NoError(t, err)
	assert.False(t, held)

	// Bookings go with their user
	require.NoError(t, repos.UserRepository.DeleteUser(ctx, u.ID))
	_, err = repos.BookingRepository.GetBookingByID(ctx, b.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStatsCollect(t *testing.T) {
	ctx := context.Background()
	repos := newTestRepos(t)

	u := createUser(t, repos, "stats@example.com")
	e := createEvent(t, repos, "Stats")
	p := createProject(t, repos, e.ID, "Counting")
	_, err := repos.ParticipantRepository.AddMember(ctx, p.ID, u.ID)
	require.NoError(t, err)

	stats, err := repos.StatsRepository.Collect(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.UsersByRole[int64(models.RoleUser)])
	assert.Equal(t, 1, stats.ProjectsByStatus[int64(models.ProjectStatusPitching)])
	assert.Equal(t, 1, stats.Events)
	assert.Equal(t, 1, stats.Participants)
	assert.Zero(t, stats.Initiators)
}
