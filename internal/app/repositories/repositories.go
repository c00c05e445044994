package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/hackathon-manager/hackathon/internal/pkg/dberrors"
	"github.com/jmoiron/sqlx"
)

// Shared repository errors. Services translate them into apperrors.
var (
	// ErrNotFound is returned when a row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists is returned when a unique constraint rejects a write.
	ErrAlreadyExists = errors.New("record already exists")
	// ErrInvalidReference is returned when a foreign key points nowhere.
	ErrInvalidReference = errors.New("referenced record does not exist")
)

// DBTX is satisfied by both *sqlx.DB and *sqlx.Tx.
type DBTX interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// builder uses '?' placeholders for SQLite.
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        *UserRepository
	EventRepository       *EventRepository
	ProjectRepository     *ProjectRepository
	ParticipantRepository *MembershipRepository
	InitiatorRepository   *MembershipRepository
	OwnerRepository       *OwnerRepository
	ParkingRepository     *ParkingRepository
	BookingRepository     *BookingRepository
	StatsRepository       *StatsRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		EventRepository:       NewEventRepository(db),
		ProjectRepository:     NewProjectRepository(db),
		ParticipantRepository: NewParticipantRepository(db),
		InitiatorRepository:   NewInitiatorRepository(db),
		OwnerRepository:       NewOwnerRepository(db),
		ParkingRepository:     NewParkingRepository(db),
		BookingRepository:     NewBookingRepository(db),
		StatsRepository:       NewStatsRepository(db),
	}
}

// translateWriteError maps constraint violations onto repository errors.
func translateWriteError(err error) error {
	switch {
	case err == nil:
		return nil
	case dberrors.IsUniqueViolation(err):
		return ErrAlreadyExists
	case dberrors.IsForeignKeyViolation(err):
		return ErrInvalidReference
	default:
		return err
	}
}

// noRows reports whether err means the query matched nothing.
func noRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// requireAffected turns a zero-row update or delete into ErrNotFound.
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
