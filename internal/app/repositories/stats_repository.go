package repositories

import (
	"context"
	"fmt"
)

// Stats is a point-in-time snapshot of table sizes used for metrics
type Stats struct {
	UsersByRole      map[int64]int
	ProjectsByStatus map[int64]int
	Events           int
	Participants     int
	Initiators       int
	Owners           int
	OpenBookings     int
	ParkingLots      int
	FreeParkingSlots int
}

type groupCount struct {
	Key   int64 `db:"k"`
	Count int   `db:"n"`
}

// StatsRepository computes aggregate counts
type StatsRepository struct {
	db DBTX
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(db DBTX) *StatsRepository {
	return &StatsRepository{db: db}
}

// Collect runs every count query and returns the snapshot
func (r *StatsRepository) Collect(ctx context.Context) (*Stats, error) {
	stats := &Stats{}

	var err error
	if stats.UsersByRole, err = r.groupCounts(ctx, "SELECT role_id AS k, COUNT(1) AS n FROM users GROUP BY role_id"); err != nil {
		return nil, err
	}
	if stats.ProjectsByStatus, err = r.groupCounts(ctx, "SELECT status_id AS k, COUNT(1) AS n FROM projects GROUP BY status_id"); err != nil {
		return nil, err
	}

	counts := []struct {
		dest  *int
		query string
	}{
		{&stats.Events, "SELECT COUNT(1) FROM events"},
		{&stats.Participants, "SELECT COUNT(1) FROM participants"},
		{&stats.Initiators, "SELECT COUNT(1) FROM initiators"},
		{&stats.Owners, "SELECT COUNT(1) FROM owners"},
		{&stats.OpenBookings, "SELECT COUNT(1) FROM bookings WHERE status_id IN (1, 2)"},
		{&stats.ParkingLots, "SELECT COUNT(1) FROM parking_lots"},
		{&stats.FreeParkingSlots, "SELECT COUNT(1) FROM parking_slots WHERE status_id = 1"},
	}
	for _, c := range counts {
		if err := r.db.GetContext(ctx, c.dest, c.query); err != nil {
			return nil, fmt.Errorf("error collecting stats: %w", err)
		}
	}
	return stats, nil
}

func (r *StatsRepository) groupCounts(ctx context.Context, query string) (map[int64]int, error) {
	rows := []groupCount{}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("error collecting stats: %w", err)
	}
	out := make(map[int64]int, len(rows))
	for _, row := range rows {
		out[row.Key] = row.Count
	}
	return out, nil
}
