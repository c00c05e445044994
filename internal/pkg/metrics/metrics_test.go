package metrics

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hackathon-manager/hackathon/internal/app/repositories"
	"github.com/hackathon-manager/hackathon/internal/pkg/events"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStats struct {
	stats *repositories.Stats
	err   error
	calls chan struct{}
}

func (f *fakeStats) Collect(context.Context) (*repositories.Stats, error) {
	if f.calls != nil {
		f.calls <- struct{}{}
	}
	return f.stats, f.err
}

func sampleStats() *repositories.Stats {
	return &repositories.Stats{
		UsersByRole:      map[int64]int{1: 1, 3: 4},
		ProjectsByStatus: map[int64]int{1: 2},
		Events:           3,
		Participants:     5,
		Initiators:       2,
		OpenBookings:     1,
		FreeParkingSlots: 7,
	}
}

func TestRefreshSetsGauges(t *testing.T) {
	m := New(&fakeStats{stats: sampleStats()}, zerolog.Nop())
	require.NoError(t, m.Refresh(context.Background()))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.usersByRole.WithLabelValues("ADMIN")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.usersByRole.WithLabelValues("USER")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.usersByRole.WithLabelValues("GUEST")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.projectsByStatus.WithLabelValues("pitching")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.events))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.participants))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.freeSlots))
}

func TestRefreshPropagatesErrors(t *testing.T) {
	m := New(&fakeStats{err: errors.New("db down")}, zerolog.Nop())
	assert.Error(t, m.Refresh(context.Background()))
}

func TestHandlerServesTextFormat(t *testing.T) {
	m := New(&fakeStats{stats: sampleStats()}, zerolog.Nop())
	require.NoError(t, m.Refresh(context.Background()))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/api/metrics", nil))

	assert.Equal(t, 200, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "hackathon_events 3"))
}

func TestStartRefreshesOnBusEvents(t *testing.T) {
	source := &fakeStats{stats: sampleStats(), calls: make(chan struct{}, 8)}
	m := New(source, zerolog.Nop())
	bus := events.NewBus(zerolog.Nop())
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	m.Start(ctx, bus)
	<-source.calls

	bus.Publish(events.Event{Topic: events.TopicProjectChanged})
	select {
	case <-source.calls:
	case <-time.After(time.Second):
		t.Fatal("metrics not refreshed after bus event")
	}
	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(m.busEvents.WithLabelValues(string(events.TopicProjectChanged))) == 1
	}, time.Second, 10*time.Millisecond)
}
