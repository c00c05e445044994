package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/hackathon-manager/hackathon/internal/app/models"
	"github.com/hackathon-manager/hackathon/internal/app/repositories"
	"github.com/hackathon-manager/hackathon/internal/pkg/events"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

const namespace = "hackathon"

// StatsSource produces the counts behind the gauges
type StatsSource interface {
	Collect(ctx context.Context) (*repositories.Stats, error)
}

// Metrics owns a private registry with the domain gauges
type Metrics struct {
	registry *prometheus.Registry
	source   StatsSource
	logger   zerolog.Logger

	usersByRole      *prometheus.GaugeVec
	projectsByStatus *prometheus.GaugeVec
	events           prometheus.Gauge
	participants     prometheus.Gauge
	initiators       prometheus.Gauge
	owners           prometheus.Gauge
	openBookings     prometheus.Gauge
	freeSlots        prometheus.Gauge
	busEvents        *prometheus.CounterVec
	lastRefresh      prometheus.Gauge
}

// New registers the gauges and the Go runtime collectors
func New(source StatsSource, logger zerolog.Logger) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		source:   source,
		logger:   logger,
		usersByRole: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Name: "users", Help: "Registered users by role.",
		}, []string{"role"}),
		projectsByStatus: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Name: "projects", Help: "Projects by status.",
		}, []string{"status"}),
		events: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "events", Help: "Hackathon events.",
		}),
		participants: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "participants", Help: "Participant rows across all projects.",
		}),
		initiators: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "initiators", Help: "Initiator rows across all projects.",
		}),
		owners: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "event_owners", Help: "Event organiser rows.",
		}),
		openBookings: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "open_bookings", Help: "Bookings holding a parking slot.",
		}),
		freeSlots: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "free_parking_slots", Help: "Parking slots currently free.",
		}),
		busEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "bus_events_total", Help: "Change notifications seen on the event bus.",
		}, []string{"topic"}),
		lastRefresh: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "stats_refreshed_timestamp_seconds", Help: "Unix time of the last successful refresh.",
		}),
	}

	m.registry.MustRegister(
		m.usersByRole, m.projectsByStatus, m.events, m.participants, m.initiators,
		m.owners, m.openBookings, m.freeSlots, m.busEvents, m.lastRefresh,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Refresh reloads every gauge from the store
func (m *Metrics) Refresh(ctx context.Context) error {
	stats, err := m.source.Collect(ctx)
	if err != nil {
		return err
	}

	m.usersByRole.Reset()
	for _, role := range []models.Role{
		models.RoleAdmin, models.RoleManager, models.RoleUser,
		models.RoleGuest, models.RoleNew, models.RoleDummy,
	} {
		m.usersByRole.WithLabelValues(role.String()).Set(float64(stats.UsersByRole[int64(role)]))
	}

	m.projectsByStatus.Reset()
	for _, status := range models.AllProjectStatuses {
		m.projectsByStatus.WithLabelValues(status.String()).Set(float64(stats.ProjectsByStatus[int64(status)]))
	}

	m.events.Set(float64(stats.Events))
	m.participants.Set(float64(stats.Participants))
	m.initiators.Set(float64(stats.Initiators))
	m.owners.Set(float64(stats.Owners))
	m.openBookings.Set(float64(stats.OpenBookings))
	m.freeSlots.Set(float64(stats.FreeParkingSlots))
	m.lastRefresh.SetToCurrentTime()
	return nil
}

// Start refreshes once, then again after each bus event until ctx is
// cancelled. Bursts of events are coalesced into one refresh.
func (m *Metrics) Start(ctx context.Context, bus *events.Bus) {
	if err := m.Refresh(ctx); err != nil {
		m.logger.Error().Err(err).Msg("Initial metrics refresh failed")
	}

	sub := bus.Subscribe("metrics", 256)
	go func() {
		defer bus.Unsubscribe(sub)
		for {
			select {
			case e, ok := <-sub.C():
				if !ok {
					return
				}
				m.busEvents.WithLabelValues(string(e.Topic)).Inc()
				m.drain(sub)
				refreshCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
				if err := m.Refresh(refreshCtx); err != nil {
					m.logger.Warn().Err(err).Str("topic", string(e.Topic)).Msg("Metrics refresh failed")
				}
				cancel()
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (m *Metrics) drain(sub *events.Subscription) {
	for {
		select {
		case e, ok := <-sub.C():
			if !ok {
				return
			}
			m.busEvents.WithLabelValues(string(e.Topic)).Inc()
		default:
			return
		}
	}
}
