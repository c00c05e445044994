package services

import (
	"context"
	"runtime"
	"time"

	"github.com/hackathon-manager/hackathon/internal/app/models/dto"
	"github.com/hackathon-manager/hackathon/internal/config"
)

// Version is stamped at build time with -ldflags "-X .../services.Version=..."
var Version = "dev"

// Pinger checks the database connection
type Pinger interface {
	Ping(ctx context.Context) error
}

// ClientCounter reports open websocket connections
type ClientCounter interface {
	ClientCount(userID int64) int
}

// HealthService reports liveness and the public configuration
type HealthService interface {
	Health(ctx context.Context) *dto.HealthResponse
	PublicConfig() config.PublicView
}

type healthServiceImpl struct {
	db      Pinger
	clients ClientCounter
	cfg     *config.Config
	started time.Time
}

// NewHealthService creates a new HealthService. clients may be nil.
func NewHealthService(db Pinger, clients ClientCounter, cfg *config.Config) HealthService {
	return &healthServiceImpl{db: db, clients: clients, cfg: cfg, started: time.Now()}
}

// Health pings the database and gathers runtime figures. A failed ping turns
// the status to "degraded"; it never fails the request.
func (s *healthServiceImpl) Health(ctx context.Context) *dto.HealthResponse {
	uptime := time.Since(s.started)
	resp := &dto.HealthResponse{
		Status:        "ok",
		Version:       Version,
		Uptime:        uptime.Truncate(time.Second).String(),
		UptimeSeconds: int64(uptime.Seconds()),
		Database:      "ok",
		GoVersion:     runtime.Version(),
		Goroutines:    runtime.NumGoroutine(),
		NumCPU:        runtime.NumCPU(),
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := s.db.Ping(pingCtx); err != nil {
		resp.Status = "degraded"
		resp.Database = "unreachable"
	}
	if s.clients != nil {
		resp.WebsocketClients = s.clients.ClientCount(0)
	}
	return resp
}

// PublicConfig returns the configuration without secrets
func (s *healthServiceImpl) PublicConfig() config.PublicView {
	return s.cfg.Public()
}
