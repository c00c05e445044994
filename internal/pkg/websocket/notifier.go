package websocket

import (
	"context"

	"github.com/hackathon-manager/hackathon/internal/pkg/events"
	"github.com/rs/zerolog"
)

// Notifier forwards bus events to the hub
type Notifier struct {
	bus    *events.Bus
	hub    *Hub
	logger zerolog.Logger
}

// NewNotifier creates a new Notifier
func NewNotifier(bus *events.Bus, hub *Hub, logger zerolog.Logger) *Notifier {
	return &Notifier{bus: bus, hub: hub, logger: logger}
}

// Start subscribes to every topic and forwards until ctx is cancelled or the bus closes
func (n *Notifier) Start(ctx context.Context) {
	sub := n.bus.Subscribe("websocket", 128)
	go func() {
		defer n.bus.Unsubscribe(sub)
		for {
			select {
			case e, ok := <-sub.C():
				if !ok {
					return
				}
				n.hub.Notify(e)
			case <-ctx.Done():
				return
			}
		}
	}()
	n.logger.Info().Msg("Websocket notifier started")
}
