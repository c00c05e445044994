package events

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Topic names the kind of change an Event reports
type Topic string

const (
	TopicUserCreated          Topic = "user.created"
	TopicUserUpdated          Topic = "user.updated"
	TopicUserDeleted          Topic = "user.deleted"
	TopicEventChanged         Topic = "event.changed"
	TopicProjectChanged       Topic = "project.changed"
	TopicParticipationChanged Topic = "participation.changed"
	TopicBookingChanged       Topic = "booking.changed"
)

// Event is a notification published after a successful write
type Event struct {
	Topic Topic `json:"topic"`

	// Action is what happened: "created", "updated", "deleted", "added", "removed", "closed"
	Action string `json:"action"`

	// EntityID is the id of the changed row
	EntityID int64 `json:"entity_id"`

	// Recipients restricts delivery to these user ids. Empty means everyone.
	Recipients []int64 `json:"-"`

	// Data carries an optional payload
	Data interface{} `json:"data,omitempty"`

	Timestamp int64 `json:"timestamp"`
}

// Subscription is a registered consumer of the bus
type Subscription struct {
	name   string
	topics map[Topic]struct{}
	ch     chan Event
}

// C returns the channel events are delivered on. It is closed on Unsubscribe or Close.
func (s *Subscription) C() <-chan Event {
	return s.ch
}

// Name returns the subscriber name used in logs
func (s *Subscription) Name() string {
	return s.name
}

func (s *Subscription) wants(t Topic) bool {
	if len(s.topics) == 0 {
		return true
	}
	_, ok := s.topics[t]
	return ok
}

// Bus fans out published events to subscribers without blocking publishers
type Bus struct {
	mu     sync.RWMutex
	subs   map[*Subscription]struct{}
	closed bool
	logger zerolog.Logger
}

// NewBus creates an empty bus
func NewBus(logger zerolog.Logger) *Bus {
	return &Bus{
		subs:   make(map[*Subscription]struct{}),
		logger: logger,
	}
}

// Subscribe registers a consumer for the given topics, or for all topics when none are given
func (b *Bus) Subscribe(name string, buffer int, topics ...Topic) *Subscription {
	if buffer < 1 {
		buffer = 1
	}
	sub := &Subscription{
		name:   name,
		topics: make(map[Topic]struct{}, len(topics)),
		ch:     make(chan Event, buffer),
	}
	for _, t := range topics {
		sub.topics[t] = struct{}{}
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(sub.ch)
		return sub
	}
	b.subs[sub] = struct{}{}
	b.logger.Debug().Str("subscriber", name).Int("topics", len(topics)).Msg("Bus subscriber added")
	return sub
}

// Unsubscribe removes a consumer and closes its channel
func (b *Bus) Unsubscribe(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subs[sub]; !ok {
		return
	}
	delete(b.subs, sub)
	close(sub.ch)
	b.logger.Debug().Str("subscriber", sub.name).Msg("Bus subscriber removed")
}

// Publish delivers e to every matching subscriber. A subscriber whose buffer
// is full misses the event.
func (b *Bus) Publish(e Event) {
	if e.Timestamp == 0 {
		e.Timestamp = time.Now().Unix()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}

	for sub := range b.subs {
		if !sub.wants(e.Topic) {
			continue
		}
		select {
		case sub.ch <- e:
		default:
			b.logger.Warn().
				Str("subscriber", sub.name).
				Str("topic", string(e.Topic)).
				Msg("Dropped event for slow subscriber")
		}
	}
}

// Close closes every subscription. Publishing after Close is a no-op.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for sub := range b.subs {
		close(sub.ch)
	}
	b.subs = map[*Subscription]struct{}{}
}

// Publisher is the narrow interface services depend on
type Publisher interface {
	Publish(e Event)
}

// Discard is a Publisher that drops everything
type Discard struct{}

// Publish implements Publisher
func (Discard) Publish(Event) {}
