package events

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, sub *Subscription) (Event, bool) {
	t.Helper()
	select {
	case e, ok := <-sub.C():
		return e, ok
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}, false
	}
}

func TestBusDeliversOnlySubscribedTopics(t *testing.T) {
	bus := NewBus(zerolog.Nop())
	defer bus.Close()

	users := bus.Subscribe("users", 4, TopicUserCreated)
	all := bus.Subscribe("all", 4)

	bus.Publish(Event{Topic: TopicEventChanged, EntityID: 7})
	bus.Publish(Event{Topic: TopicUserCreated, EntityID: 1})

	e, ok := receive(t, users)
	require.True(t, ok)
	assert.Equal(t, TopicUserCreated, e.Topic)
	assert.Equal(t, int64(1), e.EntityID)
	assert.NotZero(t, e.Timestamp)
	assert.Len(t, users.C(), 0)

	first, _ := receive(t, all)
	second, _ := receive(t, all)
	assert.Equal(t, TopicEventChanged, first.Topic)
	assert.Equal(t, TopicUserCreated, second.Topic)
}

func TestBusDropsWhenBufferFull(t *testing.T) {
	bus := NewBus(zerolog.Nop())
	defer bus.Close()

	sub := bus.Subscribe("slow", 1, TopicBookingChanged)

	bus.Publish(Event{Topic: TopicBookingChanged, EntityID: 1})
	bus.Publish(Event{Topic: TopicBookingChanged, EntityID: 2})

	e, ok := receive(t, sub)
	require.True(t, ok)
	assert.Equal(t, int64(1), e.EntityID)
	assert.Len(t, sub.C(), 0)
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	bus := NewBus(zerolog.Nop())
	defer bus.Close()

	sub := bus.Subscribe("gone", 1)
	bus.Unsubscribe(sub)
	bus.Unsubscribe(sub)

	_, ok := <-sub.C()
	assert.False(t, ok)

	bus.Publish(Event{Topic: TopicUserDeleted})
}

func TestCloseStopsDelivery(t *testing.T) {
	bus := NewBus(zerolog.Nop())
	sub := bus.Subscribe("a", 1)

	bus.Close()
	bus.Close()

	_, ok := <-sub.C()
	assert.False(t, ok)

	late := bus.Subscribe("late", 1)
	_, ok = <-late.C()
	assert.False(t, ok)

	bus.Publish(Event{Topic: TopicUserCreated})
}
