package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/hackathon-manager/hackathon/internal/pkg/events"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)
	return hub
}

func testClient(hub *Hub, userID int64) *Client {
	return &Client{hub: hub, send: make(chan []byte, 4), userID: userID, logger: zerolog.Nop()}
}

func nextMessage(t *testing.T, c *Client) events.Event {
	t.Helper()
	select {
	case data := <-c.send:
		var e events.Event
		require.NoError(t, json.Unmarshal(data, &e))
		return e
	case <-time.After(time.Second):
		t.Fatal("no notification received")
		return events.Event{}
	}
}

func TestHubDeliversToRecipientsOnly(t *testing.T) {
	hub := startHub(t)
	alice := testClient(hub, 1)
	bob := testClient(hub, 2)
	require.True(t, hub.Register(alice))
	require.True(t, hub.Register(bob))

	hub.Notify(events.Event{Topic: events.TopicParticipationChanged, Action: "added", EntityID: 5, Recipients: []int64{2}})

	e := nextMessage(t, bob)
	assert.Equal(t, events.TopicParticipationChanged, e.Topic)
	assert.Equal(t, int64(5), e.EntityID)

	hub.Notify(events.Event{Topic: events.TopicEventChanged, Action: "created", EntityID: 9})
	assert.Equal(t, int64(9), nextMessage(t, alice).EntityID)
	assert.Equal(t, int64(9), nextMessage(t, bob).EntityID)
	assert.Len(t, alice.send, 0)
}

func TestHubUnregisterClosesSend(t *testing.T) {
	hub := startHub(t)
	c := testClient(hub, 3)
	require.True(t, hub.Register(c))
	hub.Unregister(c)

	select {
	case _, ok := <-c.send:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("send channel not closed")
	}
	assert.Equal(t, 0, hub.ClientCount(3))
}

func TestHubStopsOnCancel(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()

	c := testClient(hub, 4)
	require.True(t, hub.Register(c))
	cancel()
	<-stopped

	assert.False(t, hub.Register(testClient(hub, 5)))
	_, ok := <-c.send
	assert.False(t, ok)
}
