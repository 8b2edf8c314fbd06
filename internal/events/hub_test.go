package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubRegisterUnregister(t *testing.T) {
	hub := NewHub()

	client := hub.Register("client-1")
	require.NotNil(t, client)
	assert.Equal(t, 1, hub.ClientCount())

	hub.Unregister("client-1")
	assert.Equal(t, 0, hub.ClientCount())

	// Unregistering twice must not panic
	hub.Unregister("client-1")
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHubBroadcastDeliversToAllClients(t *testing.T) {
	hub := NewHub()

	a := hub.Register("a")
	b := hub.Register("b")

	id := uuid.New()
	hub.Broadcast(&ChangeEvent{
		Collection: CollectionProducts,
		Action:     ActionCreated,
		IDs:        []string{id.String()},
		Timestamp:  time.Now(),
	})

	for _, client := range []*Client{a, b} {
		select {
		case data := <-client.Events:
			var event ChangeEvent
			require.NoError(t, json.Unmarshal(data, &event))
			assert.Equal(t, CollectionProducts, event.Collection)
			assert.Equal(t, ActionCreated, event.Action)
			assert.Equal(t, []string{id.String()}, event.IDs)
		case <-time.After(time.Second):
			t.Fatal("expected event was not delivered")
		}
	}
}

func TestHubBroadcastDropsWhenBufferFull(t *testing.T) {
	hub := NewHub()
	client := hub.Register("slow")

	for i := 0; i < cap(client.Events)+10; i++ {
		hub.Broadcast(&ChangeEvent{
			Collection: CollectionSales,
			Action:     ActionUpdated,
			Timestamp:  time.Now(),
		})
	}

	// The slow client keeps at most a full buffer; nothing blocks.
	assert.Equal(t, cap(client.Events), len(client.Events))
}

func TestHubNotifierSkipsWithoutClients(t *testing.T) {
	hub := NewHub()
	notifier := NewHubNotifier(hub)

	// No clients registered; must be a no-op rather than a panic.
	notifier.NotifyChanged(CollectionInvoices, ActionDeleted, uuid.New())

	client := hub.Register("c")
	notifier.NotifyChanged(CollectionInvoices, ActionDeleted, uuid.New())

	select {
	case data := <-client.Events:
		var event ChangeEvent
		require.NoError(t, json.Unmarshal(data, &event))
		assert.Equal(t, CollectionInvoices, event.Collection)
		assert.Len(t, event.IDs, 1)
	case <-time.After(time.Second):
		t.Fatal("expected event was not delivered")
	}
}
