package events

import (
	"time"

	"github.com/google/uuid"
)

// Notifier is the interface services use to announce collection changes.
type Notifier interface {
	NotifyChanged(collection Collection, action Action, ids ...uuid.UUID)
}

// HubNotifier implements Notifier using the SSE Hub.
type HubNotifier struct {
	hub *Hub
}

// NewHubNotifier creates a notifier backed by the given Hub.
func NewHubNotifier(hub *Hub) *HubNotifier {
	return &HubNotifier{hub: hub}
}

func (n *HubNotifier) NotifyChanged(collection Collection, action Action, ids ...uuid.UUID) {
	if n.hub.ClientCount() == 0 {
		return
	}

	strIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		strIDs = append(strIDs, id.String())
	}
	n.hub.Broadcast(&ChangeEvent{
		Collection: collection,
		Action:     action,
		IDs:        strIDs,
		Timestamp:  time.Now(),
	})
}

// NopNotifier is a no-op implementation for when SSE is not needed.
type NopNotifier struct{}

func (n *NopNotifier) NotifyChanged(collection Collection, action Action, ids ...uuid.UUID) {}
