package handler

import (
	"fmt"
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mercibizhub/bizhub-api/internal/events"
	"github.com/mercibizhub/bizhub-api/internal/presentation/http/dto/response"
	"github.com/mercibizhub/bizhub-api/pkg/utils"
	"github.com/rs/zerolog/log"
)

// EventsHandler streams collection-change events over Server-Sent Events
type EventsHandler struct {
	hub        *events.Hub
	jwtManager *utils.JWTManager
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(hub *events.Hub, jwtManager *utils.JWTManager) *EventsHandler {
	return &EventsHandler{
		hub:        hub,
		jwtManager: jwtManager,
	}
}

// Stream handles GET /events?token=<jwt>
// EventSource API cannot set custom headers, so JWT is passed via query param.
func (h *EventsHandler) Stream(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Unauthorized(c, "Missing token query parameter")
		return
	}

	claims, err := h.jwtManager.ValidateAccessToken(token)
	if err != nil {
		response.Unauthorized(c, "Invalid or expired token")
		return
	}

	clientID := fmt.Sprintf("%s-%d", claims.UserID, time.Now().UnixNano())

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no") // Disable nginx buffering

	client := h.hub.Register(clientID)
	defer h.hub.Unregister(clientID)

	c.SSEvent("connected", gin.H{
		"clientId":  clientID,
		"timestamp": time.Now().Format(time.RFC3339),
	})
	c.Writer.Flush()

	log.Info().Str("client_id", clientID).Str("user_id", claims.UserID.String()).Msg("SSE stream started")

	c.Stream(func(w io.Writer) bool {
		select {
		case data, ok := <-client.Events:
			if !ok {
				return false
			}
			c.SSEvent("change", string(data))
			return true
		case <-time.After(30 * time.Second):
			c.SSEvent("ping", gin.H{"timestamp": time.Now().Format(time.RFC3339)})
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
