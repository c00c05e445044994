package websocket

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/hackathon-manager/hackathon/internal/pkg/apperrors"
	"github.com/hackathon-manager/hackathon/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// TokenValidator validates access tokens
type TokenValidator interface {
	ValidateToken(tokenString string) (*auth.Claims, error)
}

// Handler for WebSocket connections
type Handler struct {
	hub      *Hub
	tokens   TokenValidator
	upgrader websocket.Upgrader
	logger   zerolog.Logger
}

// NewHandler creates a new WebSocket handler. Browser upgrades must come from
// one of allowedOrigins, the same origins the HTTP API accepts via CORS.
func NewHandler(hub *Hub, tokens TokenValidator, allowedOrigins []string, logger zerolog.Logger) *Handler {
	return &Handler{hub: hub, tokens: tokens, upgrader: newUpgrader(allowedOrigins), logger: logger}
}

// HandleConnection godoc
// @Summary Subscribe to push notifications
// @Description Upgrades the connection to a WebSocket that receives change notifications as JSON. The access token is passed as a query parameter because browsers cannot set headers on upgrade requests.
// @Tags notifications
// @Param token query string true "Access token"
// @Success 101 {string} string "Switching Protocols"
// @Failure 403 {string} string "Invalid Token"
// @Router /notifications/ws [get]
func (h *Handler) HandleConnection(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		if bearer, err := auth.ExtractBearerToken(c.GetHeader("Authorization")); err == nil {
			token = bearer
		}
	}

	claims, err := h.tokens.ValidateToken(strings.TrimSpace(token))
	if err != nil {
		c.String(http.StatusForbidden, apperrors.MsgInvalidToken)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error().Err(err).Int64("userID", claims.ID).Msg("Failed to upgrade connection to WebSocket")
		return
	}

	client := NewClient(h.hub, conn, claims.ID, h.logger)
	if !h.hub.Register(client) {
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()

	h.logger.Info().
		Int64("userID", claims.ID).
		Str("remoteAddr", conn.RemoteAddr().String()).
		Msg("WebSocket connection established")
}
