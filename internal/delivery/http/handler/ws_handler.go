package handler

import (
	"net/http"
	"strings"

	"github.com/devmatch/backend/internal/chathub"
	"github.com/devmatch/backend/internal/usecase/auth"
	"github.com/devmatch/backend/internal/usecase/chat"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Cross-origin handshakes are allowed; room access is gated by the
	// bearer token, not the origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WSHandler struct {
	hub         *chathub.Hub
	authUseCase *auth.AuthUseCase
	chatUseCase *chat.ChatUseCase
}

func NewWSHandler(hub *chathub.Hub, authUseCase *auth.AuthUseCase, chatUseCase *chat.ChatUseCase) *WSHandler {
	return &WSHandler{
		hub:         hub,
		authUseCase: authUseCase,
		chatUseCase: chatUseCase,
	}
}

// ServeWebSocket handles GET /ws: it authenticates the bearer credential,
// upgrades the connection and starts the client's pumps. A bad credential
// rejects the connection before the upgrade.
func (h *WSHandler) ServeWebSocket(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "missing bearer token"})
		return
	}

	user, err := h.authUseCase.VerifyToken(c.Request.Context(), token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid or expired token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote its own error response.
		return
	}

	client := chathub.NewClient(user, h.hub, h.chatUseCase, conn)
	client.Run()
}

// bearerToken pulls the credential from the Authorization header, falling
// back to the token query parameter for browser websocket clients that
// cannot set headers.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return c.Query("token")
}
