package handler

import (
	"net/http"

	"github.com/devmatch/backend/internal/domain"
	"github.com/devmatch/backend/internal/usecase/chat"
	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chatUseCase *chat.ChatUseCase
}

func NewChatHandler(chatUseCase *chat.ChatUseCase) *ChatHandler {
	return &ChatHandler{chatUseCase: chatUseCase}
}

// GetMessages handles GET /chat/messages/:roomId
// @Summary Get a room's full message history in chronological order
// @Tags chat
// @Security BearerAuth
// @Produce json
// @Param roomId path string true "Room (match) ID"
// @Success 200 {array} domain.Message
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /chat/messages/{roomId} [get]
func (h *ChatHandler) GetMessages(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	messages, err := h.chatUseCase.GetHistory(c.Request.Context(), userID, c.Param("roomId"))
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid room id"})
		case domain.ErrMatchNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "chat history not found"})
		case domain.ErrNotParticipant, domain.ErrMatchNotActive:
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "not authorized for this chat"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to get chat history"})
		}
		return
	}
	c.JSON(http.StatusOK, messages)
}
