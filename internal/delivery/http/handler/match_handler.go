package handler

import (
	"net/http"

	"github.com/devmatch/backend/internal/domain"
	"github.com/devmatch/backend/internal/usecase/match"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MatchHandler struct {
	matchUseCase *match.MatchUseCase
}

func NewMatchHandler(matchUseCase *match.MatchUseCase) *MatchHandler {
	return &MatchHandler{matchUseCase: matchUseCase}
}

// GetMyMatches handles GET /matches
// @Summary List the caller's matches, newest first
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Success 200 {array} match.MatchedUserResponse
// @Failure 401 {object} ErrorResponse
// @Router /matches [get]
func (h *MatchHandler) GetMyMatches(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	matches, err := h.matchUseCase.GetMyMatches(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to get matches"})
		return
	}
	c.JSON(http.StatusOK, matches)
}

// GetMatchDetails handles GET /matches/:id
// @Summary Get one match's counterpart and status
// @Tags matches
// @Security BearerAuth
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} match.MatchDetailsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /matches/{id} [get]
func (h *MatchHandler) GetMatchDetails(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	matchID := c.Param("id")
	if uuid.Validate(matchID) != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid match id"})
		return
	}

	details, err := h.matchUseCase.GetMatchDetails(c.Request.Context(), userID, matchID)
	if err != nil {
		switch err {
		case domain.ErrMatchNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "match not found"})
		case domain.ErrNotParticipant:
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "not a participant of this match"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to get match"})
		}
		return
	}
	c.JSON(http.StatusOK, details)
}
