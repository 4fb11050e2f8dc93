package handler

import (
	"net/http"

	"github.com/devmatch/backend/internal/domain"
	"github.com/devmatch/backend/internal/usecase/discover"
	"github.com/devmatch/backend/internal/usecase/swipe"
	"github.com/gin-gonic/gin"
)

type DeveloperHandler struct {
	swipeUseCase    *swipe.SwipeUseCase
	discoverUseCase *discover.DiscoverUseCase
}

func NewDeveloperHandler(swipeUseCase *swipe.SwipeUseCase, discoverUseCase *discover.DiscoverUseCase) *DeveloperHandler {
	return &DeveloperHandler{
		swipeUseCase:    swipeUseCase,
		discoverUseCase: discoverUseCase,
	}
}

// Discover handles GET /developers/discover
// @Summary List developers the caller can still act on
// @Tags developers
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.PublicProfile
// @Failure 401 {object} ErrorResponse
// @Router /developers/discover [get]
func (h *DeveloperHandler) Discover(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	candidates, err := h.discoverUseCase.ListCandidates(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list candidates"})
		return
	}
	c.JSON(http.StatusOK, candidates)
}

// Like handles POST /developers/:id/like
// @Summary Like a developer
// @Tags developers
// @Security BearerAuth
// @Produce json
// @Param id path string true "Target developer ID"
// @Success 200 {object} swipe.SwipeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /developers/{id}/like [post]
func (h *DeveloperHandler) Like(c *gin.Context) {
	h.recordAction(c, domain.ActionLiked)
}

// Dislike handles POST /developers/:id/dislike
// @Summary Dislike a developer
// @Tags developers
// @Security BearerAuth
// @Produce json
// @Param id path string true "Target developer ID"
// @Success 200 {object} swipe.SwipeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /developers/{id}/dislike [post]
func (h *DeveloperHandler) Dislike(c *gin.Context) {
	h.recordAction(c, domain.ActionDisliked)
}

func (h *DeveloperHandler) recordAction(c *gin.Context, action domain.MatchAction) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	resp, err := h.swipeUseCase.RecordAction(c.Request.Context(), userID, c.Param("id"), action)
	if err != nil {
		if err == domain.ErrInvalidInput {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid target user id"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to record action"})
		return
	}
	c.JSON(http.StatusOK, resp)
}
