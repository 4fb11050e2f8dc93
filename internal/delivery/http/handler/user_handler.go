package handler

import (
	"net/http"

	"github.com/devmatch/backend/internal/domain"
	"github.com/devmatch/backend/internal/usecase/user"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUseCase *user.UserUseCase
}

func NewUserHandler(userUseCase *user.UserUseCase) *UserHandler {
	return &UserHandler{userUseCase: userUseCase}
}

// GetUser handles GET /users/:id
// @Summary Get a developer's public profile
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} domain.PublicProfile
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	profile, err := h.userUseCase.GetPublicProfile(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
		case domain.ErrUserNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "user not found"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to get user"})
		}
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateMyProfile handles PUT /users/me/profile
// @Summary Update the authenticated user's profile
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body user.UpdateProfileRequest true "Profile fields to update"
// @Success 200 {object} domain.User
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /users/me/profile [put]
func (h *UserHandler) UpdateMyProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var req user.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	updated, err := h.userUseCase.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		if err == domain.ErrUserNotFound {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, updated)
}
