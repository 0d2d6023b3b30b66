package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/gulfrate/gulfrate/internal/dto"
	"github.com/gulfrate/gulfrate/internal/middleware"
	"github.com/gulfrate/gulfrate/internal/service"
)

type AdminAuthHandler struct {
	svc      *service.AuthService
	sessions *middleware.Sessions
}

func NewAdminAuthHandler(svc *service.AuthService, sessions *middleware.Sessions) *AdminAuthHandler {
	return &AdminAuthHandler{svc: svc, sessions: sessions}
}

func (h *AdminAuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError(err))
		return
	}

	admin, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "invalid username or password"})
			return
		}
		status, resp := middleware.MapDBError(err)
		c.JSON(status, resp)
		return
	}

	token, err := h.sessions.Issue(admin)
	if err != nil {
		log.Error().Err(err).Msg("failed to issue session token")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "internal server error"})
		return
	}
	h.sessions.SetCookie(c, token)

	c.JSON(http.StatusOK, dto.AuthResponse{Authenticated: true, Admin: admin})
}

func (h *AdminAuthHandler) Logout(c *gin.Context) {
	h.sessions.ClearCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// CheckAuth reports the session's principal; the UI calls it on load to
// decide which admin screens to show.
func (h *AdminAuthHandler) CheckAuth(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.AuthResponse{Authenticated: false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"admin": gin.H{
			"id":       principal.AdminID,
			"username": principal.Username,
			"role":     principal.Role,
		},
	})
}
