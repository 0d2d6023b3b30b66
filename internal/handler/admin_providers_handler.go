package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gulfrate/gulfrate/internal/dto"
	"github.com/gulfrate/gulfrate/internal/middleware"
	"github.com/gulfrate/gulfrate/internal/model"
	"github.com/gulfrate/gulfrate/internal/repository"
	"github.com/gulfrate/gulfrate/internal/service"
)

type AdminProvidersHandler struct {
	svc *service.AdminService
}

func NewAdminProvidersHandler(svc *service.AdminService) *AdminProvidersHandler {
	return &AdminProvidersHandler{svc: svc}
}

func (h *AdminProvidersHandler) List(c *gin.Context) {
	providers, err := h.svc.ListProviders(c.Request.Context())
	if err != nil {
		status, resp := middleware.MapDBError(err)
		c.JSON(status, resp)
		return
	}
	if providers == nil {
		providers = []model.Provider{}
	}
	c.JSON(http.StatusOK, providers)
}

func (h *AdminProvidersHandler) Create(c *gin.Context) {
	var req dto.CreateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError(err))
		return
	}

	provider, err := h.svc.CreateProvider(c.Request.Context(), &req)
	if err != nil {
		status, resp := middleware.MapDBError(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusCreated, provider)
}

func (h *AdminProvidersHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid provider id"})
		return
	}

	var req dto.UpdateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError(err))
		return
	}

	provider, err := h.svc.UpdateProvider(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "provider not found"})
			return
		}
		status, resp := middleware.MapDBError(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusOK, provider)
}
