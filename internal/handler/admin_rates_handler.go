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

type AdminRatesHandler struct {
	svc *service.AdminService
}

func NewAdminRatesHandler(svc *service.AdminService) *AdminRatesHandler {
	return &AdminRatesHandler{svc: svc}
}

func (h *AdminRatesHandler) List(c *gin.Context) {
	rates, err := h.svc.ListRates(c.Request.Context())
	if err != nil {
		status, resp := middleware.MapDBError(err)
		c.JSON(status, resp)
		return
	}
	if rates == nil {
		rates = []model.ExchangeRateWithProvider{}
	}
	c.JSON(http.StatusOK, rates)
}

func (h *AdminRatesHandler) Create(c *gin.Context) {
	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError(err))
		return
	}

	rate, err := h.svc.CreateRate(c.Request.Context(), &req)
	if err != nil {
		status, resp := middleware.MapDBError(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusCreated, rate)
}

func (h *AdminRatesHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid rate id"})
		return
	}

	var req dto.UpdateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError(err))
		return
	}

	rate, err := h.svc.UpdateRate(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "exchange rate not found"})
			return
		}
		status, resp := middleware.MapDBError(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusOK, rate)
}

// BulkUpdate applies each item independently and always answers 200 with
// per-item results, so the UI can show partial success.
func (h *AdminRatesHandler) BulkUpdate(c *gin.Context) {
	var req dto.BulkUpdateRatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError(err))
		return
	}

	c.JSON(http.StatusOK, h.svc.BulkUpdateRates(c.Request.Context(), &req))
}
