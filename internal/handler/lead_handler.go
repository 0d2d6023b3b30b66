package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gulfrate/gulfrate/internal/dto"
	"github.com/gulfrate/gulfrate/internal/middleware"
	"github.com/gulfrate/gulfrate/internal/service"
)

type LeadHandler struct {
	svc *service.LeadService
}

func NewLeadHandler(svc *service.LeadService) *LeadHandler {
	return &LeadHandler{svc: svc}
}

func (h *LeadHandler) Create(c *gin.Context) {
	var req dto.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError(err))
		return
	}

	lead, err := h.svc.CreateLead(c.Request.Context(), &req)
	if err != nil {
		if fieldErr, ok := service.AsFieldError(err); ok {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Message: "Validation failed",
				Errors:  []dto.FieldError{fieldErr},
			})
			return
		}
		status, resp := middleware.MapDBError(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusCreated, dto.LeadCreatedResponse{
		Message: "Successfully subscribed to rate alerts",
		Lead:    dto.LeadRef{ID: lead.ID},
	})
}
