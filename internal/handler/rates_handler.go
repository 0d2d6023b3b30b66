package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gulfrate/gulfrate/internal/dto"
	"github.com/gulfrate/gulfrate/internal/middleware"
	"github.com/gulfrate/gulfrate/internal/model"
	"github.com/gulfrate/gulfrate/internal/service"
)

type RatesHandler struct {
	svc *service.RatesService
}

func NewRatesHandler(svc *service.RatesService) *RatesHandler {
	return &RatesHandler{svc: svc}
}

// Snapshot returns the aggregated rate view for one country/currency pair.
// Unknown combinations yield an empty list, not an error.
func (h *RatesHandler) Snapshot(c *gin.Context) {
	countryCode := c.Param("countryCode")
	currency := c.Param("currency")

	snapshot, err := h.svc.GetExchangeRates(c.Request.Context(), countryCode, currency)
	if err != nil {
		status, resp := middleware.MapDBError(err)
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusOK, dto.SnapshotResponse{
		Rates:       snapshot.Rates,
		LastUpdated: snapshot.LastUpdated,
	})
}

func (h *RatesHandler) Countries(c *gin.Context) {
	countries, err := h.svc.GetCountries(c.Request.Context())
	if err != nil {
		status, resp := middleware.MapDBError(err)
		c.JSON(status, resp)
		return
	}
	if countries == nil {
		countries = []model.Country{}
	}
	c.JSON(http.StatusOK, countries)
}

func (h *RatesHandler) ProvidersByCountry(c *gin.Context) {
	providers, err := h.svc.GetProvidersByCountry(c.Request.Context(), c.Param("code"))
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

func (h *RatesHandler) Currencies(c *gin.Context) {
	currencies, err := h.svc.GetAvailableCurrencies(c.Request.Context(), c.Param("code"))
	if err != nil {
		status, resp := middleware.MapDBError(err)
		c.JSON(status, resp)
		return
	}
	if currencies == nil {
		currencies = []string{}
	}
	c.JSON(http.StatusOK, currencies)
}
