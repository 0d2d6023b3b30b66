package service

import (
	"context"

	"github.com/gulfrate/gulfrate/internal/dto"
	"github.com/gulfrate/gulfrate/internal/model"
)

type AdminRateStore interface {
	Insert(ctx context.Context, er *model.ExchangeRate) error
	Update(ctx context.Context, id int64, req *dto.UpdateExchangeRateRequest) (*model.ExchangeRate, error)
	ListWithProviders(ctx context.Context) ([]model.ExchangeRateWithProvider, error)
}

type AdminProviderStore interface {
	Insert(ctx context.Context, p *model.Provider) error
	Update(ctx context.Context, id int64, req *dto.UpdateProviderRequest) (*model.Provider, error)
	ListAll(ctx context.Context) ([]model.Provider, error)
}

// AdminService is the back-office mutation path. It writes straight to the
// store; readers pick the changes up on their next poll.
type AdminService struct {
	rates     AdminRateStore
	providers AdminProviderStore
}

func NewAdminService(rates AdminRateStore, providers AdminProviderStore) *AdminService {
	return &AdminService{rates: rates, providers: providers}
}

func (s *AdminService) ListRates(ctx context.Context) ([]model.ExchangeRateWithProvider, error) {
	return s.rates.ListWithProviders(ctx)
}

func (s *AdminService) ListProviders(ctx context.Context) ([]model.Provider, error) {
	return s.providers.ListAll(ctx)
}

// CreateRate inserts a new quote. Uniqueness per (provider, pair) is not
// enforced; the aggregator's latest-timestamp rule handles duplicates.
func (s *AdminService) CreateRate(ctx context.Context, req *dto.CreateExchangeRateRequest) (*model.ExchangeRate, error) {
	er := &model.ExchangeRate{
		ProviderID:   req.ProviderID,
		FromCurrency: req.FromCurrency,
		ToCurrency:   req.ToCurrency,
		Rate:         req.Rate,
		RateChange:   req.RateChange,
		Fees:         req.Fees,
		FeeType:      req.FeeType,
		TransferTime: req.TransferTime,
		Rating:       req.Rating,
		Highlight:    req.Highlight,
	}
	if er.FromCurrency == "" {
		er.FromCurrency = OriginCurrency
	}
	if er.FeeType == "" {
		er.FeeType = "Fixed fee"
	}

	if err := s.rates.Insert(ctx, er); err != nil {
		return nil, err
	}
	return er, nil
}

func (s *AdminService) UpdateRate(ctx context.Context, id int64, req *dto.UpdateExchangeRateRequest) (*model.ExchangeRate, error) {
	return s.rates.Update(ctx, id, req)
}

// BulkUpdateRates applies each update independently: one bad item never
// aborts the rest, and the per-item outcome is reported back so the caller
// can show partial success.
func (s *AdminService) BulkUpdateRates(ctx context.Context, req *dto.BulkUpdateRatesRequest) dto.BulkUpdateResponse {
	resp := dto.BulkUpdateResponse{Results: make([]dto.BulkUpdateResult, 0, len(req.Updates))}

	for _, item := range req.Updates {
		rate, err := s.rates.Update(ctx, item.ID, &item.UpdateExchangeRateRequest)
		if err != nil {
			resp.Failed++
			resp.Results = append(resp.Results, dto.BulkUpdateResult{
				ID:    item.ID,
				Error: err.Error(),
			})
			continue
		}
		resp.Updated++
		resp.Results = append(resp.Results, dto.BulkUpdateResult{
			ID:      item.ID,
			Success: true,
			Rate:    rate,
		})
	}

	return resp
}

func (s *AdminService) CreateProvider(ctx context.Context, req *dto.CreateProviderRequest) (*model.Provider, error) {
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	p := &model.Provider{
		ProviderKey: req.ProviderKey,
		Name:        req.Name,
		Logo:        req.Logo,
		LogoText:    req.LogoText,
		LogoColor:   req.LogoColor,
		URL:         req.URL,
		Type:        req.Type,
		Badge:       req.Badge,
		Active:      active,
		CountryCode: req.CountryCode,
		SortOrder:   req.SortOrder,
	}

	if err := s.providers.Insert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *AdminService) UpdateProvider(ctx context.Context, id int64, req *dto.UpdateProviderRequest) (*model.Provider, error) {
	return s.providers.Update(ctx, id, req)
}
