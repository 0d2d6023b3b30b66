package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gulfrate/gulfrate/internal/dto"
	"github.com/gulfrate/gulfrate/internal/model"
	"github.com/gulfrate/gulfrate/internal/repository"
)

type fakeAdminRateStore struct {
	rates    map[int64]*model.ExchangeRate
	inserted []*model.ExchangeRate
	nextID   int64
}

func newFakeAdminRateStore(rates ...*model.ExchangeRate) *fakeAdminRateStore {
	f := &fakeAdminRateStore{rates: make(map[int64]*model.ExchangeRate)}
	for _, r := range rates {
		f.rates[r.ID] = r
		if r.ID > f.nextID {
			f.nextID = r.ID
		}
	}
	return f
}

func (f *fakeAdminRateStore) Insert(_ context.Context, er *model.ExchangeRate) error {
	f.nextID++
	er.ID = f.nextID
	f.rates[er.ID] = er
	f.inserted = append(f.inserted, er)
	return nil
}

func (f *fakeAdminRateStore) Update(_ context.Context, id int64, req *dto.UpdateExchangeRateRequest) (*model.ExchangeRate, error) {
	er, ok := f.rates[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if req.Rate != nil {
		er.Rate = *req.Rate
	}
	if req.Fees != nil {
		er.Fees = *req.Fees
	}
	return er, nil
}

func (f *fakeAdminRateStore) ListWithProviders(_ context.Context) ([]model.ExchangeRateWithProvider, error) {
	return nil, nil
}

type fakeAdminProviderStore struct {
	providers map[int64]*model.Provider
	nextID    int64
}

func newFakeAdminProviderStore() *fakeAdminProviderStore {
	return &fakeAdminProviderStore{providers: make(map[int64]*model.Provider)}
}

func (f *fakeAdminProviderStore) Insert(_ context.Context, p *model.Provider) error {
	f.nextID++
	p.ID = f.nextID
	f.providers[p.ID] = p
	return nil
}

func (f *fakeAdminProviderStore) Update(_ context.Context, id int64, req *dto.UpdateProviderRequest) (*model.Provider, error) {
	p, ok := f.providers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if req.Active != nil {
		p.Active = *req.Active
	}
	return p, nil
}

func (f *fakeAdminProviderStore) ListAll(_ context.Context) ([]model.Provider, error) {
	return nil, nil
}

func TestCreateRate_Defaults(t *testing.T) {
	store := newFakeAdminRateStore()
	svc := NewAdminService(store, newFakeAdminProviderStore())

	rate, err := svc.CreateRate(context.Background(), &dto.CreateExchangeRateRequest{
		ProviderID:   7,
		ToCurrency:   "PKR",
		Rate:         73.40,
		TransferTime: "Instant",
		Rating:       4.5,
	})
	require.NoError(t, err)

	assert.Equal(t, OriginCurrency, rate.FromCurrency)
	assert.Equal(t, "Fixed fee", rate.FeeType)
	assert.NotZero(t, rate.ID)
}

func TestBulkUpdateRates_PartialFailure(t *testing.T) {
	newRate := 22.75
	store := newFakeAdminRateStore(&model.ExchangeRate{ID: 1, Rate: 22.00})
	svc := NewAdminService(store, newFakeAdminProviderStore())

	resp := svc.BulkUpdateRates(context.Background(), &dto.BulkUpdateRatesRequest{
		Updates: []dto.BulkRateUpdate{
			{ID: 1, UpdateExchangeRateRequest: dto.UpdateExchangeRateRequest{Rate: &newRate}},
			{ID: 999, UpdateExchangeRateRequest: dto.UpdateExchangeRateRequest{Rate: &newRate}},
		},
	})

	assert.Equal(t, 1, resp.Updated)
	assert.Equal(t, 1, resp.Failed)
	require.Len(t, resp.Results, 2)

	assert.True(t, resp.Results[0].Success)
	assert.Equal(t, int64(1), resp.Results[0].ID)
	require.NotNil(t, resp.Results[0].Rate)
	assert.Equal(t, newRate, resp.Results[0].Rate.Rate)

	assert.False(t, resp.Results[1].Success)
	assert.Equal(t, int64(999), resp.Results[1].ID)
	assert.NotEmpty(t, resp.Results[1].Error)
}

func TestBulkUpdateRates_Empty(t *testing.T) {
	svc := NewAdminService(newFakeAdminRateStore(), newFakeAdminProviderStore())

	resp := svc.BulkUpdateRates(context.Background(), &dto.BulkUpdateRatesRequest{})
	assert.Zero(t, resp.Updated)
	assert.Zero(t, resp.Failed)
	assert.NotNil(t, resp.Results)
	assert.Empty(t, resp.Results)
}

func TestCreateProvider_ActiveDefaultsTrue(t *testing.T) {
	svc := NewAdminService(newFakeAdminRateStore(), newFakeAdminProviderStore())

	p, err := svc.CreateProvider(context.Background(), &dto.CreateProviderRequest{
		ProviderKey: "newbank",
		Name:        "New Bank",
		URL:         "https://newbank.example",
		Type:        "Bank Transfer",
		CountryCode: "sa",
	})
	require.NoError(t, err)
	assert.True(t, p.Active)

	inactive := false
	p2, err := svc.CreateProvider(context.Background(), &dto.CreateProviderRequest{
		ProviderKey: "quiet",
		Name:        "Quiet",
		URL:         "https://quiet.example",
		Type:        "Digital Wallet",
		CountryCode: "sa",
		Active:      &inactive,
	})
	require.NoError(t, err)
	assert.False(t, p2.Active)
}

func TestUpdateProvider_NotFound(t *testing.T) {
	svc := NewAdminService(newFakeAdminRateStore(), newFakeAdminProviderStore())

	_, err := svc.UpdateProvider(context.Background(), 42, &dto.UpdateProviderRequest{})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
