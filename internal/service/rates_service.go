package service

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gulfrate/gulfrate/internal/model"
)

// OriginCurrency is the single send-side currency of the deployment. Every
// stored quote converts from it.
const OriginCurrency = "SAR"

type CountryStore interface {
	List(ctx context.Context) ([]model.Country, error)
}

type ProviderStore interface {
	ActiveByCountry(ctx context.Context, countryCode string) ([]model.Provider, error)
}

type RateStore interface {
	Latest(ctx context.Context, providerID int64, fromCurrency, toCurrency string) (*model.ExchangeRate, error)
	AvailableCurrencies(ctx context.Context, countryCode string) ([]string, error)
}

type Snapshot struct {
	Rates       []model.RateRow
	LastUpdated time.Time
}

type RatesService struct {
	countries CountryStore
	providers ProviderStore
	rates     RateStore
}

func NewRatesService(countries CountryStore, providers ProviderStore, rates RateStore) *RatesService {
	return &RatesService{countries: countries, providers: providers, rates: rates}
}

// GetExchangeRates builds the comparison snapshot for one (country, currency)
// pair: active providers of the country in display order, each joined to its
// latest SAR quote for the target currency. Providers without a quote are
// dropped. The snapshot timestamp is the newest last_updated among the rows
// returned, or the current time when there are none.
func (s *RatesService) GetExchangeRates(ctx context.Context, countryCode, toCurrency string) (*Snapshot, error) {
	providers, err := s.providers.ActiveByCountry(ctx, strings.ToLower(countryCode))
	if err != nil {
		return nil, err
	}

	// Each provider's latest quote is an independent lookup; fetch them
	// concurrently and keep the provider ordering via the index.
	found := make([]*model.ExchangeRate, len(providers))
	g, gctx := errgroup.WithContext(ctx)
	for i, p := range providers {
		i, p := i, p
		g.Go(func() error {
			rate, err := s.rates.Latest(gctx, p.ID, OriginCurrency, toCurrency)
			if err != nil {
				return err
			}
			found[i] = rate
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	snapshot := &Snapshot{Rates: []model.RateRow{}}
	for i, p := range providers {
		rate := found[i]
		if rate == nil {
			continue
		}
		snapshot.Rates = append(snapshot.Rates, mergeRateRow(p, rate))
		if rate.LastUpdated.After(snapshot.LastUpdated) {
			snapshot.LastUpdated = rate.LastUpdated
		}
	}
	if len(snapshot.Rates) == 0 {
		snapshot.LastUpdated = time.Now()
	}

	return snapshot, nil
}

func mergeRateRow(p model.Provider, rate *model.ExchangeRate) model.RateRow {
	return model.RateRow{
		ID:           p.ID,
		ProviderKey:  p.ProviderKey,
		Name:         p.Name,
		Logo:         p.Logo,
		LogoText:     p.LogoText,
		LogoColor:    p.LogoColor,
		URL:          p.URL,
		Type:         p.Type,
		Badge:        p.Badge,
		Rate:         rate.Rate,
		RateChange:   rate.RateChange,
		Fees:         rate.Fees,
		FeeType:      rate.FeeType,
		TransferTime: rate.TransferTime,
		Rating:       rate.Rating,
		Highlight:    rate.Highlight,
		LastUpdated:  rate.LastUpdated,
	}
}

func (s *RatesService) GetCountries(ctx context.Context) ([]model.Country, error) {
	return s.countries.List(ctx)
}

func (s *RatesService) GetProvidersByCountry(ctx context.Context, countryCode string) ([]model.Provider, error) {
	return s.providers.ActiveByCountry(ctx, strings.ToLower(countryCode))
}

func (s *RatesService) GetAvailableCurrencies(ctx context.Context, countryCode string) ([]string, error) {
	return s.rates.AvailableCurrencies(ctx, strings.ToLower(countryCode))
}
