package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gulfrate/gulfrate/internal/dto"
	"github.com/gulfrate/gulfrate/internal/model"
)

const rateColumns = `id, provider_id, from_currency, to_currency, rate, rate_change, fees, fee_type, transfer_time, rating, highlight, last_updated`

type RateRepository struct {
	pool *pgxpool.Pool
}

func NewRateRepository(pool *pgxpool.Pool) *RateRepository {
	return &RateRepository{pool: pool}
}

func scanRate(row pgx.Row, er *model.ExchangeRate) error {
	return row.Scan(&er.ID, &er.ProviderID, &er.FromCurrency, &er.ToCurrency,
		&er.Rate, &er.RateChange, &er.Fees, &er.FeeType, &er.TransferTime,
		&er.Rating, &er.Highlight, &er.LastUpdated)
}

// Latest returns the newest quote for a (provider, pair), or nil when the
// provider has never quoted that pair. Historical rows stay in place; the
// newest last_updated wins.
func (r *RateRepository) Latest(ctx context.Context, providerID int64, fromCurrency, toCurrency string) (*model.ExchangeRate, error) {
	er := &model.ExchangeRate{}
	err := scanRate(r.pool.QueryRow(ctx,
		`SELECT `+rateColumns+`
		FROM exchange_rates
		WHERE provider_id = $1 AND from_currency = $2 AND to_currency = $3
		ORDER BY last_updated DESC
		LIMIT 1`, providerID, fromCurrency, toCurrency), er)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return er, nil
}

// AvailableCurrencies returns the distinct target currencies quoted by the
// active providers of a country.
func (r *RateRepository) AvailableCurrencies(ctx context.Context, countryCode string) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT er.to_currency
		FROM exchange_rates er
		JOIN providers p ON p.id = er.provider_id
			AND p.country_code = $1
			AND p.active = true
		GROUP BY er.to_currency
		ORDER BY er.to_currency`, countryCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var currencies []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		currencies = append(currencies, c)
	}
	return currencies, rows.Err()
}

// ListWithProviders returns every rate row joined to its provider, for the
// admin rate table.
func (r *RateRepository) ListWithProviders(ctx context.Context) ([]model.ExchangeRateWithProvider, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT er.id, er.provider_id, er.from_currency, er.to_currency, er.rate,
			er.rate_change, er.fees, er.fee_type, er.transfer_time, er.rating,
			er.highlight, er.last_updated,
			p.id, p.provider_key, p.name, p.logo, p.logo_text, p.logo_color,
			p.url, p.type, p.badge, p.active, p.country_code, p.sort_order
		FROM exchange_rates er
		JOIN providers p ON p.id = er.provider_id
		ORDER BY p.name ASC, er.to_currency ASC, er.last_updated DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.ExchangeRateWithProvider
	for rows.Next() {
		var row model.ExchangeRateWithProvider
		err := rows.Scan(&row.ID, &row.ProviderID, &row.FromCurrency, &row.ToCurrency,
			&row.Rate, &row.RateChange, &row.Fees, &row.FeeType, &row.TransferTime,
			&row.Rating, &row.Highlight, &row.LastUpdated,
			&row.Provider.ID, &row.Provider.ProviderKey, &row.Provider.Name,
			&row.Provider.Logo, &row.Provider.LogoText, &row.Provider.LogoColor,
			&row.Provider.URL, &row.Provider.Type, &row.Provider.Badge,
			&row.Provider.Active, &row.Provider.CountryCode, &row.Provider.SortOrder)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// Insert adds a new quote. Duplicates per (provider, pair) are allowed; the
// read path always picks the latest row.
func (r *RateRepository) Insert(ctx context.Context, er *model.ExchangeRate) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO exchange_rates (provider_id, from_currency, to_currency, rate, rate_change, fees, fee_type, transfer_time, rating, highlight)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, last_updated`,
		er.ProviderID, er.FromCurrency, er.ToCurrency, er.Rate, er.RateChange,
		er.Fees, er.FeeType, er.TransferTime, er.Rating, er.Highlight,
	).Scan(&er.ID, &er.LastUpdated)
}

// Update applies the non-nil fields of req to one rate row and stamps
// last_updated unconditionally.
func (r *RateRepository) Update(ctx context.Context, id int64, req *dto.UpdateExchangeRateRequest) (*model.ExchangeRate, error) {
	set := []string{"last_updated = NOW()"}
	args := []any{}

	add := func(col string, val any) {
		args = append(args, val)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if req.Rate != nil {
		add("rate", *req.Rate)
	}
	if req.RateChange != nil {
		add("rate_change", *req.RateChange)
	}
	if req.Fees != nil {
		add("fees", *req.Fees)
	}
	if req.FeeType != nil {
		add("fee_type", *req.FeeType)
	}
	if req.TransferTime != nil {
		add("transfer_time", *req.TransferTime)
	}
	if req.Rating != nil {
		add("rating", *req.Rating)
	}
	if req.Highlight != nil {
		add("highlight", *req.Highlight)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE exchange_rates SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(set, ", "), len(args), rateColumns)

	er := &model.ExchangeRate{}
	if err := scanRate(r.pool.QueryRow(ctx, query, args...), er); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return er, nil
}
