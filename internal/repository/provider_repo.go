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

const providerColumns = `id, provider_key, name, logo, logo_text, logo_color, url, type, badge, active, country_code, sort_order`

type ProviderRepository struct {
	pool *pgxpool.Pool
}

func NewProviderRepository(pool *pgxpool.Pool) *ProviderRepository {
	return &ProviderRepository{pool: pool}
}

func scanProvider(row pgx.Row, p *model.Provider) error {
	return row.Scan(&p.ID, &p.ProviderKey, &p.Name, &p.Logo, &p.LogoText, &p.LogoColor,
		&p.URL, &p.Type, &p.Badge, &p.Active, &p.CountryCode, &p.SortOrder)
}

// ActiveByCountry returns the active providers of a country in display order.
// Ties on sort_order fall back to insertion order.
func (r *ProviderRepository) ActiveByCountry(ctx context.Context, countryCode string) ([]model.Provider, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+providerColumns+`
		FROM providers
		WHERE country_code = $1 AND active = true
		ORDER BY sort_order ASC, id ASC`, countryCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProviders(rows)
}

// ListAll returns every provider for the admin back office, active first.
func (r *ProviderRepository) ListAll(ctx context.Context) ([]model.Provider, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+providerColumns+`
		FROM providers
		ORDER BY active DESC, sort_order ASC, name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProviders(rows)
}

func collectProviders(rows pgx.Rows) ([]model.Provider, error) {
	var providers []model.Provider
	for rows.Next() {
		var p model.Provider
		if err := scanProvider(rows, &p); err != nil {
			return nil, err
		}
		providers = append(providers, p)
	}
	return providers, rows.Err()
}

func (r *ProviderRepository) Insert(ctx context.Context, p *model.Provider) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO providers (provider_key, name, logo, logo_text, logo_color, url, type, badge, active, country_code, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`,
		p.ProviderKey, p.Name, p.Logo, p.LogoText, p.LogoColor, p.URL, p.Type,
		p.Badge, p.Active, p.CountryCode, p.SortOrder,
	).Scan(&p.ID)
}

// Update applies the non-nil fields of req to one provider row.
func (r *ProviderRepository) Update(ctx context.Context, id int64, req *dto.UpdateProviderRequest) (*model.Provider, error) {
	set := []string{}
	args := []any{}

	add := func(col string, val any) {
		args = append(args, val)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if req.Name != nil {
		add("name", *req.Name)
	}
	if req.Logo != nil {
		add("logo", *req.Logo)
	}
	if req.LogoText != nil {
		add("logo_text", *req.LogoText)
	}
	if req.LogoColor != nil {
		add("logo_color", *req.LogoColor)
	}
	if req.URL != nil {
		add("url", *req.URL)
	}
	if req.Type != nil {
		add("type", *req.Type)
	}
	if req.Badge != nil {
		add("badge", *req.Badge)
	}
	if req.Active != nil {
		add("active", *req.Active)
	}
	if req.SortOrder != nil {
		add("sort_order", *req.SortOrder)
	}

	if len(set) == 0 {
		return r.findByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE providers SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(set, ", "), len(args), providerColumns)

	p := &model.Provider{}
	if err := scanProvider(r.pool.QueryRow(ctx, query, args...), p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *ProviderRepository) findByID(ctx context.Context, id int64) (*model.Provider, error) {
	p := &model.Provider{}
	err := scanProvider(r.pool.QueryRow(ctx,
		`SELECT `+providerColumns+` FROM providers WHERE id = $1`, id), p)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}
