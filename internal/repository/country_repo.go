package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gulfrate/gulfrate/internal/model"
)

type CountryRepository struct {
	pool *pgxpool.Pool
}

func NewCountryRepository(pool *pgxpool.Pool) *CountryRepository {
	return &CountryRepository{pool: pool}
}

// List returns every country, available ones first, then alphabetically.
func (r *CountryRepository) List(ctx context.Context) ([]model.Country, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, code, name, flag, available
		FROM countries
		ORDER BY available DESC, name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var countries []model.Country
	for rows.Next() {
		var c model.Country
		if err := rows.Scan(&c.ID, &c.Code, &c.Name, &c.Flag, &c.Available); err != nil {
			return nil, err
		}
		countries = append(countries, c)
	}
	return countries, rows.Err()
}
