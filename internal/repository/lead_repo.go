package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gulfrate/gulfrate/internal/model"
)

type LeadRepository struct {
	pool *pgxpool.Pool
}

func NewLeadRepository(pool *pgxpool.Pool) *LeadRepository {
	return &LeadRepository{pool: pool}
}

func (r *LeadRepository) Insert(ctx context.Context, lead *model.Lead) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO leads (full_name, email, country_code, phone, from_currency, to_currency, target_rate, consent, country_code_2)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`,
		lead.FullName, lead.Email, lead.CountryCode, lead.Phone,
		lead.FromCurrency, lead.ToCurrency, lead.TargetRate, lead.Consent,
		lead.CountryCode2,
	).Scan(&lead.ID, &lead.CreatedAt)
}

// MarkEmailSent flips the best-effort delivery flag after a confirmation
// email went out. Never called when the send failed.
func (r *LeadRepository) MarkEmailSent(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE leads SET email_sent = true WHERE id = $1`, id)
	return err
}
