package database

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type seedCountry struct {
	Code      string
	Name      string
	Flag      string
	Available bool
}

type seedProvider struct {
	Key       string
	Name      string
	Logo      string
	LogoText  string
	LogoColor string
	URL       string
	Type      string
	Badge     string
	SortOrder int
}

var seedCountries = []seedCountry{
	{"sa", "Saudi Arabia", "https://images.unsplash.com/photo-1586724237569-f3d0c1dee8c6", true},
	{"ae", "United Arab Emirates", "https://images.unsplash.com/flagged/photo-1559717865-a99cac1c95d8", false},
	{"qa", "Qatar", "https://images.unsplash.com/photo-1507904139316-3c7422a97a49", false},
	{"kw", "Kuwait", "", false},
	{"bh", "Bahrain", "", false},
	{"om", "Oman", "", false},
}

var seedProviders = []seedProvider{
	{"stc", "STC Bank", "/images/providers/stc.jpeg", "STC", "primary", "https://www.stcbank.com.sa/", "Digital Transfer", "Best Rate", 1},
	{"alrajhi", "Al Rajhi Bank", "/images/providers/alrajhi.jpeg", "ARB", "green", "https://www.alrajhibank.com.sa/EN", "Bank Transfer", "", 2},
	{"wu", "Western Union", "/images/providers/wu.svg", "WU", "yellow", "https://www.westernunion.com/sa/en/home.html", "Cash Pickup", "", 3},
	{"barq", "Barq", "/images/providers/barq.png", "Barq", "orange", "https://barq.com/", "Digital Wallet", "", 4},
	{"mobilypay", "MobilyPay", "/images/providers/mobilypay.svg", "MP", "purple", "https://mobilypay.sa/", "Mobile Wallet", "Lowest Fee", 5},
	{"tiqmo", "Tiqmo", "/images/providers/tiqmo.jpeg", "TQ", "blue", "https://tiqmo.com/", "Digital Wallet", "", 6},
	{"d360", "D360 Bank", "/images/providers/d360.jpeg", "D360", "indigo", "https://d360.com/en", "Bank Transfer", "", 7},
	{"alinma", "AlInma", "/images/providers/alinma.jpeg", "AI", "teal", "https://www.alinma.com/", "Bank Transfer", "", 8},
	{"urpay", "Urpay", "/images/providers/urpay.jpeg", "UP", "red", "https://www.urpay.com.sa/", "Digital Wallet", "", 9},
	{"friendipay", "FriendiPay", "/images/providers/friendipay.jpg", "FP", "pink", "https://www.friendipay.sa/", "Mobile Wallet", "", 10},
}

// Mid-market style baselines per SAR target currency.
var seedBaseRates = map[string]float64{
	"INR": 22.00,
	"PKR": 73.50,
	"PHP": 15.20,
	"BDT": 29.80,
	"NPR": 35.40,
	"EGP": 8.60,
	"LKR": 84.70,
	"USD": 0.267,
	"GBP": 0.208,
	"EUR": 0.244,
}

var seedCurrencies = []string{"INR", "PKR", "PHP", "BDT", "NPR", "EGP", "LKR", "USD", "GBP", "EUR"}

// SeedData loads the launch dataset: GCC countries (Saudi Arabia live), the
// Saudi provider lineup with SAR quotes to the main corridors, and a default
// admin. Idempotent; skips when countries already exist.
func SeedData(ctx context.Context, pool *pgxpool.Pool, adminPassword string) error {
	rng := rand.New(rand.NewSource(42))

	var count int
	err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM countries").Scan(&count)
	if err != nil {
		return fmt.Errorf("check existing data: %w", err)
	}
	if count > 0 {
		log.Info().Msg("seed data already exists, skipping")
		return nil
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, c := range seedCountries {
		var flag any
		if c.Flag != "" {
			flag = c.Flag
		}
		_, err := tx.Exec(ctx,
			"INSERT INTO countries (code, name, flag, available) VALUES ($1, $2, $3, $4)",
			c.Code, c.Name, flag, c.Available)
		if err != nil {
			return fmt.Errorf("insert country %s: %w", c.Code, err)
		}
	}
	log.Info().Int("count", len(seedCountries)).Msg("inserted countries")

	providerIDs := make(map[string]int64, len(seedProviders))
	for _, p := range seedProviders {
		var badge any
		if p.Badge != "" {
			badge = p.Badge
		}
		var id int64
		err := tx.QueryRow(ctx,
			`INSERT INTO providers (provider_key, name, logo, logo_text, logo_color, url, type, badge, active, country_code, sort_order)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, true, 'sa', $9)
			RETURNING id`,
			p.Key, p.Name, p.Logo, p.LogoText, p.LogoColor, p.URL, p.Type, badge, p.SortOrder,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("insert provider %s: %w", p.Key, err)
		}
		providerIDs[p.Key] = id
	}
	log.Info().Int("count", len(seedProviders)).Msg("inserted providers")

	totalRates := 0
	for _, p := range seedProviders {
		for _, currency := range seedCurrencies {
			base := seedBaseRates[currency]
			rate := base + (rng.Float64()-0.5)*base*0.01

			var fees, rating float64
			var transferTime string
			var highlight bool

			switch p.Key {
			case "stc":
				rate += base * 0.005
				fees, transferTime, rating, highlight = 10, "1-3 hours", 4.8, true
			case "mobilypay":
				fees, transferTime, rating, highlight = 0, "1-12 hours", 4.0, true
			case "wu":
				fees, transferTime, rating = 25, "Minutes", 4.0
			case "alrajhi":
				fees, transferTime, rating = 15, "1-2 days", 4.5
			case "barq":
				fees, transferTime, rating = 5, "1-24 hours", 4.3
			default:
				fees = float64(5 + rng.Intn(20))
				transferTime = []string{"1-2 days", "1-24 hours", "6-12 hours"}[rng.Intn(3)]
				rating = math.Round((3.0+rng.Float64()*2.0)*10) / 10
			}

			feeType := "Fixed fee"
			if fees == 0 {
				feeType = "No fee"
			} else if rng.Float64() > 0.5 {
				feeType = "Variable fee"
			}

			rateChange := rng.Float64()*0.45 - 0.2

			_, err := tx.Exec(ctx,
				`INSERT INTO exchange_rates (provider_id, from_currency, to_currency, rate, rate_change, fees, fee_type, transfer_time, rating, highlight)
				VALUES ($1, 'SAR', $2, $3, $4, $5, $6, $7, $8, $9)`,
				providerIDs[p.Key], currency,
				math.Round(rate*10000)/10000, math.Round(rateChange*10000)/10000,
				fees, feeType, transferTime, rating, highlight)
			if err != nil {
				return fmt.Errorf("insert rate %s/%s: %w", p.Key, currency, err)
			}
			totalRates++
		}
	}
	log.Info().Int("count", totalRates).Msg("inserted exchange rates")

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	_, err = tx.Exec(ctx,
		`INSERT INTO admins (username, password_hash, full_name, email, role)
		VALUES ('admin', $1, 'Site Administrator', 'admin@gulfrate.com', 'admin')`,
		string(hash))
	if err != nil {
		return fmt.Errorf("insert admin: %w", err)
	}
	log.Info().Msg("inserted default admin")

	return tx.Commit(ctx)
}
