package model

import (
	"time"
)

type Country struct {
	ID        int64   `json:"id"`
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	Flag      *string `json:"flag"`
	Available bool    `json:"available"`
}

type Provider struct {
	ID          int64   `json:"id"`
	ProviderKey string  `json:"providerKey"`
	Name        string  `json:"name"`
	Logo        *string `json:"logo"`
	LogoText    *string `json:"logoText"`
	LogoColor   *string `json:"logoColor"`
	URL         string  `json:"url"`
	Type        string  `json:"type"`
	Badge       *string `json:"badge"`
	Active      bool    `json:"active"`
	CountryCode string  `json:"countryCode"`
	SortOrder   int     `json:"sortOrder"`
}

type ExchangeRate struct {
	ID           int64     `json:"id"`
	ProviderID   int64     `json:"providerId"`
	FromCurrency string    `json:"fromCurrency"`
	ToCurrency   string    `json:"toCurrency"`
	Rate         float64   `json:"rate"`
	RateChange   float64   `json:"rateChange"`
	Fees         float64   `json:"fees"`
	FeeType      string    `json:"feeType"`
	TransferTime string    `json:"transferTime"`
	Rating       float64   `json:"rating"`
	Highlight    bool      `json:"highlight"`
	LastUpdated  time.Time `json:"lastUpdated"`
}

// ExchangeRateWithProvider is the joined row shape used by the admin rate list.
type ExchangeRateWithProvider struct {
	ExchangeRate
	Provider Provider `json:"provider"`
}

// RateRow merges a provider's display fields with its latest quote for one
// currency pair. The public comparison table renders these directly.
type RateRow struct {
	ID           int64     `json:"id"`
	ProviderKey  string    `json:"providerKey"`
	Name         string    `json:"name"`
	Logo         *string   `json:"logo"`
	LogoText     *string   `json:"logoText"`
	LogoColor    *string   `json:"logoColor"`
	URL          string    `json:"url"`
	Type         string    `json:"type"`
	Badge        *string   `json:"badge"`
	Rate         float64   `json:"rate"`
	RateChange   float64   `json:"rateChange"`
	Fees         float64   `json:"fees"`
	FeeType      string    `json:"feeType"`
	TransferTime string    `json:"transferTime"`
	Rating       float64   `json:"rating"`
	Highlight    bool      `json:"highlight"`
	LastUpdated  time.Time `json:"lastUpdated"`
}

// Lead is a rate-alert subscription. CountryCode holds the phone dialing code
// the visitor picked, not a countries.code value; CountryCode2 holds the site
// country the form was submitted from.
type Lead struct {
	ID           int64     `json:"id"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	CountryCode  string    `json:"countryCode"`
	Phone        string    `json:"phone"`
	FromCurrency string    `json:"fromCurrency"`
	ToCurrency   string    `json:"toCurrency"`
	TargetRate   *string   `json:"targetRate"`
	Consent      bool      `json:"consent"`
	CreatedAt    time.Time `json:"createdAt"`
	EmailSent    bool      `json:"emailSent"`
	CountryCode2 string    `json:"countryCode2"`
}

const (
	RoleAdmin      = "admin"
	RoleEditor     = "editor"
	RoleRateEditor = "rate_editor"
)

type Admin struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	FullName     string     `json:"fullName"`
	Email        string     `json:"email"`
	Role         string     `json:"role"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastLogin    *time.Time `json:"lastLogin"`
}
