package dto

type CreateLeadRequest struct {
	FullName     string `json:"fullName" binding:"required,min=2"`
	Email        string `json:"email" binding:"required,email"`
	CountryCode  string `json:"countryCode" binding:"required"`
	Phone        string `json:"phone" binding:"required,min=9"`
	FromCurrency string `json:"fromCurrency" binding:"required"`
	ToCurrency   string `json:"toCurrency" binding:"required"`
	TargetRate   string `json:"targetRate"`
	Consent      bool   `json:"consent"`
	CountryCode2 string `json:"countryCode2"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateExchangeRateRequest struct {
	ProviderID   int64   `json:"providerId" binding:"required"`
	FromCurrency string  `json:"fromCurrency"`
	ToCurrency   string  `json:"toCurrency" binding:"required"`
	Rate         float64 `json:"rate" binding:"required,gt=0"`
	RateChange   float64 `json:"rateChange"`
	Fees         float64 `json:"fees" binding:"gte=0"`
	FeeType      string  `json:"feeType"`
	TransferTime string  `json:"transferTime" binding:"required"`
	Rating       float64 `json:"rating" binding:"required,gte=1,lte=5"`
	Highlight    bool    `json:"highlight"`
}

// UpdateExchangeRateRequest carries a partial update; nil fields are left
// untouched. last_updated is always stamped server-side.
type UpdateExchangeRateRequest struct {
	Rate         *float64 `json:"rate" binding:"omitempty,gt=0"`
	RateChange   *float64 `json:"rateChange"`
	Fees         *float64 `json:"fees" binding:"omitempty,gte=0"`
	FeeType      *string  `json:"feeType"`
	TransferTime *string  `json:"transferTime"`
	Rating       *float64 `json:"rating" binding:"omitempty,gte=1,lte=5"`
	Highlight    *bool    `json:"highlight"`
}

type BulkRateUpdate struct {
	ID int64 `json:"id" binding:"required"`
	UpdateExchangeRateRequest
}

type BulkUpdateRatesRequest struct {
	Updates []BulkRateUpdate `json:"updates" binding:"required,min=1,max=200,dive"`
}

type CreateProviderRequest struct {
	ProviderKey string  `json:"providerKey" binding:"required"`
	Name        string  `json:"name" binding:"required,min=2"`
	Logo        *string `json:"logo"`
	LogoText    *string `json:"logoText"`
	LogoColor   *string `json:"logoColor"`
	URL         string  `json:"url" binding:"required,url"`
	Type        string  `json:"type" binding:"required"`
	Badge       *string `json:"badge"`
	Active      *bool   `json:"active"`
	CountryCode string  `json:"countryCode" binding:"required"`
	SortOrder   int     `json:"sortOrder"`
}

type UpdateProviderRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=2"`
	Logo      *string `json:"logo"`
	LogoText  *string `json:"logoText"`
	LogoColor *string `json:"logoColor"`
	URL       *string `json:"url" binding:"omitempty,url"`
	Type      *string `json:"type"`
	Badge     *string `json:"badge"`
	Active    *bool   `json:"active"`
	SortOrder *int    `json:"sortOrder"`
}
