package models

import "github.com/shopspring/decimal"

// Asset represents one tradable asset from the markets list.
// Price fields are optional upstream, so they are pointers.
type Asset struct {
	ID             string           `json:"id"`
	Symbol         string           `json:"symbol"`
	Name           string           `json:"name"`
	Image          string           `json:"image,omitempty"`
	CurrentPrice   *decimal.Decimal `json:"current_price,omitempty"`
	PriceChange24h *decimal.Decimal `json:"price_change_percentage_24h,omitempty"`
	MarketCapRank  *int             `json:"market_cap_rank,omitempty"`
}

// QuotaSnapshot is the derived free-tier usage indicator.
// It is never stored, only computed from a fresh UserProfile.
type QuotaSnapshot struct {
	Used int `json:"used"`
	Left int `json:"left"`
}
