package models

import "strings"

// PlanFree is the plan tier subject to the daily request quota.
const PlanFree = "free"

// UserProfile represents the authenticated user as reported by /me.
// LastRequestDate is kept as the raw string the proxy sends (it is a naive
// timestamp without a zone, so it does not round-trip through time.Time).
type UserProfile struct {
	Email             string  `json:"email"`
	PlanType          string  `json:"plan_type"`
	DailyRequestCount int     `json:"daily_request_count"`
	LastRequestDate   *string `json:"last_request_date,omitempty"`
}

// IsFree reports whether the user is on the quota-limited free tier.
func (u *UserProfile) IsFree() bool {
	return strings.EqualFold(u.PlanType, PlanFree)
}

// TokenResponse is the body returned by /login and /register.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
