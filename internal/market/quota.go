package market

import "github.com/OzgurKaptann/mini-market-dashboard/pkg/models"

// FreeDailyLimit is the proxy's daily upstream-request allowance for the
// free plan. Cache hits on the proxy side do not count against it.
const FreeDailyLimit = 10

// Quota derives the usage snapshot from a fresh profile. It is nil for any
// plan other than free: paid plans have no daily cap to display.
func Quota(profile *models.UserProfile) *models.QuotaSnapshot {
	if profile == nil || !profile.IsFree() {
		return nil
	}

	used := profile.DailyRequestCount
	if used < 0 {
		used = 0
	}

	left := FreeDailyLimit - used
	if left < 0 {
		left = 0
	}

	return &models.QuotaSnapshot{Used: used, Left: left}
}
