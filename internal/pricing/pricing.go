// internal/pricing/pricing.go
package pricing

import (
	"errors"

	"promomusic/internal/models"
)

// Per-day rates in the smallest currency unit. Prices are computed once at
// submission time; editing this table never changes already-stored prices.
var dailyRates = map[models.BannerType]int64{
	models.BannerTypeTop:          15000,
	models.BannerTypeSidebarLarge: 12000,
	models.BannerTypeSidebarSmall: 8000,
}

var ErrUnknownBannerType = errors.New("unknown banner type")

// discountPercent picks a single tier; the longest qualifying one wins.
func discountPercent(days int) int64 {
	switch {
	case days >= 30:
		return 15
	case days >= 14:
		return 5
	default:
		return 0
	}
}

// Calculate returns the total price for running a banner of the given type
// for the given number of days, rounded half up to a whole currency unit.
// Duration bounds are enforced by the submission validator; only the rate
// lookup is guarded here.
func Calculate(bannerType models.BannerType, days int) (int64, error) {
	rate, ok := dailyRates[bannerType]
	if !ok {
		return 0, ErrUnknownBannerType
	}
	base := rate * int64(days)
	pct := discountPercent(days)
	return (base*(100-pct) + 50) / 100, nil
}
