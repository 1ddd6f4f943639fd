package pricing

import (
	"testing"

	"promomusic/internal/models"
)

func TestCalculateKnownPrices(t *testing.T) {
	tests := []struct {
		name       string
		bannerType models.BannerType
		days       int
		want       int64
	}{
		{"top banner 30 days gets 15 percent off", models.BannerTypeTop, 30, 382500},
		{"sidebar small 14 days gets 5 percent off", models.BannerTypeSidebarSmall, 14, 106400},
		{"sidebar large 5 days no discount", models.BannerTypeSidebarLarge, 5, 60000},
		{"single day top banner", models.BannerTypeTop, 1, 15000},
		{"90 days top banner", models.BannerTypeTop, 90, 1147500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calculate(tt.bannerType, tt.days)
			if err != nil {
				t.Fatalf("Calculate: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Calculate(%s, %d) = %d, want %d", tt.bannerType, tt.days, got, tt.want)
			}
		})
	}
}

func TestCalculateTierBoundaries(t *testing.T) {
	// 13 days: no discount. 14 days: 5%. 29 days: still 5%. 30 days: 15%.
	cases := map[int]int64{
		13: 13 * 15000,
		14: 14 * 15000 * 95 / 100,
		29: 29 * 15000 * 95 / 100,
		30: 30 * 15000 * 85 / 100,
	}
	for days, want := range cases {
		got, err := Calculate(models.BannerTypeTop, days)
		if err != nil {
			t.Fatalf("Calculate(top_banner, %d): %v", days, err)
		}
		if got != want {
			t.Fatalf("Calculate(top_banner, %d) = %d, want %d", days, got, want)
		}
	}
}

func TestCalculateUnknownType(t *testing.T) {
	if _, err := Calculate("popup_banner", 10); err != ErrUnknownBannerType {
		t.Fatalf("expected ErrUnknownBannerType, got %v", err)
	}
}

func TestCalculateIsPureAndNonNegative(t *testing.T) {
	types := []models.BannerType{
		models.BannerTypeTop,
		models.BannerTypeSidebarLarge,
		models.BannerTypeSidebarSmall,
	}
	for _, bt := range types {
		for days := 1; days <= 90; days++ {
			first, err := Calculate(bt, days)
			if err != nil {
				t.Fatalf("Calculate(%s, %d): %v", bt, days, err)
			}
			if first < 0 {
				t.Fatalf("Calculate(%s, %d) = %d, negative price", bt, days, first)
			}
			second, _ := Calculate(bt, days)
			if first != second {
				t.Fatalf("Calculate(%s, %d) not idempotent: %d vs %d", bt, days, first, second)
			}
		}
	}
}

func TestCalculateMonotonicWithinTiers(t *testing.T) {
	// Price never decreases as duration grows except at the documented tier
	// boundaries (14 and 30 days), where the larger discount kicks in.
	for days := 2; days <= 90; days++ {
		if days == 14 || days == 30 {
			continue
		}
		prev, _ := Calculate(models.BannerTypeSidebarSmall, days-1)
		cur, _ := Calculate(models.BannerTypeSidebarSmall, days)
		if cur < prev {
			t.Fatalf("price decreased from %d to %d between %d and %d days", prev, cur, days-1, days)
		}
	}
}
