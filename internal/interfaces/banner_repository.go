// internal/interfaces/banner_repository.go
package interfaces

import (
	"context"
	"errors"
	"time"

	"promomusic/internal/models"
)

// ErrInvalidStatusTransition is returned when a moderation update targets a
// banner that exists but is not in the required source status.
var ErrInvalidStatusTransition = errors.New("invalid banner status transition")

type BannerFilter struct {
	UserID string
	Status string
	Limit  int
	Offset int
}

type BannerRepository interface {
	Create(ctx context.Context, banner *models.BannerAd) error
	GetByID(ctx context.Context, id string) (*models.BannerAd, error)
	List(ctx context.Context, filter BannerFilter) ([]*models.BannerAd, error)
	StatsByOwner(ctx context.Context, userID string) (*models.BannerStats, error)

	// Moderation transitions. Both require status pending_moderation and
	// return ErrInvalidStatusTransition otherwise, or sql.ErrNoRows when
	// the banner does not exist.
	Approve(ctx context.Context, id string, startDate, endDate time.Time, adminNotes *string) error
	Reject(ctx context.Context, id string, reason string, adminNotes *string) error

	IncrementViews(ctx context.Context, id string) error
	IncrementClicks(ctx context.Context, id string) error

	// CompleteActiveEndedBefore marks active banners whose end date has
	// passed as completed and reports how many rows changed.
	CompleteActiveEndedBefore(ctx context.Context, now time.Time) (int64, error)
}
