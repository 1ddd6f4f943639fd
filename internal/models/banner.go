// internal/models/banner.go
package models

import (
	"strings"
	"time"
)

type BannerType string

const (
	BannerTypeTop          BannerType = "top_banner"
	BannerTypeSidebarLarge BannerType = "sidebar_large"
	BannerTypeSidebarSmall BannerType = "sidebar_small"
)

type BannerStatus string

const (
	BannerStatusPending   BannerStatus = "pending_moderation"
	BannerStatusActive    BannerStatus = "active"
	BannerStatusRejected  BannerStatus = "rejected"
	BannerStatusCompleted BannerStatus = "completed"
)

// BannerAd is one advertising campaign submission. Price is fixed at
// submission time and never recomputed; counters and moderation fields are
// written by the tracking and admin endpoints.
type BannerAd struct {
	ID              string       `json:"id"`
	UserID          string       `json:"user_id"`
	UserEmail       string       `json:"user_email"`
	CampaignName    string       `json:"campaign_name"`
	BannerType      BannerType   `json:"banner_type"`
	Dimensions      string       `json:"dimensions"`
	ImageURL        string       `json:"image_url"`
	TargetURL       string       `json:"target_url"`
	DurationDays    int          `json:"duration_days"`
	Price           int64        `json:"price"`
	Status          BannerStatus `json:"status"`
	Views           int64        `json:"views"`
	Clicks          int64        `json:"clicks"`
	RejectionReason *string      `json:"rejection_reason,omitempty"`
	AdminNotes      *string      `json:"admin_notes,omitempty"`
	StartDate       *time.Time   `json:"start_date,omitempty"`
	EndDate         *time.Time   `json:"end_date,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// SubmitBannerRequest fields are declared in the order the checks run, so
// the validator reports the first failing check. UserID and UserEmail come
// from the access token, not the request body.
type SubmitBannerRequest struct {
	UserID       string `json:"-" validate:"required"`
	UserEmail    string `json:"-" validate:"required,email"`
	CampaignName string `json:"campaign_name" validate:"required"`
	BannerType   string `json:"banner_type" validate:"required,oneof=top_banner sidebar_large sidebar_small"`
	ImageURL     string `json:"image_url" validate:"required,httpurl"`
	TargetURL    string `json:"target_url" validate:"required,httpurl"`
	DurationDays int    `json:"duration_days" validate:"required,min=1,max=90"`
	Dimensions   string `json:"dimensions"`
}

// Normalize trims whitespace and fills defaults before validation.
func (r *SubmitBannerRequest) Normalize() {
	r.CampaignName = strings.TrimSpace(r.CampaignName)
	r.ImageURL = strings.TrimSpace(r.ImageURL)
	r.TargetURL = strings.TrimSpace(r.TargetURL)
	if strings.TrimSpace(r.Dimensions) == "" {
		r.Dimensions = "auto"
	}
}

type SubmitBannerResponse struct {
	Success  bool         `json:"success"`
	BannerID string       `json:"banner_id"`
	Price    int64        `json:"price"`
	Status   BannerStatus `json:"status"`
	Message  string       `json:"message"`
}

type ApproveBannerRequest struct {
	AdminNotes *string `json:"admin_notes,omitempty"`
}

type RejectBannerRequest struct {
	RejectionReason string  `json:"rejection_reason" validate:"required"`
	AdminNotes      *string `json:"admin_notes,omitempty"`
}

// BannerStats aggregates an owner's campaigns. AverageCTR is
// (clicks/views)*100 and 0 when there are no views.
type BannerStats struct {
	TotalBanners int     `json:"total_banners"`
	TotalViews   int64   `json:"total_views"`
	TotalClicks  int64   `json:"total_clicks"`
	TotalSpent   int64   `json:"total_spent"`
	ActiveCount  int     `json:"active_count"`
	AverageCTR   float64 `json:"average_ctr"`
}
