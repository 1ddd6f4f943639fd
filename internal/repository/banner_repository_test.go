package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"promomusic/internal/interfaces"
	"promomusic/internal/models"
)

func TestBannerCreateInsertsAllColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	banner := &models.BannerAd{
		ID:           "bn_1748779200000_abcdef123456",
		UserID:       "u1",
		UserEmail:    "artist@example.com",
		CampaignName: "Summer tour",
		BannerType:   models.BannerTypeTop,
		Dimensions:   "auto",
		ImageURL:     "https://cdn.example.com/banner.png",
		TargetURL:    "https://artist.example.com",
		DurationDays: 30,
		Price:        382500,
		Status:       models.BannerStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	mock.ExpectExec("INSERT INTO banners").
		WithArgs(
			banner.ID, banner.UserID, banner.UserEmail, banner.CampaignName,
			banner.BannerType, banner.Dimensions, banner.ImageURL,
			banner.TargetURL, banner.DurationDays, banner.Price,
			banner.Status, banner.Views, banner.Clicks,
			banner.CreatedAt, banner.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewBannerRepository(db)
	if err := repo.Create(context.Background(), banner); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestStatsByOwnerComputesCTR(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM banners").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(
			[]string{"total_banners", "total_views", "total_clicks", "total_spent", "active_count"},
		).AddRow(2, 1000, 25, 500000, 1))

	repo := NewBannerRepository(db)
	stats, err := repo.StatsByOwner(context.Background(), "u1")
	if err != nil {
		t.Fatalf("StatsByOwner: %v", err)
	}

	if stats.TotalBanners != 2 || stats.TotalSpent != 500000 || stats.ActiveCount != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	if stats.AverageCTR != 2.5 {
		t.Fatalf("expected CTR 2.5, got %f", stats.AverageCTR)
	}
}

func TestStatsByOwnerZeroViewsZeroCTR(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM banners").
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(
			[]string{"total_banners", "total_views", "total_clicks", "total_spent", "active_count"},
		).AddRow(1, 0, 0, 60000, 0))

	repo := NewBannerRepository(db)
	stats, err := repo.StatsByOwner(context.Background(), "u1")
	if err != nil {
		t.Fatalf("StatsByOwner: %v", err)
	}
	if stats.AverageCTR != 0 {
		t.Fatalf("expected CTR 0 with zero views, got %f", stats.AverageCTR)
	}
}

func TestIncrementViewsMissingBanner(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE banners").
		WithArgs("bn_missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewBannerRepository(db)
	if err := repo.IncrementViews(context.Background(), "bn_missing"); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestApproveNotPendingReturnsTransitionError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	start := time.Now().UTC()
	end := start.Add(10 * 24 * time.Hour)

	mock.ExpectExec("UPDATE banners").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT status FROM banners").
		WithArgs("bn_1").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("active"))

	repo := NewBannerRepository(db)
	err = repo.Approve(context.Background(), "bn_1", start, end, nil)
	if !errors.Is(err, interfaces.ErrInvalidStatusTransition) {
		t.Fatalf("expected ErrInvalidStatusTransition, got %v", err)
	}
}

func TestApproveMissingReturnsNoRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	start := time.Now().UTC()

	mock.ExpectExec("UPDATE banners").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT status FROM banners").
		WithArgs("bn_missing").
		WillReturnRows(sqlmock.NewRows([]string{"status"}))

	repo := NewBannerRepository(db)
	err = repo.Approve(context.Background(), "bn_missing", start, start, nil)
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected sql.ErrNoRows, got %v", err)
	}
}

func TestCompleteActiveEndedBefore(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectExec("UPDATE banners").
		WithArgs(now).
		WillReturnResult(sqlmock.NewResult(0, 3))

	repo := NewBannerRepository(db)
	n, err := repo.CompleteActiveEndedBefore(context.Background(), now)
	if err != nil {
		t.Fatalf("CompleteActiveEndedBefore: %v", err)
	}
	if n != 3 {
		t.Fatalf("expected 3 completed, got %d", n)
	}
}

func TestListByOwnerFiltersAndOrders(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "user_email", "campaign_name", "banner_type",
		"dimensions", "image_url", "target_url", "duration_days", "price",
		"status", "views", "clicks", "rejection_reason", "admin_notes",
		"start_date", "end_date", "created_at", "updated_at",
	}).AddRow(
		"bn_1", "u1", "artist@example.com", "Summer tour", "top_banner",
		"auto", "https://cdn.example.com/a.png", "https://a.example.com", 5, 75000,
		"pending_moderation", 0, 0, nil, nil,
		nil, nil, now, now,
	)

	mock.ExpectQuery(`FROM banners WHERE 1=1 AND user_id = \$1 ORDER BY created_at DESC`).
		WithArgs("u1").
		WillReturnRows(rows)

	repo := NewBannerRepository(db)
	banners, err := repo.List(context.Background(), interfaces.BannerFilter{UserID: "u1"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(banners) != 1 {
		t.Fatalf("expected 1 banner, got %d", len(banners))
	}
	if banners[0].ID != "bn_1" || banners[0].RejectionReason != nil {
		t.Fatalf("unexpected banner: %+v", banners[0])
	}
}
