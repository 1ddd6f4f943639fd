package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"promomusic/internal/interfaces"
	"promomusic/internal/models"
)

type bannerRepository struct {
	db *sql.DB
}

func NewBannerRepository(db *sql.DB) interfaces.BannerRepository {
	return &bannerRepository{db: db}
}

const bannerColumns = `
        id, user_id, user_email, campaign_name, banner_type, dimensions,
        image_url, target_url, duration_days, price, status, views, clicks,
        rejection_reason, admin_notes, start_date, end_date,
        created_at, updated_at`

func (r *bannerRepository) Create(ctx context.Context, banner *models.BannerAd) error {
	query := `
        INSERT INTO banners (
            id, user_id, user_email, campaign_name, banner_type, dimensions,
            image_url, target_url, duration_days, price, status, views,
            clicks, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
    `

	_, err := r.db.ExecContext(
		ctx,
		query,
		banner.ID,
		banner.UserID,
		banner.UserEmail,
		banner.CampaignName,
		banner.BannerType,
		banner.Dimensions,
		banner.ImageURL,
		banner.TargetURL,
		banner.DurationDays,
		banner.Price,
		banner.Status,
		banner.Views,
		banner.Clicks,
		banner.CreatedAt,
		banner.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert banner: %w", err)
	}
	return nil
}

func scanBanner(row interface{ Scan(...any) error }) (*models.BannerAd, error) {
	var b models.BannerAd
	err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.UserEmail,
		&b.CampaignName,
		&b.BannerType,
		&b.Dimensions,
		&b.ImageURL,
		&b.TargetURL,
		&b.DurationDays,
		&b.Price,
		&b.Status,
		&b.Views,
		&b.Clicks,
		&b.RejectionReason,
		&b.AdminNotes,
		&b.StartDate,
		&b.EndDate,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bannerRepository) GetByID(ctx context.Context, id string) (*models.BannerAd, error) {
	query := `SELECT` + bannerColumns + ` FROM banners WHERE id = $1`

	banner, err := scanBanner(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}
		return nil, fmt.Errorf("failed to fetch banner %s: %w", id, err)
	}
	return banner, nil
}

func (r *bannerRepository) List(ctx context.Context, filter interfaces.BannerFilter) ([]*models.BannerAd, error) {
	query := `SELECT` + bannerColumns + ` FROM banners WHERE 1=1`

	var args []interface{}
	var whereClauses []string
	argPos := 1

	if filter.UserID != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("user_id = $%d", argPos))
		args = append(args, filter.UserID)
		argPos++
	}

	if filter.Status != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("status = $%d", argPos))
		args = append(args, filter.Status)
		argPos++
	}

	if len(whereClauses) > 0 {
		query += " AND " + strings.Join(whereClauses, " AND ")
	}

	query += " ORDER BY created_at DESC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argPos)
		args = append(args, filter.Limit)
		argPos++
	}

	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argPos)
		args = append(args, filter.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list banners: %w", err)
	}
	defer rows.Close()

	var banners []*models.BannerAd
	for rows.Next() {
		banner, err := scanBanner(rows)
		if err != nil {
			return nil, err
		}
		banners = append(banners, banner)
	}

	return banners, rows.Err()
}

func (r *bannerRepository) StatsByOwner(ctx context.Context, userID string) (*models.BannerStats, error) {
	query := `
        SELECT
            COUNT(*) AS total_banners,
            COALESCE(SUM(views), 0) AS total_views,
            COALESCE(SUM(clicks), 0) AS total_clicks,
            COALESCE(SUM(price), 0) AS total_spent,
            COALESCE(SUM(CASE WHEN status = 'active' THEN 1 ELSE 0 END), 0) AS active_count
        FROM banners
        WHERE user_id = $1
    `

	var stats models.BannerStats
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&stats.TotalBanners,
		&stats.TotalViews,
		&stats.TotalClicks,
		&stats.TotalSpent,
		&stats.ActiveCount,
	); err != nil {
		return nil, fmt.Errorf("failed to aggregate banner stats: %w", err)
	}

	// Guard the zero-views case so CTR is 0 rather than NaN.
	if stats.TotalViews > 0 {
		stats.AverageCTR = float64(stats.TotalClicks) / float64(stats.TotalViews) * 100
	}

	return &stats, nil
}

func (r *bannerRepository) Approve(ctx context.Context, id string, startDate, endDate time.Time, adminNotes *string) error {
	query := `
        UPDATE banners
        SET status = 'active',
            start_date = $2,
            end_date = $3,
            admin_notes = COALESCE($4, admin_notes),
            updated_at = NOW() AT TIME ZONE 'UTC'
        WHERE id = $1 AND status = 'pending_moderation'
    `
	return r.moderate(ctx, id, query, startDate, endDate, adminNotes)
}

func (r *bannerRepository) Reject(ctx context.Context, id string, reason string, adminNotes *string) error {
	query := `
        UPDATE banners
        SET status = 'rejected',
            rejection_reason = $2,
            admin_notes = COALESCE($3, admin_notes),
            updated_at = NOW() AT TIME ZONE 'UTC'
        WHERE id = $1 AND status = 'pending_moderation'
    `
	return r.moderate(ctx, id, query, reason, adminNotes)
}

// moderate runs a guarded status-transition update and distinguishes
// "banner missing" from "banner not pending" when nothing was updated.
func (r *bannerRepository) moderate(ctx context.Context, id string, query string, args ...interface{}) error {
	res, err := r.db.ExecContext(ctx, query, append([]interface{}{id}, args...)...)
	if err != nil {
		return fmt.Errorf("failed to update banner %s: %w", id, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows > 0 {
		return nil
	}

	var status string
	err = r.db.QueryRowContext(ctx, "SELECT status FROM banners WHERE id = $1", id).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return sql.ErrNoRows
	}
	if err != nil {
		return fmt.Errorf("failed to check banner %s: %w", id, err)
	}
	return interfaces.ErrInvalidStatusTransition
}

func (r *bannerRepository) IncrementViews(ctx context.Context, id string) error {
	return r.increment(ctx, id, "views")
}

func (r *bannerRepository) IncrementClicks(ctx context.Context, id string) error {
	return r.increment(ctx, id, "clicks")
}

func (r *bannerRepository) increment(ctx context.Context, id string, column string) error {
	// column is one of two hardcoded names, never caller input.
	query := fmt.Sprintf(`
        UPDATE banners
        SET %s = %s + 1,
            updated_at = NOW() AT TIME ZONE 'UTC'
        WHERE id = $1
    `, column, column)

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to increment %s for banner %s: %w", column, id, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *bannerRepository) CompleteActiveEndedBefore(ctx context.Context, now time.Time) (int64, error) {
	query := `
        UPDATE banners
        SET status = 'completed',
            updated_at = NOW() AT TIME ZONE 'UTC'
        WHERE status = 'active'
          AND end_date IS NOT NULL
          AND end_date < $1
    `

	res, err := r.db.ExecContext(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("failed to complete ended banners: %w", err)
	}

	return res.RowsAffected()
}
