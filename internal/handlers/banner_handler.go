// internal/handlers/banner_handler.go
package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"
	"promomusic/internal/interfaces"
	"promomusic/internal/middleware"
	"promomusic/internal/models"
	"promomusic/internal/pricing"
	"promomusic/internal/services"
)

type BannerHandler struct {
	repo      interfaces.BannerRepository
	notifier  services.Notifier
	ids       services.BannerIDGenerator
	validator *validator.Validate
}

func NewBannerHandler(repo interfaces.BannerRepository, notifier services.Notifier) *BannerHandler {
	return &BannerHandler{
		repo:      repo,
		notifier:  notifier,
		validator: newBannerValidator(),
	}
}

func newBannerValidator() *validator.Validate {
	v := validator.New()

	// Report fields under their wire names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// httpurl: absolute URL with an http or https scheme.
	_ = v.RegisterValidation("httpurl", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
			return false
		}
		u, err := url.Parse(s)
		return err == nil && u.Host != ""
	})

	return v
}

// validationMessage renders the first failing check as a field-level,
// human-readable message.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}

	fe := verrs[0]
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "httpurl":
		return fmt.Sprintf("%s must be an absolute http:// or https:// URL", field)
	case "min", "max":
		if field == "duration_days" {
			return "duration_days must be between 1 and 90"
		}
		return fmt.Sprintf("%s is out of range", field)
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

// SubmitBanner handles POST /api/v1/banners
// @Tags Banners
// @Summary Submit a banner advertising campaign
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.SubmitBannerRequest true "Banner submission"
// @Success 201 {object} models.SubmitBannerResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/v1/banners [post]
func (h *BannerHandler) SubmitBanner(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitBannerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}

	req.UserID, _ = r.Context().Value(middleware.CtxUserID).(string)
	req.UserEmail, _ = r.Context().Value(middleware.CtxEmail).(string)
	req.Normalize()

	if err := h.validator.Struct(req); err != nil {
		code := "validation_error"
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Field() == "banner_type" && verrs[0].Tag() == "oneof" {
			code = "invalid_banner_type"
		}
		writeJSONErrorResponse(w, http.StatusBadRequest, code, validationMessage(err))
		return
	}

	// The oneof check above guarantees the rate lookup succeeds; the guard
	// stays so pricing never silently prices an unknown type.
	price, err := pricing.Calculate(models.BannerType(req.BannerType), req.DurationDays)
	if err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_banner_type", err.Error())
		return
	}

	now := time.Now().UTC()
	banner := &models.BannerAd{
		ID:           h.ids.NewBannerID(),
		UserID:       req.UserID,
		UserEmail:    req.UserEmail,
		CampaignName: req.CampaignName,
		BannerType:   models.BannerType(req.BannerType),
		Dimensions:   req.Dimensions,
		ImageURL:     req.ImageURL,
		TargetURL:    req.TargetURL,
		DurationDays: req.DurationDays,
		Price:        price,
		Status:       models.BannerStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := h.repo.Create(r.Context(), banner); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_user_id", "User not found")
			return
		}
		log.Printf("Failed to persist banner submission: %v", err)
		writeJSONErrorResponse(w, http.StatusInternalServerError, "persistence_error", "Failed to save banner submission")
		return
	}

	// Best-effort; the submission already succeeded.
	h.notifier.BannerSubmitted(banner)

	writeJSON(w, http.StatusCreated, models.SubmitBannerResponse{
		Success:  true,
		BannerID: banner.ID,
		Price:    banner.Price,
		Status:   banner.Status,
		Message:  "Banner submitted and awaiting moderation",
	})
}

// ListMyBanners handles GET /api/v1/banners
// @Tags Banners
// @Summary List the caller's banners
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/banners [get]
func (h *BannerHandler) ListMyBanners(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(middleware.CtxUserID).(string)
	if userID == "" {
		writeJSONErrorResponse(w, http.StatusUnauthorized, "unauthorized", "Missing user identity")
		return
	}

	banners, err := h.repo.List(r.Context(), interfaces.BannerFilter{UserID: userID})
	if err != nil {
		log.Printf("Failed to list banners for user %s: %v", userID, err)
		writeJSONErrorResponse(w, http.StatusInternalServerError, "persistence_error", "Failed to list banners")
		return
	}

	if banners == nil {
		banners = []*models.BannerAd{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"banners": banners})
}

// GetBanner handles GET /api/v1/banners/{id}. Owners see their own
// banners; admins see everything.
func (h *BannerHandler) GetBanner(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Banner ID is required")
		return
	}

	banner, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Banner not found")
			return
		}
		log.Printf("Failed to fetch banner %s: %v", id, err)
		writeJSONErrorResponse(w, http.StatusInternalServerError, "persistence_error", "Failed to fetch banner")
		return
	}

	userID, _ := r.Context().Value(middleware.CtxUserID).(string)
	role, _ := r.Context().Value(middleware.CtxRole).(string)
	if banner.UserID != userID && role != models.RoleAdmin {
		writeJSONErrorResponse(w, http.StatusForbidden, "forbidden", "Not your banner")
		return
	}

	writeJSON(w, http.StatusOK, banner)
}

// MyBannerStats handles GET /api/v1/banners/stats
// @Tags Banners
// @Summary Aggregate statistics over the caller's banners
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.BannerStats
// @Router /api/v1/banners/stats [get]
func (h *BannerHandler) MyBannerStats(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(middleware.CtxUserID).(string)
	if userID == "" {
		writeJSONErrorResponse(w, http.StatusUnauthorized, "unauthorized", "Missing user identity")
		return
	}

	stats, err := h.repo.StatsByOwner(r.Context(), userID)
	if err != nil {
		log.Printf("Failed to compute banner stats for user %s: %v", userID, err)
		writeJSONErrorResponse(w, http.StatusInternalServerError, "persistence_error", "Failed to compute stats")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
