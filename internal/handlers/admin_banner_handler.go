// internal/handlers/admin_banner_handler.go
package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"promomusic/internal/interfaces"
	"promomusic/internal/models"
	"promomusic/internal/services"
)

// AdminBannerHandler serves the moderation side of the banner workflow:
// global listing, approve/reject transitions and the completion sweep.
type AdminBannerHandler struct {
	repo      interfaces.BannerRepository
	notifier  services.Notifier
	validator *validator.Validate
}

func NewAdminBannerHandler(repo interfaces.BannerRepository, notifier services.Notifier) *AdminBannerHandler {
	return &AdminBannerHandler{
		repo:      repo,
		notifier:  notifier,
		validator: validator.New(),
	}
}

// ListAllBanners handles GET /api/v1/admin/banners
func (h *AdminBannerHandler) ListAllBanners(w http.ResponseWriter, r *http.Request) {
	filter := interfaces.BannerFilter{
		Status: r.URL.Query().Get("status"),
		Limit:  100,
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			filter.Limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			filter.Offset = n
		}
	}

	banners, err := h.repo.List(r.Context(), filter)
	if err != nil {
		log.Printf("Failed to list banners: %v", err)
		writeJSONErrorResponse(w, http.StatusInternalServerError, "persistence_error", "Failed to list banners")
		return
	}

	if banners == nil {
		banners = []*models.BannerAd{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"banners": banners})
}

// ApproveBanner handles PUT /api/v1/admin/banners/{id}/approve. Activation
// starts the campaign clock: start date now, end date now plus the paid
// duration.
func (h *AdminBannerHandler) ApproveBanner(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.ApproveBannerRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
			return
		}
	}

	banner, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		h.writeLookupError(w, id, err)
		return
	}

	start := time.Now().UTC()
	end := start.Add(time.Duration(banner.DurationDays) * 24 * time.Hour)

	if err := h.repo.Approve(r.Context(), id, start, end, req.AdminNotes); err != nil {
		h.writeTransitionError(w, id, err)
		return
	}

	updated, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		h.writeLookupError(w, id, err)
		return
	}

	h.notifier.BannerModerated(updated)
	writeJSON(w, http.StatusOK, updated)
}

// RejectBanner handles PUT /api/v1/admin/banners/{id}/reject
func (h *AdminBannerHandler) RejectBanner(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.RejectBannerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Invalid request body")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", "rejection_reason is required")
		return
	}

	if err := h.repo.Reject(r.Context(), id, req.RejectionReason, req.AdminNotes); err != nil {
		h.writeTransitionError(w, id, err)
		return
	}

	updated, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		h.writeLookupError(w, id, err)
		return
	}

	h.notifier.BannerModerated(updated)
	writeJSON(w, http.StatusOK, updated)
}

// SweepCompleted handles POST /api/v1/admin/banners/sweep-completed
func (h *AdminBannerHandler) SweepCompleted(w http.ResponseWriter, r *http.Request) {
	n, err := h.repo.CompleteActiveEndedBefore(r.Context(), time.Now().UTC())
	if err != nil {
		log.Printf("Failed to sweep completed banners: %v", err)
		writeJSONErrorResponse(w, http.StatusInternalServerError, "persistence_error", "Failed to sweep completed banners")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"completed": n})
}

func (h *AdminBannerHandler) writeLookupError(w http.ResponseWriter, id string, err error) {
	if errors.Is(err, sql.ErrNoRows) {
		writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Banner not found")
		return
	}
	log.Printf("Failed to fetch banner %s: %v", id, err)
	writeJSONErrorResponse(w, http.StatusInternalServerError, "persistence_error", "Failed to fetch banner")
}

func (h *AdminBannerHandler) writeTransitionError(w http.ResponseWriter, id string, err error) {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Banner not found")
	case errors.Is(err, interfaces.ErrInvalidStatusTransition):
		writeJSONErrorResponse(w, http.StatusConflict, "invalid_status_transition", "Banner is not pending moderation")
	default:
		log.Printf("Failed to moderate banner %s: %v", id, err)
		writeJSONErrorResponse(w, http.StatusInternalServerError, "persistence_error", "Failed to update banner")
	}
}
