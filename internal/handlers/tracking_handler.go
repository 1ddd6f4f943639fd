// internal/handlers/tracking_handler.go
package handlers

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"promomusic/internal/interfaces"
)

// TrackingHandler takes view/click pings from the ad-serving side. The
// increments are single atomic UPDATEs, so concurrent pings are never lost.
type TrackingHandler struct {
	repo interfaces.BannerRepository
}

func NewTrackingHandler(repo interfaces.BannerRepository) *TrackingHandler {
	return &TrackingHandler{repo: repo}
}

// RecordView handles POST /api/v1/track/banners/{id}/view
func (h *TrackingHandler) RecordView(w http.ResponseWriter, r *http.Request) {
	h.record(w, r, h.repo.IncrementViews)
}

// RecordClick handles POST /api/v1/track/banners/{id}/click
func (h *TrackingHandler) RecordClick(w http.ResponseWriter, r *http.Request) {
	h.record(w, r, h.repo.IncrementClicks)
}

func (h *TrackingHandler) record(w http.ResponseWriter, r *http.Request, inc func(ctx context.Context, id string) error) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_request", "Banner ID is required")
		return
	}

	if err := inc(r.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSONErrorResponse(w, http.StatusNotFound, "not_found", "Banner not found")
			return
		}
		log.Printf("Failed to record event for banner %s: %v", id, err)
		writeJSONErrorResponse(w, http.StatusInternalServerError, "persistence_error", "Failed to record event")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
