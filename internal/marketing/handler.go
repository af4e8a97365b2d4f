// internal/marketing/handler.go
package marketing

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service Service
	logger  *slog.Logger
	router  chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(service Service, logger *slog.Logger) *Handler {
	h := &Handler{service: service, logger: logger}
	r := chi.NewRouter()

	r.Get("/catalog", h.handleGetCatalog)
	r.Get("/state", h.handleGetState)
	r.Post("/campaigns/{id}/check", h.handleCheckStart)
	r.Post("/campaigns/{id}/start", h.handleStartCampaign)
	r.Post("/campaigns/{id}/stop", h.handleStopCampaign)
	r.Post("/tick", h.handleTick)

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleGetCatalog(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.service.GetCatalog(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(catalog)
}

func (h *Handler) handleGetState(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.GetState(r.Context())
	if err != nil {
		h.logger.Error("get marketing state", slog.Any("error", err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(state)
}

func (h *Handler) handleCheckStart(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AvailableFunds float64 `json:"available_funds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := h.service.CheckStart(r.Context(), chi.URLParam(r, "id"), req.AvailableFunds)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(res)
}

func (h *Handler) handleStartCampaign(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Day            int     `json:"day"`
		DurationDays   int     `json:"duration_days"`
		AvailableFunds float64 `json:"available_funds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := h.service.StartCampaign(r.Context(), chi.URLParam(r, "id"), req.Day, req.DurationDays, req.AvailableFunds)
	if err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(res)
}

func (h *Handler) handleStopCampaign(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Day int `json:"day"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	state, err := h.service.StopCampaign(r.Context(), chi.URLParam(r, "id"), req.Day)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(state)
}

func (h *Handler) handleTick(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Day           int     `json:"day"`
		DailyBookings float64 `json:"daily_bookings"`
		DailyRevenue  float64 `json:"daily_revenue"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := h.service.TickDay(r.Context(), req.Day, req.DailyBookings, req.DailyRevenue)
	if err != nil {
		h.logger.Error("marketing tick", slog.Any("error", err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(res)
}
