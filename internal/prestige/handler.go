// internal/prestige/handler.go
package prestige

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

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

	r.Get("/state", h.handleGetState)
	r.Get("/summary", h.handleGetSummary)
	r.Get("/demand", h.handleDemandQuote)
	r.Get("/amenities/catalog", h.handleAmenityCatalog)
	r.Get("/awards/catalog", h.handleAwardCatalog)

	r.Post("/arrivals", h.handleRecordArrival)
	r.Post("/tick", h.handleTick)

	r.Post("/amenities/{id}", h.handleUpgradeAmenity)
	r.Post("/awards/{id}", h.handleGrantAward)
	r.Delete("/awards/{id}", h.handleRevokeAward)

	r.Put("/membership", h.handleSetMembership)
	r.Put("/waitlist", h.handleSetWaitlist)
	r.Put("/booking-window", h.handleSetBookingWindow)
	r.Put("/dress-code", h.handleSetDressCode)

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) respondState(w http.ResponseWriter, state *PrestigeState, err error) {
	if err != nil {
		h.logger.Error("prestige command", slog.Any("error", err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(state)
}

func (h *Handler) handleGetState(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.GetState(r.Context())
	h.respondState(w, state, err)
}

func (h *Handler) handleGetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.GetSummary(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(summary)
}

func (h *Handler) handleDemandQuote(w http.ResponseWriter, r *http.Request) {
	fee, err := strconv.ParseFloat(r.URL.Query().Get("fee"), 64)
	if err != nil {
		http.Error(w, "fee is required", http.StatusBadRequest)
		return
	}

	mult, err := h.service.DemandQuote(r.Context(), fee)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]float64{"demand_multiplier": mult})
}

func (h *Handler) handleAmenityCatalog(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(AmenityCatalog())
}

func (h *Handler) handleAwardCatalog(w http.ResponseWriter, r *http.Request) {
	json.NewEncoder(w).Encode(AwardCatalog())
}

func (h *Handler) handleRecordArrival(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Fee    float64 `json:"fee"`
		DidPay bool    `json:"did_pay"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	state, err := h.service.RecordArrival(r.Context(), req.Fee, req.DidPay)
	h.respondState(w, state, err)
}

func (h *Handler) handleTick(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Day        int                    `json:"day"`
		Conditions CurrentConditionsScore `json:"conditions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	state, err := h.service.TickDay(r.Context(), req.Day, req.Conditions)
	h.respondState(w, state, err)
}

func (h *Handler) handleUpgradeAmenity(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.UpgradeAmenity(r.Context(), chi.URLParam(r, "id"))
	h.respondState(w, state, err)
}

func (h *Handler) handleGrantAward(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.GrantAward(r.Context(), chi.URLParam(r, "id"))
	h.respondState(w, state, err)
}

func (h *Handler) handleRevokeAward(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.RevokeAward(r.Context(), chi.URLParam(r, "id"))
	h.respondState(w, state, err)
}

func (h *Handler) intBody(w http.ResponseWriter, r *http.Request, field string) (int, bool) {
	var body map[string]int
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return 0, false
	}
	v, ok := body[field]
	if !ok {
		http.Error(w, field+" is required", http.StatusBadRequest)
		return 0, false
	}
	return v, true
}

func (h *Handler) handleSetMembership(w http.ResponseWriter, r *http.Request) {
	count, ok := h.intBody(w, r, "count")
	if !ok {
		return
	}
	state, err := h.service.SetMembership(r.Context(), count)
	h.respondState(w, state, err)
}

func (h *Handler) handleSetWaitlist(w http.ResponseWriter, r *http.Request) {
	count, ok := h.intBody(w, r, "count")
	if !ok {
		return
	}
	state, err := h.service.SetWaitlist(r.Context(), count)
	h.respondState(w, state, err)
}

func (h *Handler) handleSetBookingWindow(w http.ResponseWriter, r *http.Request) {
	days, ok := h.intBody(w, r, "days")
	if !ok {
		return
	}
	state, err := h.service.SetBookingWindow(r.Context(), days)
	h.respondState(w, state, err)
}

func (h *Handler) handleSetDressCode(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Level string `json:"level"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	state, err := h.service.SetDressCode(r.Context(), req.Level)
	h.respondState(w, state, err)
}
