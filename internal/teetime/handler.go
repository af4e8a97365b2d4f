// internal/teetime/handler.go
package teetime

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
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

	r.Get("/schedule", h.handleGetSchedule)
	r.Get("/slots/{day}", h.handleAvailableSlots)
	r.Get("/window", h.handleBookingWindow)
	r.Post("/pricing/quote", h.handlePriceQuote)

	r.Post("/tournaments", h.handleScheduleTournament)
	r.Delete("/tournaments/{id}", h.handleCancelTournament)
	r.Post("/tournaments/{id}/complete", h.handleCompleteTournament)

	r.Post("/groups/quote", h.handleQuoteGroup)
	r.Post("/groups", h.handleCreateGroup)
	r.Post("/groups/{id}/confirm", h.handleConfirmGroup)
	r.Post("/groups/{id}/cancel", h.handleCancelGroup)
	r.Post("/groups/{id}/complete", h.handleCompleteGroup)

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleGetSchedule(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.GetSchedule(r.Context())
	if err != nil {
		h.logger.Error("get schedule", slog.Any("error", err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(state)
}

func (h *Handler) handleAvailableSlots(w http.ResponseWriter, r *http.Request) {
	day, err := strconv.Atoi(chi.URLParam(r, "day"))
	if err != nil {
		http.Error(w, "invalid day", http.StatusBadRequest)
		return
	}

	slots, err := h.service.AvailableSlots(r.Context(), day)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]int{"available_slots": slots})
}

func (h *Handler) handleBookingWindow(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	isMember := q.Get("member") == "true"
	currentDay, err1 := strconv.Atoi(q.Get("current_day"))
	targetDay, err2 := strconv.Atoi(q.Get("target_day"))
	if err1 != nil || err2 != nil {
		http.Error(w, "current_day and target_day are required", http.StatusBadRequest)
		return
	}

	ok, err := h.service.BookingWindow(r.Context(), isMember, currentDay, targetDay)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]bool{"can_book": ok})
}

func (h *Handler) handlePriceQuote(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Slots []TeeTimeSlot `json:"slots"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	quote, err := h.service.PriceQuote(r.Context(), req.Slots)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(quote)
}

func (h *Handler) handleScheduleTournament(w http.ResponseWriter, r *http.Request) {
	var t Tournament
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	state, err := h.service.ScheduleTournament(r.Context(), t)
	if err != nil {
		h.logger.Error("schedule tournament", slog.Any("error", err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(state)
}

func (h *Handler) handleCancelTournament(w http.ResponseWriter, r *http.Request) {
	state, err := h.service.CancelTournament(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(state)
}

func (h *Handler) handleCompleteTournament(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Participants int `json:"participants"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := h.service.CompleteTournament(r.Context(), chi.URLParam(r, "id"), req.Participants)
	if err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	json.NewEncoder(w).Encode(res)
}

func (h *Handler) handleQuoteGroup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Size      int  `json:"size"`
		IsWeekend bool `json:"is_weekend"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	quote, err := h.service.QuoteGroup(r.Context(), req.Size, req.IsWeekend)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(quote)
}

func (h *Handler) handleCreateGroup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name       string `json:"name"`
		Size       int    `json:"size"`
		Day        int    `json:"day"`
		CurrentDay int    `json:"current_day"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := h.service.CreateGroupBooking(r.Context(), req.Name, req.Size, req.Day, req.CurrentDay)
	if err != nil {
		h.logger.Error("create group booking", slog.Any("error", err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Size-bound rejections are part of the result value.
	if res.OK {
		w.WriteHeader(http.StatusCreated)
	} else {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}
	json.NewEncoder(w).Encode(res)
}

func (h *Handler) groupID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid group booking ID", http.StatusBadRequest)
		return uuid.UUID{}, false
	}
	return id, true
}

func (h *Handler) handleConfirmGroup(w http.ResponseWriter, r *http.Request) {
	id, ok := h.groupID(w, r)
	if !ok {
		return
	}

	var req struct {
		IsWeekend bool `json:"is_weekend"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	state, err := h.service.ConfirmGroupBooking(r.Context(), id, req.IsWeekend)
	if err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	json.NewEncoder(w).Encode(state)
}

func (h *Handler) handleCancelGroup(w http.ResponseWriter, r *http.Request) {
	id, ok := h.groupID(w, r)
	if !ok {
		return
	}

	state, err := h.service.CancelGroupBooking(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(state)
}

func (h *Handler) handleCompleteGroup(w http.ResponseWriter, r *http.Request) {
	id, ok := h.groupID(w, r)
	if !ok {
		return
	}

	state, err := h.service.CompleteGroupBooking(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(state)
}
