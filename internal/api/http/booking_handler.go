package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"campervan-backend/internal/domain"
)

type createBookingRequest struct {
	StartDate          string           `json:"start_date"`
	EndDate            string           `json:"end_date"`
	PickupTime         string           `json:"pickup_time"`
	ReturnTime         string           `json:"return_time"`
	Parking            bool             `json:"parking"`
	DeliveryDistanceKm *int             `json:"delivery_distance_km,omitempty"`
	Customer           domain.Customer  `json:"customer"`
	ExpectedTotal      *decimal.Decimal `json:"expected_total,omitempty"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) HandleCreateBooking(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	booking, err := h.bookingSvc.CreateBooking(
		r.Context(), req.Customer,
		req.StartDate, req.EndDate, req.PickupTime, req.ReturnTime,
		req.Parking, req.DeliveryDistanceKm, req.ExpectedTotal,
	)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

func (h *Handler) HandleGetBooking(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	booking, err := h.bookingSvc.GetBooking(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *Handler) HandleUpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	booking, err := h.bookingSvc.TransitionBooking(r.Context(), id, domain.BookingStatus(req.Status))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *Handler) HandleListBookings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var from, to *time.Time
	if v := q.Get("from"); v != "" {
		t, err := time.Parse(domain.DateLayout, v)
		if err != nil {
			writeError(w, &domain.InputError{Field: "from", Reason: "must be yyyy-mm-dd"})
			return
		}
		from = &t
	}
	if v := q.Get("to"); v != "" {
		t, err := time.Parse(domain.DateLayout, v)
		if err != nil {
			writeError(w, &domain.InputError{Field: "to", Reason: "must be yyyy-mm-dd"})
			return
		}
		to = &t
	}

	page := parseInt32(q.Get("page"), 1)
	pageSize := parseInt32(q.Get("page_size"), 20)

	bookings, total, err := h.bookingSvc.ListBookings(r.Context(), q.Get("status"), from, to, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"bookings": bookings,
		"total":    total,
		"page":     page,
	})
}

func parseInt32(s string, fallback int32) int32 {
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return fallback
	}
	return int32(v)
}
