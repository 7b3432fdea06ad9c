package http

import (
	"encoding/json"
	"net/http"
)

type quoteRequest struct {
	StartDate          string `json:"start_date"`
	EndDate            string `json:"end_date"`
	PickupTime         string `json:"pickup_time"`
	ReturnTime         string `json:"return_time"`
	Parking            bool   `json:"parking"`
	DeliveryDistanceKm *int   `json:"delivery_distance_km,omitempty"`
}

func (h *Handler) HandleCreateQuote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	breakdown, err := h.quoteSvc.Quote(r.Context(), req.StartDate, req.EndDate, req.PickupTime, req.ReturnTime, req.Parking, req.DeliveryDistanceKm)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, breakdown)
}

func (h *Handler) HandleCheckAvailability(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")

	result, err := h.availabilitySvc.Check(r.Context(), startDate, endDate)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
