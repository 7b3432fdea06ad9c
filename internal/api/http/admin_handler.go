package http

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"
)

type createPricingRuleRequest struct {
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
	NightlyRate decimal.Decimal `json:"nightly_rate"`
	Notes       string          `json:"notes,omitempty"`
}

type createBlockedPeriodRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
	Notes     string `json:"notes,omitempty"`
}

func (h *Handler) HandleCreatePricingRule(w http.ResponseWriter, r *http.Request) {
	var req createPricingRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	rule, err := h.adminSvc.CreatePricingRule(r.Context(), req.StartDate, req.EndDate, req.NightlyRate, req.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rule)
}

func (h *Handler) HandleListPricingRules(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	rules, err := h.adminSvc.ListPricingRules(r.Context(), q.Get("start_date"), q.Get("end_date"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"pricing_rules": rules})
}

func (h *Handler) HandleCreateBlockedPeriod(w http.ResponseWriter, r *http.Request) {
	var req createBlockedPeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}

	period, err := h.adminSvc.CreateBlockedPeriod(r.Context(), req.StartDate, req.EndDate, req.Reason, req.Notes)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, period)
}

func (h *Handler) HandleListBlockedPeriods(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	periods, err := h.adminSvc.ListBlockedPeriods(r.Context(), q.Get("start_date"), q.Get("end_date"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"blocked_periods": periods})
}
