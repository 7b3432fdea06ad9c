package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"campervan-backend/internal/domain"
	"campervan-backend/internal/logger"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// writeError maps domain errors onto HTTP statuses and structured bodies.
// Input errors are 400, expected domain rejections are 409/422 with enough
// detail to explain them, everything else is a generic 500.
func writeError(w http.ResponseWriter, err error) {
	var (
		inputErr      *domain.InputError
		gapErr        *domain.PricingGapError
		minStayErr    *domain.MinimumStayError
		paramErr      *domain.InvalidServiceParameterError
		conflictErr   *domain.ConflictError
		mismatchErr   *domain.PriceMismatchError
		transitionErr *domain.InvalidTransitionError
	)

	switch {
	case errors.As(err, &inputErr):
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error": inputErr.Error(),
			"field": inputErr.Field,
		})
	case errors.As(err, &gapErr):
		dates := make([]string, len(gapErr.Dates))
		for i, d := range gapErr.Dates {
			dates[i] = d.Format(domain.DateLayout)
		}
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error":         gapErr.Error(),
			"missing_dates": dates,
		})
	case errors.As(err, &minStayErr):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error":            minStayErr.Error(),
			"required_nights":  minStayErr.RequiredNights,
			"requested_nights": minStayErr.Nights,
		})
	case errors.As(err, &paramErr):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error":     paramErr.Error(),
			"parameter": paramErr.Parameter,
		})
	case errors.As(err, &conflictErr):
		writeJSON(w, http.StatusConflict, map[string]interface{}{
			"error":     conflictErr.Error(),
			"conflicts": conflictErr.Conflicts,
		})
	case errors.As(err, &mismatchErr):
		writeJSON(w, http.StatusConflict, map[string]interface{}{
			"error":          mismatchErr.Error(),
			"expected_total": mismatchErr.Expected,
			"computed_total": mismatchErr.Computed,
		})
	case errors.As(err, &transitionErr):
		writeJSON(w, http.StatusConflict, map[string]interface{}{
			"error": transitionErr.Error(),
			"from":  transitionErr.From,
			"to":    transitionErr.To,
		})
	case errors.Is(err, sql.ErrNoRows):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	default:
		logger.Error("Request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
