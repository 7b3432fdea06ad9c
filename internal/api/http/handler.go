package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"campervan-backend/internal/service"
)

// Handler bundles the HTTP-facing side of the booking engine. It only parses
// requests and maps results; all decisions live in the services.
type Handler struct {
	quoteSvc        service.QuoteService
	availabilitySvc service.AvailabilityService
	bookingSvc      service.BookingService
	adminSvc        service.AdminService
}

func NewHandler(
	quoteSvc service.QuoteService,
	availabilitySvc service.AvailabilityService,
	bookingSvc service.BookingService,
	adminSvc service.AdminService,
) *Handler {
	return &Handler{
		quoteSvc:        quoteSvc,
		availabilitySvc: availabilitySvc,
		bookingSvc:      bookingSvc,
		adminSvc:        adminSvc,
	}
}

// Router wires all routes
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", h.HandleHealth).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/quotes", h.HandleCreateQuote).Methods(http.MethodPost)
	api.HandleFunc("/availability", h.HandleCheckAvailability).Methods(http.MethodGet)
	api.HandleFunc("/bookings", h.HandleCreateBooking).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{id}", h.HandleGetBooking).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}/status", h.HandleUpdateBookingStatus).Methods(http.MethodPatch)

	admin := api.PathPrefix("/admin").Subrouter()
	admin.HandleFunc("/bookings", h.HandleListBookings).Methods(http.MethodGet)
	admin.HandleFunc("/pricing-rules", h.HandleCreatePricingRule).Methods(http.MethodPost)
	admin.HandleFunc("/pricing-rules", h.HandleListPricingRules).Methods(http.MethodGet)
	admin.HandleFunc("/blocked-periods", h.HandleCreateBlockedPeriod).Methods(http.MethodPost)
	admin.HandleFunc("/blocked-periods", h.HandleListBlockedPeriods).Methods(http.MethodGet)

	return r
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
