package controllers

import (
	"net/http"

	"github.com/rlozano/campus-canteen-backend/api/responses"
	"github.com/rlozano/campus-canteen-backend/api/validators"
	"github.com/rlozano/campus-canteen-backend/internal/slots"
	"github.com/rlozano/campus-canteen-backend/pkg/logger"
)

// BookingCreate reserves a slot for the caller.
func BookingCreate(svc slots.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body slots.ReserveRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		booking, err := svc.Reserve(r.Context(), userID, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, booking)
	}
}

// BookingList returns the caller's bookings, most recent first.
func BookingList(svc slots.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := currentUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		bookings, err := svc.ListBookingsForUser(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, bookings)
	}
}

// AdminBookingList returns every booking, most recent first.
func AdminBookingList(svc slots.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bookings, err := svc.ListAllBookings(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, bookings)
	}
}
