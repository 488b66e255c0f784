package controllers

import (
	"net/http"

	"github.com/rlozano/campus-canteen-backend/api/responses"
	"github.com/rlozano/campus-canteen-backend/api/validators"
	"github.com/rlozano/campus-canteen-backend/internal/slots"
	"github.com/rlozano/campus-canteen-backend/pkg/logger"
)

// TimeSlotList serves all slots with their live booked counts.
func TimeSlotList(svc slots.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// AdminSetSlotCapacity applies one capacity value to every slot.
func AdminSetSlotCapacity(svc slots.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body slots.SetCapacityRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.SetGlobalCapacity(r.Context(), body.Total)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"updated": updated, "total": body.Total})
	}
}
