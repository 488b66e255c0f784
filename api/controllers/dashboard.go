package controllers

import (
	"net/http"
	"time"

	"github.com/rlozano/campus-canteen-backend/api/responses"
	"github.com/rlozano/campus-canteen-backend/internal/reporting"
	"github.com/rlozano/campus-canteen-backend/pkg/logger"
)

// AdminDashboard serves the owner's same-day metrics.
func AdminDashboard(svc reporting.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dashboard, err := svc.Dashboard(r.Context(), time.Now())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dashboard)
	}
}
