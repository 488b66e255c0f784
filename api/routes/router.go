package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rlozano/campus-canteen-backend/api/controllers"
	"github.com/rlozano/campus-canteen-backend/api/middleware"
	"github.com/rlozano/campus-canteen-backend/internal/auth"
	"github.com/rlozano/campus-canteen-backend/internal/menu"
	"github.com/rlozano/campus-canteen-backend/internal/notices"
	"github.com/rlozano/campus-canteen-backend/internal/orders"
	"github.com/rlozano/campus-canteen-backend/internal/reporting"
	"github.com/rlozano/campus-canteen-backend/internal/slots"
	"github.com/rlozano/campus-canteen-backend/internal/users"
	"github.com/rlozano/campus-canteen-backend/pkg/auth/session"
	"github.com/rlozano/campus-canteen-backend/pkg/config"
	"github.com/rlozano/campus-canteen-backend/pkg/db"
	"github.com/rlozano/campus-canteen-backend/pkg/enums"
	"github.com/rlozano/campus-canteen-backend/pkg/logger"
	"github.com/rlozano/campus-canteen-backend/pkg/redis"
)

// Services bundles everything the HTTP layer needs.
type Services struct {
	Auth      auth.Service
	Users     users.Service
	Menu      menu.Service
	Slots     slots.Service
	Orders    orders.Service
	Notices   notices.Service
	Reporting reporting.Service
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	sessions *session.Manager,
	svcs Services,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginUsernameLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterUsernameLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, redisClient, logg)).Post("/login", controllers.AuthLogin(svcs.Auth, logg))
		r.With(middleware.AuthRateLimit(registerPolicy, redisClient, logg)).Post("/register", controllers.AuthRegister(svcs.Auth, logg))
		r.Post("/refresh", controllers.AuthRefresh(svcs.Auth, logg))
		r.Post("/logout", controllers.AuthLogout(svcs.Auth, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/menu", controllers.MenuList(svcs.Menu, logg))
		r.Get("/time-slots", controllers.TimeSlotList(svcs.Slots, logg))
		r.Get("/notices", controllers.NoticeList(svcs.Notices, logg))

		r.Group(func(r chi.Router) {
			r.Use(
				middleware.Auth(cfg.JWT, sessions, logg),
				middleware.Idempotency(redisClient, logg),
			)

			r.Get("/profile", controllers.ProfileGet(svcs.Users, logg))
			r.Put("/profile", controllers.ProfileUpdate(svcs.Users, logg))

			r.Post("/bookings", controllers.BookingCreate(svcs.Slots, logg))
			r.Get("/bookings", controllers.BookingList(svcs.Slots, logg))

			r.Post("/orders", controllers.OrderCreate(svcs.Orders, logg))
			r.Get("/orders", controllers.OrderList(svcs.Orders, logg))
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(
				middleware.Auth(cfg.JWT, sessions, logg),
				middleware.RequireRole(string(enums.RoleOwner), logg),
			)

			r.Get("/menu", controllers.AdminMenuList(svcs.Menu, logg))
			r.Post("/menu", controllers.AdminMenuCreate(svcs.Menu, logg))
			r.Patch("/menu/{itemId}", controllers.AdminMenuUpdate(svcs.Menu, logg))

			r.Get("/orders", controllers.AdminOrderList(svcs.Orders, logg))
			r.Patch("/orders/{orderCode}/status", controllers.AdminOrderSetStatus(svcs.Orders, logg))

			r.Get("/bookings", controllers.AdminBookingList(svcs.Slots, logg))
			r.Put("/time-slots/capacity", controllers.AdminSetSlotCapacity(svcs.Slots, logg))

			r.Post("/notices", controllers.AdminNoticeCreate(svcs.Notices, logg))
			r.Get("/dashboard", controllers.AdminDashboard(svcs.Reporting, logg))
		})
	})

	return r
}
