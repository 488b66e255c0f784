package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rlozano/campus-canteen-backend/api/routes"
	"github.com/rlozano/campus-canteen-backend/internal/auth"
	"github.com/rlozano/campus-canteen-backend/internal/menu"
	"github.com/rlozano/campus-canteen-backend/internal/notices"
	"github.com/rlozano/campus-canteen-backend/internal/orders"
	"github.com/rlozano/campus-canteen-backend/internal/reporting"
	"github.com/rlozano/campus-canteen-backend/internal/seed"
	"github.com/rlozano/campus-canteen-backend/internal/slots"
	"github.com/rlozano/campus-canteen-backend/internal/users"
	"github.com/rlozano/campus-canteen-backend/pkg/auth/session"
	"github.com/rlozano/campus-canteen-backend/pkg/config"
	"github.com/rlozano/campus-canteen-backend/pkg/db"
	"github.com/rlozano/campus-canteen-backend/pkg/logger"
	"github.com/rlozano/campus-canteen-backend/pkg/migrate"
	"github.com/rlozano/campus-canteen-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	if cfg.FeatureFlags.SeedDefaults {
		if err := seed.Run(context.Background(), dbClient.DB(), cfg.Slots, logg); err != nil {
			logg.Error(context.Background(), "failed to seed defaults", err)
			os.Exit(1)
		}
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessions, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	usersRepo := users.NewRepository(dbClient.DB())

	authService, err := auth.NewService(usersRepo, sessions, cfg.JWT, cfg.Password)
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	usersService, err := users.NewService(usersRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create users service", err)
		os.Exit(1)
	}

	menuService, err := menu.NewService(menu.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create menu service", err)
		os.Exit(1)
	}

	slotsService, err := slots.NewService(dbClient, slots.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create slots service", err)
		os.Exit(1)
	}

	ordersService, err := orders.NewService(orders.NewRepository(dbClient.DB()), cfg.Orders)
	if err != nil {
		logg.Error(context.Background(), "failed to create orders service", err)
		os.Exit(1)
	}

	noticesService, err := notices.NewService(notices.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create notices service", err)
		os.Exit(1)
	}

	reportingService, err := reporting.NewService(reporting.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create reporting service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, redisClient, sessions, routes.Services{
			Auth:      authService,
			Users:     usersService,
			Menu:      menuService,
			Slots:     slotsService,
			Orders:    ordersService,
			Notices:   noticesService,
			Reporting: reportingService,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
