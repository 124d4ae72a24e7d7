package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ridehub/config"
	"ridehub/internal/adapter/gateway"
	"ridehub/internal/adapter/handlers"
	"ridehub/internal/adapter/rabbitmq"
	ws "ridehub/internal/adapter/websocket"
	"ridehub/internal/common/middleware"
	"ridehub/internal/domain/services"
	"ridehub/internal/store"
)

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	st := store.New()
	if cfg.SessionFile != "" {
		if err := st.LoadAuth(cfg.SessionFile); err != nil {
			logger.Warn("failed to load persisted session", "err", err)
		}
	}

	gw := gateway.New(cfg.SimDelay())

	// Event publisher: RabbitMQ when configured, no-op otherwise.
	var publisher services.EventPublisher = services.NoopPublisher{}
	if cfg.RabbitURL != "" {
		pub, err := rabbitmq.NewPublisher(cfg.RabbitURL, logger)
		if err != nil {
			logger.Warn("RabbitMQ unavailable, events disabled", "err", err)
		} else {
			defer pub.Close()
			publisher = pub
		}
	}

	hub := ws.NewHub(logger)
	go hub.Run()

	authService := services.NewAuthService(gw, st, services.AuthConfig{
		JWTSecret:   cfg.JWTSecret,
		JWTExpiry:   cfg.JWTExpiry(),
		SessionFile: cfg.SessionFile,
	}, logger)
	tripService := services.NewTripService(gw, st, publisher, hub, logger)
	vehicleService := services.NewVehicleService(gw, st, logger)
	driverService := services.NewDriverService(gw, st, publisher, hub, logger)

	authHandler := handlers.NewAuthHandler(authService, logger)
	tripHandler := handlers.NewTripHandler(tripService, logger)
	fleetHandler := handlers.NewFleetHandler(vehicleService, logger)
	driverHandler := handlers.NewDriverHandler(driverService, logger)
	routeHandler := handlers.NewRouteHandler(st)

	mux := http.NewServeMux()
	authHandler.SetupRoutes(mux)
	routeHandler.SetupRoutes(mux)
	mux.HandleFunc("GET /ws", ws.ServeWS(hub, logger))
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// Everything below requires a valid token; mutating groups are further
	// gated by role.
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWTSecret)
	protected := http.NewServeMux()
	tripHandler.SetupRoutes(protected, authMiddleware.RequireRole)
	fleetHandler.SetupRoutes(protected, authMiddleware.RequireRole)
	driverHandler.SetupRoutes(protected, authMiddleware.RequireRole)
	protected.HandleFunc("GET /auth/profile", authHandler.Profile)
	mux.Handle("/", authMiddleware.Wrap(protected))

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: mux,
	}

	go func() {
		logger.Info("starting RideHub", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "err", err)
	}
}
