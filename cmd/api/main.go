//go:generate swag init --dir ../../ --generalInfo cmd/api/main.go --output ../../docs

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/fkhayef/quicksplit/docs"
	"github.com/fkhayef/quicksplit/internal/config"
	"github.com/fkhayef/quicksplit/internal/database"
	"github.com/fkhayef/quicksplit/internal/draft"
	"github.com/fkhayef/quicksplit/internal/expense"
	"github.com/fkhayef/quicksplit/internal/group"
	"github.com/fkhayef/quicksplit/pkg/logging"
	mw "github.com/fkhayef/quicksplit/pkg/middleware"
)

// @title        QuickSplit API
// @version      1.0
// @description  Turns free-text descriptions into group expenses.
// @BasePath     /api/v1
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	// Load .env file
	envErr := godotenv.Load()

	cfg := config.Load()
	logger := logging.Setup(cfg.LogLevel)
	if envErr != nil {
		logger.Info("No .env file found, using environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	logger.Info("Connected to database", "driver", db.DriverName())

	generator := draft.NewOpenAIGenerator(cfg.LLM.BaseURL, cfg.LLM.APIKey, map[draft.Tier]string{
		draft.TierFast:    cfg.LLM.FastModel,
		draft.TierQuality: cfg.LLM.QualityModel,
	}, logger)

	// Group feature (roster for the expense pipeline)
	groupRepo := group.NewRepository(db)
	groupService := group.NewService(groupRepo, logger)
	groupHandler := group.NewHandler(groupService)

	// Expense feature
	expenseRepo := expense.NewRepository(db)
	expenseService := expense.NewService(expenseRepo, groupService, generator, cfg.LLM.Timeout, logger)
	expenseHandler := expense.NewHandler(expenseService)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mw.StructuredLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.JWTSecret != "" {
			r.Use(mw.Auth(cfg.JWTSecret))
		} else {
			logger.Warn("JWT_SECRET not set, trusting X-Test-User-ID header")
			r.Use(mw.TestUserMiddleware("dev-user"))
		}

		groupRouter := groupHandler.Routes()
		groupRouter.Mount("/{id}/expenses", expenseHandler.GroupRoutes())

		r.Mount("/groups", groupRouter)
		r.Mount("/expenses", expenseHandler.Routes())
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown failed", "error", err)
		}
	}()

	logger.Info("Server starting", "port", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Server failed to start", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped")
}
