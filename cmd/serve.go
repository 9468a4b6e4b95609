package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"payments-api/internal/data/repository"
	"payments-api/internal/wire"
	"payments-api/pkg/database"
	"payments-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const startupPingTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Run:   runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using default production logger.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to configure database", zap.Error(err))
	}
	defer db.Close()

	if err := checkDatabase(db, config.Database, logger); err != nil {
		logger.Fatal("Database connection failed", zap.Error(err))
	}

	repos := repository.NewRepository(db, logger)
	app := wire.Wiring(repos, logger)

	APIServer(app.Router, config.App.Port, config.App.ShutdownTimeout, logger)
}

// checkDatabase logs whether the database is reachable. It only returns an
// error when RequireOnStart is set; otherwise the server still starts and
// requests fail individually.
func checkDatabase(db database.PgxIface, config utils.DatabaseConfig, logger *zap.Logger) error {
	if err := database.Ping(context.Background(), db, startupPingTimeout); err != nil {
		if config.RequireOnStart {
			return err
		}
		logger.Error("Database connection failed, serving anyway", zap.Error(err))
		return nil
	}

	logger.Info("Database connected successfully")
	return nil
}

// APIServer serves route until SIGINT or SIGTERM, then drains in-flight requests
func APIServer(route *chi.Mux, port string, shutdownTimeout time.Duration, logger *zap.Logger) {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: route,
	}

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", "http://localhost"+srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Warn("HTTP shutdown error", zap.Error(err))
	}

	logger.Info("Server stopped")
}
