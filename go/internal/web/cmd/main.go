package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/joho/godotenv"
	"github.com/mcdev12/userform/go/clients/userform_client"
	"github.com/mcdev12/userform/go/internal/httplog"
	"github.com/mcdev12/userform/go/internal/web"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	// Setup logging
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	gin.SetMode(gin.ReleaseMode)

	port := getEnv("WEB_PORT", "3000")
	apiHost := getEnv("API_HOST", userform_client.DefaultBaseURL)

	apiTimeout := getEnvAsDuration("API_TIMEOUT", 30*time.Second)

	client := userform_client.NewUserFormClient(apiHost)
	client.SetTimeout(apiTimeout)

	// Non-fatal: the page shows load errors itself.
	healthCtx, healthCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if health, err := client.Health(healthCtx); err != nil {
		log.Warn().Err(err).Str("api_host", apiHost).Msg("user API not reachable")
	} else {
		log.Info().Str("api_host", apiHost).Bool("db", health.DB).Msg("user API reachable")
	}
	healthCancel()

	router := web.NewRouter(web.NewHandler(client))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", port),
		Handler:      httplog.Middleware(log.Logger, clockwork.NewRealClock())(router),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 40 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Str("api_host", apiHost).Msg("form web server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan

	log.Info().Str("signal", sig.String()).Msg("received shutdown signal")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown failed")
	}

	log.Info().Msg("form web server shutdown complete")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		log.Warn().Str("key", key).Str("value", value).Msg("invalid duration, using default")
		return defaultValue
	}
	return d
}
