package main

//
//  @title           tickerpulse API
//  @version         1.0
//  @description     Equity ticker price lookup service.
//  @termsOfService  https://github.com/guttosm/tickerpulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/tickerpulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        price
//  @tag.description Endpoints for querying ticker prices
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/tickerpulse/config"
	_ "github.com/guttosm/tickerpulse/docs" // swagger docs
	"github.com/guttosm/tickerpulse/internal/app"
	"github.com/guttosm/tickerpulse/internal/logger"
	"github.com/guttosm/tickerpulse/internal/service"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., provider connections).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// fetchQuotes fetches quotes for the given symbols concurrently and logs each
// result. One bad symbol does not cancel the others; only the first error is
// returned after all lookups finish.
func fetchQuotes(ctx context.Context, svc service.PriceService, symbols []string, date string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for _, symbol := range symbols {
		symbol := symbol
		g.Go(func() error {
			var err error
			if date != "" {
				quote, herr := svc.HistoricalPrice(ctx, symbol, date)
				if herr == nil {
					logger.L().Info().
						Str("symbol", quote.Symbol).
						Float64("price", quote.Price).
						Str("date", quote.Date).
						Str("actual_date", quote.ActualDate).
						Msg("quote")
				}
				err = herr
			} else {
				quote, cerr := svc.CurrentPrice(ctx, symbol)
				if cerr == nil {
					logger.L().Info().
						Str("symbol", quote.Symbol).
						Float64("price", quote.Price).
						Msg("quote")
				}
				err = cerr
			}
			if err != nil {
				logger.L().Error().Str("symbol", symbol).Err(err).Msg("quote failed")
			}
			return err
		})
	}

	return g.Wait()
}

// main is the entry point of the tickerpulse application.
//
// Modes (selected via --mode flag):
//   - api:   Starts the REST API exposing price lookups.
//   - fetch: One-shot CLI fetch of quotes for a comma-separated symbol list.
//
// Flags:
//   - --mode:    Execution mode ("api" or "fetch"). Default: "api".
//   - --symbols: Comma-separated ticker symbols for fetch mode.
//   - --date:    Optional YYYY-MM-DD date for fetch mode (historical closes).
//   - --port:    Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "api", "Mode: api or fetch")
	symbols := flag.String("symbols", "", "Comma-separated symbols for fetch mode")
	date := flag.String("date", "", "Optional YYYY-MM-DD date for fetch mode")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "api":
		// API mode: start the HTTP server
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	case "fetch":
		// Fetch mode: resolve quotes once and exit
		list := splitSymbols(*symbols)
		if len(list) == 0 {
			logger.L().Fatal().Msg("fetch mode requires --symbols")
		}

		client, err := app.InitProvider(config.AppConfig)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("provider init error")
		}
		defer client.Close()

		svc := service.NewPriceService(client)
		if err := fetchQuotes(ctx, svc, list, *date); err != nil {
			logger.L().Fatal().Err(err).Msg("fetch failed")
		}
		logger.L().Info().Int("symbols", len(list)).Msg("fetch completed successfully")

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}

func splitSymbols(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
