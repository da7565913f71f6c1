package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/AlexGronaCW/tickwork"
	"github.com/AlexGronaCW/tickwork/internal/logging"
	httpAdapter "github.com/AlexGronaCW/tickwork/pkg/adapters/http"
	"github.com/AlexGronaCW/tickwork/pkg/latent"
	"github.com/AlexGronaCW/tickwork/pkg/observability"
	"github.com/AlexGronaCW/tickwork/pkg/session"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the inspection HTTP server around a tick loop",
	Long:  `Runs a host tick loop in the background and exposes its in-flight operations and metrics over HTTP. When a config path is given, the client configuration is reloaded periodically as a latent operation.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfgPath, _ := cmd.Flags().GetString("config")
		verbose, _ := cmd.Flags().GetBool("verbose")
		port, _ := cmd.Flags().GetString("port")
		tick, _ := cmd.Flags().GetDuration("tick")
		reloadEvery, _ := cmd.Flags().GetDuration("reload-interval")

		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger := logging.NewJSON(level)

		sm, err := session.New(cfgPath, session.WithLogger(logger))
		if err != nil {
			fmt.Printf("Error initializing session manager: %v\n", err)
			os.Exit(1)
		}
		defer sm.Close()

		reg := prometheus.NewRegistry()
		metrics := observability.NewMetrics(reg)

		h := tickwork.NewHost(
			tickwork.WithLogger(logger),
			tickwork.WithLifecycleHooks(metrics.Hooks()),
		)

		server := httpAdapter.NewServer(h.Manager(),
			httpAdapter.WithMetricsHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
			httpAdapter.WithLogger(logger),
		)

		srv := &http.Server{
			Addr:    ":" + port,
			Handler: server.Router(),
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			fmt.Printf("Starting Tickwork Server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Background tick loop. All polling happens on this goroutine.
		loopCtx, stopLoop := context.WithCancel(context.Background())
		defer stopLoop()
		go tickLoop(loopCtx, h, sm, cfgPath, tick, reloadEvery, logger)

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			// Error when starting HTTP server.
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)
			stopLoop()

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			// Asking listener to shut down and shed load.
			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("Tickwork Server stopped gracefully")
		}
	},
}

// tickLoop owns the host: it polls registered operations at the tick
// interval and, when configured, keeps relaunching a config reload. The host
// is abandoned when ctx is cancelled.
func tickLoop(ctx context.Context, h *tickwork.Host, sm *session.Manager, cfgPath string, tick, reloadEvery time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	// Durable slots for the recurring reload. Reused across launches; only
	// one reload is ever in flight.
	status := tickwork.Alloc[tickwork.OperationResult](h)
	outcome := tickwork.Alloc[tickwork.Outcome](h)
	result := tickwork.Alloc[session.ReloadConfigResult](h)

	// The continuation runs on this goroutine, inside Tick, so reloading
	// is tracked without any extra synchronization.
	reloading := false
	var lastReload time.Time

	for {
		select {
		case <-ctx.Done():
			h.Shutdown()
			return
		case <-ticker.C:
		}

		if cfgPath != "" && !reloading && time.Since(lastReload) >= reloadEvery {
			_, err := session.ReloadConfigAsync(h.Manager(), h.Frame(), sm, "serve-reload",
				session.ReloadConfigRequest{Path: cfgPath},
				latent.Outputs[session.ReloadConfigResult]{Status: status, Outcome: outcome, Result: result},
				latent.WithContinuation[session.ReloadConfigRequest, session.ReloadConfigResult](func() {
					logger.Info("config reload committed",
						"outcome", outcome.String(),
						"features", len(result.Features))
					reloading = false
				}),
			)
			if err != nil {
				logger.Error("failed to launch config reload", "err", err)
			} else {
				reloading = true
				lastReload = time.Now()
			}
		}

		h.Tick()
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().Duration("tick", 50*time.Millisecond, "Tick interval for the host loop")
	serveCmd.Flags().Duration("reload-interval", 30*time.Second, "How often to reload the client configuration")
}
