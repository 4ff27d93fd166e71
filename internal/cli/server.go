// filepath: internal/cli/server.go
package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mediabridge/internal/httpserver"
	"mediabridge/internal/httpserver/auth"
	"mediabridge/internal/httpserver/handlers"
	"mediabridge/internal/logging"
	"mediabridge/internal/metrics"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Serves the method channel over HTTP until interrupted.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

// runServer contains the logic to start the HTTP server with graceful shutdown.
func runServer() error {
	repo, err := openIndex()
	if err != nil {
		return err
	}
	defer repo.Close()

	m := metrics.New()
	h := handlers.NewHandlers(Version, StartTime, newChannelHandler(repo).WithObserver(m))

	var authMiddleware *auth.Middleware
	if cfg.Server.JWTSecret != "" {
		authMiddleware = auth.NewMiddleware(cfg.Server.JWTSecret)
	} else {
		logging.Log.Warn("No JWT secret configured, the channel API is unauthenticated.")
	}

	r := httpserver.SetupRouter(h, authMiddleware, m.Handler())

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// --- Graceful Shutdown Setup ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		logging.Log.Infof("Server starting on %s (channel: %s)", serverAddr, cfg.Channel.Name)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed to start: %w", err)
	case <-stop:
	}
	logging.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Log.Errorf("Server forced to shutdown: %v", err)
		return err
	}

	logging.Log.Info("Server exiting")
	return nil
}
