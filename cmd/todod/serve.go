package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"todod"
	"todod/auth"
	"todod/config"
	todohttp "todod/http"
	"todod/store"
	"todod/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Start the todod HTTP server.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 8080, "HTTP server port")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	configFiles, _ := cmd.Flags().GetStringSlice("config")
	cfg, err := config.Load(configFiles, cmd.Flags())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	setupLogging(cfg.Log.Level)

	repo, cleanup, err := store.Connect(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("connect store: %w", err)
	}
	defer cleanup()
	slog.Info("connected to store", "type", cfg.Store.Type, "table", cfg.Store.Table)

	service, err := todod.NewService(repo)
	if err != nil {
		return fmt.Errorf("create service: %w", err)
	}

	var verifier auth.Verifier
	if cfg.Auth.Enabled {
		verifier = auth.NewStaticTokenVerifier(cfg.Auth.Header, cfg.Auth.Token, cfg.Auth.Identity)
	} else {
		slog.Warn("credential gate disabled, API is public")
	}

	handlerConfig := todohttp.HandlerConfig{
		Verifier: verifier,
		CORS:     cfg.CORS,
	}
	handler := todohttp.NewHandler(&handlerConfig, service)

	mux := chi.NewRouter()
	mux.Mount("/api/todos", handler.Router())

	if cfg.Server.ServeFrontend {
		assets, err := fs.Sub(web.FS, ".")
		if err != nil {
			return fmt.Errorf("frontend assets: %w", err)
		}
		mux.Handle("/app/*", http.StripPrefix("/app/", http.FileServer(http.FS(assets))))
		mux.Get("/app", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/app/", http.StatusMovedPermanently)
		})
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)

	server := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown error", "err", err)
		}
		cancel()
	}()

	slog.Info("starting server", "addr", addr, "auth", cfg.Auth.Enabled)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
