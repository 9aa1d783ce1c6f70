package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dgallion1/bmcanvas/internal/api"
	"github.com/dgallion1/bmcanvas/internal/config"
	"github.com/dgallion1/bmcanvas/internal/export"
	"github.com/dgallion1/bmcanvas/internal/metrics"
	"github.com/dgallion1/bmcanvas/internal/section"
	"github.com/dgallion1/bmcanvas/internal/view"
	"github.com/spf13/afero"
	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

func main() {
	flags, fs, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := config.LoadEnvFile(flags.envFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg := config.Load()
	flags.apply(fs, &cfg)

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		log.Debug(fmt.Sprintf(format, args...))
	}))

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	branding := config.DefaultBranding()
	if cfg.BrandingFile != "" {
		branding, err = config.LoadBranding(cfg.BrandingFile)
		if err != nil {
			log.Error("invalid branding file", "path", cfg.BrandingFile, "error", err)
			os.Exit(1)
		}
	}

	views, err := view.New(branding)
	if err != nil {
		log.Error("parse templates", "error", err)
		os.Exit(1)
	}

	exports := export.DefaultOptions(log)
	exports.Branding = branding

	loader := section.NewLoader(afero.NewOsFs(), cfg.SectionsDir, log)
	srv := api.NewServer(loader, exports, views, metrics.NewRecorder(nil), log)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Graceful shutdown.
	done := make(chan struct{})
	go func() {
		defer close(done)
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown", "error", err)
		}
	}()

	log.Info("starting bmcanvas", "port", cfg.Port, "sections_dir", cfg.SectionsDir)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
	<-done
}
