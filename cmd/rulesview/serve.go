package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/meur/rulesview/internal/api"
	"github.com/meur/rulesview/internal/config"
	"github.com/meur/rulesview/internal/render"
	"github.com/meur/rulesview/internal/source"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func serveCmd() *cobra.Command {
	var (
		flags  dataFlags
		port   string
		assets string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the pages and JSON API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			if cmd.Flags().Changed("assets") {
				cfg.Server.AssetsDir = assets
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&port, "port", "p", "", "Server port")
	cmd.Flags().StringVar(&assets, "assets", "", "Directory overriding the bundled assets")

	return cmd
}

func serve(ctx context.Context, cfg *config.Config) error {
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	loader := source.NewLoader(cfg.Data.FetchTimeout, logger)
	catalog, err := loader.LoadCatalog(ctx, cfg.Data.BattleProfiles, cfg.Data.FAQ, cfg.Data.OverlayDir)
	loader.Close()
	if err != nil {
		return err
	}

	renderer, err := render.New(render.ServerLinks{})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr: ":" + cfg.Server.Port,
		Handler: api.New(catalog, renderer, logger, api.Options{
			AllowedOrigins: cfg.Server.AllowedOrigins,
			AssetsDir:      cfg.Server.AssetsDir,
		}),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting",
			zap.String("addr", "http://localhost:"+cfg.Server.Port),
			zap.String("revision", catalog.Revision()),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down", zap.Duration("grace", cfg.Server.ShutdownGrace))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}
