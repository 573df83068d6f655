package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"marketplace/internal/api"
	"marketplace/internal/api/handler/v1handler"
	"marketplace/internal/config"
	"marketplace/internal/locator"
	"marketplace/internal/marketplace"
	"marketplace/internal/matcher"
	"marketplace/internal/worker"
	"marketplace/pkg/geocoder/banapi"
	"marketplace/pkg/logger"
	"marketplace/pkg/metrics"
	"marketplace/pkg/storage/postgres"
)

// services holds the business services shared by the API and the workers.
type services struct {
	marketplace marketplace.Marketplace
	matcher     matcher.Matcher
	locator     locator.Locator
}

func newServices(cfg *config.Config, pgsql *postgres.PgSQL, recorder *metrics.Recorder) services {
	geocoder := banapi.New(&http.Client{Timeout: cfg.Geocoder.Timeout},
		cfg.Geocoder.BaseURL,
		banapi.WithUserAgent(cfg.Geocoder.UserAgent),
		banapi.WithMinScore(cfg.Geocoder.MinScore))

	matcherOpts := matcher.NewOptions(cfg)
	matcherOpts.Metrics = recorder

	marketplaceOpts := marketplace.NewOptions(cfg)
	marketplaceOpts.Metrics = recorder

	return services{
		marketplace: marketplace.New(pgsql, marketplaceOpts),
		matcher:     matcher.New(pgsql, matcherOpts),
		locator:     locator.New(pgsql, geocoder, recorder),
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			pgsql, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			svc := newServices(cfg, pgsql, metrics.NewRecorder(prometheus.DefaultRegisterer))

			// workers are stopped gracefully below, not by the signal
			riverClient, err := worker.Start(context.WithoutCancel(ctx),
				pgsql.Pool,
				worker.NewOptions(cfg),
				svc.locator,
				svc.matcher)
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			server, err := api.NewServer(api.Deps{Deps: v1handler.Deps{
				Marketplace: svc.marketplace,
				Matcher:     svc.matcher,
			}}, api.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create webserver", zap.Error(err))
			}

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("could not start webserver: %w", err)
				}

				return nil
			})
			g.Go(func() error {
				<-gctx.Done()

				shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
				defer cancel()

				logger.Info(ctx, "stopping webserver...")
				if err := server.Shutdown(shutdownCtx); err != nil {
					logger.Error(ctx, "could not stop webserver", zap.Error(err))
				}

				logger.Info(ctx, "stopping workers...")
				if err := riverClient.Stop(shutdownCtx); err != nil {
					return fmt.Errorf("could not stop workers: %w", err)
				}

				return nil
			})

			if err := g.Wait(); err != nil {
				logger.Error(ctx, "server stopped with error", zap.Error(err))
			}
		},
	}

	return cmd
}
