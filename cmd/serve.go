package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"catalog/internal/api"
	"catalog/internal/auth"
	"catalog/internal/config"
	"catalog/internal/service"
	"catalog/internal/worker"
	"catalog/pkg/logger"
	"catalog/pkg/mailer"
	"catalog/pkg/password"
	"catalog/pkg/storage/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, strg *postgres.PgSQL, signer *auth.Signer, verifier *auth.Verifier) func(ctx context.Context) {
	users := service.NewUsers(strg, password.Bcrypt{}, signer, verifier, cfg.JWT.SessionTTL)

	server, err := api.NewServer(api.Deps{
		Catalogs: service.NewCatalogs(strg),
		Products: service.NewProducts(strg),
		Extras:   service.NewExtras(strg),
		Users:    users,
		Verifier: verifier,
		Sessions: strg,
	}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			signer, err := auth.NewSigner(cfg.JWT.PrivateKey)
			if err != nil {
				logger.Fatal(ctx, "could not create token signer", zap.Error(err))
			}
			verifier, err := auth.NewVerifier(cfg.JWT.PublicKey)
			if err != nil {
				logger.Fatal(ctx, "could not create token verifier", zap.Error(err))
			}

			mg := mailer.NewMailgun(cfg.Mailgun.Domain, cfg.Mailgun.APIKey, cfg.Mailgun.Sender)
			riverClient, err := worker.Start(ctx, strg.Pool, mg, signer, worker.Options{
				Queue:      cfg.Worker.Queue,
				MaxWorkers: cfg.Worker.MaxWorkers,
			})
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, strg, signer, verifier)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop workers", zap.Error(err))
			}
		},
	}

	return cmd
}
