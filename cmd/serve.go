package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	httpctx "github.com/ThanakornKaingam/LannaVegWedNew/internal/api/http/context"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/api/http/router"
	httpServer "github.com/ThanakornKaingam/LannaVegWedNew/internal/api/http/server"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/classifier"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/config"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/identity"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/logger"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/model"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/repository/postgres"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/server"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/service"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/species"
	storage "github.com/ThanakornKaingam/LannaVegWedNew/internal/storage/minio"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/token"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	logger := logger.New(cfg.LogLevel, cfg.LogFormat)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)
	codec := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL())
	catalog := species.Default()

	services := router.Services{
		Session: service.NewSession(codec, userRepo, logger),
		Auth:    service.NewAuth(userRepo, codec, logger),
		Review:  service.NewReview(reviewRepo, catalog, logger),
		Catalog: catalog,
		Health:  db,
	}

	if cfg.Google.Enabled {
		google, err := identity.NewGoogle(ctx, identity.GoogleConfig{
			Issuer:       cfg.Google.Issuer,
			ClientID:     cfg.Google.ClientID,
			ClientSecret: cfg.Google.ClientSecret,
			RedirectURI:  cfg.Google.RedirectURI,
			Scopes:       cfg.Google.Scopes,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize google sign-in: %w", err)
		}
		services.Federation = service.NewFederation(google, userRepo, codec, logger)
	} else {
		logger.Warn("google sign-in disabled")
	}

	prediction, err := newPredictionService(ctx, cfg, catalog, logger)
	if err != nil {
		return err
	}
	services.Prediction = prediction

	r := router.New(services, router.Options{
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		SecureCookies:  cfg.HTTP.SecureCookies,
		SessionTTL:     cfg.JWT.TTL(),
		FrontendURL:    cfg.FrontendURL,
	}, httpctx.NewManager(), logger)

	srv := httpServer.NewHTTPServer(r.Register(), cfg.HTTP.Address, httpServer.Timeouts{
		Read:  cfg.HTTP.ReadTimeout,
		Write: cfg.HTTP.WriteTimeout,
	})
	sl := server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "https", cfg.HTTP.EnableHTTPS)
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(srv)

	fmt.Fprint(cmd.OutOrStdout(), appVersion())

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
	return nil
}

func newPredictionService(ctx context.Context, cfg *config.Config, catalog model.SpeciesCatalog, logger *logger.Logger) (*service.Prediction, error) {
	var images model.ImageStore
	if cfg.Storage.Enabled {
		client, err := storage.Dial(ctx, storage.Options{
			Endpoint:  cfg.Storage.Endpoint,
			AccessKey: cfg.Storage.AccessKey,
			SecretKey: cfg.Storage.SecretKey,
			Bucket:    cfg.Storage.Bucket,
			UseSSL:    cfg.Storage.UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize image archive: %w", err)
		}
		images = client
	}

	return service.NewPrediction(
		classifier.NewClient(cfg.Classifier.URL, cfg.Classifier.Timeout),
		catalog,
		images,
		service.PredictionConfig{
			Threshold: cfg.Classifier.ConfidenceThreshold,
			Scale:     cfg.Classifier.ConfidenceScale,
		},
		logger,
	), nil
}
