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

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"freight-service/internal/auth"
	"freight-service/internal/cache"
	"freight-service/internal/config"
	"freight-service/internal/db"
	httphandler "freight-service/internal/http"
	"freight-service/internal/http/middleware"
	"freight-service/internal/logger"
	"freight-service/internal/metrics"
	"freight-service/internal/repository"
	"freight-service/internal/secrets"
	"freight-service/internal/service"
	"freight-service/internal/storage"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Secrets.AWSSecretName != "" {
		overlay, err := secrets.NewAWSOverlay(ctx, cfg.Secrets.AWSRegion, cfg.Secrets.AWSSecretName)
		if err == nil {
			err = overlay.Apply(ctx, cfg)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load secrets: %v\n", err)
			os.Exit(1)
		}
	}

	appLogger := logger.New(cfg.Environment, cfg.Log)

	database, err := db.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect database")
	}

	dropdowns := newDropdowns(ctx, cfg.Redis, appLogger)
	images := newImageStore(ctx, cfg.Storage, appLogger)

	freightRepo := repository.NewFreightRepository(database)
	outputRepo := repository.NewOutputRepository(database)

	issuer := auth.NewIssuer(cfg.Auth.AccessSecret, cfg.Auth.AccessTTL)
	services := httphandler.Services{
		Users:      service.NewUserService(repository.NewUserRepository(database), issuer, appLogger),
		Transports: service.NewTransportService(repository.NewTransportRepository(database), dropdowns),
		Drivers:    service.NewDriverService(repository.NewDriverRepository(database), images, dropdowns, appLogger),
		Units:      service.NewUnitService(repository.NewUnitRepository(database), images, dropdowns, appLogger),
		Policies:   service.NewPolicyService(repository.NewPolicyRepository(database), images, dropdowns, appLogger),
		Sctrs:      service.NewSctrService(repository.NewSctrRepository(database), images, dropdowns, appLogger),
		Clients:    service.NewClientService(repository.NewClientRepository(database), freightRepo, dropdowns),
		Products:   service.NewProductService(repository.NewProductRepository(database), dropdowns, cfg.LimitPerPage),
		Routes:     service.NewRouteService(repository.NewRouteRepository(database), dropdowns, cfg.LimitPerPage),
		Services:   service.NewServiceService(repository.NewServiceRepository(database), dropdowns),
		Freights:   service.NewFreightService(freightRepo, outputRepo, cfg.LimitPerPage, appLogger),
		TransportedProducts: service.NewTransportedProductService(
			repository.NewTransportedProductRepository(database)),
		ExpenseSettlements: service.NewExpenseSettlementService(repository.NewExpenseSettlementRepository(database)),
		SaleSettlements: service.NewSaleSettlementService(
			repository.NewSaleSettlementRepository(database),
			repository.NewSaleSettlementDetailRepository(database)),
		Banks:       service.NewBankService(repository.NewBankRepository(database), dropdowns),
		OutputTypes: service.NewOutputTypeService(repository.NewOutputTypeRepository(database), dropdowns),
		Outputs:     service.NewOutputService(outputRepo),
	}

	uploads, err := middleware.NewUploads(cfg.Upload.Dir, cfg.Upload.MaxBytes, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to prepare upload directory")
	}

	handler := httphandler.NewHandler(services, uploads, appLogger)
	authMiddleware := middleware.Auth(auth.NewParser(cfg.Auth.AccessSecret))
	router := httphandler.NewRouter(handler, authMiddleware, metrics.New(), appLogger, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info().Str("addr", addr).Msg("starting freight service")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	appLogger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error().Err(err).Msg("graceful shutdown failed")
	}
	if sqlDB, err := database.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// newDropdowns caches dropdown lists in redis when an address is configured.
func newDropdowns(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) cache.Dropdowns {
	if cfg.Addr == "" {
		return cache.Noop{}
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB})
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", cfg.Addr).Msg("redis unreachable, dropdowns will be read through")
	}
	return cache.NewRedisDropdowns(client, cfg.DropdownTTL, log)
}

func newImageStore(ctx context.Context, cfg config.StorageConfig, log zerolog.Logger) storage.Store {
	if cfg.S3Bucket != "" {
		store, err := storage.NewS3Store(ctx, cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to configure s3 storage")
		}
		return store
	}

	store, err := storage.NewLocalStore(cfg.LocalDir, cfg.PublicBaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to prepare local storage")
	}
	return store
}
