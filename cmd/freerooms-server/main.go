// Command freerooms-server answers free room queries over HTTP
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/navikt/freerooms/internal/api"
	"github.com/navikt/freerooms/internal/config"
	"github.com/navikt/freerooms/internal/logging"
	"github.com/navikt/freerooms/internal/repository"
	"github.com/navikt/freerooms/internal/scraper"
	"github.com/navikt/freerooms/internal/service"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

func main() {
	dotEnvErr := config.LoadDotEnv()

	logger, err := logging.New(config.GetLogConfig())
	if err != nil {
		logger = zap.Must(zap.NewProduction())
		logger.Warn("invalid log configuration, using defaults", zap.Error(err))
	}
	defer logger.Sync()

	if dotEnvErr != nil {
		logger.Fatal("failed to load .env", zap.Error(dotEnvErr))
	}

	provider := config.GetProviderConfig()
	if path := config.GetProviderFile(); path != "" {
		provider, err = config.LoadProviderFile(path, provider)
		if err != nil {
			logger.Fatal("failed to load provider profile", zap.Error(err))
		}
	}
	if err := provider.Validate(); err != nil {
		logger.Fatal("invalid provider configuration", zap.Error(err))
	}

	// Initialize the repository using the factory
	repo, err := repository.NewRepository(config.GetRedisConfig())
	if err != nil {
		logger.Fatal("failed to initialize repository", zap.Error(err))
	}

	// Close the Redis connection on exit when Redis is in use
	if redisRepo, ok := repo.(interface{ Close() error }); ok {
		defer func() {
			if err := redisRepo.Close(); err != nil {
				logger.Error("error closing Redis connection", zap.Error(err))
			}
		}()
	}

	var ready api.ReadinessCheck
	if pinger, ok := repo.(interface{ Ping(context.Context) error }); ok {
		ready = pinger.Ping
	}

	serverConfig := config.GetServerConfig()
	roomService := service.NewRoomService(
		scraper.New(provider, logger),
		repo,
		logger,
		language.Make(serverConfig.Locale),
	)

	server := &http.Server{
		Addr:              ":" + serverConfig.Port,
		Handler:           api.SetupRoutes(roomService, ready, logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		// A cold request waits for one scrape
		WriteTimeout: provider.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		logger.Info("starting freerooms server",
			zap.String("port", serverConfig.Port),
			zap.String("provider", provider.URL))
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("error starting server", zap.Error(err))
		}

	case <-shutdown:
		logger.Info("shutting down server")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		// Doesn't block if there are no connections, but will otherwise
		// wait until the timeout deadline.
		if err := server.Shutdown(ctx); err != nil {
			server.Close()
			logger.Error("error shutting down server", zap.Error(err))
			return
		}

		logger.Info("server gracefully stopped")
	}
}
