package main

import (
	"context"
	"os"
	"os/signal"
	"stayadmin/config"
	"stayadmin/di"
	"stayadmin/helper"
	"stayadmin/shared/logger"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

const closeTimeout = 10 * time.Second

// @title StayAdmin API
// @version 1.0
// @description Booking administration: payment slip verification and audit trail.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	service := di.InitializeService()

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		service.Consumer.Run(ctx)
	}()

	service.HTTP.Serve(ctx)

	stop()
	wg.Wait()

	closeCtx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	_ = service.Close(closeCtx)

	log.Info().Msg("Service stopped.")
}
