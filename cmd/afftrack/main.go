package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"go.uber.org/zap"

	"github.com/GlebRadaev/afftrack/internal/app"
	"github.com/GlebRadaev/afftrack/pkg/logger"
)

//	@title			Afftrack API
//	@version		1.0
//	@description	Affiliate attribution, funnel, commission, postback and invoicing API

// @host		localhost:8080
// @BasePath	/
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tracker := app.New()
	if err := tracker.Start(ctx); err != nil {
		// zap may not be configured yet when startup fails early.
		log.Error().Err(err).Str("service", logger.ServiceName).Msg("afftrack failed to start")
		zap.L().Fatal("afftrack failed to start", zap.Error(err))
	}

	if err := tracker.Wait(ctx, stop); err != nil {
		zap.L().Fatal("afftrack shutdown finished with errors", zap.Error(err))
	}
	zap.L().Info("afftrack stopped cleanly")
}
