package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/MikhailRaia/link-shortener/internal/app"
	"github.com/MikhailRaia/link-shortener/internal/config"
	"github.com/MikhailRaia/link-shortener/internal/logger"
)

func main() {
	cfg := config.NewConfig()

	logger.InitLogger(cfg.LogLevel)

	application, err := app.NewApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Error creating application")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Error running application")
	}
}
