package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"staysync/config"
	"staysync/di"
	"staysync/helper"
	"staysync/infras/metrics"
	"staysync/shared/logger"
	"staysync/shared/timezone"

	"github.com/rs/zerolog/log"
)

func main() {
	logger.InitLogger()

	cfg := config.Get()

	logger.UseJSON(cfg)
	logger.SetLogLevel(cfg)

	timezone.Init(cfg.App.Timezone)
	metrics.Register()

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to migrate database")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := di.InitializeService()

	var wg sync.WaitGroup

	wg.Add(2)

	go func() {
		defer wg.Done()

		app.Scheduler.Run(ctx)
	}()

	go func() {
		defer wg.Done()

		if err := app.Consumer.Run(ctx); err != nil {
			log.Error().Err(err).Msg("Change feed consumer stopped")
		}
	}()

	app.HTTP.Serve(ctx)

	wg.Wait()
}
