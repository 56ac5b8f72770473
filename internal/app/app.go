package app

import (
	"context"
	"log/slog"

	router "appreview/internal/app/router"
	scheduler "appreview/internal/app/scheduler"
	storage "appreview/internal/app/storage"
	"appreview/internal/config"
	"appreview/internal/lib/clock"
	"appreview/internal/lib/logger/sl"
	"appreview/internal/seed"
	reviewSrv "appreview/internal/service/review"
)

type App struct {
	Router    *router.App
	Scheduler *scheduler.App
	Storage   *storage.Storage
	Review    *reviewSrv.Review
}

func New(
	log *slog.Logger,
	cfg *config.Config,
) *App {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	storage, err := storage.New(ctx, cfg.Storage.Kind, cfg.PostgresConn)
	if err != nil {
		log.Error("failed to create storage", sl.Err(err))
		panic(err)
	}

	review := reviewSrv.New(
		log,
		clock.Real(),
		cfg.AutoApproveDelay,
		storage.Reviews,
	)

	if cfg.SeedSamples {
		samples, err := seed.Load(cfg.SeedPath)
		if err != nil {
			log.Error("failed to load samples", sl.Err(err))
			panic(err)
		}
		if err := review.Seed(ctx, samples); err != nil {
			log.Error("failed to seed reviews", sl.Err(err))
			panic(err)
		}
	}

	if err := review.Restore(ctx); err != nil {
		log.Error("failed to restore auto-approvals", sl.Err(err))
		panic(err)
	}

	router := router.New(
		log,
		cfg.Addr,
		cfg.Timeout,
		cfg.IdleTimeout,
		review,
	)

	scheduler, err := scheduler.New(
		log,
		cfg.SweepSchedule,
		cfg.Timeout,
		review,
	)
	if err != nil {
		log.Error("failed to create sweep scheduler", sl.Err(err))
		panic(err)
	}

	return &App{
		Router:    router,
		Scheduler: scheduler,
		Storage:   storage,
		Review:    review,
	}
}

// Stop stops accepting requests, then timers, then storage.
func (a *App) Stop() error {
	err := a.Router.Stop()
	a.Scheduler.Stop()
	a.Review.Close()
	a.Storage.Stop()
	return err
}
