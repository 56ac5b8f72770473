package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"appreview/internal/lib/logger/sl"
)

// Sweeper approves overdue pending reviews.
type Sweeper interface {
	Sweep(ctx context.Context) (int, error)
}

// App runs review sweep on a cron schedule.
type App struct {
	log  *slog.Logger
	cron *cron.Cron
}

func New(
	log *slog.Logger,
	schedule string,
	Timeout time.Duration,
	sweeper Sweeper,
) (*App, error) {
	const op = "Scheduler.New"

	log = log.With(slog.String("op", op))

	c := cron.New()

	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), Timeout)
		defer cancel()

		approved, err := sweeper.Sweep(ctx)
		if err != nil {
			log.Error("sweep failed", sl.Err(err))
			return
		}
		if approved > 0 {
			log.Info("overdue reviews approved", slog.Int("count", approved))
		}
	})
	if err != nil {
		return nil, err
	}

	return &App{
		log:  log,
		cron: c,
	}, nil
}

func (a *App) Run() {
	a.cron.Start()
	a.log.Info("sweep scheduler started")
}

// Stop stops scheduler and waits for running sweep.
func (a *App) Stop() {
	<-a.cron.Stop().Done()
}
