package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"appreview/internal/app"
	"appreview/internal/config"
	"appreview/internal/lib/logger/sl"
	"appreview/internal/lib/logger/slogpretty"
)

func main() {
	// Setup config.
	cfg := config.MustLoad()

	// Setup logger.
	log := setupLogger(cfg.PrettyLogger)

	log.Info("starting server", slog.String("storage", cfg.Storage.Kind))
	log.Debug("debug messages are enabled")

	// Initialize app.
	application := app.New(log, cfg)

	// Run server.
	application.Scheduler.Run()
	go application.Router.MustRun()

	// Graceful shutdown.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	<-stop

	// Stop application.
	if err := application.Stop(); err != nil {
		log.Error("failed to stop server", sl.Err(err))
	}
	log.Info("Gracefully stopped")
}

func setupLogger(prettyLogger bool) *slog.Logger {
	var log *slog.Logger

	if prettyLogger {
		log = setupPrettySlog()
	} else {
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	handler := opts.NewPrettyHandler(os.Stdout)

	return slog.New(handler)
}
