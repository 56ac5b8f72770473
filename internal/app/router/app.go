package app

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	pingCtr "appreview/internal/controller/ping"
	reviewCtr "appreview/internal/controller/review"
)

// Review is review store served by router.
type Review interface {
	reviewCtr.Review
	pingCtr.Pinger
}

type App struct {
	log      *slog.Logger
	addr     string
	fiberApp *fiber.App
}

func New(
	log *slog.Logger,
	addr string,
	Timeout time.Duration,
	idleTimeout time.Duration,
	review Review,
) *App {
	// Initialize fiber router.
	fiberApp := fiber.New(fiber.Config{
		IdleTimeout: idleTimeout,
		JSONDecoder: decode,
	})

	// Mount controllers.
	fiberApp.Mount("/api/ping", pingCtr.New(Timeout, review))
	fiberApp.Mount("/api/reviews", reviewCtr.New(Timeout, review))

	return &App{
		log:      log,
		addr:     addr,
		fiberApp: fiberApp,
	}
}

func (a *App) MustRun() {
	if err := a.Run(); err != nil {
		panic(err)
	}
}

func (a *App) Run() error {
	a.log.Info("http server started", slog.String("addr", a.addr))
	return a.fiberApp.Listen(a.addr)
}

func (a *App) Stop() error {
	return a.fiberApp.Shutdown()
}

// JSON decoder function for fiber app.
func decode(data []byte, v interface{}) error {
	decoder := json.NewDecoder(bytes.NewBuffer(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}
