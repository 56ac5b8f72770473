package controller

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Pinger reports whether review store can serve requests.
type Pinger interface {
	Ping(ctx context.Context) error
}

func New(
	Timeout time.Duration,
	pinger Pinger,
) *fiber.App {
	app := fiber.New()

	app.Get("/", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(context.Background(), Timeout)
		defer cancel()

		if err := pinger.Ping(ctx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).Send([]byte("storage unavailable"))
		}

		return c.Status(fiber.StatusOK).Send([]byte("OK"))
	})

	return app
}
