package app

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sweeperFunc func(ctx context.Context) (int, error)

func (f sweeperFunc) Sweep(ctx context.Context) (int, error) { return f(ctx) }

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}

func TestNewInvalidSchedule(t *testing.T) {
	_, err := New(testLogger(), "every minute", time.Second, sweeperFunc(nil))
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	var calls atomic.Int32
	a, err := New(testLogger(), "@every 1s", time.Second, sweeperFunc(func(ctx context.Context) (int, error) {
		_, ok := ctx.Deadline()
		assert.True(t, ok)
		calls.Add(1)
		return 1, nil
	}))
	require.NoError(t, err)

	a.Run()
	assert.Eventually(t, func() bool { return calls.Load() > 0 }, 3*time.Second, 50*time.Millisecond)
	a.Stop()
}
