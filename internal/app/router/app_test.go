package app

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"appreview/internal/lib/clock"
	"appreview/internal/models"
	"appreview/internal/seed"
	"appreview/internal/service/review"
	"appreview/internal/storage/memory"
)

const DELAY = 75 * time.Second

func testApp(t *testing.T) (*App, *clock.Fake) {
	t.Helper()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	clk := clock.NewFake(time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC))
	store := review.New(log, clk, DELAY, memory.New())
	t.Cleanup(store.Close)
	require.NoError(t, store.Seed(context.Background(), seed.Samples()))

	return New(log, "", time.Second, time.Second, store), clk
}

func do(t *testing.T, a *App, method, target, body string) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.fiberApp.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, data
}

func TestPing(t *testing.T) {
	a, _ := testApp(t)

	code, body := do(t, a, http.MethodGet, "/api/ping", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "OK", string(body))
}

func TestReviewLifecycle(t *testing.T) {
	a, clk := testApp(t)

	code, body := do(t, a, http.MethodGet, "/api/reviews/summary", "")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"average":3.4,"total":15}`, string(body))

	code, _ = do(t, a, http.MethodPost, "/api/reviews/new", `{"rating":0,"text":"x"}`)
	assert.Equal(t, http.StatusNoContent, code)

	code, _ = do(t, a, http.MethodPost, "/api/reviews/new", `{"rating":4,"text":"x","extra":1}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, body = do(t, a, http.MethodPost, "/api/reviews/new", `{"rating":4,"text":"x"}`)
	require.Equal(t, http.StatusOK, code)
	var created models.ReviewOut
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, models.Pending, created.Status)

	code, body = do(t, a, http.MethodGet, "/api/reviews?status=pending", "")
	require.Equal(t, http.StatusOK, code)
	var pending []models.ReviewOut
	require.NoError(t, json.Unmarshal(body, &pending))
	assert.Len(t, pending, 4)

	clk.Advance(DELAY)

	code, body = do(t, a, http.MethodGet, "/api/reviews/"+created.Id.String(), "")
	require.Equal(t, http.StatusOK, code)
	var got models.ReviewOut
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, models.Approved, got.Status)

	code, body = do(t, a, http.MethodPut, "/api/reviews/"+created.Id.String()+"/reject", "")
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, models.Approved, got.Status)
}
