package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"appreview/internal/config"
)

func TestNewMemory(t *testing.T) {
	s, err := New(context.Background(), config.StorageMemory, "")
	require.NoError(t, err)
	defer s.Stop()

	assert.NotNil(t, s.Reviews)
	assert.Nil(t, s.Postgres)
}

func TestNewUnknown(t *testing.T) {
	_, err := New(context.Background(), "redis", "")
	assert.Error(t, err)
}
