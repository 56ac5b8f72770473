package app

import (
	"context"
	"fmt"

	"appreview/internal/config"
	reviewSrv "appreview/internal/service/review"
	"appreview/internal/storage/memory"
	postgres "appreview/internal/storage/postgres"
)

type Storage struct {
	Reviews reviewSrv.ReviewStorage
	// Postgres is nil for memory storage.
	Postgres *postgres.Storage
}

func New(ctx context.Context, kind, connURL string) (*Storage, error) {
	switch kind {
	case config.StorageMemory:
		return &Storage{Reviews: memory.New()}, nil
	case config.StoragePostgres:
		postgres, err := postgres.New(ctx, connURL)
		if err != nil {
			return nil, err
		}
		return &Storage{Reviews: postgres, Postgres: postgres}, nil
	default:
		return nil, fmt.Errorf("unknown storage %q", kind)
	}
}

func (s *Storage) Stop() {
	if s.Postgres != nil {
		s.Postgres.Stop()
	}
}
