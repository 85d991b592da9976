package service

import (
	"context"

	"github.com/xolan/pawlog/internal/storage"
)

// HealthService checks the stored activity log
type HealthService struct {
	store storage.Store
}

// NewHealthService creates a new HealthService
func NewHealthService(store storage.Store) *HealthService {
	return &HealthService{store: store}
}

// Check inspects the stored log without modifying it
func (s *HealthService) Check(ctx context.Context) storage.Health {
	return s.store.Inspect(ctx)
}
