package service

import (
	"time"

	"github.com/xolan/pawlog/internal/config"
	"github.com/xolan/pawlog/internal/kvstore"
	"github.com/xolan/pawlog/internal/storage"
)

// Services holds all service instances used by the application
type Services struct {
	Log       *LogService
	Dashboard *DashboardService
	Report    *ReportService
	Config    *ConfigService
	Health    *HealthService

	closer func() error
}

// NewServicesFromConfig opens the storage backend named by cfg
func NewServicesFromConfig(configPath string, cfg config.Config) (*Services, error) {
	dataDir, err := cfg.ResolveDataDir()
	if err != nil {
		return nil, err
	}

	kv, err := kvstore.Open(cfg.StorageBackend, dataDir)
	if err != nil {
		return nil, err
	}

	services := NewServicesWithStore(storage.New(kv), configPath, cfg, time.Now)
	services.closer = kv.Close
	return services, nil
}

// NewServicesWithStore creates a new Services instance around an existing store (useful for testing)
func NewServicesWithStore(store storage.Store, configPath string, cfg config.Config, now func() time.Time) *Services {
	clock := NewClock(cfg, now)

	return &Services{
		Log:       NewLogService(store, clock, cfg),
		Dashboard: NewDashboardService(store, clock),
		Report:    NewReportService(store, clock),
		Config:    NewConfigService(configPath, cfg),
		Health:    NewHealthService(store),
	}
}

// Close releases the storage backend
func (s *Services) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}
