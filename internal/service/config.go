package service

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/xolan/pawlog/internal/config"
)

// ConfigService provides operations for managing configuration.
// It is safe for concurrent use; TUI commands read and save it from their own goroutines.
type ConfigService struct {
	configPath string

	mu     sync.RWMutex
	config config.Config
}

// NewConfigService creates a new ConfigService
func NewConfigService(configPath string, cfg config.Config) *ConfigService {
	return &ConfigService{
		configPath: configPath,
		config:     cfg,
	}
}

// Get returns the current configuration
func (s *ConfigService) Get() config.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// GetPath returns the path to the config file
func (s *ConfigService) GetPath() string {
	return s.configPath
}

// Exists checks if the config file exists
func (s *ConfigService) Exists() bool {
	_, err := os.Stat(s.configPath)
	return err == nil
}

// Update updates the configuration with new values
func (s *ConfigService) Update(cfg config.Config) error {
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writeConfig(cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	s.config = cfg
	return nil
}

// Init creates a sample config file
func (s *ConfigService) Init() error {
	if s.Exists() {
		return fmt.Errorf("config file already exists at %s", s.configPath)
	}

	sample := config.GenerateSampleConfig()
	if err := os.WriteFile(s.configPath, []byte(sample), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Reload reloads the configuration from disk
func (s *ConfigService) Reload() error {
	cfg, err := config.LoadOrDefault(s.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	s.mu.Lock()
	s.config = cfg
	s.mu.Unlock()
	return nil
}

// writeConfig writes the config to the config file in TOML format
func (s *ConfigService) writeConfig(cfg config.Config) error {
	var buf bytes.Buffer
	buf.WriteString("# pawlog configuration file\n\n")
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return err
	}
	return os.WriteFile(s.configPath, buf.Bytes(), 0644)
}
