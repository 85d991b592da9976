package service

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/xolan/pawlog/internal/config"
)

func TestNewConfigService(t *testing.T) {
	svc := NewConfigService("/tmp/config.toml", config.DefaultConfig())
	if svc == nil {
		t.Fatal("expected non-nil service")
	}
}

func TestConfigService_Get(t *testing.T) {
	cfg := config.DefaultConfig()
	svc := NewConfigService("/tmp/config.toml", cfg)

	if result := svc.Get(); result != cfg {
		t.Errorf("expected %+v, got %+v", cfg, result)
	}
}

func TestConfigService_GetPath(t *testing.T) {
	svc := NewConfigService("/tmp/test/config.toml", config.DefaultConfig())

	path := svc.GetPath()
	if path != "/tmp/test/config.toml" {
		t.Errorf("expected path '/tmp/test/config.toml', got %q", path)
	}
}

func TestConfigService_Exists(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")
	svc := NewConfigService(configPath, config.DefaultConfig())

	if svc.Exists() {
		t.Error("expected Exists() to return false")
	}

	if err := os.WriteFile(configPath, []byte("test"), 0644); err != nil {
		t.Fatal(err)
	}

	if !svc.Exists() {
		t.Error("expected Exists() to return true")
	}
}

func TestConfigService_Update(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")
	svc := NewConfigService(configPath, config.DefaultConfig())

	newCfg := config.DefaultConfig()
	newCfg.Theme = "nord"
	newCfg.ClockFormat = "12H"
	newCfg.Timezone = "America/New_York"

	if err := svc.Update(newCfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result := svc.Get()
	if result.Theme != "nord" || result.ClockFormat != "12h" {
		t.Errorf("expected normalized in-memory config, got %+v", result)
	}

	// The written file must load back to the same config
	loaded, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("written config should load, got %v", err)
	}
	if loaded != result {
		t.Errorf("expected loaded config %+v, got %+v", result, loaded)
	}
}

func TestConfigService_Update_Invalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")
	svc := NewConfigService(configPath, config.DefaultConfig())

	bad := config.DefaultConfig()
	bad.StorageBackend = "floppy"

	err := svc.Update(bad)
	if err == nil {
		t.Fatal("expected error for invalid config")
	}
	if !strings.Contains(err.Error(), "invalid configuration") {
		t.Errorf("unexpected error: %v", err)
	}
	if svc.Exists() {
		t.Error("invalid config must not be written")
	}
	if svc.Get() != config.DefaultConfig() {
		t.Error("invalid config must not replace the in-memory config")
	}
}

func TestConfigService_Init(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")
	svc := NewConfigService(configPath, config.DefaultConfig())

	if err := svc.Init(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !svc.Exists() {
		t.Fatal("expected config file to be created")
	}

	err := svc.Init()
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("expected 'already exists' error, got %v", err)
	}
}

func TestConfigService_Reload(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")
	svc := NewConfigService(configPath, config.DefaultConfig())

	if err := os.WriteFile(configPath, []byte(`theme = "gruvbox_dark"`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := svc.Reload(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.Get().Theme != "gruvbox_dark" {
		t.Errorf("expected reloaded theme, got %q", svc.Get().Theme)
	}

	if err := os.WriteFile(configPath, []byte(`clock_format = "25h"`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := svc.Reload(); err == nil {
		t.Error("expected error reloading invalid config")
	}
}

func TestConfigService_ConcurrentUpdateAndGet(t *testing.T) {
	svc := NewConfigService(filepath.Join(t.TempDir(), "config.toml"), config.DefaultConfig())
	themes := []string{"nord", "dracula"}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(theme string) {
			defer wg.Done()
			cfg := svc.Get()
			cfg.Theme = theme
			if err := svc.Update(cfg); err != nil {
				t.Errorf("Update() returned unexpected error: %v", err)
			}
		}(themes[i%2])
		go func() {
			defer wg.Done()
			_ = svc.Get().Theme
		}()
	}
	wg.Wait()

	if got := svc.Get().Theme; got != "nord" && got != "dracula" {
		t.Errorf("unexpected theme after concurrent updates: %q", got)
	}
}
