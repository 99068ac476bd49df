package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"uikit/internal/eventbus"
	"uikit/internal/table"
)

// DefaultFileName is the config file looked up in the working directory
const DefaultFileName = ".uikit.toml"

// ErrNotFound is returned when the config file does not exist
var ErrNotFound = errors.New("config file not found")

// Config represents the application configuration
type Config struct {
	Version    int        `toml:"version"`
	UISettings UISettings `toml:"ui"`
	Theme      Theme      `toml:"theme"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Mouse     bool   `toml:"mouse"`
	SortCycle string `toml:"sort_cycle"` // "toggle" or "tristate"
	ShowHelp  bool   `toml:"show_help"`
	DataFile  string `toml:"data_file,omitempty"`
}

// Theme holds ANSI 256 colour codes
type Theme struct {
	Accent    string `toml:"accent"`
	Muted     string `toml:"muted"`
	Error     string `toml:"error"`
	Success   string `toml:"success"`
	Highlight string `toml:"highlight"`
}

// SortCycle returns the parsed table sort cycle
func (c *Config) SortCycle() (table.SortCycle, error) {
	return table.ParseSortCycle(c.UISettings.SortCycle)
}

// Validate checks the values that cannot be repaired by defaults
func (c *Config) Validate() error {
	if _, err := c.SortCycle(); err != nil {
		return fmt.Errorf("invalid ui.sort_cycle: %w", err)
	}
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service bound to path. An empty path
// means DefaultFileName in the working directory.
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultFileName
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from the bound path
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to the bound path
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path. Missing keys keep
// their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		UISettings: UISettings{
			Mouse:     true,
			SortCycle: table.CycleToggle.String(),
			ShowHelp:  true,
		},
		Theme: Theme{
			Accent:    "99",
			Muted:     "241",
			Error:     "203",
			Success:   "78",
			Highlight: "226",
		},
	}
}
