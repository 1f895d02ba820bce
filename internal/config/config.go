package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"vselect/internal/eventbus"
)

// LocalFileName is the per-directory override looked up next to a catalogue
const LocalFileName = ".vselect.toml"

// Config represents the application configuration
type Config struct {
	Version    int            `toml:"version"`
	Widget     WidgetSettings `toml:"widget"`
	UISettings UISettings     `toml:"ui"`
}

// WidgetSettings mirrors the select widget options that make sense in a file
type WidgetSettings struct {
	Multi             bool `toml:"multi"`
	Search            bool `toml:"search"`
	Sticky            bool `toml:"sticky"`
	Loop              bool `toml:"loop"`
	CloseOnChange     bool `toml:"close_on_change"`
	ForceSelection    bool `toml:"force_selection"`
	SelectionOptions  bool `toml:"selection_options"`
	InitialFocusFirst bool `toml:"initial_focus_first"`

	DebounceMS int `toml:"debounce_ms"`

	// Extents in terminal lines, 0 keeps the widget default
	OptionSize int `toml:"option_size"`
	GroupSize  int `toml:"group_size"`
	Gap        int `toml:"gap"`
	Overscan   int `toml:"overscan"`
	MinHeight  int `toml:"min_height"`
	MaxHeight  int `toml:"max_height"`
	Width      int `toml:"width"`

	Placeholder      string `toml:"placeholder,omitempty"`
	NoOptionsMessage string `toml:"no_options_message,omitempty"`
}

// UISettings represents host-related configuration
type UISettings struct {
	Title     string `toml:"title"`
	Mouse     bool   `toml:"mouse"`
	AltScreen bool   `toml:"alt_screen"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = homedir.Expand("~/.config")
		if err != nil {
			configDir = "."
		}
	}

	return &configService{
		bus:      eventbus.NullBus{},
		filePath: filepath.Join(configDir, "vselect", "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	if bus != nil {
		cs.bus = bus
	}
	return cs
}

// Path returns the default config file location
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the default file.
// A missing file yields DefaultConfig.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = DefaultConfig()
		cs.bus.Publish(eventbus.ConfigLoadedEvent{})
		return cfg, nil
	}
	return cfg, err
}

// Save saves the configuration to the default file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path.
// Keys absent from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.normalize()

	cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: path})
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	path, err := homedir.Expand(path)
	if err != nil {
		return fmt.Errorf("failed to expand config path: %w", err)
	}

	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	cs.bus.Publish(eventbus.ConfigSavedEvent{Path: path})
	return nil
}

func (c *Config) normalize() {
	if c.Version == 0 {
		c.Version = 1
	}
	w := &c.Widget
	w.DebounceMS = max(w.DebounceMS, 0)
	w.OptionSize = max(w.OptionSize, 0)
	w.GroupSize = max(w.GroupSize, 0)
	w.Gap = max(w.Gap, 0)
	w.Overscan = max(w.Overscan, 0)
	w.MinHeight = max(w.MinHeight, 0)
	w.MaxHeight = max(w.MaxHeight, 0)
	w.Width = max(w.Width, 0)
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Widget: WidgetSettings{
			Search:     true,
			DebounceMS: 200,
			Overscan:   2,
		},
		UISettings: UISettings{
			Title:     "vselect",
			Mouse:     true,
			AltScreen: true,
		},
	}
}
