package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/1broseidon/aura/internal/palette"
	"gopkg.in/yaml.v3"
)

// FileManager gates a desktop file-manager executable on the window classes
// that are genuine browser windows. Any other class owned by the same
// executable is treated as shell UI.
type FileManager struct {
	Executable string   `yaml:"executable"`
	Classes    []string `yaml:"classes"`
}

// Config is the immutable runtime configuration. It is built once at startup
// and passed by pointer to every component; nothing mutates it afterwards.
type Config struct {
	FPS            int `yaml:"fps"`
	PollIntervalMS int `yaml:"poll_interval_ms"`

	BorderWidth       float64 `yaml:"border_width"`
	GlowLayers        int     `yaml:"glow_layers"`
	SmoothingFactor   float64 `yaml:"smoothing_factor"`
	RAMSensitivityCap float64 `yaml:"ram_sensitivity_cap"` // percent of total memory that maps to the top color
	BaseBreathSpeed   float64 `yaml:"base_breath_speed"`
	MaxBreathSpeed    float64 `yaml:"max_breath_speed"`
	MinTargetSize     int     `yaml:"min_target_size"` // logical px

	ZenModeAlpha int    `yaml:"zen_mode_alpha"`
	ZenToggleKey string `yaml:"zen_toggle_key"`

	ColorStops []palette.Stop `yaml:"color_stops"`

	IgnoreClasses   []string      `yaml:"ignore_classes"`
	IgnoreProcesses []string      `yaml:"ignore_processes"`
	FileManagers    []FileManager `yaml:"file_managers"`

	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		FPS:               60,
		PollIntervalMS:    200,
		BorderWidth:       4,
		GlowLayers:        4,
		SmoothingFactor:   0.08,
		RAMSensitivityCap: 10.0,
		BaseBreathSpeed:   0.02,
		MaxBreathSpeed:    0.15,
		MinTargetSize:     60,
		ZenModeAlpha:      180,
		ZenToggleKey:      "F8",
		ColorStops:        palette.DefaultStops(),
		IgnoreClasses:     defaultIgnoreClasses(),
		IgnoreProcesses:   defaultIgnoreProcesses(),
		FileManagers:      defaultFileManagers(),
		LogLevel:          "info",
	}
}

func defaultIgnoreClasses() []string {
	return []string{
		// Windows shell surfaces.
		"Shell_TrayWnd",
		"Shell_SecondaryTrayWnd",
		"Progman",
		"WorkerW",
		"Windows.UI.Core.CoreWindow",
		"XamlExplorerHostIslandWindow",
		"TopLevelWindowForOverflowXamlIsland",
		"NotifyIconOverflowWindow",
		"ForegroundStaging",
		"MultitaskingViewFrame",
		"TaskListThumbnailWnd",
		// X11 desktops, panels and docks.
		"Xfdesktop",
		"Xfce4-panel",
		"plasmashell",
		"Polybar",
		"Tint2",
		"Gnome-shell",
		"Conky",
	}
}

func defaultIgnoreProcesses() []string {
	return []string{
		"SearchHost.exe",
		"StartMenuExperienceHost.exe",
		"ShellExperienceHost.exe",
		"LockApp.exe",
		"TextInputHost.exe",
		"gnome-shell",
		"plasmashell",
		"xfce4-panel",
		"polybar",
		"rofi",
		"dunst",
	}
}

func defaultFileManagers() []FileManager {
	return []FileManager{
		{Executable: "explorer.exe", Classes: []string{"CabinetWClass"}},
		{Executable: "nautilus", Classes: []string{"org.gnome.Nautilus"}},
		{Executable: "caja", Classes: []string{"Caja"}},
		{Executable: "nemo", Classes: []string{"Nemo"}},
	}
}

// PollInterval is the tracker period.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}

// FrameInterval is the animation/render period derived from FPS.
func (c *Config) FrameInterval() time.Duration {
	if c.FPS <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.FPS)
}

// Validate performs strict validation of the effective configuration.
func (c *Config) Validate() error {
	if c.FPS <= 0 {
		return &ValidationError{Path: "fps", Err: fmt.Errorf("fps must be > 0")}
	}
	if c.PollIntervalMS <= 0 {
		return &ValidationError{Path: "poll_interval_ms", Err: fmt.Errorf("poll_interval_ms must be > 0")}
	}
	if c.BorderWidth <= 0 {
		return &ValidationError{Path: "border_width", Err: fmt.Errorf("border_width must be > 0")}
	}
	if c.GlowLayers <= 0 {
		return &ValidationError{Path: "glow_layers", Err: fmt.Errorf("glow_layers must be > 0")}
	}
	if c.SmoothingFactor <= 0 || c.SmoothingFactor >= 1 {
		return &ValidationError{Path: "smoothing_factor", Err: fmt.Errorf("smoothing_factor must be in (0, 1)")}
	}
	if c.BaseBreathSpeed < 0 || c.MaxBreathSpeed < 0 {
		return &ValidationError{Path: "base_breath_speed", Err: fmt.Errorf("breath speeds must be >= 0")}
	}
	if c.ZenModeAlpha < 0 || c.ZenModeAlpha > 255 {
		return &ValidationError{Path: "zen_mode_alpha", Err: fmt.Errorf("zen_mode_alpha must be in 0..255")}
	}
	if strings.TrimSpace(c.ZenToggleKey) == "" {
		return &ValidationError{Path: "zen_toggle_key", Err: fmt.Errorf("zen_toggle_key is required")}
	}
	if err := palette.Validate(c.ColorStops); err != nil {
		return &ValidationError{Path: "color_stops", Err: err}
	}
	for i, fm := range c.FileManagers {
		if strings.TrimSpace(fm.Executable) == "" {
			return &ValidationError{Path: fmt.Sprintf("file_managers.%d.executable", i), Err: fmt.Errorf("executable is required")}
		}
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: debug, info, warn, error")}
	}
	return nil
}

// Save writes the configuration to path, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
