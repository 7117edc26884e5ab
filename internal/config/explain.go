package config

import (
	"fmt"
	"strings"
)

// Explain returns the effective value at the given top-level key and where it
// came from.
//
// Supported paths are the YAML keys of Config, for example:
//
//	fps
//	smoothing_factor
//	zen_toggle_key
//	color_stops
//	file_managers
func Explain(res *LoadResult, path string) (any, Source, error) {
	if res == nil || res.Config == nil {
		return nil, Source{}, fmt.Errorf("no config loaded")
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, Source{}, fmt.Errorf("path is empty")
	}

	value, err := lookupValue(res.Config, path)
	if err != nil {
		return nil, Source{}, err
	}
	if src, ok := res.Sources[path]; ok {
		return value, src, nil
	}
	return value, Source{Kind: SourceDefault}, nil
}

func lookupValue(cfg *Config, path string) (any, error) {
	switch path {
	case "fps":
		return cfg.FPS, nil
	case "poll_interval_ms":
		return cfg.PollIntervalMS, nil
	case "border_width":
		return cfg.BorderWidth, nil
	case "glow_layers":
		return cfg.GlowLayers, nil
	case "smoothing_factor":
		return cfg.SmoothingFactor, nil
	case "ram_sensitivity_cap":
		return cfg.RAMSensitivityCap, nil
	case "base_breath_speed":
		return cfg.BaseBreathSpeed, nil
	case "max_breath_speed":
		return cfg.MaxBreathSpeed, nil
	case "min_target_size":
		return cfg.MinTargetSize, nil
	case "zen_mode_alpha":
		return cfg.ZenModeAlpha, nil
	case "zen_toggle_key":
		return cfg.ZenToggleKey, nil
	case "color_stops":
		return cfg.ColorStops, nil
	case "ignore_classes":
		return cfg.IgnoreClasses, nil
	case "ignore_processes":
		return cfg.IgnoreProcesses, nil
	case "file_managers":
		return cfg.FileManagers, nil
	case "log_level":
		return cfg.LogLevel, nil
	default:
		return nil, fmt.Errorf("unknown path: %s", path)
	}
}
