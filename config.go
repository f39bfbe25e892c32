package minitimer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

type (
	// configFile is the top-level structure of a timer preset file.
	configFile struct {
		Timers map[string]TimerConfig `json:"timers" yaml:"timers"`
	}

	// TimerConfig holds the decoded configuration for a single timer
	// preset. Export it to embed in your own app config structs for JSON or
	// YAML unmarshaling, then call [BuildTimer] to obtain a Timer.
	TimerConfig struct {
		// From is the initial elapsed value.
		// Optional, defaults to "0s". Parsed via time.ParseDuration.
		From *string `json:"from,omitempty" yaml:"from,omitempty"`
		// Inc is the signed per-tick delta; its magnitude is also the tick
		// period. Required, non-zero. Parsed via time.ParseDuration.
		// Example: "-100ms" counts down by 100ms every 100ms.
		Inc *string `json:"inc,omitempty" yaml:"inc,omitempty"`
		// To is the target value at which the timer auto-stops.
		// Optional. Parsed via time.ParseDuration. Example: "0s".
		To *string `json:"to,omitempty" yaml:"to,omitempty"`
	}
)

// LoadConfig reads a preset file and stores the timer configurations in a
// [Registry]. Actual Timer instances are not created until [GetTimer] is
// called, allowing the caller to attach handlers and code-level options.
//
// Files ending in .yaml or .yml are decoded as YAML; anything else is
// decoded as JSON. Duration values (from, inc, to) are parsed using
// [time.ParseDuration].
func LoadConfig(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("minitimer: read config: %w", err)
	}

	var cfg configFile

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("minitimer: parse config: %w", err)
		}
	default:
		if err = json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("minitimer: parse config: %w", err)
		}
	}

	// Validate all presets eagerly so errors surface at load time.
	for name, tc := range cfg.Timers {
		if _, _, _, buildErr := buildParams(&tc); buildErr != nil {
			return nil, fmt.Errorf("minitimer: timer %q: %w", name, buildErr)
		}
	}

	reg := NewRegistry()
	reg.mu.Lock()
	reg.configs = cfg.Timers
	reg.mu.Unlock()

	return reg, nil
}

// BuildTimer converts a [TimerConfig] into a Timer. Use this when you embed
// TimerConfig in your own config struct and want to build a timer without
// going through [LoadConfig]. User-provided options are applied after config
// options, so they take precedence.
func BuildTimer(tc *TimerConfig, opts ...Option) (*Timer, error) {
	from, inc, cfgOpts, err := buildParams(tc)
	if err != nil {
		return nil, err
	}

	return New(from, inc, append(cfgOpts, opts...)...)
}

// GetTimer builds a named timer from a config-loaded [Registry]. The timer
// registers with reg under name. Returns [ErrUnknownTimer] when the name has
// no stored configuration.
func GetTimer(reg *Registry, name string, opts ...Option) (*Timer, error) {
	reg.mu.Lock()
	tc, ok := reg.configs[name]
	reg.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("minitimer: timer %q: %w", name, ErrUnknownTimer)
	}

	allOpts := []Option{WithName(name), WithRegistry(reg)}
	// User opts come last so they can override config values.
	allOpts = append(allOpts, opts...)

	return BuildTimer(&tc, allOpts...)
}

// buildParams decodes and validates a preset's duration fields.
func buildParams(tc *TimerConfig) (from, inc time.Duration, opts []Option, err error) {
	if tc.Inc == nil {
		return 0, 0, nil, fmt.Errorf("inc is required")
	}

	inc, err = time.ParseDuration(*tc.Inc)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("inc: %w", err)
	}
	if inc == 0 {
		return 0, 0, nil, ErrZeroIncrement
	}

	if tc.From != nil {
		from, err = time.ParseDuration(*tc.From)
		if err != nil {
			return 0, 0, nil, fmt.Errorf("from: %w", err)
		}
	}

	if tc.To != nil {
		to, toErr := time.ParseDuration(*tc.To)
		if toErr != nil {
			return 0, 0, nil, fmt.Errorf("to: %w", toErr)
		}

		opts = append(opts, WithTarget(to))
	}

	return from, inc, opts, nil
}
