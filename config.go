package showcase

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every carousel configuration validation failure.
var ErrInvalidConfig = errors.New("invalid carousel config")

const (
	defaultSettle         = 400 * time.Millisecond
	defaultSwipeThreshold = 50.0
	defaultResizeDebounce = 250 * time.Millisecond
	defaultAutoPlay       = 5 * time.Second
)

// CarouselConfig names the carousel's elements and tunes its behavior.
// Durations are whole milliseconds so the YAML stays readable.
//
// A zero or empty field means "use the default", both in YAML (settleMs: 0
// is the same as leaving it out) and in a config handed to WithConfig or
// BindCarousel. To really disable the settle delay or the swipe threshold,
// pass WithSettleDuration(0) or WithSwipeThreshold(0) after the config.
type CarouselConfig struct {
	Track string `yaml:"track"`
	Card  string `yaml:"card"`
	Prev  string `yaml:"prev"`
	Next  string `yaml:"next"`

	Breakpoints BreakpointTable `yaml:"breakpoints"`

	// SettleMs locks navigation after a move. Zero means 400.
	SettleMs int `yaml:"settleMs"`
	// SwipeThreshold is the minimum horizontal swipe in pixels. Zero means 50.
	SwipeThreshold float64 `yaml:"swipeThreshold"`
	SwipeAxisLock  bool    `yaml:"swipeAxisLock"`
	// ResizeDebounceMs is the resize quiet period. Zero means 250.
	ResizeDebounceMs int `yaml:"resizeDebounceMs"`
	// AutoPlayMs starts auto-advance at bind time when positive.
	AutoPlayMs int `yaml:"autoPlayMs"`
}

// DefaultConfig returns the configuration of the projects carousel.
func DefaultConfig() CarouselConfig {
	cfg := CarouselConfig{}
	applyDefaults(&cfg)
	return cfg
}

// LoadConfig reads and validates a YAML carousel configuration file.
func LoadConfig(path string) (*CarouselConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read carousel config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML, fills defaults for missing fields and validates.
func ParseConfig(data []byte) (*CarouselConfig, error) {
	var cfg CarouselConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse carousel config: %w", err)
	}
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults fills zero-valued fields. An explicit zero cannot be told
// apart from a missing field, so it gets the default too.
func applyDefaults(cfg *CarouselConfig) {
	if cfg.Track == "" {
		cfg.Track = "projectsTrack"
	}
	if cfg.Card == "" {
		cfg.Card = "project-card"
	}
	if cfg.Prev == "" {
		cfg.Prev = "prevProject"
	}
	if cfg.Next == "" {
		cfg.Next = "nextProject"
	}
	if len(cfg.Breakpoints) == 0 {
		cfg.Breakpoints = DefaultBreakpoints()
	}
	if cfg.SettleMs == 0 {
		cfg.SettleMs = int(defaultSettle / time.Millisecond)
	}
	if cfg.SwipeThreshold == 0 {
		cfg.SwipeThreshold = defaultSwipeThreshold
	}
	if cfg.ResizeDebounceMs == 0 {
		cfg.ResizeDebounceMs = int(defaultResizeDebounce / time.Millisecond)
	}
}

// Validate reports the first problem found in cfg.
func (c *CarouselConfig) Validate() error {
	if err := c.Breakpoints.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch {
	case c.SettleMs < 0:
		return fmt.Errorf("%w: settleMs must not be negative", ErrInvalidConfig)
	case c.SwipeThreshold < 0:
		return fmt.Errorf("%w: swipeThreshold must not be negative", ErrInvalidConfig)
	case c.ResizeDebounceMs < 0:
		return fmt.Errorf("%w: resizeDebounceMs must not be negative", ErrInvalidConfig)
	case c.AutoPlayMs < 0:
		return fmt.Errorf("%w: autoPlayMs must not be negative", ErrInvalidConfig)
	}
	return nil
}

// Settle returns the navigation settle delay.
func (c *CarouselConfig) Settle() time.Duration {
	return time.Duration(c.SettleMs) * time.Millisecond
}

// ResizeDebounce returns the resize quiet period.
func (c *CarouselConfig) ResizeDebounce() time.Duration {
	return time.Duration(c.ResizeDebounceMs) * time.Millisecond
}

// AutoPlay returns the auto-advance interval, or zero when disabled.
func (c *CarouselConfig) AutoPlay() time.Duration {
	return time.Duration(c.AutoPlayMs) * time.Millisecond
}
