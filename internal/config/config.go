// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - Provide New(...Option) initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// TierConfig is one ladder row as it appears in configuration.
type TierConfig struct {
	Name  string `koanf:"name"`
	MinXP int    `koanf:"min_xp"`
}

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9090".
	Addr string `koanf:"addr"`

	// FeedURL is the upstream leaderboard payload endpoint.
	FeedURL string `koanf:"feed_url"`

	// FeedTimeoutMS bounds a single payload fetch.
	FeedTimeoutMS int `koanf:"feed_timeout_ms"`

	// RefreshIntervalMS is the snapshot refresh cadence.
	RefreshIntervalMS int `koanf:"refresh_interval_ms"`

	// PageSize is the pagination window size beyond the fixed head.
	PageSize int `koanf:"page_size"`

	// HeadSize is the fixed top-N section size.
	HeadSize int `koanf:"head_size"`

	// PodiumSize caps the podium length.
	PodiumSize int `koanf:"podium_size"`

	// XPRatio is the raw-points-per-XP conversion ratio.
	XPRatio int `koanf:"xp_ratio"`

	// Tiers overrides the default ladder when non-empty. Rows must be
	// descending by min_xp and end at zero.
	Tiers []TierConfig `koanf:"tiers"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:          "info",
		Addr:              ":9090",
		FeedURL:           "http://localhost:9091/leaderboard",
		FeedTimeoutMS:     5_000,
		RefreshIntervalMS: 15_000,
		PageSize:          10,
		HeadSize:          10,
		PodiumSize:        3,
		XPRatio:           10,
	}
}
