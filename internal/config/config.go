package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pfrederiksen/pool-standings/internal/feed"
	"github.com/pfrederiksen/pool-standings/internal/logger"
	"github.com/pfrederiksen/pool-standings/internal/scoring"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "POOL"

// ErrNoFeed is returned when neither a feed URL nor a feed file is configured
var ErrNoFeed = errors.New("no feed configured (set feed.url or feed.file)")

// Config holds all resolved settings
type Config struct {
	Feed    FeedConfig    `mapstructure:"feed"`
	Roster  string        `mapstructure:"roster"`
	Policy  PolicyConfig  `mapstructure:"policy"`
	Watch   WatchConfig   `mapstructure:"watch"`
	Output  OutputConfig  `mapstructure:"output"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// FeedConfig selects and tunes the scoring feed source
type FeedConfig struct {
	URL             string        `mapstructure:"url"`
	File            string        `mapstructure:"file"`
	Format          string        `mapstructure:"format"`
	Timeout         time.Duration `mapstructure:"timeout"`
	MinInterval     time.Duration `mapstructure:"min_interval"`
	BreakerFailures uint32        `mapstructure:"breaker_failures"`
	BreakerCooldown time.Duration `mapstructure:"breaker_cooldown"`
}

// PolicyConfig holds the scoring policy as configured strings
type PolicyConfig struct {
	RoundPenalty    string `mapstructure:"round_penalty"`
	SelectionKey    string `mapstructure:"selection_key"`
	Unmatched       string `mapstructure:"unmatched"`
	PropCombination string `mapstructure:"prop_combination"`
	SelectionSize   int    `mapstructure:"selection_size"`
}

// WatchConfig controls periodic refresh
type WatchConfig struct {
	Schedule string `mapstructure:"schedule"`
}

// OutputConfig controls how standings are printed
type OutputConfig struct {
	Format  string `mapstructure:"format"`
	Verbose bool   `mapstructure:"verbose"`
}

// LogConfig controls the structured logger
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// MetricsConfig controls metrics export
type MetricsConfig struct {
	Textfile string `mapstructure:"textfile"`
}

// FlagKeys maps command-line flag names to config keys
var FlagKeys = map[string]string{
	"feed-url":          "feed.url",
	"feed-file":         "feed.file",
	"feed-format":       "feed.format",
	"feed-timeout":      "feed.timeout",
	"feed-min-interval": "feed.min_interval",
	"breaker-failures":  "feed.breaker_failures",
	"breaker-cooldown":  "feed.breaker_cooldown",
	"roster":            "roster",
	"round-penalty":     "policy.round_penalty",
	"selection-key":     "policy.selection_key",
	"unmatched":         "policy.unmatched",
	"prop-combination":  "policy.prop_combination",
	"selection-size":    "policy.selection_size",
	"schedule":          "watch.schedule",
	"format":            "output.format",
	"verbose":           "output.verbose",
	"log-level":         "log.level",
	"metrics-file":      "metrics.textfile",
}

// Loader resolves a Config from defaults, a config file, the environment and flags
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a loader with defaults and environment lookup installed
func NewLoader() *Loader {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}
}

func setDefaults(v *viper.Viper) {
	defaults := scoring.DefaultPolicy()

	v.SetDefault("feed.url", "")
	v.SetDefault("feed.file", "")
	v.SetDefault("feed.format", string(feed.FormatAuto))
	v.SetDefault("feed.timeout", feed.Timeout)
	v.SetDefault("feed.min_interval", feed.MinInterval)
	v.SetDefault("feed.breaker_failures", 3)
	v.SetDefault("feed.breaker_cooldown", time.Minute)
	v.SetDefault("roster", "")
	v.SetDefault("policy.round_penalty", string(defaults.RoundPenalty))
	v.SetDefault("policy.selection_key", string(defaults.SelectionKey))
	v.SetDefault("policy.unmatched", string(defaults.Unmatched))
	v.SetDefault("policy.prop_combination", string(defaults.PropCombination))
	v.SetDefault("policy.selection_size", defaults.SelectionSize)
	v.SetDefault("watch.schedule", "@every 2m")
	v.SetDefault("output.format", "text")
	v.SetDefault("output.verbose", false)
	v.SetDefault("log.level", string(logger.LevelInfo))
	v.SetDefault("metrics.textfile", "")
}

// BindFlags binds every flag in FlagKeys that exists in flags
func (l *Loader) BindFlags(flags *pflag.FlagSet) error {
	for name, key := range FlagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := l.v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("binding flag --%s: %w", name, err)
		}
	}
	return nil
}

// Load reads configFile when non-empty and returns the validated configuration
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile != "" {
		l.v.SetConfigFile(configFile)
		if err := l.v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that enumerated settings hold known values
func (c *Config) Validate() error {
	if _, err := c.Policy.Scoring(); err != nil {
		return err
	}
	if _, err := feed.ParseFormat(c.Feed.Format); err != nil {
		return err
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Feed.URL != "" && c.Feed.File != "" {
		return fmt.Errorf("feed.url and feed.file are mutually exclusive")
	}
	return nil
}

// RequireFeed returns ErrNoFeed when no feed source is configured
func (c *Config) RequireFeed() error {
	if c.Feed.URL == "" && c.Feed.File == "" {
		return ErrNoFeed
	}
	return nil
}

// Scoring converts the configured strings into a validated scoring.Policy
func (p PolicyConfig) Scoring() (scoring.Policy, error) {
	var (
		policy scoring.Policy
		err    error
	)

	if policy.RoundPenalty, err = scoring.ParseRoundPenalty(p.RoundPenalty); err != nil {
		return scoring.Policy{}, err
	}
	if policy.SelectionKey, err = scoring.ParseSelectionKey(p.SelectionKey); err != nil {
		return scoring.Policy{}, err
	}
	if policy.Unmatched, err = scoring.ParseUnmatchedPolicy(p.Unmatched); err != nil {
		return scoring.Policy{}, err
	}
	if policy.PropCombination, err = scoring.ParsePropCombination(p.PropCombination); err != nil {
		return scoring.Policy{}, err
	}
	policy.SelectionSize = p.SelectionSize

	if err := policy.Validate(); err != nil {
		return scoring.Policy{}, err
	}

	return policy, nil
}

// DotEnvPaths are the locations LoadDotEnv tries by default
var DotEnvPaths = []string{".env", "../.env"}

// LoadDotEnv loads the first readable .env file from paths (DotEnvPaths when empty)
// into the process environment without overriding variables already set. It returns
// the path loaded, or "" when none was found.
func LoadDotEnv(paths ...string) string {
	if len(paths) == 0 {
		paths = DotEnvPaths
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err == nil {
			logger.Debug("Loaded .env file", logger.Fields{"path": path})
			return path
		}
	}
	return ""
}
