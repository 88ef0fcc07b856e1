// Package config resolves pool-standings settings from layered sources.
//
// Precedence, highest first: command-line flags, POOL_* environment variables
// (including any loaded from a .env file), an optional YAML config file, and built-in
// defaults. Nested keys map to env names by replacing "." with "_", so feed.min_interval
// is POOL_FEED_MIN_INTERVAL.
package config
