// Package cli implements the command-line interface for pool-standings.
//
// The root command fetches the scoring feed once, scores every roster entry and prints
// the ranked standings as text or JSON. The watch subcommand repeats that on a cron
// schedule and announces rank movements between passes. The golfers subcommand dumps
// the normalized feed, which helps when a new feed's column layout needs checking.
//
// Settings come from the config package: flags, POOL_* environment variables, a .env
// file and an optional YAML config file.
package cli
