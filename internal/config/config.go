// Package config reads command-line flags with environment overrides.
package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/erazemk/zaloga/internal/share"
)

// Config is the runtime configuration of the server and the report command.
type Config struct {
	DBPath   string
	Addr     string
	LogPath  string
	Lang     string
	TZ       string
	BaseURL  string
	ShareTTL time.Duration

	Location *time.Location
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		DBPath:   "zaloga.sqlite3",
		Addr:     ":8080",
		Lang:     "en",
		TZ:       "Local",
		ShareTTL: share.DefaultTTL,
	}
}

// Usage is the flag help text.
const Usage = `Usage: zaloga [serve|report] [flags]

Commands:
  serve                   run the web server (default)
  report                  print the current reorder list and exit

Flags:
  -d, -db <path>          SQLite database path (default: zaloga.sqlite3)
  -a, -addr <host:port>   listen address (default: :8080)
  -l, -log <path>         log file path (default: no file, stdout/stderr only)
  -lang <en|ko>           report language (default: en)
  -tz <zone>              time zone for report timestamps (default: Local)
  -base-url <url>         public URL used in share links (default: from request)
  -share-ttl <duration>   lifetime of report share links (default: 72h)
  -h, -help               show this help and exit

Every flag can also be set through ZALOGA_<NAME>, e.g. ZALOGA_DB or
ZALOGA_SHARE_TTL. Flags win over the environment.
`

// Load parses args on top of the environment and the defaults. getenv is
// usually os.Getenv.
func Load(name string, args []string, getenv func(string) string, output io.Writer) (*Config, error) {
	cfg := Default()
	if err := applyEnv(&cfg, getenv); err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() { fmt.Fprint(output, Usage) }

	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "")
	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "")
	fs.StringVar(&cfg.LogPath, "log", cfg.LogPath, "")
	fs.StringVar(&cfg.LogPath, "l", cfg.LogPath, "")
	fs.StringVar(&cfg.Lang, "lang", cfg.Lang, "")
	fs.StringVar(&cfg.TZ, "tz", cfg.TZ, "")
	fs.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "")
	fs.DurationVar(&cfg.ShareTTL, "share-ttl", cfg.ShareTTL, "")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}

	return finish(&cfg)
}

func applyEnv(cfg *Config, getenv func(string) string) error {
	strs := map[string]*string{
		"ZALOGA_DB":       &cfg.DBPath,
		"ZALOGA_ADDR":     &cfg.Addr,
		"ZALOGA_LOG":      &cfg.LogPath,
		"ZALOGA_LANG":     &cfg.Lang,
		"ZALOGA_TZ":       &cfg.TZ,
		"ZALOGA_BASE_URL": &cfg.BaseURL,
	}
	for key, dst := range strs {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}

	if v := strings.TrimSpace(getenv("ZALOGA_SHARE_TTL")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parsing ZALOGA_SHARE_TTL: %w", err)
		}
		cfg.ShareTTL = d
	}
	return nil
}

func finish(cfg *Config) (*Config, error) {
	if cfg.ShareTTL <= 0 {
		return nil, fmt.Errorf("share ttl must be positive, got %s", cfg.ShareTTL)
	}

	loc, err := time.LoadLocation(cfg.TZ)
	if err != nil {
		return nil, fmt.Errorf("loading time zone %q: %w", cfg.TZ, err)
	}
	cfg.Location = loc
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return cfg, nil
}

// FromEnv is Load with the process environment.
func FromEnv(name string, args []string) (*Config, error) {
	return Load(name, args, os.Getenv, os.Stderr)
}
