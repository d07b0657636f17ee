package cfg

import (
	"cmp"
	"fmt"
	"log/slog"
	"time"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

// Options are the global flags shared by every command.
type Options struct {
	RegistryFile string        `long:"registry-file" env:"REGISTRY_FILE" description:"YAML file overriding the built-in sources and organizations"`
	UserAgent    string        `long:"user-agent" env:"USER_AGENT" default:"AI Digest/1.0" description:"User agent string for HTTP requests"`
	Timeout      time.Duration `long:"timeout" env:"FETCH_TIMEOUT" default:"30s" description:"Per-source fetch timeout"`
	Parallel     int           `long:"parallel" env:"FETCH_PARALLEL" default:"4" description:"Number of sources fetched concurrently"`
	Timezone     string        `long:"timezone" env:"TZ" description:"Timezone for timestamps (e.g., UTC, Asia/Shanghai)"`
	Debug        bool          `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

// Load validates parsed options and makes them available through Get.
func Load(opts *Options) (*Cfg, error) {
	if opts.Timeout <= 0 {
		return nil, fmt.Errorf("timeout must be positive, got %s", opts.Timeout)
	}
	if opts.Parallel <= 0 {
		return nil, fmt.Errorf("parallel must be positive, got %d", opts.Parallel)
	}

	cfg := &Cfg{
		RegistryFile: opts.RegistryFile,
		UserAgent:    opts.UserAgent,
		Timeout:      opts.Timeout,
		Parallel:     opts.Parallel,
		Timezone:     opts.Timezone,
		Debug:        opts.Debug,
		Version:      GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		slog.Warn("Invalid timezone, using system default", "timezone", cfg.Timezone, "error", err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
			slog.Debug("Timezone configured", "timezone", timezone)
		}
	}
	return nil
}
