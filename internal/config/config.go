package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv  = "MEDIASCORER_CONFIG"
	serverAddrEnv  = "SERVER_ADDR"
	databaseDSNEnv = "DATABASE_DSN"
	lexiconDirEnv  = "LEXICON_DIR"
	logLevelEnv    = "LOG_LEVEL"
)

// Config holds high-level settings required across the application.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Logging   LoggingConfig   `yaml:"logging"`
	Database  DatabaseConfig  `yaml:"database"`
	Lexicons  LexiconConfig   `yaml:"lexicons"`
	Scraper   ScraperConfig   `yaml:"scraper"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Feeds     []FeedConfig    `yaml:"feeds"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr            string `yaml:"addr"`
	ShutdownSeconds int    `yaml:"shutdownSeconds"`
}

// LoggingConfig selects log verbosity and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DatabaseConfig describes Postgres connection details. Empty DSN disables
// persistence.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// LexiconConfig points at an on-disk lexicon directory. Empty means the
// embedded default lexicons.
type LexiconConfig struct {
	Dir string `yaml:"dir"`
}

// ScraperConfig tunes outbound article fetching.
type ScraperConfig struct {
	UserAgent         string  `yaml:"userAgent"`
	TimeoutSeconds    int     `yaml:"timeoutSeconds"`
	RequestsPerSecond float64 `yaml:"requestsPerSecond"`
}

// ScoringConfig optionally overrides the default signal weights. Keys are
// signal names; values must cover all five signals and sum to 1.
type ScoringConfig struct {
	Weights map[string]float64 `yaml:"weights"`
}

// FeedConfig describes one RSS/Atom feed scanned on the schedule.
type FeedConfig struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// SchedulerConfig defines when feed scans run.
type SchedulerConfig struct {
	CronExpression string `yaml:"cronExpression"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(serverAddrEnv); v != "" {
		c.Server.Addr = v
	}

	if v := os.Getenv(databaseDSNEnv); v != "" {
		c.Database.DSN = v
	}

	if v := os.Getenv(lexiconDirEnv); v != "" {
		c.Lexicons.Dir = v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Server.Addr != "" {
		base.Server.Addr = override.Server.Addr
	}
	if override.Server.ShutdownSeconds > 0 {
		base.Server.ShutdownSeconds = override.Server.ShutdownSeconds
	}

	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	if override.Logging.Format != "" {
		base.Logging.Format = override.Logging.Format
	}

	if override.Database.DSN != "" {
		base.Database = override.Database
	}

	if override.Lexicons.Dir != "" {
		base.Lexicons = override.Lexicons
	}

	if override.Scraper.UserAgent != "" {
		base.Scraper.UserAgent = override.Scraper.UserAgent
	}
	if override.Scraper.TimeoutSeconds > 0 {
		base.Scraper.TimeoutSeconds = override.Scraper.TimeoutSeconds
	}
	if override.Scraper.RequestsPerSecond > 0 {
		base.Scraper.RequestsPerSecond = override.Scraper.RequestsPerSecond
	}

	if len(override.Scoring.Weights) > 0 {
		base.Scoring.Weights = override.Scoring.Weights
	}

	if len(override.Feeds) > 0 {
		base.Feeds = override.Feeds
	}

	if override.Scheduler.CronExpression != "" {
		base.Scheduler.CronExpression = override.Scheduler.CronExpression
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Server:    ServerConfig{Addr: ":8080", ShutdownSeconds: 10},
		Logging:   LoggingConfig{Level: "info", Format: "text"},
		Database:  DatabaseConfig{DSN: ""},
		Lexicons:  LexiconConfig{Dir: ""},
		Scraper:   ScraperConfig{UserAgent: "MediaScorer/1.0", TimeoutSeconds: 20, RequestsPerSecond: 2},
		Scheduler: SchedulerConfig{CronExpression: "0 */6 * * *"},
	}
}
