package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(configPathEnv, "")
	t.Setenv(serverAddrEnv, "")
	t.Setenv(databaseDSNEnv, "")
	t.Setenv(lexiconDirEnv, "")
	t.Setenv(logLevelEnv, "")

	cfg := Load()
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("default addr = %q", cfg.Server.Addr)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Fatalf("default logging = %+v", cfg.Logging)
	}
	if cfg.Scraper.RequestsPerSecond != 2 {
		t.Fatalf("default scraper rate = %v", cfg.Scraper.RequestsPerSecond)
	}
	if cfg.Scheduler.CronExpression == "" {
		t.Fatalf("default cron expression must be set")
	}
}

func TestLoadMergesFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := `
server:
  addr: ":9090"
logging:
  level: debug
  format: json
scraper:
  requestsPerSecond: 0.5
scoring:
  weights:
    bias: 0.4
feeds:
  - name: wire
    url: http://example.com/rss
`
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv(configPathEnv, path)
	t.Setenv(serverAddrEnv, ":7070")
	t.Setenv(databaseDSNEnv, "postgres://test")
	t.Setenv(lexiconDirEnv, "")
	t.Setenv(logLevelEnv, "")

	cfg := Load()

	// Env wins over the file for the listener address.
	if cfg.Server.Addr != ":7070" {
		t.Fatalf("addr = %q, want env override", cfg.Server.Addr)
	}
	if cfg.Database.DSN != "postgres://test" {
		t.Fatalf("dsn = %q", cfg.Database.DSN)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Fatalf("logging = %+v", cfg.Logging)
	}
	if cfg.Scraper.RequestsPerSecond != 0.5 {
		t.Fatalf("scraper rate = %v", cfg.Scraper.RequestsPerSecond)
	}
	if cfg.Scoring.Weights["bias"] != 0.4 {
		t.Fatalf("scoring weights = %v", cfg.Scoring.Weights)
	}
	if len(cfg.Feeds) != 1 || cfg.Feeds[0].URL != "http://example.com/rss" {
		t.Fatalf("feeds = %+v", cfg.Feeds)
	}

	// File values the env does not touch keep their merged defaults.
	if cfg.Scraper.UserAgent != "MediaScorer/1.0" {
		t.Fatalf("user agent = %q", cfg.Scraper.UserAgent)
	}
}

func TestLoadIgnoresUnreadableFile(t *testing.T) {
	t.Setenv(configPathEnv, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv(serverAddrEnv, "")
	t.Setenv(databaseDSNEnv, "")
	t.Setenv(lexiconDirEnv, "")
	t.Setenv(logLevelEnv, "")

	cfg := Load()
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("missing file must fall back to defaults, addr = %q", cfg.Server.Addr)
	}
}
