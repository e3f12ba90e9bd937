package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	"MediaScorer/internal/config"
	"MediaScorer/internal/domain"
	"MediaScorer/internal/infrastructure/feed"
	"MediaScorer/internal/infrastructure/httpapi"
	"MediaScorer/internal/infrastructure/scheduler"
	"MediaScorer/internal/infrastructure/scraper"
	"MediaScorer/internal/infrastructure/storage"
	"MediaScorer/internal/lexicon"
	"MediaScorer/internal/logging"
	"MediaScorer/internal/ports"
	"MediaScorer/internal/scoring"
	"MediaScorer/internal/usecase"
)

// Application wires configuration to the analysis service, HTTP surface, and
// scheduled feed scans.
type Application struct {
	cfg       config.Config
	logger    *slog.Logger
	server    *http.Server
	scheduler *usecase.Scheduler
	db        *sql.DB
}

// New builds a runnable application instance. Lexicons load here, once;
// everything downstream treats them as immutable.
func New(cfg config.Config, baseLogger *slog.Logger) (*Application, error) {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level, cfg.Logging.Format)
	}

	lexicons, err := loadLexicons(cfg, baseLogger.With("component", "lexicon"))
	if err != nil {
		return nil, fmt.Errorf("load lexicons: %w", err)
	}

	policy, err := policyFromConfig(cfg.Scoring)
	if err != nil {
		return nil, fmt.Errorf("scoring policy: %w", err)
	}
	aggregator, err := scoring.NewAggregator(policy, baseLogger.With("component", "aggregator"))
	if err != nil {
		return nil, fmt.Errorf("build aggregator: %w", err)
	}

	articleScraper := scraper.New(nil, scraper.Options{
		UserAgent:         cfg.Scraper.UserAgent,
		Timeout:           time.Duration(cfg.Scraper.TimeoutSeconds) * time.Second,
		RequestsPerSecond: cfg.Scraper.RequestsPerSecond,
	}, baseLogger.With("component", "scraper"))

	var db *sql.DB
	var repository ports.ReportRepository
	if cfg.Database.DSN != "" {
		db, err = sql.Open("postgres", cfg.Database.DSN)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		repository = storage.NewPostgresRepository(db)
	}

	service, err := usecase.NewService(usecase.ServiceDeps{
		Lexicons:   lexicons,
		Aggregator: aggregator,
		Scraper:    articleScraper,
		Feeds:      feed.NewSource(nil, baseLogger.With("component", "feed")),
		Repository: repository,
		Logger:     baseLogger.With("component", "pipeline"),
	})
	if err != nil {
		return nil, err
	}

	api := httpapi.NewServer(service, repository, baseLogger.With("component", "httpapi"))

	app := &Application{
		cfg:    cfg,
		logger: baseLogger,
		db:     db,
		server: &http.Server{
			Addr:         cfg.Server.Addr,
			Handler:      api.Handler(),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 60 * time.Second,
		},
	}

	if feeds := feedURLs(cfg.Feeds); len(feeds) > 0 {
		driver := scheduler.NewCronScheduler(cfg.Scheduler.CronExpression, baseLogger.With("component", "scheduler"))
		app.scheduler = usecase.NewScheduler(driver, service, feeds)
	}

	return app, nil
}

// Run serves HTTP and the feed-scan schedule until ctx is cancelled, then
// shuts down gracefully.
func (a *Application) Run(ctx context.Context) error {
	if a.scheduler != nil {
		if err := a.scheduler.Start(ctx); err != nil {
			return fmt.Errorf("start scheduler: %w", err)
		}
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("http server listening", "addr", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	return a.shutdown()
}

func (a *Application) shutdown() error {
	timeout := time.Duration(a.cfg.Server.ShutdownSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if a.scheduler != nil {
		if err := a.scheduler.Stop(ctx); err != nil {
			a.logger.Warn("scheduler stop", "error", err)
		}
	}

	err := a.server.Shutdown(ctx)

	if a.db != nil {
		if closeErr := a.db.Close(); closeErr != nil {
			a.logger.Warn("close database", "error", closeErr)
		}
	}

	if err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}

func loadLexicons(cfg config.Config, logger *slog.Logger) (*lexicon.Store, error) {
	if cfg.Lexicons.Dir != "" {
		return lexicon.LoadDir(cfg.Lexicons.Dir, logger)
	}
	return lexicon.LoadDefaults(logger)
}

// policyFromConfig starts from the default policy and applies configured
// weight overrides; NewAggregator re-validates the result.
func policyFromConfig(cfg config.ScoringConfig) (scoring.Policy, error) {
	policy := scoring.DefaultPolicy()
	if len(cfg.Weights) == 0 {
		return policy, nil
	}

	weights := make(map[domain.Signal]float64, len(cfg.Weights))
	for name, weight := range cfg.Weights {
		weights[domain.Signal(name)] = weight
	}
	policy.Weights = weights

	if err := policy.Validate(); err != nil {
		return scoring.Policy{}, err
	}
	return policy, nil
}

func feedURLs(feeds []config.FeedConfig) []string {
	urls := make([]string, 0, len(feeds))
	for _, f := range feeds {
		if f.URL != "" {
			urls = append(urls, f.URL)
		}
	}
	return urls
}
