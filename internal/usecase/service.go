package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"MediaScorer/internal/analyzer"
	"MediaScorer/internal/domain"
	"MediaScorer/internal/lexicon"
	"MediaScorer/internal/normalize"
	"MediaScorer/internal/ports"
	"MediaScorer/internal/scoring"
)

// ServiceDeps wires the analyzers' shared state and the driven adapters into
// the analysis service. Scraper, feed source, and repository are optional;
// lexicons and aggregator are not.
type ServiceDeps struct {
	Lexicons   *lexicon.Store
	Aggregator *scoring.Aggregator
	Scraper    ports.Scraper
	Feeds      ports.FeedSource
	Repository ports.ReportRepository
	Logger     *slog.Logger

	// Sequential disables the analyzer fan-out. Results are identical either
	// way; the flag exists so tests can prove that.
	Sequential bool
}

// Service runs the multi-signal scoring pipeline: normalize, fan out to the
// five analyzers, aggregate behind the barrier.
type Service struct {
	sentiment    *analyzer.Sentiment
	bias         *analyzer.Bias
	evidence     *analyzer.Evidence
	headline     *analyzer.Headline
	manipulation *analyzer.Manipulation
	aggregator   *scoring.Aggregator
	scraper      ports.Scraper
	feeds        ports.FeedSource
	repository   ports.ReportRepository
	logger       *slog.Logger
	sequential   bool
}

// NewService validates required dependencies and builds the service.
func NewService(deps ServiceDeps) (*Service, error) {
	if deps.Lexicons == nil {
		return nil, fmt.Errorf("usecase: lexicon store is required")
	}
	if deps.Aggregator == nil {
		return nil, fmt.Errorf("usecase: aggregator is required")
	}

	return &Service{
		sentiment:    analyzer.NewSentiment(deps.Lexicons),
		bias:         analyzer.NewBias(deps.Lexicons),
		evidence:     analyzer.NewEvidence(),
		headline:     analyzer.NewHeadline(deps.Lexicons),
		manipulation: analyzer.NewManipulation(deps.Lexicons),
		aggregator:   deps.Aggregator,
		scraper:      deps.Scraper,
		feeds:        deps.Feeds,
		repository:   deps.Repository,
		logger:       deps.Logger,
		sequential:   deps.Sequential,
	}, nil
}

// Analyze scores one article. Degraded input (empty headline or body) still
// produces a complete low-confidence report; only caller bugs error.
func (s *Service) Analyze(ctx context.Context, article domain.Article) (domain.CompositeReport, error) {
	if err := ctx.Err(); err != nil {
		return domain.CompositeReport{}, err
	}

	headline := normalize.Text(article.Headline)
	body := normalize.Text(article.Body)

	tasks := []func() domain.SubScore{
		func() domain.SubScore { return s.sentiment.Analyze(body) },
		func() domain.SubScore { return s.bias.Analyze(body) },
		func() domain.SubScore { return s.evidence.Analyze(body) },
		func() domain.SubScore { return s.headline.Analyze(headline, body) },
		func() domain.SubScore { return s.manipulation.Analyze(body) },
	}

	// Fixed result slots: each goroutine writes its own index, the WaitGroup
	// is the barrier, no further synchronization needed.
	results := make([]domain.SubScore, len(tasks))
	if s.sequential {
		for i, task := range tasks {
			results[i] = task()
		}
	} else {
		var wg sync.WaitGroup
		for i, task := range tasks {
			wg.Add(1)
			go func(slot int, run func() domain.SubScore) {
				defer wg.Done()
				results[slot] = run()
			}(i, task)
		}
		wg.Wait()
	}

	subs := make(map[domain.Signal]domain.SubScore, len(results))
	for _, sub := range results {
		subs[sub.Signal] = sub
	}

	report, err := s.aggregator.Aggregate(subs)
	if err != nil {
		return domain.CompositeReport{}, fmt.Errorf("aggregate %q: %w", article.Headline, err)
	}
	return report, nil
}

// AnalyzeURL scrapes the article behind url, scores it, and persists the
// result when a repository is configured.
func (s *Service) AnalyzeURL(ctx context.Context, url string) (domain.Article, domain.CompositeReport, error) {
	if s.scraper == nil {
		return domain.Article{}, domain.CompositeReport{}, fmt.Errorf("usecase: no scraper configured")
	}

	article, err := s.scraper.Scrape(ctx, url)
	if err != nil {
		return domain.Article{}, domain.CompositeReport{}, fmt.Errorf("scrape %s: %w", url, err)
	}

	report, err := s.Analyze(ctx, article)
	if err != nil {
		return domain.Article{}, domain.CompositeReport{}, err
	}

	if err := s.persist(ctx, article, report); err != nil {
		return domain.Article{}, domain.CompositeReport{}, err
	}
	return article, report, nil
}

func (s *Service) persist(ctx context.Context, article domain.Article, report domain.CompositeReport) error {
	if s.repository == nil || article.URL == "" {
		return nil
	}
	if err := s.repository.SaveReport(ctx, article, report); err != nil {
		return fmt.Errorf("save report %s: %w", article.URL, err)
	}
	return nil
}
