package ports

import (
	"context"
	"time"

	"MediaScorer/internal/domain"
)

// Scraper fetches a remote article and extracts headline/body text.
type Scraper interface {
	Scrape(ctx context.Context, url string) (domain.Article, error)
}

// FeedSource pulls articles from an RSS/Atom feed for batch scoring.
type FeedSource interface {
	Fetch(ctx context.Context, feedURL string) ([]domain.Article, error)
}

// ReportRepository persists composite reports keyed by article URL.
type ReportRepository interface {
	SaveReport(ctx context.Context, article domain.Article, report domain.CompositeReport) error
	RecentReports(ctx context.Context, limit int) ([]domain.StoredReport, error)
}

// Scheduler controls when recurring feed scans execute.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
