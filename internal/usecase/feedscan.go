package usecase

import (
	"context"
	"sync"

	"MediaScorer/internal/domain"
)

const maxConcurrentScans = 4

// ScanFeeds pulls every configured feed, scores each entry, and persists the
// reports. Entries with a URL but no usable body are re-scraped for full
// text first. Per-article failures are logged and skipped so one broken
// entry cannot sink a batch; the number of scored articles is returned.
func (s *Service) ScanFeeds(ctx context.Context, feedURLs []string) (int, error) {
	if s.feeds == nil {
		return 0, nil
	}

	var articles []domain.Article
	for _, feedURL := range feedURLs {
		items, err := s.feeds.Fetch(ctx, feedURL)
		if err != nil {
			s.warn("fetch feed failed", "feed", feedURL, "error", err)
			continue
		}
		articles = append(articles, items...)
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		processed int
	)
	sem := make(chan struct{}, maxConcurrentScans)

	for _, article := range articles {
		wg.Add(1)
		go func(art domain.Article) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			if ok := s.scanOne(ctx, art); ok {
				mu.Lock()
				processed++
				mu.Unlock()
			}
		}(article)
	}
	wg.Wait()

	return processed, ctx.Err()
}

func (s *Service) scanOne(ctx context.Context, article domain.Article) bool {
	if err := ctx.Err(); err != nil {
		return false
	}

	// Feed summaries are often a sentence or two; prefer the full article
	// when we can get it.
	if article.Body == "" && article.URL != "" && s.scraper != nil {
		scraped, err := s.scraper.Scrape(ctx, article.URL)
		if err != nil {
			s.warn("scrape feed entry failed", "url", article.URL, "error", err)
		} else {
			if scraped.Headline != "" {
				article.Headline = scraped.Headline
			}
			article.Body = scraped.Body
		}
	}

	report, err := s.Analyze(ctx, article)
	if err != nil {
		s.warn("analyze feed entry failed", "url", article.URL, "error", err)
		return false
	}

	if err := s.persist(ctx, article, report); err != nil {
		s.warn("persist feed entry failed", "url", article.URL, "error", err)
		return false
	}

	s.debug("scored feed entry",
		"url", article.URL,
		"overall", report.OverallScore,
		"category", report.Category)
	return true
}

func (s *Service) warn(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}

func (s *Service) debug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
