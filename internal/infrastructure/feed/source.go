package feed

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"MediaScorer/internal/domain"
	"MediaScorer/internal/ports"
)

// Source pulls RSS/Atom feeds and converts entries into Articles for batch
// scoring. Entry summaries become the body; the pipeline re-scrapes the
// link when the summary is empty.
type Source struct {
	parser *gofeed.Parser
	logger *slog.Logger
}

var _ ports.FeedSource = (*Source)(nil)

// NewSource builds a feed source; a nil client gets a timeout default.
func NewSource(client *http.Client, logger *slog.Logger) *Source {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	parser := gofeed.NewParser()
	parser.Client = client
	parser.UserAgent = "MediaScorer/1.0"

	return &Source{parser: parser, logger: logger}
}

// Fetch parses one feed into Articles, skipping entries without a title.
func (s *Source) Fetch(ctx context.Context, feedURL string) ([]domain.Article, error) {
	parsed, err := s.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", feedURL, err)
	}

	articles := make([]domain.Article, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item == nil || item.Title == "" {
			continue
		}

		body := item.Content
		if body == "" {
			body = item.Description
		}

		article := domain.Article{
			Headline: item.Title,
			Body:     body,
			URL:      item.Link,
			Source:   parsed.Title,
		}
		if item.PublishedParsed != nil {
			article.PublishedAt = *item.PublishedParsed
		}
		articles = append(articles, article)
	}

	if s.logger != nil {
		s.logger.Debug("fetched feed", "feed", feedURL, "entries", len(articles))
	}
	return articles, nil
}
