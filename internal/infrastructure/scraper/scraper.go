package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	"MediaScorer/internal/domain"
	"MediaScorer/internal/ports"
)

// Scraper fetches a remote article page and extracts headline/body text
// through the extractor registry. Outbound requests are rate limited.
type Scraper struct {
	client    *http.Client
	registry  *Registry
	limiter   *rate.Limiter
	userAgent string
	logger    *slog.Logger
}

var _ ports.Scraper = (*Scraper)(nil)

// Options tunes the HTTP behavior; zero values get sensible defaults.
type Options struct {
	UserAgent         string
	Timeout           time.Duration
	RequestsPerSecond float64
}

// New builds a scraper with the default extractor set registered.
func New(client *http.Client, opts Options, logger *slog.Logger) *Scraper {
	if opts.Timeout <= 0 {
		opts.Timeout = 20 * time.Second
	}
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "MediaScorer/1.0"
	}
	if opts.RequestsPerSecond <= 0 {
		opts.RequestsPerSecond = 2
	}

	registry := NewRegistry()
	registry.Register(&SnopesExtractor{})
	registry.Register(&PolitifactExtractor{})

	return &Scraper{
		client:    client,
		registry:  registry,
		limiter:   rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1),
		userAgent: opts.UserAgent,
		logger:    logger,
	}
}

// Scrape downloads pageURL and extracts an Article. A page where only the
// body extraction fails still returns a usable Article with an empty body;
// the pipeline downstream treats that as degraded input, not an error.
func (s *Scraper) Scrape(ctx context.Context, pageURL string) (domain.Article, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil || parsed.Host == "" {
		return domain.Article{}, fmt.Errorf("invalid article url %q", pageURL)
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return domain.Article{}, fmt.Errorf("rate limit wait: %w", err)
	}

	doc, err := s.fetchDocument(ctx, pageURL)
	if err != nil {
		return domain.Article{}, err
	}

	// Script/style text would otherwise leak into goquery's Text().
	doc.Find("script, style, iframe, aside, nav, footer").Remove()

	extractor := s.registry.Resolve(parsed.Host)
	headline, body := extractor.Extract(doc)

	if headline == "" && body == "" {
		return domain.Article{}, fmt.Errorf("no extractable content at %s", pageURL)
	}
	if body == "" && s.logger != nil {
		s.logger.Warn("extracted headline only", "url", pageURL, "extractor", extractor.Name())
	}

	return domain.Article{
		Headline: headline,
		Body:     body,
		URL:      pageURL,
		Source:   parsed.Host,
	}, nil
}

func (s *Scraper) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: %s", pageURL, resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	return doc, nil
}

// joinParagraphs collects the text of every matched paragraph.
func joinParagraphs(sel *goquery.Selection) string {
	var parts []string
	sel.Each(func(_ int, p *goquery.Selection) {
		if text := strings.TrimSpace(p.Text()); text != "" {
			parts = append(parts, text)
		}
	})
	return strings.Join(parts, " ")
}
