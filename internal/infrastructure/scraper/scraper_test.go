package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func testScraper() *Scraper {
	return New(nil, Options{RequestsPerSecond: 100}, nil)
}

func serve(t *testing.T, html string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(html))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestScrapeGenericPage(t *testing.T) {
	t.Parallel()

	srv := serve(t, `<html><head>
		<script>var tracking = "should not leak";</script>
		<style>p { color: red }</style>
	</head><body>
		<nav><p>site navigation</p></nav>
		<h1>Council Approves Budget</h1>
		<article>
			<p>The council voted on Tuesday.</p>
			<p>Spending rises 4 percent.</p>
		</article>
		<footer><p>copyright notice</p></footer>
	</body></html>`)

	article, err := testScraper().Scrape(context.Background(), srv.URL+"/story")
	if err != nil {
		t.Fatalf("Scrape: %v", err)
	}

	if article.Headline != "Council Approves Budget" {
		t.Fatalf("headline = %q", article.Headline)
	}
	if article.Body != "The council voted on Tuesday. Spending rises 4 percent." {
		t.Fatalf("body = %q", article.Body)
	}
	for _, leaked := range []string{"should not leak", "color: red", "navigation", "copyright"} {
		if strings.Contains(article.Body, leaked) {
			t.Fatalf("non-content text leaked into body: %q", leaked)
		}
	}
	if article.URL != srv.URL+"/story" {
		t.Fatalf("url = %q", article.URL)
	}
	if article.Source == "" {
		t.Fatalf("source host must be set")
	}
}

func TestScrapeNoExtractableContent(t *testing.T) {
	t.Parallel()

	srv := serve(t, `<html><body><div>nothing here</div></body></html>`)
	if _, err := testScraper().Scrape(context.Background(), srv.URL); err == nil {
		t.Fatalf("page without headline or paragraphs must error")
	}
}

func TestScrapeHTTPFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	if _, err := testScraper().Scrape(context.Background(), srv.URL); err == nil {
		t.Fatalf("non-200 response must error")
	}
}

func TestScrapeInvalidURL(t *testing.T) {
	t.Parallel()

	for _, bad := range []string{"", "not a url", "/relative/path"} {
		if _, err := testScraper().Scrape(context.Background(), bad); err == nil {
			t.Fatalf("url %q must be rejected", bad)
		}
	}
}

func TestRegistryResolve(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register(&SnopesExtractor{})

	cases := []struct {
		host string
		want string
	}{
		{"snopes.com", "snopes"},
		{"www.snopes.com", "snopes"},
		{"WWW.SNOPES.COM", "snopes"},
		{"notsnopes.com", "generic"},
		{"example.com", "generic"},
	}
	for _, tc := range cases {
		if got := registry.Resolve(tc.host).Name(); got != tc.want {
			t.Fatalf("Resolve(%q) = %q, want %q", tc.host, got, tc.want)
		}
	}
}

func TestPolitifactExtractor(t *testing.T) {
	t.Parallel()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<html><body>
		<h1 class="article__title">Fact-check: the claim</h1>
		<div class="m-textblock">
			<p>The statement is missing context.</p>
			<p>Records show otherwise.</p>
		</div>
	</body></html>`))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}

	headline, body := (&PolitifactExtractor{}).Extract(doc)
	if headline != "Fact-check: the claim" {
		t.Fatalf("headline = %q", headline)
	}
	if body != "The statement is missing context. Records show otherwise." {
		t.Fatalf("body = %q", body)
	}
}
